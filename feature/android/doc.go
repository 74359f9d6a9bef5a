// Package android installs the Android SDK tools and NDK, then runs the SDK
// updater non-interactively for the platform packages fips builds against.
package android
