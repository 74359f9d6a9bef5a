package android

import (
	"strings"

	"fips/core/sdk"
)

// Name is the SDK name accepted by "fips setup".
const Name = "android"

// Packages are the SDK components installed by the tools updater.
const Packages = "tools,platform-tools,build-tools-23.0.1,android-19"

const (
	toolsURL = "https://dl.google.com/android/"
	ndkURL   = "https://dl.google.com/android/repository/"
	ndkDir   = "android-ndk-r12b"
)

var archives = map[string][]sdk.Archive{
	sdk.PlatformOSX: {
		{URL: toolsURL + "android-sdk_r24.4.1-macosx.zip", Dir: "android-sdk-macosx"},
		{URL: ndkURL + "android-ndk-r12b-darwin-x86_64.zip", Dir: ndkDir},
	},
	sdk.PlatformLinux: {
		{URL: toolsURL + "android-sdk_r24.4.1-linux.tgz", Dir: "android-sdk-linux"},
		{URL: ndkURL + "android-ndk-r12b-linux-x86_64.zip", Dir: ndkDir},
	},
	sdk.PlatformWin: {
		{URL: toolsURL + "android-sdk_r24.4.1-windows.zip", Dir: "android-sdk-windows"},
		{URL: ndkURL + "android-ndk-r12b-windows-x86_64.zip", Dir: ndkDir},
	},
}

// New returns the Android installer bound to env. The SDK tools are Java
// programs, so java must be on PATH.
func New(env *sdk.Env) *sdk.Recipe {
	r := &sdk.Recipe{
		SDK:      Name,
		Archives: archives,
		Requires: []string{"java"},
		Commands: commands,
	}
	return r.Bind(env)
}

func commands(platform string) []sdk.Command {
	tools, ok := archives[platform]
	if !ok {
		return nil
	}
	program := "android"
	if platform == sdk.PlatformWin {
		program = "android.bat"
	}
	// The updater asks to accept each license; answer every prompt.
	return []sdk.Command{{
		Dir:     tools[0].Dir + "/tools",
		Program: program,
		Args:    []string{"update", "sdk", "-f", "-u", "--all", "--filter", Packages},
		Stdin:   strings.Repeat("y\n", 16),
	}}
}
