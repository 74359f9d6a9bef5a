// Package nacl installs the Native Client SDK: unpack nacl_sdk.zip and let
// naclsdk fetch the pepper bundle.
package nacl
