// Package emscripten installs the Emscripten SDK through emsdk-portable:
// download, unpack, then "emsdk update", "emsdk install" and
// "emsdk activate --embedded" so the toolchain config stays inside the SDK
// directory instead of the user's home.
package emscripten
