package emscripten

import "fips/core/sdk"

// Name is the SDK name accepted by "fips setup".
const Name = "emscripten"

// Version is the emsdk toolchain installed and activated.
const Version = "sdk-incoming-64bit"

const releases = "https://s3.amazonaws.com/mozilla-games/emscripten/releases/"

var archives = map[string][]sdk.Archive{
	sdk.PlatformOSX:   {{URL: releases + "emsdk-portable.tar.gz", Dir: "emsdk_portable"}},
	sdk.PlatformLinux: {{URL: releases + "emsdk-portable.tar.gz", Dir: "emsdk_portable"}},
	sdk.PlatformWin:   {{URL: releases + "emsdk-portable-64bit.zip", Dir: "emsdk_portable"}},
}

// New returns the emscripten installer bound to env.
func New(env *sdk.Env) *sdk.Recipe {
	r := &sdk.Recipe{
		SDK:      Name,
		Archives: archives,
		Commands: commands,
	}
	return r.Bind(env)
}

func commands(platform string) []sdk.Command {
	emsdk := "emsdk"
	if platform == sdk.PlatformWin {
		emsdk = "emsdk.bat"
	}
	return []sdk.Command{
		{Dir: "emsdk_portable", Program: emsdk, Args: []string{"update"}},
		{Dir: "emsdk_portable", Program: emsdk, Args: []string{"install", Version}},
		{Dir: "emsdk_portable", Program: emsdk, Args: []string{"activate", "--embedded", Version}},
	}
}
