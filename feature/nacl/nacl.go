package nacl

import "fips/core/sdk"

// Name is the SDK name accepted by "fips setup".
const Name = "nacl"

// Bundle is the pepper bundle fetched by naclsdk.
const Bundle = "pepper_canary"

const archiveURL = "https://storage.googleapis.com/nativeclient-mirror/nacl/nacl_sdk/nacl_sdk.zip"

// New returns the NaCl installer bound to env.
func New(env *sdk.Env) *sdk.Recipe {
	a := []sdk.Archive{{URL: archiveURL, Dir: "nacl_sdk"}}
	r := &sdk.Recipe{
		SDK: Name,
		Archives: map[string][]sdk.Archive{
			sdk.PlatformOSX:   a,
			sdk.PlatformLinux: a,
			sdk.PlatformWin:   a,
		},
		Commands: commands,
	}
	return r.Bind(env)
}

func commands(platform string) []sdk.Command {
	naclsdk := "naclsdk"
	if platform == sdk.PlatformWin {
		naclsdk = "naclsdk.bat"
	}
	return []sdk.Command{
		{Dir: "nacl_sdk", Program: naclsdk, Args: []string{"update", Bundle, "--force"}},
	}
}
