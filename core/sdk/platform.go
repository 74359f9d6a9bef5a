package sdk

import (
	"path/filepath"
	"runtime"
)

// Host platform names used in SDK directory layout and archive tables.
const (
	PlatformOSX   = "osx"
	PlatformLinux = "linux"
	PlatformWin   = "win"
)

// HostPlatform maps the running OS to a platform name. Unknown systems are
// reported by their GOOS value and have no archives.
func HostPlatform() string {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) string {
	switch goos {
	case "darwin":
		return PlatformOSX
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWin
	default:
		return goos
	}
}

// WorkspaceDir returns the directory that contains the fips checkout and the
// projects next to it.
func WorkspaceDir(fipsDir string) string {
	return filepath.Dir(filepath.Clean(fipsDir))
}

// SDKDir returns the directory SDKs for platform are installed into.
func SDKDir(fipsDir, platform string) string {
	return filepath.Join(WorkspaceDir(fipsDir), "fips-sdks", platform)
}
