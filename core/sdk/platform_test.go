package sdk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", PlatformOSX},
		{"linux", PlatformLinux},
		{"windows", PlatformWin},
		{"plan9", "plan9"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, platformFor(tt.goos))
		})
	}
}

func TestSDKDir(t *testing.T) {
	fipsDir := filepath.Join("work", "fips")

	assert.Equal(t, "work", WorkspaceDir(fipsDir))
	assert.Equal(t, "work", WorkspaceDir(fipsDir+string(filepath.Separator)))
	assert.Equal(t, filepath.Join("work", "fips-sdks", "linux"), SDKDir(fipsDir, PlatformLinux))

	env := &Env{Platform: PlatformOSX}
	assert.Equal(t, filepath.Join("work", "fips-sdks", "osx"), env.SDKDir(fipsDir))

	env.Root = "/opt/sdks"
	assert.Equal(t, "/opt/sdks", env.SDKDir(fipsDir))
}
