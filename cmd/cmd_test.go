package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, ctx context.Context, args ...string) (out, errOut *syncBuffer, err error) {
	t.Helper()
	out, errOut = &syncBuffer{}, &syncBuffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(errOut)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		fipsDirFlag, projDirFlag = "", ""
	})
	err = RootCmd.ExecuteContext(ctx)
	return out, errOut, err
}

// workspace creates <tmp>/fips and <tmp>/proj and isolates config from the
// developer's environment.
func workspace(t *testing.T) (fipsDir, projDir string) {
	t.Helper()
	root := t.TempDir()
	fipsDir = filepath.Join(root, "fips")
	projDir = filepath.Join(root, "proj")
	require.NoError(t, os.MkdirAll(fipsDir, 0o755))
	require.NoError(t, os.MkdirAll(projDir, 0o755))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_COLOR", "never")
	t.Setenv("SDK_DIR", "")
	return fipsDir, projDir
}
