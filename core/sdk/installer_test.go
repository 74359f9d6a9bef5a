package sdk

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fips/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type call struct {
	dir, stdin, name string
	args             []string
}

type fakeRunner struct {
	calls   []call
	missing map[string]bool
	err     error
}

func (f *fakeRunner) Run(_ context.Context, dir, stdin, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, stdin: stdin, name: name, args: args})
	return f.err
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.missing[file] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}

type memRecorder struct {
	saved []*Installation
	err   error
}

func (m *memRecorder) Save(_ context.Context, inst *Installation) error {
	m.saved = append(m.saved, inst)
	return m.err
}

func newTestEnv(t *testing.T, runner Runner, client *http.Client) (*Env, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Env{
		Console:  logger.NewConsole(&out, &out, logger.ColorNever),
		Logger:   zap.NewNop(),
		Fetcher:  NewFetcher(client, nil, zap.NewNop()),
		Runner:   runner,
		Platform: PlatformLinux,
		Root:     t.TempDir(),
	}, &out
}

func TestRecipe_Setup(t *testing.T) {
	archive := tarGz(t, entry{name: "toolkit/bin/tool", body: "#!/bin/sh\n", mode: 0o755})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	newRecipe := func() *Recipe {
		return &Recipe{
			SDK: "toolkit",
			Archives: map[string][]Archive{
				PlatformLinux: {{URL: srv.URL + "/toolkit.tar.gz", Dir: "toolkit"}},
			},
			Commands: func(platform string) []Command {
				return []Command{{Dir: "toolkit/bin", Program: "tool", Args: []string{"install", platform}, Stdin: "y\n"}}
			},
		}
	}

	t.Run("InstallsAndRunsCommands", func(t *testing.T) {
		runner := &fakeRunner{}
		records := &memRecorder{}
		env, out := newTestEnv(t, runner, srv.Client())
		env.Records = records
		r := newRecipe().Bind(env)

		require.NoError(t, r.Setup(t.Context(), "/work/fips", "/work/proj"))

		require.Len(t, records.saved, 1)
		assert.Equal(t, "toolkit", records.saved[0].SDK)
		assert.Equal(t, PlatformLinux, records.saved[0].Platform)
		assert.Equal(t, filepath.Join(env.Root, "toolkit"), records.saved[0].Path)

		_, err := os.Stat(filepath.Join(env.Root, "toolkit", "bin", "tool"))
		assert.NoError(t, err)

		require.Len(t, runner.calls, 1)
		c := runner.calls[0]
		assert.Equal(t, filepath.Join(env.Root, "toolkit", "bin"), c.dir)
		assert.Equal(t, filepath.Join(env.Root, "toolkit", "bin", "tool"), c.name)
		assert.Equal(t, []string{"install", PlatformLinux}, c.args)
		assert.Equal(t, "y\n", c.stdin)

		assert.Contains(t, out.String(), "=== setup toolkit SDK:")
		assert.Contains(t, out.String(), "> tool install linux")
		assert.Contains(t, out.String(), "done.")
	})

	t.Run("RecordFailureIsNotFatal", func(t *testing.T) {
		env, out := newTestEnv(t, &fakeRunner{}, srv.Client())
		env.Records = &memRecorder{err: errors.New("database is locked")}
		r := newRecipe().Bind(env)

		require.NoError(t, r.Setup(t.Context(), "/work/fips", "/work/proj"))
		assert.Contains(t, out.String(), "[warning] installation record not saved: database is locked")
		assert.Contains(t, out.String(), "done.")
	})

	t.Run("UnsupportedPlatform", func(t *testing.T) {
		runner := &fakeRunner{}
		env, _ := newTestEnv(t, runner, srv.Client())
		env.Platform = PlatformWin
		r := newRecipe().Bind(env)

		err := r.Setup(t.Context(), "/work/fips", "/work/proj")
		assert.ErrorContains(t, err, `not available for platform "win"`)
		assert.Empty(t, runner.calls)
	})

	t.Run("MissingPrerequisite", func(t *testing.T) {
		runner := &fakeRunner{missing: map[string]bool{"java": true}}
		env, _ := newTestEnv(t, runner, srv.Client())
		r := newRecipe()
		r.Requires = []string{"java"}
		r.Bind(env)

		err := r.Setup(t.Context(), "/work/fips", "/work/proj")
		assert.ErrorContains(t, err, `requires "java"`)
		assert.Empty(t, runner.calls)
		entries, _ := os.ReadDir(env.Root)
		assert.Empty(t, entries)
	})

	t.Run("CommandFailure", func(t *testing.T) {
		boom := errors.New("exit status 1")
		runner := &fakeRunner{err: boom}
		env, out := newTestEnv(t, runner, srv.Client())
		r := newRecipe().Bind(env)

		err := r.Setup(t.Context(), "/work/fips", "/work/proj")
		assert.ErrorIs(t, err, boom)
		assert.NotContains(t, out.String(), "done.")
	})

	t.Run("Unbound", func(t *testing.T) {
		err := newRecipe().Setup(t.Context(), "/work/fips", "/work/proj")
		assert.ErrorContains(t, err, "no environment")
	})
}
