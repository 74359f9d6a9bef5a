package setup_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"fips/core/logger"
	"fips/feature/setup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInstaller struct {
	mock.Mock
	name string
}

func (m *mockInstaller) Name() string { return m.name }

func (m *mockInstaller) Setup(ctx context.Context, fipsDir, projDir string) error {
	args := m.Called(ctx, fipsDir, projDir)
	return args.Error(0)
}

type fixture struct {
	dispatcher *setup.Dispatcher
	installers map[string]*mockInstaller
	out        *bytes.Buffer
	errOut     *bytes.Buffer
}

func newFixture() *fixture {
	f := &fixture{
		installers: map[string]*mockInstaller{},
		out:        &bytes.Buffer{},
		errOut:     &bytes.Buffer{},
	}
	var list []*mockInstaller
	for _, name := range []string{"emscripten", "nacl", "android"} {
		m := &mockInstaller{name: name}
		f.installers[name] = m
		list = append(list, m)
	}
	console := logger.NewConsole(f.out, f.errOut, logger.ColorNever)
	f.dispatcher = setup.NewDispatcher(console, list[0], list[1], list[2])
	return f
}

func (f *fixture) assertNoSetup(t *testing.T) {
	t.Helper()
	for _, m := range f.installers {
		m.AssertNotCalled(t, "Setup", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestDispatcher_Run_Valid(t *testing.T) {
	for _, name := range []string{"emscripten", "nacl", "android"} {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.installers[name].On("Setup", mock.Anything, "/ws/fips", "/ws/proj").Return(nil).Once()

			err := f.dispatcher.Run(t.Context(), "/ws/fips", "/ws/proj", []string{name, "extra"})

			require.NoError(t, err)
			f.installers[name].AssertNumberOfCalls(t, "Setup", 1)
			for other, m := range f.installers {
				if other != name {
					m.AssertNotCalled(t, "Setup", mock.Anything, mock.Anything, mock.Anything)
				}
			}
			assert.Empty(t, f.errOut.String())
		})
	}
}

func TestDispatcher_Run_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NoArgs", nil},
		{"EmptyArgs", []string{}},
		{"Unknown", []string{"ios"}},
		{"WrongCase", []string{"Emscripten"}},
		{"TrailingSpace", []string{"emscripten "}},
		{"Prefix", []string{"and"}},
		{"EmptyName", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			err := f.dispatcher.Run(t.Context(), "/ws/fips", "/ws/proj", tt.args)

			assert.NoError(t, err)
			f.assertNoSetup(t)
			msg := f.errOut.String()
			assert.Equal(t, 1, strings.Count(msg, "[error]"))
			assert.Contains(t, msg, "invalid SDK name (must be 'emscripten', 'nacl' or 'android')")
			assert.Empty(t, f.out.String())
		})
	}
}

func TestDispatcher_Run_PropagatesInstallerError(t *testing.T) {
	f := newFixture()
	boom := errors.New("download failed")
	f.installers["nacl"].On("Setup", mock.Anything, "/ws/fips", "/ws/proj").Return(boom)

	err := f.dispatcher.Run(t.Context(), "/ws/fips", "/ws/proj", []string{"nacl"})

	assert.Same(t, boom, err)
	assert.Empty(t, f.errOut.String())
}

func TestDispatcher_Help(t *testing.T) {
	f := newFixture()

	f.dispatcher.Help()
	first := f.out.String()
	f.out.Reset()
	f.dispatcher.Help()

	assert.Equal(t, first, f.out.String())
	for _, line := range []string{"setup emscripten", "setup nacl", "setup android", "setup cross-platform SDK"} {
		assert.Contains(t, first, line)
	}
	f.assertNoSetup(t)
}

func TestDispatcher_HelpColored(t *testing.T) {
	var out bytes.Buffer
	d := setup.NewDispatcher(logger.NewConsole(&out, &out, logger.ColorAlways), &mockInstaller{name: "nacl"})

	d.Help()

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "\x1b[0m\n    setup cross-platform SDK")
}

func TestDispatcher_Names(t *testing.T) {
	f := newFixture()
	assert.Equal(t, []string{"emscripten", "nacl", "android"}, f.dispatcher.Names())
}
