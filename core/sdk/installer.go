package sdk

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"fips/core/logger"

	"go.uber.org/zap"
)

// Installer acquires and configures one SDK.
type Installer interface {
	// Name is the SDK name used on the command line.
	Name() string
	// Setup installs the SDK for the workspace that contains fipsDir.
	Setup(ctx context.Context, fipsDir, projDir string) error
}

// Recorder stores completed installations.
type Recorder interface {
	Save(ctx context.Context, inst *Installation) error
}

// Env is the tooling shared by all installers.
type Env struct {
	Console  *logger.Console
	Logger   *zap.Logger
	Fetcher  *Fetcher
	Runner   Runner
	Records  Recorder // nil disables installation records
	Platform string
	// Root replaces the default <workspace>/fips-sdks/<platform> directory.
	Root string
}

// SDKDir returns where SDKs are installed for the workspace of fipsDir.
func (e *Env) SDKDir(fipsDir string) string {
	if e.Root != "" {
		return e.Root
	}
	return SDKDir(fipsDir, e.Platform)
}

// Archive is one download of an SDK.
type Archive struct {
	// URL is the upstream location of the archive.
	URL string
	// Dir is the top-level directory the archive unpacks to.
	Dir string
}

// Command is a post-install step run inside the SDK directory.
type Command struct {
	// Dir is relative to the SDK directory.
	Dir string
	// Program is relative to Dir.
	Program string
	Args    []string
	Stdin   string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// Recipe is an Installer driven by data: download the platform's archives,
// unpack them and run the SDK's own commands.
type Recipe struct {
	SDK      string
	Archives map[string][]Archive
	// Requires lists tools that must be on PATH before anything is downloaded.
	Requires []string
	// Commands returns the post-install steps for a platform.
	Commands func(platform string) []Command

	env *Env
}

// Bind attaches the environment the recipe runs in and returns r.
func (r *Recipe) Bind(env *Env) *Recipe {
	r.env = env
	return r
}

// Name implements Installer.
func (r *Recipe) Name() string {
	return r.SDK
}

// Setup implements Installer.
func (r *Recipe) Setup(ctx context.Context, fipsDir, projDir string) error {
	env := r.env
	if env == nil {
		return fmt.Errorf("%s: installer has no environment", r.SDK)
	}
	l := env.Logger.With(zap.String("sdk", r.SDK), zap.String("platform", env.Platform))

	env.Console.Colored(logger.Yellow, fmt.Sprintf("=== setup %s SDK:", r.SDK))

	archives, ok := r.Archives[env.Platform]
	if !ok || len(archives) == 0 {
		return fmt.Errorf("%s SDK is not available for platform %q", r.SDK, env.Platform)
	}

	for _, tool := range r.Requires {
		if _, err := env.Runner.LookPath(tool); err != nil {
			return fmt.Errorf("%s SDK requires %q on PATH: %w", r.SDK, tool, err)
		}
	}

	sdkDir := env.SDKDir(fipsDir)
	if err := os.MkdirAll(sdkDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", sdkDir, err)
	}
	l.Debug("Installing SDK", zap.String("dir", sdkDir), zap.String("project", projDir))

	for _, a := range archives {
		file := filepath.Join(sdkDir, path.Base(a.URL))
		env.Console.Info("downloading " + a.URL + "...")
		if err := env.Fetcher.Fetch(ctx, a.URL, file); err != nil {
			return err
		}
		env.Console.Info("unpacking " + filepath.Base(file) + "...")
		if err := Extract(file, sdkDir); err != nil {
			return err
		}
	}

	if r.Commands != nil {
		for _, c := range r.Commands(env.Platform) {
			dir := filepath.Join(sdkDir, c.Dir)
			env.Console.Info("> " + c.String())
			if err := env.Runner.Run(ctx, dir, c.Stdin, filepath.Join(dir, c.Program), c.Args...); err != nil {
				return fmt.Errorf("%s SDK post-install failed: %w", r.SDK, err)
			}
		}
	}

	if env.Records != nil {
		inst := &Installation{
			SDK:         r.SDK,
			Platform:    env.Platform,
			Archive:     archives[0].URL,
			Path:        filepath.Join(sdkDir, archives[0].Dir),
			InstalledAt: time.Now().UTC(),
		}
		if err := env.Records.Save(ctx, inst); err != nil {
			l.Warn("Failed to record installation", zap.Error(err))
			env.Console.Warn("installation record not saved: " + err.Error())
		}
	}

	env.Console.Colored(logger.Green, "done.")
	return nil
}
