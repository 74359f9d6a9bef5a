package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"fips/core/database"
	"fips/core/logger"
	"fips/core/sdk"
	"fips/core/storage"
	"fips/feature/android"
	"fips/feature/emscripten"
	"fips/feature/nacl"
	"fips/feature/setup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupCmd represents the setup verb
var setupCmd = &cobra.Command{
	Use:   "setup [emscripten|nacl|android]",
	Short: "Setup cross-platform SDK",
	RunE:  runSetup,
}

func init() {
	setupCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		console := logger.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger.ColorAuto)
		setup.NewDispatcher(console, installers(nil)...).Help()
	})
	RootCmd.AddCommand(setupCmd)
}

// installers lists every SDK the setup verb knows, bound to env.
func installers(env *sdk.Env) []sdk.Installer {
	return []sdk.Installer{
		emscripten.New(env),
		nacl.New(env),
		android.New(env),
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
	rt, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	fipsDir, projDir, err := resolveDirs()
	if err != nil {
		return err
	}

	// Unknown names are reported before any tooling is configured. The
	// unbound dispatcher never reaches an installer for them.
	if unbound := setup.NewDispatcher(rt.console, installers(nil)...); len(args) == 0 || !slices.Contains(unbound.Names(), args[0]) {
		return unbound.Run(cmd.Context(), fipsDir, projDir, args)
	}

	env, err := newSDKEnv(rt, cmd)
	if err != nil {
		return err
	}

	rt.logger.Debug("Dispatching setup",
		zap.Strings("args", args),
		zap.String("fips_dir", fipsDir),
		zap.String("proj_dir", projDir),
	)
	return setup.NewDispatcher(rt.console, installers(env)...).Run(cmd.Context(), fipsDir, projDir, args)
}

// newSDKEnv wires the installer tooling from configuration. Nothing here
// touches the network or the disk; the records database opens on first use.
func newSDKEnv(rt *session, cmd *cobra.Command) (*sdk.Env, error) {
	cfg := rt.cfg

	var cache *sdk.Cache
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive cache client: %w", err)
		}
		cache = sdk.NewCache(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
	}

	env := &sdk.Env{
		Console:  rt.console,
		Logger:   rt.logger,
		Fetcher:  sdk.NewFetcher(sdk.NewHTTPClient(cfg.SDK), cache, rt.logger),
		Runner:   sdk.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		Platform: sdk.HostPlatform(),
		Root:     cfg.SDK.Dir,
	}
	env.Records = &lazyRecords{cfg: cfg.Database, env: env}
	return env, nil
}

// lazyRecords opens the records database the first time an installation is
// saved.
type lazyRecords struct {
	cfg   database.Config
	env   *sdk.Env
	store *sdk.RecordStore
}

func (l *lazyRecords) Save(ctx context.Context, inst *sdk.Installation) error {
	if l.store == nil {
		fipsDir, _, err := resolveDirs()
		if err != nil {
			return err
		}
		store, err := openRecords(ctx, l.cfg, l.env.SDKDir(fipsDir), true)
		if err != nil {
			return err
		}
		l.store = store
	}
	return l.store.Save(ctx, inst)
}

// recordsFile is the default sqlite file, kept next to the SDKs it describes.
const recordsFile = "installations.db"

// openRecords connects and migrates the records database. With create unset,
// a missing sqlite file yields os.ErrNotExist instead of an empty database.
func openRecords(ctx context.Context, cfg database.Config, sdkDir string, create bool) (*sdk.RecordStore, error) {
	if (cfg.Driver == database.DriverSQLite || cfg.Driver == "") && cfg.Name == "" {
		cfg.Name = filepath.Join(sdkDir, recordsFile)
		if create {
			if err := os.MkdirAll(sdkDir, 0o755); err != nil {
				return nil, err
			}
		} else if _, err := os.Stat(cfg.Name); err != nil {
			return nil, err
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	store := sdk.NewRecordStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate installation records: %w", err)
	}
	return store, nil
}
