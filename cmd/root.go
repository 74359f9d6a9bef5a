package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"fips/core/config"
	"fips/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fipsDirFlag string
	projDirFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fips",
	Short: "fips build tool helpers",
	Long: `Helpers of the fips build tool: a local static file server for testing
web builds, and installers for the cross-platform SDKs fips targets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding and debug level give readable ISO8601 output for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&fipsDirFlag, "fips-dir", "", "fips installation directory (default: $FIPS_DIR or the executable's directory)")
	RootCmd.PersistentFlags().StringVar(&projDirFlag, "proj-dir", "", "project directory (default: current directory)")
}

// session is what every command needs before doing its work.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	console *logger.Console
}

func loadSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{
		cfg:     cfg,
		logger:  l,
		console: logger.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Log.Color),
	}, nil
}

// resolveDirs returns the fips and project directories as absolute paths.
func resolveDirs() (fipsDir, projDir string, err error) {
	fipsDir = fipsDirFlag
	if fipsDir == "" {
		fipsDir = os.Getenv("FIPS_DIR")
	}
	if fipsDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", "", fmt.Errorf("failed to locate fips directory: %w", err)
		}
		fipsDir = filepath.Dir(exe)
	}

	projDir = projDirFlag
	if projDir == "" {
		if projDir, err = os.Getwd(); err != nil {
			return "", "", err
		}
	}

	if fipsDir, err = filepath.Abs(fipsDir); err != nil {
		return "", "", err
	}
	if projDir, err = filepath.Abs(projDir); err != nil {
		return "", "", err
	}
	return fipsDir, projDir, nil
}
