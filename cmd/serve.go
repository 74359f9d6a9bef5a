package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"fips/core/devserver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the current directory over HTTP",
	Long: `Starts a local static file server (default http://localhost:8000) for
testing web builds. Ctrl-C stops the server and releases the port.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		cfg := rt.cfg.Server
		flags := cmd.Flags()
		if flags.Changed("host") {
			cfg.Host, _ = flags.GetString("host")
		}
		if flags.Changed("port") {
			cfg.Port, _ = flags.GetInt("port")
		}
		if flags.Changed("root") {
			cfg.Root, _ = flags.GetString("root")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt.logger.Debug("Starting dev server", zap.String("addr", cfg.Address()), zap.String("root", cfg.Root))
		return devserver.New(cfg, rt.console, rt.logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "localhost", "interface to bind (overrides SERVER_HOST)")
	serveCmd.Flags().Int("port", 8000, "port to bind (overrides SERVER_PORT)")
	serveCmd.Flags().String("root", ".", "directory to serve (overrides SERVER_ROOT)")
	RootCmd.AddCommand(serveCmd)
}
