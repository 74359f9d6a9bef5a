package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"text/tabwriter"

	"fips/core/sdk"

	"github.com/spf13/cobra"
)

// sdksCmd lists installed SDKs
var sdksCmd = &cobra.Command{
	Use:   "sdks",
	Short: "List SDKs installed with 'fips setup'",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		fipsDir, _, err := resolveDirs()
		if err != nil {
			return err
		}

		env := &sdk.Env{Platform: sdk.HostPlatform(), Root: rt.cfg.SDK.Dir}
		store, err := openRecords(cmd.Context(), rt.cfg.Database, env.SDKDir(fipsDir), false)
		if errors.Is(err, fs.ErrNotExist) {
			rt.console.Info("no SDKs installed (try 'fips setup --help')")
			return nil
		}
		if err != nil {
			return err
		}

		list, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list installations: %w", err)
		}
		if len(list) == 0 {
			rt.console.Info("no SDKs installed (try 'fips setup --help')")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SDK\tPLATFORM\tINSTALLED\tPATH")
		for _, inst := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", inst.SDK, inst.Platform, inst.InstalledAt.Local().Format("2006-01-02 15:04"), inst.Path)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(sdksCmd)
}
