package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedraft/notedraft/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print JSON instead of TOML")

	configCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Args:  cobra.NoArgs,
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
)
