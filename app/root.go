// Package app implements the notedraft commands.
package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notedraft/notedraft/internal/config"
	"github.com/notedraft/notedraft/internal/logger"
)

var (
	configPath string        // path to the configuration file
	cfg        config.Config // effective configuration, set before any command runs

	// errDraftNotSent ends a send that did not reach Sent. The user was already
	// notified, so it is never printed.
	errDraftNotSent = errors.New("draft not sent")

	rootCmd = &cobra.Command{
		Use:   "notedraft",
		Short: "notedraft sends notes to Buttondown as drafts",
		Long: `notedraft sends a note to the Buttondown newsletter service as a new draft,
ready to be reviewed and sent from Buttondown itself.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setup()
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"config file (default "+config.Dir()+"/"+config.FileName+" if present)",
	)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()

	exportMetrics(cfg.Metrics, prometheus.DefaultGatherer)

	if err != nil && !errors.Is(err, errDraftNotSent) {
		rootCmd.PrintErrln("Error:", err)
	}

	return err
}

// setup reads the configuration and initializes logging.
func setup() error {
	var err error

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if cfg, err = config.ReadConfig(path); err != nil {
		return err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return err
	}

	log.Debug().Str("config", path).Str("db_engine", cfg.DB.Engine).Msg("configuration loaded")

	return nil
}
