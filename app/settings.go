package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notedraft/notedraft/internal/notify"
	"github.com/notedraft/notedraft/internal/settings"
)

func init() { //nolint: gochecknoinits
	settingsCmd.AddCommand(setKeyCmd, showCmd, resetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var (
	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Manage the Buttondown settings",
		Args:  cobra.NoArgs,
	}

	setKeyCmd = &cobra.Command{
		Use:   "set-key [key]",
		Short: "Store the Buttondown API key",
		Long: `Store the Buttondown API key used to create drafts.
Find it at ` + settings.APIKeyURL + `

Without an argument the key is read from the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSetKey,
	}

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the stored settings with the API key masked",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored settings",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
)

func runSetKey(cmd *cobra.Command, args []string) error {
	var (
		raw string
		err error
	)

	if len(args) == 1 {
		raw = args[0]
	} else if raw, err = promptAPIKey(cmd); err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	s, err := settings.Load(cmd.Context(), store)
	if err != nil {
		return err
	}

	if err = settings.SetAPIKey(cmd.Context(), store, &s, raw); err != nil {
		return err
	}

	n := notify.Console{Out: cmd.OutOrStdout()}
	if s.Configured() {
		n.Notify("API key saved")
	} else {
		n.Notify("API key cleared")
	}

	return nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	s, err := settings.Load(cmd.Context(), store)
	if err != nil {
		return err
	}

	if !s.Configured() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key: not configured (find it at %s)\n", settings.APIKeyURL)
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key: %s\n", s.Masked())

	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err = store.Reset(cmd.Context()); err != nil {
		return err
	}

	notify.Console{Out: cmd.OutOrStdout()}.Notify("Settings deleted")

	return nil
}

// promptAPIKey asks for the key on stderr. Input is hidden when stdin is a terminal.
func promptAPIKey(cmd *cobra.Command) (string, error) {
	cmd.PrintErrf("Find your API key at %s\n%s: ", settings.APIKeyURL, settings.APIKeyPlaceholder)

	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec
		secret, err := term.ReadPassword(int(f.Fd())) //nolint:gosec
		cmd.PrintErrln()

		if err != nil {
			return "", errors.Wrap(err, "failed to read api key")
		}

		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read api key")
	}

	return line, nil
}
