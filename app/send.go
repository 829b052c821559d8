package app

import (
	"github.com/spf13/cobra"

	"github.com/notedraft/notedraft/internal/buttondown"
	"github.com/notedraft/notedraft/internal/note"
	"github.com/notedraft/notedraft/internal/notify"
	"github.com/notedraft/notedraft/internal/settings"
)

func init() { //nolint: gochecknoinits
	sendCmd.Flags().StringVarP(&draftTitle, "title", "t", "", "draft subject (default: file name without extension)")

	rootCmd.AddCommand(sendCmd)
}

var (
	draftTitle string

	// draftsEndpoint is only replaced by tests.
	draftsEndpoint = buttondown.DraftsURL

	sendCmd = &cobra.Command{
		Use:     "send <file>",
		Aliases: []string{"note-to-buttondown-draft"},
		Short:   "Create a new Buttondown draft from this note",
		Args:    cobra.ExactArgs(1),
		RunE:    runSend,
	}
)

func runSend(cmd *cobra.Command, args []string) error {
	n, err := note.NewReader().Read(args[0])
	if err != nil {
		return err
	}

	if draftTitle != "" {
		n.Title = draftTitle
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

	submitter := buttondown.New(
		notify.Console{Out: cmd.OutOrStdout()},
		buttondown.WithEndpoint(draftsEndpoint),
		buttondown.WithOutcomeCounter(drafts),
	)

	if res := submitter.Submit(cmd.Context(), n.Title, n.Body, s.APIKey); res.Outcome != buttondown.Sent {
		return errDraftNotSent
	}

	return nil
}
