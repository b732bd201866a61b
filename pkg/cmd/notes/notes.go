package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/notes"
	"github.com/Paintersrp/vaultnav/pkg/arg"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes [query]",
		Aliases: []string{"n"},
		Short:   "Search notes interactively with a live preview.",
		Long: heredoc.Doc(`
			Opens the note browser for the selected vault. Typing filters the list,
			the highlighted note is previewed on the right.

			Keys:
			  enter   open in the configured editor
			  ctrl+o  open in Obsidian
			  ctrl+b  toggle bookmark
			  ctrl+y  copy note content
			  ctrl+l  copy a markdown link to the note
			  ctrl+t  cycle the tag filter
			  ctrl+r  reload the vault
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleQuery(args))
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string) error {
	v, err := s.SelectVault(cmd.Context())
	if err != nil {
		return err
	}
	return notes.Run(s, v, query)
}
