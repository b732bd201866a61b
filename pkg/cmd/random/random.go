package random

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdRandom(s *state.State) *cobra.Command {
	var openNote bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random note from the vault.",
		Long: heredoc.Doc(`
			Prints the title and path of a random note, or opens it in the
			configured editor with --open.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, openNote)
		},
	}

	cmd.Flags().BoolVarP(&openNote, "open", "o", false, "Open the note instead of printing it")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, openNote bool) error {
	v, notes, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	n, ok := note.Random(notes, nil)
	if !ok {
		return fmt.Errorf("%s has no notes", v.Name)
	}

	if openNote {
		return note.Open(v.Vault, n.Path, s.Config.Editor)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", n.Title, n.Path)
	return nil
}
