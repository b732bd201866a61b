package find

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var printPath bool

	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f"},
		Short:   "Pick a note with the fuzzy finder and open it.",
		Long: heredoc.Doc(`
			Lists every note of the vault in a fuzzy finder with a rendered preview.
			The selected note is opened in the configured editor, or its path is
			printed with --print.
		`),
		Example: heredoc.Doc(`
			vaultnav find
			vaultnav f meeting
			vim "$(vaultnav find --print)"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleQuery(args), printPath)
		},
	}

	cmd.Flags().BoolVarP(&printPath, "print", "p", false, "Print the selected path instead of opening it")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string, printPath bool) error {
	v, notes, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	finder := fzf.NewFuzzyFinder(notes, s.Loader, s.Filter(v.Vault), fmt.Sprintf("Select a note in %s", v.DisplayName()))
	n, err := finder.Find(query)
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	if printPath {
		fmt.Fprintln(cmd.OutOrStdout(), n.Path)
		return nil
	}
	return note.Open(v.Vault, n.Path, s.Config.Editor)
}
