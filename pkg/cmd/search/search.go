package search

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/notes"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
	"github.com/Paintersrp/vaultnav/pkg/flags"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"s"},
		Short:   "Search notes by title, path or content.",
		Long: heredoc.Doc(`
			Matches the query against note titles and paths, ignoring case. With
			--content, note bodies are searched too whenever fewer than 20 notes
			matched by title. With --fuzzy, every space separated term must match
			in order with small gaps.

			On a terminal the results open in the note browser unless --print or
			--tag is given. Otherwise a table of matches is printed.
		`),
		Example: heredoc.Doc(`
			vaultnav search kubernetes
			vaultnav search -f proj plan --print
			vaultnav search -c --tag work retro
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleQuery(args), printOnly)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print matches instead of opening the browser")
	flags.AddSearch(cmd)
	flags.AddTag(cmd)
	flags.AddLimit(cmd, 0)
	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string, printOnly bool) error {
	tag, err := flags.HandleTag(cmd)
	if err != nil {
		return err
	}
	limit, err := flags.HandleLimit(cmd)
	if err != nil {
		return err
	}

	if !printOnly && tag == "" && cmdpkg.IsInteractive() {
		v, err := s.SelectVault(cmd.Context())
		if err != nil {
			return err
		}
		return notes.Run(s, v, query)
	}

	v, all, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	results, err := search.Filter(search.ByTag(all, tag), query, s.SearchOptions())
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = s.Config.Search.MaxRendered
	}
	results = search.Truncate(results, limit)

	if len(results) == 0 {
		cmd.Println("No notes found.")
		return nil
	}
	return cmdpkg.NoteTable(v.Vault, results, time.Now()).Fprint(cmd.OutOrStdout())
}
