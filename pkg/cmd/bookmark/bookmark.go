package bookmark

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdBookmark(s *state.State) *cobra.Command {
	var (
		remove bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:     "bookmark [note]",
		Aliases: []string{"b"},
		Short:   "Bookmark a note in Obsidian.",
		Long: heredoc.Doc(`
			Adds the note to the vault's Obsidian bookmarks, or removes it with
			--remove. --list prints the bookmarked notes instead.
		`),
		Example: heredoc.Doc(`
			vaultnav bookmark "Project plan"
			vaultnav bookmark projects/plan.md --remove
			vaultnav bookmark --list
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runList(cmd, s)
			}
			return run(cmd, s, arg.HandleRef(args), remove)
		},
	}

	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "Remove the bookmark")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List bookmarked notes")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref string, remove bool) error {
	v, n, err := cmdpkg.ResolveNote(cmd, s, ref)
	if err != nil {
		return err
	}

	if remove {
		if err := note.RemoveBookmark(v.Vault, s.Config.ConfigFileName, n.Path); err != nil {
			return err
		}
		cmd.Printf("Removed bookmark for %s.\n", n.Title)
		return nil
	}

	if err := note.AddBookmark(v.Vault, s.Config.ConfigFileName, n.Path); err != nil {
		return err
	}
	cmd.Printf("Bookmarked %s.\n", n.Title)
	return nil
}

func runList(cmd *cobra.Command, s *state.State) error {
	v, notes, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	bookmarked := search.Bookmarked(notes)
	if len(bookmarked) == 0 {
		cmd.Println("No bookmarked notes.")
		return nil
	}
	return cmdpkg.NoteTable(v.Vault, bookmarked, time.Now()).Fprint(cmd.OutOrStdout())
}
