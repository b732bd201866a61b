package deleteNote

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
	"github.com/Paintersrp/vaultnav/pkg/flags"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [note]",
		Aliases: []string{"rm"},
		Short:   "Delete a note and its bookmark.",
		Long: heredoc.Doc(`
			Removes the note file from disk and drops it from Obsidian's bookmarks.
			The deletion is confirmed first unless --yes is given. Without a
			terminal, --yes is required.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleRef(args), flags.HandleYes(cmd))
		},
	}

	flags.AddYes(cmd)
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref string, yes bool) error {
	v, n, err := cmdpkg.ResolveNote(cmd, s, ref)
	if err != nil {
		return err
	}

	if !yes {
		if !cmdpkg.IsInteractive() {
			return fmt.Errorf("refusing to delete %s without --yes", n.Title)
		}
		ok, err := confirmation.New(
			fmt.Sprintf("Delete %s?", cmdpkg.RelativePath(v.Vault, n.Path)),
			confirmation.No,
		).RunPrompt()
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Nothing deleted.")
			return nil
		}
	}

	if err := note.Delete(v.Vault, s.Config.ConfigFileName, n); err != nil {
		return err
	}
	s.Loader.Forget(n.Path)
	s.Logger.Info("deleted note", "vault", v.Name, "path", n.Path)
	cmd.Printf("Deleted %s.\n", n.Title)
	return nil
}
