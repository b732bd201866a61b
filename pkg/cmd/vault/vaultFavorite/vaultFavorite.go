package vaultFavorite

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdVaultFavorite(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite [vault]",
		Aliases: []string{"fav", "f"},
		Short:   "Toggle a vault's favourite flag.",
		Long: heredoc.Doc(`
			Favourites are listed first and the first five get hotkeys 1 to 5.
			Running the command again removes the flag.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cmdpkg.ResolveVault(cmd, s, arg.HandleRef(args), "Toggle favourite")
			if err != nil {
				if errors.Is(err, fzf.ErrNoSelection) {
					return nil
				}
				return err
			}

			favorite, err := s.Meta.ToggleFavorite(cmd.Context(), e.Key)
			if err != nil {
				return err
			}
			cmdpkg.RefreshHotkeys(cmd, s)

			if favorite {
				cmd.Printf("Added %s to favourites.\n", e.DisplayName())
			} else {
				cmd.Printf("Removed %s from favourites.\n", e.DisplayName())
			}
			return nil
		},
	}

	return cmd
}
