package vaultSwitch

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdVaultSwitch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch [vault]",
		Aliases: []string{"use", "s"},
		Short:   "Make a vault the active one.",
		Long: heredoc.Doc(`
			Sets the active vault used whenever --vault is not given. Without a
			name, the vault finder picks one.
		`),
		Example: heredoc.Doc(`
			vaultnav vault switch work
			vaultnav vault switch ~/notes/personal
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cmdpkg.ResolveVault(cmd, s, arg.HandleRef(args), "Switch to vault")
			if err != nil {
				if errors.Is(err, fzf.ErrNoSelection) {
					return nil
				}
				return err
			}

			if err := s.Meta.SetActive(cmd.Context(), e.Key); err != nil {
				return err
			}
			cmd.Printf("Switched to %s.\n", e.DisplayName())
			return nil
		},
	}

	return cmd
}
