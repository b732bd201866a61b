package vaultClear

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/state"
)

func NewCmdVaultClear(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the active vault so the first configured one is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Meta.ClearActive(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Cleared the active vault.")
			return nil
		},
	}

	return cmd
}
