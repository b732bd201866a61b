package vaultActive

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdVaultActive(s *state.State) *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:   "active [vault]",
		Short: "Print the active vault, or toggle one with --toggle.",
		Long: heredoc.Doc(`
			Prints the name and path of the active vault. A stored active vault
			that is no longer configured is cleared. With --toggle, the given
			vault becomes active, or stops being active if it already was.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toggle {
				return runToggle(cmd, s, arg.HandleRef(args))
			}
			return run(cmd, s)
		},
	}

	cmd.Flags().BoolVarP(&toggle, "toggle", "t", false, "Toggle the vault as active")
	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	e, ok := s.Meta.ActiveVault(cmd.Context(), s.Vaults)
	if !ok {
		cmd.Println("No active vault.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", e.DisplayName(), e.Path)
	return nil
}

func runToggle(cmd *cobra.Command, s *state.State, ref string) error {
	e, err := cmdpkg.ResolveVault(cmd, s, ref, "Toggle active vault")
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	active, err := s.Meta.ToggleActive(cmd.Context(), e.Key)
	if err != nil {
		return err
	}
	if active {
		cmd.Printf("%s is now active.\n", e.DisplayName())
	} else {
		cmd.Printf("%s is no longer active.\n", e.DisplayName())
	}
	return nil
}
