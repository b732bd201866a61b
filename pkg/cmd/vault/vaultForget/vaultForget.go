package vaultForget

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdVaultForget(s *state.State) *cobra.Command {
	var stale bool

	cmd := &cobra.Command{
		Use:   "forget [vault]",
		Short: "Delete what vaultnav remembers about a vault.",
		Long: heredoc.Doc(`
			Removes the stored display settings, favourite flag and last access
			time of a vault. The vault itself is untouched. With --stale, records
			of vaults that are no longer configured are removed instead.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stale {
				return runStale(cmd, s)
			}
			return run(cmd, s, arg.HandleRef(args))
		},
	}

	cmd.Flags().BoolVar(&stale, "stale", false, "Forget vaults that are no longer configured")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref string) error {
	e, err := cmdpkg.ResolveVault(cmd, s, ref, "Forget vault")
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	ctx := cmd.Context()
	if err := s.Meta.Delete(ctx, e.Key); err != nil {
		return err
	}
	if s.Meta.IsActive(ctx, e.Key) {
		if err := s.Meta.ClearActive(ctx); err != nil {
			cmdpkg.Warn(cmd, s, "failed to clear the active vault", err)
		}
	}
	cmdpkg.RefreshHotkeys(cmd, s)

	cmd.Printf("Forgot %s.\n", e.Name)
	return nil
}

func runStale(cmd *cobra.Command, s *state.State) error {
	ctx := cmd.Context()
	stored, err := s.Meta.StoredKeys(ctx)
	if err != nil {
		return err
	}

	forgotten := 0
	for _, key := range stored {
		if configured(s.Vaults, key) {
			continue
		}
		if err := s.Meta.Delete(ctx, key); err != nil {
			return err
		}
		cmd.Printf("Forgot %s.\n", key)
		forgotten++
	}

	if forgotten == 0 {
		cmd.Println("No stale vaults.")
	}
	return nil
}

func configured(vaults []vault.Vault, key string) bool {
	for _, v := range vaults {
		if v.Key == key {
			return true
		}
	}
	return false
}
