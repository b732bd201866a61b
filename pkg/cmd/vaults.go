package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

// ResolveVault finds the vault ref names, falling back to --vault. With
// neither, a single vault is used as is, several open the vault finder on a
// terminal, and the default vault is used otherwise.
func ResolveVault(cmd *cobra.Command, s *state.State, ref, header string) (vaultmeta.Enhanced, error) {
	ctx := cmd.Context()
	if len(s.Vaults) == 0 {
		return vaultmeta.Enhanced{}, vault.ErrNoVaults
	}

	if ref == "" {
		ref = s.VaultRef
	}
	if ref != "" {
		v, ok := vault.FindByName(s.Vaults, ref)
		if !ok {
			return vaultmeta.Enhanced{}, fmt.Errorf("vault %q is not configured", ref)
		}
		return s.Meta.Enhance(ctx, v), nil
	}

	if len(s.Vaults) > 1 && IsInteractive() {
		return fzf.FindVault(vaultmeta.Sort(s.Meta.EnhanceAll(ctx, s.Vaults)), header)
	}
	e, _ := s.Meta.DefaultVault(ctx, s.Vaults)
	return e, nil
}

// RefreshHotkeys renumbers favourite hotkeys after a favourite changes.
func RefreshHotkeys(cmd *cobra.Command, s *state.State) {
	all := s.Meta.EnhanceAll(cmd.Context(), s.Vaults)
	if err := s.Meta.AssignHotkeys(cmd.Context(), all); err != nil {
		Warn(cmd, s, "failed to update vault hotkeys", err)
	}
}
