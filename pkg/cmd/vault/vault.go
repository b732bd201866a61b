package vault

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultActive"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultClear"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultDiscover"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultEdit"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultFavorite"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultForget"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultList"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault/vaultSwitch"
)

func NewCmdVault(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vault",
		Aliases: []string{"v"},
		Short:   "Manage vaults and their display settings.",
		Long: heredoc.Doc(`
			Vaults are configured through vault_path. These commands manage what
			vaultnav remembers about them: the active vault, favourites, custom
			names, abbreviations and emoji.
		`),
		RunE: vaultList.NewCmdVaultList(s).RunE,
	}

	cmd.AddCommand(vaultList.NewCmdVaultList(s))
	cmd.AddCommand(vaultSwitch.NewCmdVaultSwitch(s))
	cmd.AddCommand(vaultFavorite.NewCmdVaultFavorite(s))
	cmd.AddCommand(vaultEdit.NewCmdVaultEdit(s))
	cmd.AddCommand(vaultActive.NewCmdVaultActive(s))
	cmd.AddCommand(vaultClear.NewCmdVaultClear(s))
	cmd.AddCommand(vaultForget.NewCmdVaultForget(s))
	cmd.AddCommand(vaultDiscover.NewCmdVaultDiscover(s))

	return cmd
}
