package vaultDiscover

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	"github.com/Paintersrp/vaultnav/internal/vault"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

// discover is swapped in tests.
var discover = vault.DiscoverVaults

func NewCmdVaultDiscover(s *state.State) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List the vaults Obsidian knows about.",
		Long: heredoc.Doc(`
			Reads Obsidian's vault registry (obsidian.json) and lists every vault
			whose folder still exists, marking the ones already configured. With
			--save, vault_path in the config file is set to the discovered vaults.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the discovered vaults to vault_path")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, save bool) error {
	found := discover(s.Logger)
	if len(found) == 0 {
		cmd.Println("Obsidian has no registered vaults.")
		return nil
	}

	rows := make([]btable.Row, 0, len(found))
	for _, v := range found {
		mark := ""
		if _, ok := vault.FindByName(s.Vaults, v.Path); ok {
			mark = "*"
		}
		rows = append(rows, btable.Row{mark, v.Name, v.Path})
	}

	err := table.TableConfig{
		Columns: []btable.Column{
			{Title: "", Width: 2},
			{Title: "Name", Width: 24},
			{Title: "Path", Width: 60},
		},
		Rows: rows,
	}.Fprint(cmd.OutOrStdout())
	if err != nil || !save {
		return err
	}

	s.Config.VaultPath = JoinVaultPaths(found)
	if err := s.Config.Save(); err != nil {
		return err
	}
	cmd.Printf("Saved %d vaults to %s.\n", len(found), s.Config.Path())
	return nil
}

// JoinVaultPaths renders vaults as a vault_path value, quoting paths that
// contain commas.
func JoinVaultPaths(vaults []vault.Vault) string {
	parts := make([]string, len(vaults))
	for i, v := range vaults {
		p := v.Path
		if strings.Contains(p, ",") {
			quote := `"`
			if strings.Contains(p, `"`) {
				quote = `'`
			}
			p = quote + p + quote
		}
		parts[i] = p
	}
	return strings.Join(parts, ",")
}
