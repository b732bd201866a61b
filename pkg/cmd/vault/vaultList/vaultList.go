package vaultList

import (
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdVaultList(s *state.State) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured vaults, favourites first.",
		Long: heredoc.Doc(`
			Lists the configured vaults ordered by favourite, then most recently
			used, then name. The active vault is marked with *, favourites carry
			their hotkey number.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, plain, time.Now())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text even on a terminal")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, plain bool, now time.Time) error {
	if len(s.Vaults) == 0 {
		return vault.ErrNoVaults
	}

	ctx := cmd.Context()
	all := s.Meta.EnhanceAll(ctx, s.Vaults)
	if err := s.Meta.AssignHotkeys(ctx, all); err != nil {
		cmdpkg.Warn(cmd, s, "failed to update vault hotkeys", err)
	}
	activeKey, err := s.Meta.ActiveKey(ctx)
	if err != nil {
		cmdpkg.Warn(cmd, s, "failed to read the active vault", err)
	}

	var rows []btable.Row
	for _, e := range vaultmeta.Sort(all) {
		rows = append(rows, btable.Row{
			marker(e, activeKey),
			e.DisplayName(),
			e.Abbreviation(),
			lastOpened(e, now),
			e.Path,
		})
	}

	return cmdpkg.PrintTable(cmd, table.TableConfig{
		Columns: []btable.Column{
			{Title: "", Width: 4},
			{Title: "Name", Width: 28},
			{Title: "Abbr", Width: 5},
			{Title: "Opened", Width: 10},
			{Title: "Path", Width: 48},
		},
		Rows:    rows,
		Focused: true,
		Height:  15,
	}, plain)
}

func marker(e vaultmeta.Enhanced, activeKey string) string {
	m := ""
	if e.Key == activeKey {
		m = "*"
	}
	if e.Metadata.IsFavorite {
		m += "★"
		if e.Metadata.HotkeyIndex > 0 {
			m += strconv.Itoa(e.Metadata.HotkeyIndex)
		}
	}
	return m
}

func lastOpened(e vaultmeta.Enhanced, now time.Time) string {
	if e.Metadata.LastAccessed.Unix() <= 0 {
		return "never"
	}
	return search.RelativeTime(e.Metadata.LastAccessed, now)
}
