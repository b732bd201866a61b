package cmd

import (
	"strings"
	"time"

	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/pathutil"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// PrintTable shows t interactively on a terminal unless plain is set, and as
// aligned text otherwise.
func PrintTable(cmd *cobra.Command, t table.TableConfig, plain bool) error {
	if !plain && IsInteractive() {
		return t.Show()
	}
	return t.Fprint(cmd.OutOrStdout())
}

// RelativePath returns path relative to v, falling back to path itself.
func RelativePath(v vault.Vault, path string) string {
	rel, err := pathutil.VaultRelative(v.Path, path)
	if err != nil {
		return path
	}
	return rel
}

// NoteTable lists notes with their vault-relative path, age and tags.
func NoteTable(v vault.Vault, notes []note.Metadata, now time.Time) table.TableConfig {
	rows := make([]btable.Row, 0, len(notes))
	for _, n := range notes {
		title := n.Title
		if n.Bookmarked {
			title = "★ " + title
		}
		rows = append(rows, btable.Row{
			title,
			RelativePath(v, n.Path),
			search.RelativeTime(n.LastModified, now),
			strings.Join(n.Tags, " "),
		})
	}

	return table.TableConfig{
		Columns: []btable.Column{
			{Title: "Title", Width: 32},
			{Title: "Path", Width: 40},
			{Title: "Modified", Width: 10},
			{Title: "Tags", Width: 30},
		},
		Rows:    rows,
		Focused: true,
		Height:  20,
	}
}
