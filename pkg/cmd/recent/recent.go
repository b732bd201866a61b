package recent

import (
	"fmt"
	"sort"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	"github.com/Paintersrp/vaultnav/internal/vault"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
	"github.com/Paintersrp/vaultnav/pkg/flags"
)

type options struct {
	since string
	group bool
	plain bool
}

func NewCmdRecent(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "recent",
		Aliases: []string{"r"},
		Short:   "List recently modified notes across your vaults.",
		Long: heredoc.Doc(`
			Lists notes modified within the --since window, newest first. Every
			configured vault is scanned unless --vault picks one. Vaults that fail
			to load are skipped with a warning.

			--since accepts all, 24h, 7d, 30d, any Go duration (90m, 36h) or a date.
		`),
		Example: heredoc.Doc(`
			vaultnav recent
			vaultnav recent --since 24h --group
			vaultnav recent --since 2024-03-01 --vault work
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, opts, time.Now())
		},
	}

	cmd.Flags().StringVar(&opts.since, "since", "7d", "Time window")
	cmd.Flags().BoolVarP(&opts.group, "group", "g", false, "Group the notes by vault")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print plain text even on a terminal")
	flags.AddLimit(cmd, 50)
	return cmd
}

type entry struct {
	vault vault.Vault
	note  note.Metadata
}

func run(cmd *cobra.Command, s *state.State, opts options, now time.Time) error {
	filter, err := search.ParseTimeFilter(opts.since, now)
	if err != nil {
		return err
	}
	limit, err := flags.HandleLimit(cmd)
	if err != nil {
		return err
	}

	vaults := s.Vaults
	if s.VaultRef != "" {
		v, err := s.SelectVault(cmd.Context())
		if err != nil {
			return err
		}
		vaults = []vault.Vault{v.Vault}
	}
	if len(vaults) == 0 {
		return vault.ErrNoVaults
	}

	results := s.LoadEach(cmd.Context(), vaults)
	for _, r := range results {
		if r.Err != nil {
			cmdpkg.Warn(cmd, s, fmt.Sprintf("skipped vault %s", r.Vault.Name), r.Err)
		}
	}

	out := cmd.OutOrStdout()
	if opts.group {
		printed := false
		for _, r := range results {
			notes := search.Truncate(search.ByTime(r.Notes, filter), limit)
			if len(notes) == 0 {
				continue
			}
			if printed {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%d)\n", r.Vault.Name, len(notes))
			if err := cmdpkg.NoteTable(r.Vault, notes, now).Fprint(out); err != nil {
				return err
			}
			printed = true
		}
		if !printed {
			cmd.Println("No recent notes.")
		}
		return nil
	}

	var entries []entry
	for _, r := range results {
		for _, n := range search.ByTime(r.Notes, filter) {
			entries = append(entries, entry{vault: r.Vault, note: n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].note.LastModified.After(entries[j].note.LastModified)
	})
	entries = search.Truncate(entries, limit)
	if len(entries) == 0 {
		cmd.Println("No recent notes.")
		return nil
	}

	rows := make([]btable.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, btable.Row{
			e.note.Title,
			e.vault.Name,
			search.RelativeTime(e.note.LastModified, now),
			cmdpkg.RelativePath(e.vault, e.note.Path),
		})
	}
	return cmdpkg.PrintTable(cmd, table.TableConfig{
		Columns: []btable.Column{
			{Title: "Title", Width: 32},
			{Title: "Vault", Width: 16},
			{Title: "Modified", Width: 10},
			{Title: "Path", Width: 40},
		},
		Rows:    rows,
		Focused: true,
		Height:  20,
	}, opts.plain)
}
