package media

import (
	"github.com/MakeNowJust/heredoc/v2"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdMedia(s *state.State) *cobra.Command {
	var (
		kind  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:     "media [query]",
		Aliases: []string{"m"},
		Short:   "List images, audio, video and PDFs stored in the vault.",
		Long: heredoc.Doc(`
			Lists media files, skipping the configured excluded folders. A query
			matches file names and paths, and also keeps media whose name is
			mentioned in a note that matches the query.
		`),
		Example: heredoc.Doc(`
			vaultnav media
			vaultnav media --kind image holiday
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleQuery(args), kind, plain)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only image, video, audio or document")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text even on a terminal")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, query, kind string, plain bool) error {
	v, notes, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	all, err := s.LoadMedia(v.Vault)
	if err != nil {
		return err
	}

	matched, err := search.Media(all, query, notes, s.Loader.Text)
	if err != nil {
		return err
	}

	var rows []btable.Row
	for _, m := range matched {
		if kind != "" && string(m.Kind) != kind {
			continue
		}
		rows = append(rows, btable.Row{m.Title, string(m.Kind), cmdpkg.RelativePath(v.Vault, m.Path)})
	}
	if len(rows) == 0 {
		cmd.Println("No media found.")
		return nil
	}

	return cmdpkg.PrintTable(cmd, table.TableConfig{
		Columns: []btable.Column{
			{Title: "Name", Width: 32},
			{Title: "Kind", Width: 10},
			{Title: "Path", Width: 48},
		},
		Rows:    rows,
		Focused: true,
		Height:  20,
	}, plain)
}
