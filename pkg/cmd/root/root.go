package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/cmd/bookmark"
	"github.com/Paintersrp/vaultnav/pkg/cmd/create"
	"github.com/Paintersrp/vaultnav/pkg/cmd/deleteNote"
	"github.com/Paintersrp/vaultnav/pkg/cmd/find"
	"github.com/Paintersrp/vaultnav/pkg/cmd/media"
	"github.com/Paintersrp/vaultnav/pkg/cmd/notes"
	"github.com/Paintersrp/vaultnav/pkg/cmd/open"
	"github.com/Paintersrp/vaultnav/pkg/cmd/random"
	"github.com/Paintersrp/vaultnav/pkg/cmd/recent"
	"github.com/Paintersrp/vaultnav/pkg/cmd/search"
	"github.com/Paintersrp/vaultnav/pkg/cmd/serve"
	"github.com/Paintersrp/vaultnav/pkg/cmd/show"
	"github.com/Paintersrp/vaultnav/pkg/cmd/tags"
	"github.com/Paintersrp/vaultnav/pkg/cmd/vault"
)

var opts state.Options

// NewCmdRoot builds the command tree. s is populated from the config before
// any subcommand runs.
func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "vaultnav [query]",
		Aliases: []string{"vn"},
		Short:   "Search, preview and manage the notes in your Obsidian vaults.",
		Long: heredoc.Doc(`
			vaultnav finds notes across one or more Obsidian vaults without opening
			Obsidian. Run it without a subcommand to open the interactive search.

			Vaults come from vault_path in the config file (comma separated, quotes
			allowed), or from Obsidian's own vault list when that is empty.
		`),
		Example: heredoc.Doc(`
			vaultnav                      // Interactive search in the default vault
			vaultnav --vault work plan    // Search the "work" vault for "plan"
			vaultnav search -c kubernetes // Print matches, searching content too
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := state.NewState(opts)
			if err != nil {
				return err
			}
			*s = *loaded
			return nil
		},
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.PersistentFlags().
		StringVar(&opts.ConfigPath, "config", "", "config file (default is $HOME/.vaultnav/cfg.yaml)")
	cmd.PersistentFlags().
		StringVar(&opts.Vault, "vault", "", "Vault name or path to use for this command")

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		search.NewCmdSearch(s),
		find.NewCmdFind(s),
		show.NewCmdShow(s),
		recent.NewCmdRecent(s),
		random.NewCmdRandom(s),
		tags.NewCmdTags(s),
		media.NewCmdMedia(s),
		create.NewCmdCreate(s),
		deleteNote.NewCmdDelete(s),
		bookmark.NewCmdBookmark(s),
		open.NewCmdOpen(s),
		vault.NewCmdVault(s),
		serve.NewCmdServe(s),
	)

	return cmd, nil
}
