package serve

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/mcpserver"
	"github.com/Paintersrp/vaultnav/internal/state"
)

func NewCmdServe(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve vault search to LLM clients over MCP (stdio).",
		Long: heredoc.Doc(`
			Starts a Model Context Protocol server on stdin/stdout exposing the
			list_vaults, search_notes, read_note, list_tags and recent_notes tools.
			Point your MCP client at "vaultnav serve". Logs go to the log file
			only, stdout carries the protocol.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Logger.Info("starting mcp server", "vaults", len(s.Vaults))
			return mcpserver.New(s).ServeStdio()
		},
	}

	return cmd
}
