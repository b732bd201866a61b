// Package mcpserver exposes vault search over the Model Context Protocol on
// stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/pathutil"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

const defaultLimit = 20

// Server wraps the MCP server with the vault tools.
type Server struct {
	mcp   *server.MCPServer
	state *state.State
	now   func() time.Time
}

// New creates a server with every tool registered.
func New(st *state.State) *Server {
	s := &Server{state: st, now: time.Now}

	s.mcp = server.NewMCPServer(
		"vaultnav",
		constants.Version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_vaults",
		mcp.WithDescription("List the configured Obsidian vaults with their note counts."),
	), s.listVaults)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by title and path, optionally falling back to note content."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("vault", mcp.Description("Vault name or path (defaults to the active vault)")),
		mcp.WithBoolean("content", mcp.Description("Also search note bodies when few titles match")),
		mcp.WithBoolean("fuzzy", mcp.Description("Use fuzzy matching instead of substring matching")),
		mcp.WithString("tag", mcp.Description("Only return notes carrying this tag")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a note by vault-relative path, absolute path or title."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Note path or title (e.g. folder/note.md)")),
		mcp.WithString("vault", mcp.Description("Vault name or path (defaults to the active vault)")),
		mcp.WithBoolean("filtered", mcp.Description("Apply the configured display filters")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List every tag used in a vault with its note count."),
		mcp.WithString("vault", mcp.Description("Vault name or path (defaults to the active vault)")),
	), s.listTags)

	s.mcp.AddTool(mcp.NewTool("recent_notes",
		mcp.WithDescription("List recently modified notes across one or all vaults."),
		mcp.WithString("vault", mcp.Description("Vault name or path (defaults to every vault)")),
		mcp.WithString("since", mcp.Description("all, 24h, 7d, 30d, a duration or a date (default 7d)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.recentNotes)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

type vaultSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Path        string `json:"path"`
	Favorite    bool   `json:"favorite"`
	Active      bool   `json:"active"`
	Notes       int    `json:"notes"`
	Error       string `json:"error,omitempty"`
}

type noteSummary struct {
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	Vault        string    `json:"vault,omitempty"`
	LastModified time.Time `json:"lastModified"`
	Tags         []string  `json:"tags"`
	Bookmarked   bool      `json:"bookmarked,omitempty"`
}

type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

func (s *Server) vault(ctx context.Context, ref string) (vault.Vault, error) {
	if len(s.state.Vaults) == 0 {
		return vault.Vault{}, vault.ErrNoVaults
	}
	if ref == "" {
		e, _ := s.state.Meta.DefaultVault(ctx, s.state.Vaults)
		return e.Vault, nil
	}
	v, ok := vault.FindByName(s.state.Vaults, ref)
	if !ok {
		return vault.Vault{}, fmt.Errorf("vault %q is not configured", ref)
	}
	return v, nil
}

func summarize(notes []note.Metadata, v vault.Vault) []noteSummary {
	out := make([]noteSummary, 0, len(notes))
	for _, n := range notes {
		rel, err := pathutil.VaultRelative(v.Path, n.Path)
		if err != nil {
			rel = n.Path
		}
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, noteSummary{
			Title:        n.Title,
			Path:         rel,
			Vault:        v.Name,
			LastModified: n.LastModified,
			Tags:         tags,
			Bookmarked:   n.Bookmarked,
		})
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func limitArg(req mcp.CallToolRequest) int {
	limit := req.GetInt("limit", defaultLimit)
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

func (s *Server) listVaults(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if len(s.state.Vaults) == 0 {
		return mcp.NewToolResultError(vault.ErrNoVaults.Error()), nil
	}

	activeKey, _ := s.state.Meta.ActiveKey(ctx)
	enhanced := vaultmeta.Sort(s.state.Meta.EnhanceAll(ctx, s.state.Vaults))

	ordered := make([]vault.Vault, len(enhanced))
	for i, e := range enhanced {
		ordered[i] = e.Vault
	}
	loaded := s.state.LoadEach(ctx, ordered)

	out := make([]vaultSummary, len(enhanced))
	for i, e := range enhanced {
		out[i] = vaultSummary{
			Name:        e.Name,
			DisplayName: e.DisplayName(),
			Path:        e.Path,
			Favorite:    e.Metadata.IsFavorite,
			Active:      e.Key == activeKey,
			Notes:       len(loaded[i].Notes),
		}
		if loaded[i].Err != nil {
			out[i].Error = loaded[i].Err.Error()
		}
	}
	return jsonResult(out)
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, err := s.vault(ctx, req.GetString("vault", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	notes, err := s.state.LoadNotes(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if tag := req.GetString("tag", ""); tag != "" {
		notes = search.ByTag(notes, tag)
	}

	opts := s.state.SearchOptions()
	opts.Content = req.GetBool("content", opts.Content)
	opts.Fuzzy = req.GetBool("fuzzy", opts.Fuzzy)

	results, err := search.Filter(notes, query, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(summarize(search.Truncate(results, limitArg(req)), v))
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, err := s.vault(ctx, req.GetString("vault", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	notes, err := s.state.LoadNotes(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := note.Resolve(notes, v.Path, ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", ref)), nil
	}

	n, err := s.state.Loader.Load(m)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filtered := req.GetBool("filtered", false)
	return mcp.NewToolResultText(note.Content(n, filtered, s.state.Filter(v))), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, err := s.vault(ctx, req.GetString("vault", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	notes, err := s.state.LoadNotes(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	counts := note.TagCounts(notes)
	out := make([]tagCount, 0, len(counts))
	for _, tag := range note.TagsForNotes(notes) {
		out = append(out, tagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return jsonResult(out)
}

func (s *Server) recentNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := search.ParseTimeFilter(req.GetString("since", "7d"), s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	vaults := s.state.Vaults
	if ref := req.GetString("vault", ""); ref != "" {
		v, err := s.vault(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		vaults = []vault.Vault{v}
	}
	if len(vaults) == 0 {
		return mcp.NewToolResultError(vault.ErrNoVaults.Error()), nil
	}

	var out []noteSummary
	for _, r := range s.state.LoadEach(ctx, vaults) {
		out = append(out, summarize(search.ByTime(r.Notes, filter), r.Vault)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastModified.After(out[j].LastModified)
	})
	if out == nil {
		out = []noteSummary{}
	}
	return jsonResult(search.Truncate(out, limitArg(req)))
}
