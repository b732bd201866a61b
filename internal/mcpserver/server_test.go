package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func writeNote(t *testing.T, dir, name, body string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func testServer(t *testing.T, vaults ...vault.Vault) *Server {
	t.Helper()

	cfg := config.Default(t.TempDir())
	cfg.Content.RemoveYAML = true
	logger := logging.Discard()
	kv := kvstore.NewMemory()
	t.Cleanup(func() { kv.Close() })

	st := &state.State{
		Config: cfg,
		Logger: logger,
		Store:  kv,
		Meta:   vaultmeta.NewStore(kv, logger),
		Vaults: vaults,
		Loader: note.NewLoader(0),
	}

	srv := New(st)
	srv.now = func() time.Time { return now }
	return srv
}

func testVaults(t *testing.T) (vault.Vault, vault.Vault) {
	t.Helper()

	workDir := t.TempDir()
	writeNote(t, workDir, "Project plan.md", "---\ntags: [work]\n---\nShip the release.\n", now.Add(-time.Hour))
	writeNote(t, workDir, "meetings/Standup.md", "#work #daily\nBlockers none.\n", now.Add(-48*time.Hour))
	writeNote(t, workDir, "Archive.md", "old stuff about the garden\n", now.AddDate(0, -2, 0))

	homeDir := t.TempDir()
	writeNote(t, homeDir, "Garden.md", "#home\nPlant tomatoes.\n", now.Add(-2*time.Hour))

	return vault.New(workDir), vault.New(homeDir)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_vaults":
		result, err = srv.listVaults(ctx, req)
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "list_tags":
		result, err = srv.listTags(ctx, req)
	case "recent_notes":
		result, err = srv.recentNotes(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func decode[T any](t *testing.T, r *mcp.CallToolResult) T {
	t.Helper()
	if r.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(r))
	}
	var out T
	if err := json.Unmarshal([]byte(resultText(r)), &out); err != nil {
		t.Fatalf("decode %q: %v", resultText(r), err)
	}
	return out
}

func TestListVaultsCountsNotes(t *testing.T) {
	work, home := testVaults(t)
	srv := testServer(t, work, home)
	ctx := context.Background()
	if _, err := srv.state.Meta.ToggleFavorite(ctx, home.Key); err != nil {
		t.Fatal(err)
	}
	if err := srv.state.Meta.SetActive(ctx, work.Key); err != nil {
		t.Fatal(err)
	}

	out := decode[[]vaultSummary](t, callTool(t, srv, "list_vaults", nil))
	if len(out) != 2 {
		t.Fatalf("got %d vaults, want 2", len(out))
	}
	if out[0].Path != home.Path || !out[0].Favorite || out[0].Notes != 1 {
		t.Errorf("first vault = %+v, want the favourite home vault with 1 note", out[0])
	}
	if out[1].Path != work.Path || !out[1].Active || out[1].Notes != 3 {
		t.Errorf("second vault = %+v, want the active work vault with 3 notes", out[1])
	}
}

func TestListVaultsWithoutVaults(t *testing.T) {
	srv := testServer(t)
	if r := callTool(t, srv, "list_vaults", nil); !r.IsError {
		t.Fatalf("expected error, got %s", resultText(r))
	}
}

func TestSearchNotes(t *testing.T) {
	work, home := testVaults(t)
	srv := testServer(t, work, home)

	out := decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "plan",
	}))
	if len(out) != 1 || out[0].Title != "Project plan" || out[0].Path != "Project plan.md" {
		t.Fatalf("got %+v, want only Project plan", out)
	}

	out = decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "standup",
	}))
	if len(out) != 1 || out[0].Path != "meetings/Standup.md" {
		t.Fatalf("got %+v, want forward-slash relative path", out)
	}
}

func TestSearchNotesContentFallback(t *testing.T) {
	work, home := testVaults(t)
	srv := testServer(t, work, home)

	out := decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "garden",
	}))
	if len(out) != 0 {
		t.Fatalf("title search returned %+v, want nothing in the work vault", out)
	}

	out = decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query":   "garden",
		"content": true,
	}))
	if len(out) != 1 || out[0].Title != "Archive" {
		t.Fatalf("content search returned %+v, want Archive", out)
	}

	out = decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "garden",
		"vault": home.Name,
	}))
	if len(out) != 1 || out[0].Title != "Garden" || out[0].Vault != home.Name {
		t.Fatalf("home vault search returned %+v, want Garden", out)
	}
}

func TestSearchNotesTagAndLimit(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	out := decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "",
		"tag":   "work",
	}))
	if len(out) != 2 {
		t.Fatalf("tag filter returned %d notes, want 2", len(out))
	}

	out = decode[[]noteSummary](t, callTool(t, srv, "search_notes", map[string]interface{}{
		"query": "",
		"limit": float64(1),
	}))
	if len(out) != 1 || out[0].Title != "Project plan" {
		t.Fatalf("limit returned %+v, want the newest note only", out)
	}
}

func TestSearchNotesErrors(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	if r := callTool(t, srv, "search_notes", map[string]interface{}{}); !r.IsError {
		t.Error("expected error for missing query")
	}
	r := callTool(t, srv, "search_notes", map[string]interface{}{"query": "x", "vault": "nope"})
	if !r.IsError || !strings.Contains(resultText(r), "nope") {
		t.Errorf("expected unknown vault error, got %q", resultText(r))
	}
}

func TestReadNote(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	r := callTool(t, srv, "read_note", map[string]interface{}{"path": "Project plan.md"})
	if r.IsError || !strings.HasPrefix(resultText(r), "---\ntags") {
		t.Fatalf("raw read = %q", resultText(r))
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"path": "Project plan", "filtered": true})
	if r.IsError || strings.Contains(resultText(r), "tags:") || !strings.Contains(resultText(r), "Ship the release.") {
		t.Fatalf("filtered read = %q", resultText(r))
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"path": "meetings/Standup"})
	if r.IsError || !strings.Contains(resultText(r), "Blockers") {
		t.Fatalf("read without extension = %q", resultText(r))
	}
}

func TestReadNoteNotFound(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	for _, path := range []string{"missing.md", "../outside.md"} {
		r := callTool(t, srv, "read_note", map[string]interface{}{"path": path})
		if !r.IsError || !strings.Contains(resultText(r), "not found") {
			t.Errorf("read %s = %q, want not found", path, resultText(r))
		}
	}
}

func TestListTagsOrdersByCount(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	out := decode[[]tagCount](t, callTool(t, srv, "list_tags", nil))
	if len(out) != 2 {
		t.Fatalf("got %+v, want two tags", out)
	}
	if out[0].Tag != "#work" || out[0].Count != 2 {
		t.Errorf("first tag = %+v, want #work x2", out[0])
	}
	if out[1].Tag != "#daily" || out[1].Count != 1 {
		t.Errorf("second tag = %+v, want #daily x1", out[1])
	}
}

func TestRecentNotesAcrossVaults(t *testing.T) {
	work, home := testVaults(t)
	srv := testServer(t, work, home)

	out := decode[[]noteSummary](t, callTool(t, srv, "recent_notes", map[string]interface{}{"since": "24h"}))
	var titles []string
	for _, n := range out {
		titles = append(titles, n.Title)
	}
	if got := strings.Join(titles, ","); got != "Project plan,Garden" {
		t.Fatalf("recent 24h = %s, want Project plan,Garden", got)
	}

	out = decode[[]noteSummary](t, callTool(t, srv, "recent_notes", map[string]interface{}{"since": "all", "vault": work.Path}))
	if len(out) != 3 {
		t.Fatalf("recent all in work vault = %d notes, want 3", len(out))
	}
}

func TestRecentNotesRejectsBadFilter(t *testing.T) {
	work, _ := testVaults(t)
	srv := testServer(t, work)

	if r := callTool(t, srv, "recent_notes", map[string]interface{}{"since": "whenever"}); !r.IsError {
		t.Fatalf("expected error, got %s", resultText(r))
	}
}
