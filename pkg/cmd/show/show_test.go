package show

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/state"
)

const snippetNote = "---\ntags: [go]\n---\nSee [[Other]].\n\n```go\nfmt.Println(1)\n```\n\n```sh\nls -la\n```\n"

func newTestState(t *testing.T) *state.State {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Snippets.md"), []byte(snippetNote), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default(t.TempDir())
	cfg.DiscoverVaults = false
	cfg.VaultPath = dir
	cfg.Content.RemoveYAML = true
	cfg.Content.RemoveLinks = true
	return state.New(t.TempDir(), cfg, logging.Discard(), kvstore.NewMemory(), "")
}

func execute(t *testing.T, s *state.State, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmdShow(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowRawAndFiltered(t *testing.T) {
	s := newTestState(t)

	out, err := execute(t, s, "Snippets", "--raw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != snippetNote {
		t.Fatalf("expected the raw note, got %q", out)
	}

	out, err = execute(t, s, "snippets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "tags:") || strings.Contains(out, "[[") {
		t.Fatalf("expected frontmatter and links removed, got %q", out)
	}
	if !strings.Contains(out, "See Other.") {
		t.Fatalf("expected link text kept, got %q", out)
	}
}

func TestShowCodeBlocks(t *testing.T) {
	s := newTestState(t)

	out, err := execute(t, s, "Snippets.md", "--code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "fmt.Println(1)\n\nls -la\n" {
		t.Fatalf("unexpected code output %q", out)
	}
}

func TestShowCopiesFirstCodeBlock(t *testing.T) {
	s := newTestState(t)

	var copied string
	orig := copyFn
	t.Cleanup(func() { copyFn = orig })
	copyFn = func(text string) error {
		copied = text
		return nil
	}

	if _, err := execute(t, s, "Snippets", "--code", "--copy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied != "fmt.Println(1)" {
		t.Fatalf("expected first block copied, got %q", copied)
	}
}

func TestShowUnknownNote(t *testing.T) {
	s := newTestState(t)
	if _, err := execute(t, s, "missing"); err == nil {
		t.Fatal("expected an error for a missing note")
	}
}
