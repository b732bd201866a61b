package create

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
)

func newTestState(t *testing.T) (*state.State, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default(t.TempDir())
	cfg.DiscoverVaults = false
	cfg.VaultPath = dir
	return state.New(t.TempDir(), cfg, logging.Discard(), kvstore.NewMemory(), ""), dir
}

func execute(t *testing.T, s *state.State, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmdCreate(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateWritesNote(t *testing.T) {
	s, dir := newTestState(t)

	out, err := execute(t, s, "", "Reading list", "--folder", "inbox", "--tags", "books,#todo", "--content", "Dune\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "inbox", "Reading list.md")
	if strings.TrimSpace(out) != path {
		t.Fatalf("expected %s, got %q", path, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	want := "---\ntags:\n    - books\n    - todo\n---\nDune\n"
	if string(data) != want {
		t.Fatalf("unexpected note:\n%q\nwant:\n%q", data, want)
	}
}

func TestCreateUsesConfigDefaultsAndStdin(t *testing.T) {
	s, dir := newTestState(t)
	s.Config.Create.Folder = "daily"

	if _, err := execute(t, s, "from stdin", "Today", "--content", "-"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "daily", "Today.md"))
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	if string(data) != "from stdin" {
		t.Fatalf("expected stdin content, got %q", data)
	}
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	s, _ := newTestState(t)

	if _, err := execute(t, s, "", "Twice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := execute(t, s, "", "Twice"); !errors.Is(err, note.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestCreateBlankNotes(t *testing.T) {
	s, dir := newTestState(t)
	s.Config.Create.BlankNote = true

	for i := 0; i < 2; i++ {
		if _, err := execute(t, s, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, name := range []string{"Blank Note.md", "Blank Note 1.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestCreateRequiresName(t *testing.T) {
	s, _ := newTestState(t)
	if _, err := execute(t, s, ""); err == nil {
		t.Fatal("expected an error without a name")
	}
}
