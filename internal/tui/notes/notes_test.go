package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

func writeNote(t *testing.T, dir, name, body string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func newTestModel(t *testing.T, notes map[string]string) (*NoteListModel, string) {
	t.Helper()

	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	for name, body := range notes {
		writeNote(t, dir, name, body, base.Add(time.Duration(i)*time.Minute))
		i++
	}

	cfg := config.Default(t.TempDir())
	cfg.Display.VaultIndicator = "none"
	logger := logging.Discard()
	kv := kvstore.NewMemory()
	st := &state.State{
		Config: cfg,
		Logger: logger,
		Store:  kv,
		Meta:   vaultmeta.NewStore(kv, logger),
		Loader: note.NewLoader(0),
	}

	v := vault.New(dir)
	m := NewNoteListModel(st, vaultmeta.Enhanced{Vault: v, Metadata: vaultmeta.Default(v.Key)}, "")
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})

	loaded, err := st.LoadNotes(v)
	if err != nil {
		t.Fatalf("LoadNotes: %v", err)
	}
	m.Update(notesLoadedMsg{notes: loaded})
	return m, dir
}

func titlesInList(m *NoteListModel) []string {
	var out []string
	for _, item := range m.list.Items() {
		out = append(out, item.(ListItem).note.Title)
	}
	return out
}

func typeText(m *NoteListModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNotesLoadedPopulatesList(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"alpha.md": "# alpha",
		"beta.md":  "# beta",
	})

	if m.loading {
		t.Fatalf("expected loading to finish")
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
	if !strings.Contains(m.preview.view(), "alpha") && !strings.Contains(m.preview.view(), "beta") {
		t.Fatalf("expected preview of the selected note, got %q", m.preview.view())
	}
}

func TestDebounceDiscardsStaleTicks(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"alpha.md": "# alpha",
		"beta.md":  "# beta",
	})

	typeText(m, "alp")
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected no filter pass before the countdown ends, got %d items", got)
	}

	m.Update(searchTickMsg{seq: 1})
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected stale tick to be discarded, got %d items", got)
	}

	m.Update(searchTickMsg{seq: m.debounce.seq})
	if got := titlesInList(m); len(got) != 1 || got[0] != "alpha" {
		t.Fatalf("expected only alpha after the final tick, got %v", got)
	}
}

func TestNavigationKeysDoNotBumpDebounce(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"a.md": "a", "b.md": "b"})

	seq := m.debounce.seq
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.debounce.seq != seq {
		t.Fatalf("expected navigation to leave the debounce slot alone")
	}
}

func TestMissingNoteTriggersReload(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"gone.md": "bye"})

	n, ok := m.selected()
	if !ok {
		t.Fatalf("expected a selected note")
	}
	if err := os.Remove(n.Path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if cmd := m.refreshPreview(); cmd == nil {
		t.Fatalf("expected a reload command")
	}
	if !m.loading {
		t.Fatalf("expected model to be reloading")
	}
}

func TestToggleBookmark(t *testing.T) {
	m, dir := newTestModel(t, map[string]string{"keep.md": "# keep"})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	n, _ := m.selected()
	if !n.Bookmarked {
		t.Fatalf("expected selected note to be bookmarked")
	}
	paths := note.BookmarkedPaths(vault.New(dir), m.state.Config.ConfigFileName)
	if len(paths) != 1 || paths[0] != "keep.md" {
		t.Fatalf("expected bookmark file to list keep.md, got %v", paths)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	n, _ = m.selected()
	if n.Bookmarked {
		t.Fatalf("expected bookmark to be removed")
	}
	if paths := note.BookmarkedPaths(vault.New(dir), m.state.Config.ConfigFileName); len(paths) != 0 {
		t.Fatalf("expected no bookmarks, got %v", paths)
	}
}

func TestCopyContentAndLink(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"copy me.md": "body text"})

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "body text" {
		t.Fatalf("expected note content to be copied, got %q", copied)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if !strings.HasPrefix(copied, "[copy me](obsidian://open?") || !strings.Contains(copied, "file=copy%20me.md") {
		t.Fatalf("unexpected link %q", copied)
	}
}

func TestCycleTagFiltersList(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"a.md": "#work note",
		"b.md": "#home note",
		"c.md": "untagged",
	})

	if len(m.tags) != 2 {
		t.Fatalf("expected two tags, got %v", m.tags)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := titlesInList(m); len(got) != 1 {
		t.Fatalf("expected tag filter to keep one note, got %v", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.currentTag() != "" || len(m.list.Items()) != 3 {
		t.Fatalf("expected cycling past the last tag to clear the filter")
	}
}

func TestResultsAreTruncated(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"a.md": "a", "b.md": "b", "c.md": "c"})

	m.state.Config.Search.MaxRendered = 2
	m.applyFilter()
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected results capped at 2, got %d", got)
	}
}
