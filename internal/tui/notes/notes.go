// Package notes is the interactive note search screen: a query input, the
// matching notes and a rendered preview of the selected one.
package notes

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/vaultnav/internal/content"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

type notesLoadedMsg struct {
	notes []note.Metadata
	err   error
}

type editorFinishedMsg struct {
	err error
}

type NoteListModel struct {
	state     *state.State
	vault     vaultmeta.Enhanced
	filter    content.Filter
	list      list.Model
	input     textinput.Model
	keys      *listKeyMap
	debounce  debouncer
	notes     []note.Metadata
	tags      []string
	tagIndex  int
	preview   *previewer
	width     int
	height    int
	loading   bool
	indicator string

	copy func(string) error
	now  func() time.Time
}

func NewNoteListModel(s *state.State, v vaultmeta.Enhanced, query string) *NoteListModel {
	keys := newListKeyMap()

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = v.DisplayName()
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	ti := textinput.New()
	ti.Placeholder = "Search notes"
	ti.Cursor.Style = focusedStyle
	ti.PromptStyle = focusedStyle
	ti.SetValue(query)
	ti.Focus()

	return &NoteListModel{
		state:     s,
		vault:     v,
		filter:    s.Filter(v.Vault),
		list:      l,
		input:     ti,
		keys:      keys,
		debounce:  debouncer{delay: time.Duration(s.Config.Search.DebounceMillis) * time.Millisecond},
		tagIndex:  -1,
		preview:   newPreviewer(s.Loader),
		loading:   true,
		indicator: vaultmeta.Indicator(v, s.Config.Display.VaultIndicator),
		copy:      clipboard.WriteAll,
		now:       time.Now,
	}
}

func (m *NoteListModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadNotes())
}

func (m *NoteListModel) loadNotes() tea.Cmd {
	s, v := m.state, m.vault.Vault
	return func() tea.Msg {
		notes, err := s.LoadNotes(v)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v-3)
		return m, m.refreshPreview()

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.state.Logger.Error("failed to load notes", "vault", m.vault.Name, "err", msg.err)
			return m, m.list.NewStatusMessage(statusStyle("Failed to load notes: " + msg.err.Error()))
		}
		m.notes = note.Reduce(nil, note.Action{Type: note.ActionSet, Notes: msg.notes})
		m.tags = note.TagsForNotes(m.notes)
		if m.tagIndex >= len(m.tags) {
			m.tagIndex = -1
		}
		return m, m.applyFilter()

	case searchTickMsg:
		if !m.debounce.current(msg) {
			return m, nil
		}
		return m, m.applyFilter()

	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.list.NewStatusMessage(statusStyle("Editor exited with error: " + msg.err.Error()))
		}
		return m, m.loadNotes()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *NoteListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, tea.Batch(cmd, m.refreshPreview())

	case key.Matches(msg, m.keys.openNote):
		return m, m.openNote("")

	case key.Matches(msg, m.keys.openInObsidian):
		return m, m.openNote("obsidian")

	case key.Matches(msg, m.keys.bookmark):
		return m, m.toggleBookmark()

	case key.Matches(msg, m.keys.copyContent):
		return m, m.copyContent()

	case key.Matches(msg, m.keys.copyLink):
		return m, m.copyLink()

	case key.Matches(msg, m.keys.cycleTag):
		m.cycleTag()
		return m, m.applyFilter()

	case key.Matches(msg, m.keys.reload):
		m.loading = true
		m.state.Loader.Purge()
		m.preview.purge()
		return m, m.loadNotes()

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debounce.bump())
}

func (m *NoteListModel) currentTag() string {
	if m.tagIndex < 0 || m.tagIndex >= len(m.tags) {
		return ""
	}
	return m.tags[m.tagIndex]
}

// cycleTag steps through every tag and back to no tag filter.
func (m *NoteListModel) cycleTag() {
	if len(m.tags) == 0 {
		m.tagIndex = -1
		return
	}
	m.tagIndex++
	if m.tagIndex >= len(m.tags) {
		m.tagIndex = -1
	}
}

// applyFilter runs one search pass over the loaded notes.
func (m *NoteListModel) applyFilter() tea.Cmd {
	timer := m.state.Logger.Start("filter")

	candidates := search.ByTag(m.notes, m.currentTag())
	results, err := search.Filter(candidates, strings.TrimSpace(m.input.Value()), m.state.SearchOptions())
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			m.loading = true
			return tea.Batch(
				m.list.NewStatusMessage(statusStyle("A note disappeared, reloading vault")),
				m.loadNotes(),
			)
		}
		return m.list.NewStatusMessage(statusStyle("Search failed: " + err.Error()))
	}

	timer.Stop("query", m.input.Value(), "results", len(results))
	results = search.Truncate(results, m.state.Config.Search.MaxRendered)

	cmd := m.list.SetItems(toListItems(results, m.indicator, m.now()))
	m.list.ResetSelected()
	return tea.Batch(cmd, m.refreshPreview())
}

func (m *NoteListModel) selected() (note.Metadata, bool) {
	if i, ok := m.list.SelectedItem().(ListItem); ok {
		return i.note, true
	}
	return note.Metadata{}, false
}

// refreshPreview renders the selected note. A note that no longer exists
// triggers a reload of the vault instead.
func (m *NoteListModel) refreshPreview() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		m.preview.clear()
		return nil
	}

	if !note.Exists(n.Path) {
		m.state.Loader.Forget(n.Path)
		m.loading = true
		return tea.Batch(
			m.list.NewStatusMessage(statusStyle(n.Title+" no longer exists, reloading vault")),
			m.loadNotes(),
		)
	}

	if err := m.preview.show(n, m.filter, m.previewWidth()); err != nil {
		m.state.Logger.Warn("failed to render preview", "path", n.Path, "err", err)
	}
	return nil
}

func (m *NoteListModel) previewWidth() int {
	w := m.width/2 - 4
	if w < 20 {
		return 20
	}
	return w
}

func (m *NoteListModel) toggleBookmark() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}

	cfgName := m.state.Config.ConfigFileName
	action := note.Action{Type: note.ActionBookmark, Note: n}
	var err error
	if n.Bookmarked {
		action.Type = note.ActionUnbookmark
		err = note.RemoveBookmark(m.vault.Vault, cfgName, n.Path)
	} else {
		err = note.AddBookmark(m.vault.Vault, cfgName, n.Path)
	}
	if err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to update bookmark: " + err.Error()))
	}

	m.notes = note.Reduce(m.notes, action)
	index := m.list.Index()
	cmd := m.applyFilter()
	m.list.Select(index)

	status := "Bookmarked " + n.Title
	if action.Type == note.ActionUnbookmark {
		status = "Removed bookmark from " + n.Title
	}
	return tea.Batch(cmd, m.list.NewStatusMessage(statusStyle(status)))
}

func (m *NoteListModel) copyContent() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}

	loaded, err := m.state.Loader.Load(n)
	if err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to read note: " + err.Error()))
	}
	if err := m.copy(loaded.Content); err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to copy: " + err.Error()))
	}
	return m.list.NewStatusMessage(statusStyle("Copied content of " + n.Title))
}

func (m *NoteListModel) copyLink() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}

	uri, err := note.OpenURI(m.vault.Vault, n.Path)
	if err != nil {
		return m.list.NewStatusMessage(statusStyle(err.Error()))
	}
	link := fmt.Sprintf("[%s](%s)", n.Title, uri)
	if err := m.copy(link); err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to copy: " + err.Error()))
	}
	return m.list.NewStatusMessage(statusStyle("Copied link to " + n.Title))
}

// openNote opens the selection with editor, or the configured editor when
// editor is empty. Terminal editors take over the screen until they exit.
func (m *NoteListModel) openNote(editor string) tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}
	if editor == "" {
		editor = m.state.Config.Editor
	}

	launch, err := note.EditorLaunchFor(m.vault.Vault, n.Path, editor)
	if err != nil {
		return m.list.NewStatusMessage(statusStyle(err.Error()))
	}

	if launch.Wait {
		return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})
	}
	if err := launch.Cmd.Start(); err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to open note: " + err.Error()))
	}
	return m.list.NewStatusMessage(statusStyle("Opened " + n.Title))
}

func (m *NoteListModel) View() string {
	header := m.input.View()
	if tag := m.currentTag(); tag != "" {
		header += "  " + tagStyle.Render(tag)
	}
	if m.loading {
		header += "  " + helpStyle.Render("loading…")
	}

	input := inputStyle.Width(m.width/2 - 4).Render(header)
	left := lipgloss.JoinVertical(lipgloss.Left, input, m.list.View())
	left = listStyle.Width(m.width / 2).Render(left)

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()+3).
			MaxHeight(m.list.Height()+3).
			MaxWidth(800).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview.view())),
	)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, left, preview)
	return appStyle.Render(layout)
}

func Run(s *state.State, v vaultmeta.Enhanced, query string) error {
	m := NewNoteListModel(s, v, query)

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
