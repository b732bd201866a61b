package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote       key.Binding
	openInObsidian key.Binding
	bookmark       key.Binding
	copyContent    key.Binding
	copyLink       key.Binding
	cycleTag       key.Binding
	reload         key.Binding
	toggleHelpMenu key.Binding
	up             key.Binding
	down           key.Binding
	quit           key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		openInObsidian: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open in obsidian"),
		),
		bookmark: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "bookmark"),
		),
		copyContent: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy content"),
		),
		copyLink: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "copy link"),
		),
		cycleTag: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle tag"),
		),
		reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "pgup"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "pgdown"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (m listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{m.openNote, m.bookmark, m.cycleTag}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.openInObsidian,
		m.bookmark,
		m.copyContent,
		m.copyLink,
		m.cycleTag,
		m.reload,
		m.toggleHelpMenu,
		m.quit,
	}
}
