package notes

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/search"
)

type ListItem struct {
	note      note.Metadata
	indicator string
	now       time.Time
}

func (i ListItem) Title() string {
	title := i.note.Title
	if i.note.Bookmarked {
		title = "★ " + title
	}
	return title
}

func (i ListItem) Description() string {
	var parts []string
	if i.indicator != "" {
		parts = append(parts, i.indicator)
	}
	parts = append(parts, search.RelativeTime(i.note.LastModified, i.now))
	if len(i.note.Tags) == 0 {
		parts = append(parts, "No tags")
	} else {
		parts = append(parts, strings.Join(i.note.Tags, ", "))
	}
	return strings.Join(parts, " · ")
}

func (i ListItem) FilterValue() string {
	return i.note.Title
}

func (i ListItem) Path() string {
	return i.note.Path
}

func toListItems(notes []note.Metadata, indicator string, now time.Time) []list.Item {
	items := make([]list.Item, len(notes))
	for idx, n := range notes {
		items[idx] = ListItem{note: n, indicator: indicator, now: now}
	}
	return items
}
