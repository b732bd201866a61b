package notes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchTickMsg fires when a debounce countdown ends. Only the tick whose seq
// matches the model's current seq runs a filter pass; older ticks are stale.
type searchTickMsg struct {
	seq int
}

// debouncer is a single-slot timer: every call to bump supersedes the
// pending countdown.
type debouncer struct {
	seq   int
	delay time.Duration
}

func (d *debouncer) bump() tea.Cmd {
	d.seq++
	seq := d.seq
	if d.delay <= 0 {
		return func() tea.Msg { return searchTickMsg{seq: seq} }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (d *debouncer) current(msg searchTickMsg) bool {
	return msg.seq == d.seq
}
