package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"

	"github.com/Paintersrp/vaultnav/internal/note"
)

// TimeFilter keeps notes modified at or after Since. A zero Since keeps
// everything.
type TimeFilter struct {
	Name  string
	Since time.Time
}

var timeFilterWindows = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// ParseTimeFilter accepts all, 24h, 7d, 30d, a Go duration, or a date in any
// format dateparse understands.
func ParseTimeFilter(raw string, now time.Time) (TimeFilter, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" || name == "all" {
		return TimeFilter{Name: "all"}, nil
	}
	if window, ok := timeFilterWindows[name]; ok {
		return TimeFilter{Name: name, Since: now.Add(-window)}, nil
	}
	if d, err := time.ParseDuration(name); err == nil && d > 0 {
		return TimeFilter{Name: name, Since: now.Add(-d)}, nil
	}

	since, err := dateparse.ParseIn(strings.TrimSpace(raw), now.Location())
	if err != nil {
		return TimeFilter{}, fmt.Errorf("unrecognised time filter %q", raw)
	}
	return TimeFilter{Name: since.Format("2006-01-02"), Since: since}, nil
}

// ByTime applies f to notes, keeping their order.
func ByTime(notes []note.Metadata, f TimeFilter) []note.Metadata {
	if f.Since.IsZero() {
		return notes
	}
	return lo.Filter(notes, func(n note.Metadata, _ int) bool {
		return !n.LastModified.Before(f.Since)
	})
}

// RelativeTime describes t relative to now in a compact form.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	day := 24 * time.Hour

	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < day:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 2*day:
		return "Yesterday"
	case d < 7*day:
		return fmt.Sprintf("%dd ago", int(d/day))
	case d < 30*day:
		return fmt.Sprintf("%dw ago", int(d/(7*day)))
	case d < 365*day:
		return fmt.Sprintf("%dmo ago", int(d/(30*day)))
	default:
		return fmt.Sprintf("%dy ago", int(d/(365*day)))
	}
}
