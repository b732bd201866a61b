package search

import (
	"testing"
	"time"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

func TestParseTimeFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := map[string]time.Time{
		"":    {},
		"all": {},
		"24h": now.Add(-24 * time.Hour),
		"7d":  now.Add(-7 * 24 * time.Hour),
		"30D": now.Add(-30 * 24 * time.Hour),
		"90m": now.Add(-90 * time.Minute),
	}
	for in, want := range cases {
		f, err := ParseTimeFilter(in, now)
		if err != nil {
			t.Fatalf("ParseTimeFilter(%q) returned error: %v", in, err)
		}
		if !f.Since.Equal(want) {
			t.Fatalf("ParseTimeFilter(%q).Since = %v, want %v", in, f.Since, want)
		}
	}

	f, err := ParseTimeFilter("2024-06-01", now)
	if err != nil {
		t.Fatalf("expected date to parse: %v", err)
	}
	if f.Since.Year() != 2024 || f.Since.Month() != time.June || f.Since.Day() != 1 {
		t.Fatalf("unexpected date filter %v", f.Since)
	}

	if _, err := ParseTimeFilter("whenever", now); err == nil {
		t.Fatalf("expected garbage filter to fail")
	}
}

func TestByTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	notes := []note.Metadata{
		{Title: "fresh", LastModified: now.Add(-time.Hour)},
		{Title: "week", LastModified: now.Add(-6 * 24 * time.Hour)},
		{Title: "old", LastModified: now.Add(-60 * 24 * time.Hour)},
	}

	f, _ := ParseTimeFilter("7d", now)
	if titles(ByTime(notes, f)) != "fresh,week" {
		t.Fatalf("unexpected 7d filter result %q", titles(ByTime(notes, f)))
	}

	f, _ = ParseTimeFilter("all", now)
	if len(ByTime(notes, f)) != 3 {
		t.Fatalf("expected all filter to keep everything")
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{30 * time.Hour, "Yesterday"},
		{4 * day, "4d ago"},
		{15 * day, "2w ago"},
		{95 * day, "3mo ago"},
		{800 * day, "2y ago"},
	}
	for _, tc := range cases {
		if got := RelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("RelativeTime(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestMediaFilter(t *testing.T) {
	media := []vault.Media{
		{Title: "diagram.png", Path: "/v/assets/diagram.png"},
		{Title: "song.mp3", Path: "/v/audio/song.mp3"},
		{Title: "holiday.jpg", Path: "/v/trips/holiday.jpg"},
	}
	notes := []note.Metadata{
		{Title: "Trip report", Path: "/v/Trip report.md"},
		{Title: "Other", Path: "/v/Other.md"},
	}
	load := mapLoader(map[string]string{
		"/v/Trip report.md": "![[song.mp3]]",
		"/v/Other.md":       "![[diagram.png]]",
	})

	got, err := Media(media, "trip", notes, load)
	if err != nil {
		t.Fatalf("Media returned error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "song.mp3" || got[1].Title != "holiday.jpg" {
		t.Fatalf("unexpected media %+v", got)
	}

	got, _ = Media(media, "", notes, load)
	if len(got) != 3 {
		t.Fatalf("expected empty query to keep all media")
	}
}
