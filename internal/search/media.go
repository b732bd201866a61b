package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// Media keeps media whose title or path contains query, plus media mentioned
// by notes whose title contains query.
func Media(media []vault.Media, query string, notes []note.Metadata, load ContentLoader) ([]vault.Media, error) {
	if query == "" {
		return media, nil
	}
	lower := strings.ToLower(query)

	var mentioned []string
	if load != nil {
		for _, n := range notes {
			if !strings.Contains(strings.ToLower(n.Title), lower) {
				continue
			}
			text, err := load(n)
			if err != nil {
				return nil, err
			}
			mentioned = append(mentioned, text)
		}
	}

	return lo.Filter(media, func(m vault.Media, _ int) bool {
		if strings.Contains(strings.ToLower(m.Title), lower) || strings.Contains(strings.ToLower(m.Path), lower) {
			return true
		}
		for _, text := range mentioned {
			if strings.Contains(text, m.Title) {
				return true
			}
		}
		return false
	}), nil
}
