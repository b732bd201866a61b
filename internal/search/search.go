// Package search narrows an in-memory note list to the notes matching a
// query.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/Paintersrp/vaultnav/internal/note"
)

// ContentFallbackThreshold is the title/path match count below which note
// bodies are also searched.
const ContentFallbackThreshold = 20

// ContentLoader returns the full text of a note.
type ContentLoader func(note.Metadata) (string, error)

// Options picks the strategy and its parameters.
type Options struct {
	Fuzzy     bool
	Content   bool
	Threshold float64
	Load      ContentLoader
}

// Filter dispatches to Fuzzy or Literal.
func Filter(notes []note.Metadata, query string, opts Options) ([]note.Metadata, error) {
	if opts.Fuzzy {
		return Fuzzy(notes, query, opts.Content, opts.Threshold, opts.Load)
	}
	return Literal(notes, query, opts.Content, opts.Load)
}

// Literal keeps notes whose title or path contains query, ignoring case.
// When byContent is set and fewer than ContentFallbackThreshold notes
// matched, the remaining notes are searched by content and appended.
func Literal(notes []note.Metadata, query string, byContent bool, load ContentLoader) ([]note.Metadata, error) {
	if query == "" {
		return notes, nil
	}

	lower := strings.ToLower(query)
	matched := make(map[string]struct{})
	var tier []note.Metadata
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), lower) || strings.Contains(strings.ToLower(n.Path), lower) {
			tier = append(tier, n)
			matched[n.Path] = struct{}{}
		}
	}

	if !byContent || load == nil || len(tier) >= ContentFallbackThreshold {
		return tier, nil
	}

	extra, err := contentMatches(notes, matched, load, func(text string) bool {
		return strings.Contains(text, lower)
	})
	if err != nil {
		return nil, err
	}
	return append(tier, extra...), nil
}

// Fuzzy splits query into whitespace separated terms. Each term narrows the
// candidates left by the previous one; a candidate survives when the term
// fuzzy-matches its title or path within threshold. The content fallback
// requires every term as a literal substring.
func Fuzzy(notes []note.Metadata, query string, byContent bool, threshold float64, load ContentLoader) ([]note.Metadata, error) {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return notes, nil
	}
	candidates := notes
	for _, term := range terms {
		candidates = narrow(candidates, term, threshold)
		if len(candidates) == 0 {
			break
		}
	}

	if !byContent || load == nil || len(candidates) >= ContentFallbackThreshold {
		return candidates, nil
	}

	matched := make(map[string]struct{}, len(candidates))
	for _, n := range candidates {
		matched[n.Path] = struct{}{}
	}

	lowerTerms := lo.Map(terms, func(t string, _ int) string { return strings.ToLower(t) })
	extra, err := contentMatches(notes, matched, load, func(text string) bool {
		return containsAll(text, lowerTerms)
	})
	if err != nil {
		return nil, err
	}
	return append(candidates, extra...), nil
}

type scored struct {
	note  note.Metadata
	ratio float64
	score int
}

func narrow(notes []note.Metadata, term string, threshold float64) []note.Metadata {
	var kept []scored
	for _, n := range notes {
		best, ok := bestMatch(term, threshold, n.Title, n.Path)
		if ok {
			best.note = n
			kept = append(kept, best)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].ratio != kept[j].ratio {
			return kept[i].ratio < kept[j].ratio
		}
		return kept[i].score > kept[j].score
	})

	return lo.Map(kept, func(s scored, _ int) note.Metadata { return s.note })
}

func bestMatch(term string, threshold float64, fields ...string) (scored, bool) {
	var (
		best  scored
		found bool
	)
	for _, field := range fields {
		matches := fuzzy.Find(term, []string{field})
		if len(matches) == 0 {
			continue
		}
		ratio := WindowRatio(term, field)
		if ratio > threshold {
			continue
		}
		if !found || ratio < best.ratio || (ratio == best.ratio && matches[0].Score > best.score) {
			best = scored{ratio: ratio, score: matches[0].Score}
			found = true
		}
	}
	return best, found
}

// GapRatio is the share of the matched span not covered by matched
// characters. Contiguous matches score 0.
func GapRatio(indexes []int) float64 {
	if len(indexes) == 0 {
		return 1
	}
	span := indexes[len(indexes)-1] - indexes[0] + 1
	if span <= 0 {
		return 1
	}
	return float64(span-len(indexes)) / float64(span)
}

// WindowRatio is the gap ratio of the shortest window of field that holds
// term as a subsequence, ignoring case. A term found verbatim scores 0 and a
// term that is not a subsequence scores 1.
func WindowRatio(term, field string) float64 {
	t := []rune(strings.ToLower(term))
	f := []rune(strings.ToLower(field))
	if len(t) == 0 {
		return 0
	}
	if strings.Contains(string(f), string(t)) {
		return 0
	}

	best := -1
	for start := range f {
		if f[start] != t[0] {
			continue
		}
		end, ti := start, 0
		for ; end < len(f) && ti < len(t); end++ {
			if f[end] == t[ti] {
				ti++
			}
		}
		if ti < len(t) {
			break
		}
		end--

		// Walk back from end to the latest start that still holds the term.
		from := end
		for ti = len(t) - 1; ti >= 0; from-- {
			if f[from] == t[ti] {
				ti--
			}
		}
		from++

		if span := end - from + 1; best < 0 || span < best {
			best = span
		}
	}
	if best < 0 {
		return 1
	}
	return float64(best-len(t)) / float64(best)
}

func contentMatches(
	notes []note.Metadata,
	skip map[string]struct{},
	load ContentLoader,
	match func(lowerText string) bool,
) ([]note.Metadata, error) {
	var out []note.Metadata
	for _, n := range notes {
		if _, ok := skip[n.Path]; ok {
			continue
		}
		text, err := load(n)
		if err != nil {
			return nil, err
		}
		if match(strings.ToLower(text)) {
			out = append(out, n)
		}
	}
	return out, nil
}

func containsAll(text string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// ByTag keeps notes carrying tag. An empty tag keeps everything.
func ByTag(notes []note.Metadata, tag string) []note.Metadata {
	if tag == "" {
		return notes
	}
	return lo.Filter(notes, func(n note.Metadata, _ int) bool { return n.HasTag(tag) })
}

// Bookmarked keeps bookmarked notes.
func Bookmarked(notes []note.Metadata) []note.Metadata {
	return lo.Filter(notes, func(n note.Metadata, _ int) bool { return n.Bookmarked })
}

// Truncate caps the list for display.
func Truncate[T any](items []T, max int) []T {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}

// Snippet returns the text around the first case-insensitive occurrence of
// term, or "" when there is none.
func Snippet(body, term string) string {
	if term == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(body), strings.ToLower(term))
	if idx < 0 {
		return ""
	}
	runeIdx := utf8.RuneCountInString(body[:idx])
	return bodySnippet(body, runeIdx, utf8.RuneCountInString(term))
}

func bodySnippet(body string, index, termLen int) string {
	if termLen <= 0 {
		termLen = 1
	}

	runes := []rune(body)
	start := index
	end := index + termLen
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	const window = 40
	snippetStart := max(0, start-window)
	snippetEnd := min(len(runes), end+window)

	snippet := strings.Join(strings.Fields(string(runes[snippetStart:snippetEnd])), " ")
	if snippetStart > 0 {
		snippet = "…" + snippet
	}
	if snippetEnd < len(runes) {
		snippet = snippet + "…"
	}
	return snippet
}
