package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

// ErrNoSelection is returned when the picker is closed without a choice.
var ErrNoSelection = errors.New("no selection")

// FuzzyFinder picks a note from a loaded list with a rendered preview.
type FuzzyFinder struct {
	Header string

	notes    []note.Metadata
	loader   *note.Loader
	filter   note.Filterer
	renderer *glamour.TermRenderer
}

func NewFuzzyFinder(notes []note.Metadata, loader *note.Loader, filter note.Filterer, header string) *FuzzyFinder {
	return &FuzzyFinder{
		Header: header,
		notes:  notes,
		loader: loader,
		filter: filter,
	}
}

// Find runs the picker, pre-filled with query, and returns the chosen note.
func (f *FuzzyFinder) Find(query string) (note.Metadata, error) {
	if len(f.notes) == 0 {
		return note.Metadata{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return Label(f.notes[i])
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return note.Metadata{}, ErrNoSelection
		}
		return note.Metadata{}, fmt.Errorf("error selecting note: %w", err)
	}

	return f.notes[idx], nil
}

// Label is the picker line for n: its title and tags.
func Label(n note.Metadata) string {
	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", n.Title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", n.Title, strings.Join(n.Tags, ", "))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	n, err := f.loader.Load(f.notes[i])
	if err != nil {
		return "Error reading file"
	}

	return f.render(note.Content(n, true, f.filter))
}

func (f *FuzzyFinder) render(markdown string) string {
	if f.renderer == nil {
		r, err := NewRenderer()
		if err != nil {
			return markdown
		}
		f.renderer = r
	}

	out, err := f.renderer.Render(markdown)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}

// NewRenderer returns the markdown renderer used for every preview.
func NewRenderer() (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)
}

// FindVault picks a vault, labelling each with its display name and path.
func FindVault(vaults []vaultmeta.Enhanced, header string) (vaultmeta.Enhanced, error) {
	if len(vaults) == 0 {
		return vaultmeta.Enhanced{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return VaultSummary(vaults[i])
		}),
	}
	if header != "" {
		options = append(options, fuzzyfinder.WithHeader(header))
	}

	idx, err := fuzzyfinder.Find(vaults, func(i int) string {
		return vaults[i].DisplayName()
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return vaultmeta.Enhanced{}, ErrNoSelection
		}
		return vaultmeta.Enhanced{}, fmt.Errorf("error selecting vault: %w", err)
	}
	return vaults[idx], nil
}

// VaultSummary describes a vault for previews and listings.
func VaultSummary(e vaultmeta.Enhanced) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nPath: %s\n", e.DisplayName(), e.Path)
	if e.Metadata.IsFavorite {
		b.WriteString("Favourite")
		if e.Metadata.HotkeyIndex > 0 {
			fmt.Fprintf(&b, " (hotkey %d)", e.Metadata.HotkeyIndex)
		}
		b.WriteString("\n")
	}
	if e.Metadata.LastAccessed.Unix() > 0 {
		fmt.Fprintf(&b, "Last opened: %s\n", e.Metadata.LastAccessed.Local().Format("2006-01-02 15:04"))
	}
	return b.String()
}
