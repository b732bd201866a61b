package notes

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/vaultnav/internal/cache"
	"github.com/Paintersrp/vaultnav/internal/note"
)

const previewCacheEntries = 64

// previewer renders note previews and caches them by path, modification
// time and width.
type previewer struct {
	loader    *note.Loader
	cache     *cache.LRUCache[string, string]
	renderers map[int]*glamour.TermRenderer
	current   string
}

func newPreviewer(loader *note.Loader) *previewer {
	return &previewer{
		loader:    loader,
		cache:     cache.NewLRUCache[string, string](previewCacheEntries),
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

func previewKey(n note.Metadata, width int) string {
	return fmt.Sprintf("%s|%d|%d", n.Path, n.LastModified.UnixNano(), width)
}

func (p *previewer) show(n note.Metadata, f note.Filterer, width int) error {
	key := previewKey(n, width)
	if out, ok := p.cache.Get(key); ok {
		p.current = out
		return nil
	}

	loaded, err := p.loader.Load(n)
	if err != nil {
		p.current = "Error reading file"
		return err
	}

	markdown := note.Content(loaded, true, f)
	out, err := p.render(markdown, width)
	if err != nil {
		p.current = markdown
		return err
	}

	p.cache.Put(key, out)
	p.current = out
	return nil
}

func (p *previewer) render(markdown string, width int) (string, error) {
	r, ok := p.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dracula"),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(termenv.ANSI256),
		)
		if err != nil {
			return "", err
		}
		p.renderers[width] = r
	}
	return r.Render(markdown)
}

func (p *previewer) clear() {
	p.current = ""
}

func (p *previewer) purge() {
	p.cache.Purge()
	p.current = ""
}

func (p *previewer) view() string {
	return p.current
}
