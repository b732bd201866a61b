package note

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Paintersrp/vaultnav/internal/cache"
)

const defaultCacheEntries = 256

type cached struct {
	modTime time.Time
	content string
}

// Loader reads note content on demand. Reads are cached per path and
// invalidated when the file's modification time changes.
type Loader struct {
	cache *cache.LRUCache[string, cached]
}

func NewLoader(entries int) *Loader {
	if entries <= 0 {
		entries = defaultCacheEntries
	}
	return &Loader{cache: cache.NewLRUCache[string, cached](entries)}
}

// Load returns m together with its full text. The caller is expected to have
// checked that the file exists; read errors are returned as is, with a
// missing file reported as ErrNotFound.
func (l *Loader) Load(m Metadata) (WithContent, error) {
	info, err := os.Stat(m.Path)
	if err != nil {
		return WithContent{}, wrapReadErr(m.Path, err)
	}

	if l != nil {
		if hit, ok := l.cache.Get(m.Path); ok && hit.modTime.Equal(info.ModTime()) {
			return WithContent{Metadata: m.Clone(), Content: hit.content}, nil
		}
	}

	data, err := os.ReadFile(m.Path)
	if err != nil {
		return WithContent{}, wrapReadErr(m.Path, err)
	}

	content := string(data)
	if l != nil {
		l.cache.Put(m.Path, cached{modTime: info.ModTime(), content: content})
	}
	return WithContent{Metadata: m.Clone(), Content: content}, nil
}

// Text is Load without the metadata, for callers that only scan content.
func (l *Loader) Text(m Metadata) (string, error) {
	n, err := l.Load(m)
	if err != nil {
		return "", err
	}
	return n.Content, nil
}

// Forget drops any cached content for path.
func (l *Loader) Forget(path string) {
	if l != nil {
		l.cache.Remove(path)
	}
}

// Purge drops every cached entry.
func (l *Loader) Purge() {
	if l != nil {
		l.cache.Purge()
	}
}

func wrapReadErr(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("read note %s: %w", path, err)
}

// Filterer rewrites raw note text for display.
type Filterer interface {
	Apply(text, notePath string) string
}

// Content returns the raw text of n, or its filtered projection when filter
// is set and f is non-nil.
func Content(n WithContent, filter bool, f Filterer) string {
	if !filter || f == nil {
		return n.Content
	}
	return f.Apply(n.Content, n.Path)
}
