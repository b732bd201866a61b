// Package note loads note records from a vault and manages their lifecycle:
// lazy content loads, bookmarks, creation and deletion.
package note

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/parser"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

var (
	ErrNotFound = errors.New("note not found")
	ErrExists   = errors.New("note already exists")
)

// Metadata is the lightweight record produced for every discovered note.
// Path is absolute and unique within a load.
type Metadata struct {
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	LastModified time.Time `json:"lastModified"`
	Tags         []string  `json:"tags"`
	Bookmarked   bool      `json:"bookmarked"`
}

// WithContent is a note whose full text has been read.
type WithContent struct {
	Metadata
	Content string `json:"content"`
}

// TitleFromPath strips the directory and markdown extension.
func TitleFromPath(path string) string {
	title := strings.TrimSuffix(filepath.Base(path), constants.NoteExtension)
	if title == "" {
		return constants.DefaultNoteTitle
	}
	return title
}

// Exists reports whether the note file is still on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Clone returns a copy of m that shares no slices with it.
func (m Metadata) Clone() Metadata {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}

// HasTag reports whether m carries tag. The leading # is optional.
func (m Metadata) HasTag(tag string) bool {
	if tag == "" {
		return false
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// LoadOptions carries the vault settings a note load needs.
type LoadOptions struct {
	ConfigFileName  string
	ExcludedFolders string
	Logger          *logging.Logger
}

// LoadNotes builds a metadata record for every note in v, newest first. Walk
// errors are returned; per-file stat failures drop the file.
func LoadNotes(v vault.Vault, opts LoadOptions) ([]Metadata, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	timer := logger.Start("load-notes")

	paths, err := vault.NotePaths(v, opts.ConfigFileName, opts.ExcludedFolders)
	if err != nil {
		return nil, err
	}

	bookmarked := make(map[string]struct{})
	for _, p := range BookmarkedPaths(v, opts.ConfigFileName) {
		bookmarked[filepath.Join(v.Path, filepath.FromSlash(p))] = struct{}{}
	}

	notes := make([]Metadata, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			logger.Warn("skipping unreadable note", "path", p, "err", err)
			continue
		}

		_, isBookmarked := bookmarked[p]
		notes = append(notes, Metadata{
			Title:        TitleFromPath(p),
			Path:         p,
			LastModified: info.ModTime(),
			Tags:         parser.TagsFromFileHead(p),
			Bookmarked:   isBookmarked,
		})
	}

	SortByModified(notes)
	timer.Stop("vault", v.Name, "count", len(notes))
	return notes, nil
}

// Refresh re-reads the file system state of a single note.
func Refresh(m Metadata) (Metadata, error) {
	info, err := os.Stat(m.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Metadata{}, ErrNotFound
		}
		return Metadata{}, err
	}

	refreshed := m.Clone()
	refreshed.LastModified = info.ModTime()
	refreshed.Tags = parser.TagsFromFileHead(m.Path)
	return refreshed, nil
}

// SortByModified orders notes newest first, keeping load order for ties.
func SortByModified(notes []Metadata) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].LastModified.After(notes[j].LastModified)
	})
}

// TagsForNotes returns every tag used by notes, sorted.
func TagsForNotes(notes []Metadata) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, n := range notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	parser.SortTags(tags)
	return tags
}

// TagCounts returns how many notes carry each tag.
func TagCounts(notes []Metadata) map[string]int {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}
	return counts
}
