package note

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Paintersrp/vaultnav/internal/pathutil"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

const bookmarksFile = "bookmarks.json"

// BookmarkItem mirrors an entry of the vault's bookmarks.json. Groups nest
// further items.
type BookmarkItem struct {
	Type    string         `json:"type"`
	Ctime   int64          `json:"ctime,omitempty"`
	Path    string         `json:"path,omitempty"`
	Title   string         `json:"title,omitempty"`
	Subpath string         `json:"subpath,omitempty"`
	Items   []BookmarkItem `json:"items,omitempty"`
}

type bookmarkFile struct {
	Items []BookmarkItem `json:"items"`
}

func bookmarksPath(v vault.Vault, configFileName string) string {
	return filepath.Join(v.Path, configFileName, bookmarksFile)
}

func readBookmarks(v vault.Vault, configFileName string) (bookmarkFile, error) {
	var bf bookmarkFile
	data, err := os.ReadFile(bookmarksPath(v, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return bf, nil
		}
		return bf, err
	}
	if err := json.Unmarshal(data, &bf); err != nil {
		return bookmarkFile{}, err
	}
	return bf, nil
}

// BookmarkedPaths lists the vault-relative paths of bookmarked files,
// including those inside groups. Unreadable files yield none.
func BookmarkedPaths(v vault.Vault, configFileName string) []string {
	bf, err := readBookmarks(v, configFileName)
	if err != nil {
		return nil
	}
	return collectFiles(bf.Items)
}

func collectFiles(items []BookmarkItem) []string {
	var paths []string
	for _, item := range items {
		switch item.Type {
		case "file":
			if item.Path != "" {
				paths = append(paths, item.Path)
			}
		case "group":
			paths = append(paths, collectFiles(item.Items)...)
		}
	}
	return paths
}

// AddBookmark bookmarks the note at path unless it already is.
func AddBookmark(v vault.Vault, configFileName, path string) error {
	rel, err := pathutil.VaultRelative(v.Path, path)
	if err != nil {
		return err
	}

	bf, err := readBookmarks(v, configFileName)
	if err != nil {
		return fmt.Errorf("read bookmarks: %w", err)
	}

	for _, p := range collectFiles(bf.Items) {
		if p == rel {
			return nil
		}
	}

	bf.Items = append(bf.Items, BookmarkItem{
		Type:  "file",
		Ctime: time.Now().UnixMilli(),
		Path:  rel,
	})
	return writeBookmarks(v, configFileName, bf)
}

// RemoveBookmark removes every bookmark of the note at path.
func RemoveBookmark(v vault.Vault, configFileName, path string) error {
	rel, err := pathutil.VaultRelative(v.Path, path)
	if err != nil {
		return err
	}

	bf, err := readBookmarks(v, configFileName)
	if err != nil {
		return fmt.Errorf("read bookmarks: %w", err)
	}

	items, removed := removeFile(bf.Items, rel)
	if !removed {
		return nil
	}
	bf.Items = items
	return writeBookmarks(v, configFileName, bf)
}

func removeFile(items []BookmarkItem, rel string) ([]BookmarkItem, bool) {
	out := make([]BookmarkItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.Type == "file" && item.Path == rel {
			removed = true
			continue
		}
		if item.Type == "group" {
			var nested bool
			item.Items, nested = removeFile(item.Items, rel)
			removed = removed || nested
		}
		out = append(out, item)
	}
	return out, removed
}

func writeBookmarks(v vault.Vault, configFileName string, bf bookmarkFile) error {
	if bf.Items == nil {
		bf.Items = []BookmarkItem{}
	}
	data, err := json.MarshalIndent(bf, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(bookmarksPath(v, configFileName), data)
}

// writeFileAtomic writes data to a temp file beside path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
