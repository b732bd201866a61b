package vault

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/pathutil"
)

// WalkOptions controls which files WalkFiles returns.
type WalkOptions struct {
	// ConfigFileName is skipped along with the reserved folders.
	ConfigFileName string
	// Excluded holds extra folders, relative to the root or absolute.
	Excluded   []string
	Extensions []string
}

// WalkFiles returns matching files under root in depth-first pre-order.
// Symbolic links are followed; a directory reached twice through links is
// walked once and dangling links are skipped. Filesystem errors abort the
// walk.
func WalkFiles(root string, opts WalkOptions) ([]string, error) {
	reserved := append([]string(nil), constants.ReservedFolders...)
	if opts.ConfigFileName != "" {
		reserved = append(reserved, opts.ConfigFileName)
	}

	w := &walker{
		reserved:   reserved,
		excluded:   pathutil.ResolveExcluded(root, opts.Excluded),
		extensions: opts.Extensions,
		visited:    make(map[string]struct{}),
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}
	w.visited[realRoot] = struct{}{}

	if err := w.walk(filepath.Clean(root), realRoot); err != nil {
		return nil, err
	}
	return w.files, nil
}

type walker struct {
	reserved   []string
	excluded   []string
	extensions []string
	visited    map[string]struct{}
	files      []string
}

// walk reads dir, whose resolved location is realDir.
func (w *walker) walk(dir, realDir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		realPath := filepath.Join(realDir, entry.Name())
		mode := entry.Type()

		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			mode = info.Mode().Type()
			if mode.IsDir() {
				if realPath, err = filepath.EvalSymlinks(path); err != nil {
					continue
				}
			}
		}

		switch {
		case mode.IsDir():
			if slices.Contains(w.reserved, entry.Name()) || pathutil.IsExcluded(path, w.excluded) {
				continue
			}
			if _, seen := w.visited[realPath]; seen {
				continue
			}
			w.visited[realPath] = struct{}{}
			if err := w.walk(path, realPath); err != nil {
				return err
			}

		case mode.IsRegular():
			if pathutil.IsExcluded(path, w.excluded) {
				continue
			}
			if acceptFile(entry.Name(), w.extensions) {
				w.files = append(w.files, path)
			}
		}
	}
	return nil
}

func acceptFile(name string, extensions []string) bool {
	if strings.Contains(name, ".excalidraw") {
		return false
	}
	for _, ext := range extensions {
		if name == ext {
			return false
		}
		if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ExcludedFolders splits the comma separated user setting.
func ExcludedFolders(raw string) []string {
	return pathutil.SplitList(raw)
}

// NotePaths walks a vault for markdown notes, honouring the user's excluded
// folders and the vault's own ignore filters.
func NotePaths(v Vault, configFileName, excludedFolders string) ([]string, error) {
	excluded := ExcludedFolders(excludedFolders)
	excluded = append(excluded, ReadAppConfig(v, configFileName).UserIgnoreFilters...)

	return WalkFiles(v.Path, WalkOptions{
		ConfigFileName: configFileName,
		Excluded:       excluded,
		Extensions:     []string{constants.NoteExtension},
	})
}
