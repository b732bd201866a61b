package content

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultMaxDepth = 16
	DefaultMaxNodes = 20000
)

// ImageResolver locates files referenced by image embeds. The last resort
// search is breadth-first and bounded by MaxDepth levels and MaxNodes
// visited entries.
type ImageResolver struct {
	VaultPath        string
	AttachmentFolder string
	MaxDepth         int
	MaxNodes         int
}

// Resolve returns the absolute path of ref. Candidates are tried in order:
// the reference as a vault path, the attachment folder ("./" meaning the
// note's folder), the vault root, the note's folder, then a vault search.
func (r *ImageResolver) Resolve(ref, notePath string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	ref = filepath.FromSlash(strings.ReplaceAll(ref, "\\", "/"))
	noteDir := filepath.Dir(notePath)
	name := filepath.Base(ref)

	var candidates []string
	if filepath.IsAbs(ref) {
		candidates = append(candidates, ref)
	} else {
		candidates = append(candidates, filepath.Join(r.VaultPath, ref))
	}

	switch folder := strings.TrimSpace(r.AttachmentFolder); {
	case folder == "./" || folder == ".":
		candidates = append(candidates, filepath.Join(noteDir, name))
	case strings.HasPrefix(folder, "./"):
		candidates = append(candidates, filepath.Join(noteDir, folder[2:], name))
	case folder != "" && folder != "/":
		candidates = append(candidates, filepath.Join(r.VaultPath, folder, name))
	}

	candidates = append(candidates,
		filepath.Join(r.VaultPath, name),
		filepath.Join(noteDir, name),
	)

	for _, c := range candidates {
		if isFile(c) {
			return c, true
		}
	}

	return r.search(name)
}

func (r *ImageResolver) search(name string) (string, bool) {
	if r.VaultPath == "" {
		return "", false
	}

	maxDepth, maxNodes := r.MaxDepth, r.MaxNodes
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	type dir struct {
		path  string
		depth int
	}

	queue := []dir{{path: r.VaultPath}}
	visited := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(current.path)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			visited++
			if visited > maxNodes {
				return "", false
			}
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			full := filepath.Join(current.path, entry.Name())
			if entry.IsDir() {
				if current.depth+1 < maxDepth {
					queue = append(queue, dir{path: full, depth: current.depth + 1})
				}
				continue
			}
			if entry.Name() == name {
				return full, true
			}
		}
	}

	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
