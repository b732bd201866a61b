package note

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/pathutil"
)

// Resolve finds the note ref points at: an absolute path, a path relative
// to root (extension optional), or a title compared case-insensitively.
func Resolve(notes []Metadata, root, ref string) (Metadata, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Metadata{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	candidates := []string{pathutil.NormalizePath(ref)}
	if !filepath.IsAbs(candidates[0]) {
		candidates = []string{filepath.Join(root, candidates[0])}
	}
	if !strings.HasSuffix(ref, constants.NoteExtension) {
		candidates = append(candidates, candidates[0]+constants.NoteExtension)
	}

	for _, c := range candidates {
		for _, n := range notes {
			if n.Path == c {
				return n, nil
			}
		}
	}

	title := strings.TrimSuffix(ref, constants.NoteExtension)
	for _, n := range notes {
		if strings.EqualFold(n.Title, title) {
			return n, nil
		}
	}

	return Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Random picks a note using r, or the global source when r is nil.
func Random(notes []Metadata, r *rand.Rand) (Metadata, bool) {
	if len(notes) == 0 {
		return Metadata{}, false
	}
	var i int
	if r != nil {
		i = r.IntN(len(notes))
	} else {
		i = rand.IntN(len(notes))
	}
	return notes[i], true
}
