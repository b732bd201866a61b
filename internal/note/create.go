package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/parser"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// CreateParams describes a new note. Path is a folder relative to the vault
// root.
type CreateParams struct {
	Path    string
	Name    string
	Content string
	Tags    []string
}

// Create writes a new note and returns its metadata. Existing files are never
// overwritten.
func Create(v vault.Vault, params CreateParams) (Metadata, error) {
	name := strings.TrimSpace(params.Name)
	name = strings.TrimSuffix(name, constants.NoteExtension)
	if name == "" {
		return Metadata{}, fmt.Errorf("note name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return Metadata{}, fmt.Errorf("note name %q must not contain path separators", name)
	}

	dir := filepath.Join(v.Path, filepath.FromSlash(strings.TrimSpace(params.Path)))
	if rel, err := filepath.Rel(v.Path, dir); err != nil || strings.HasPrefix(rel, "..") {
		return Metadata{}, fmt.Errorf("folder %q is outside the vault", params.Path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Metadata{}, err
	}

	path := filepath.Join(dir, name+constants.NoteExtension)
	body, err := renderNote(params.Content, params.Tags)
	if err != nil {
		return Metadata{}, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Metadata{}, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return Metadata{}, err
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		os.Remove(path)
		return Metadata{}, err
	}
	if err := f.Close(); err != nil {
		return Metadata{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Title:        name,
		Path:         path,
		LastModified: info.ModTime(),
		Tags:         parser.TagsForString(body),
	}, nil
}

func renderNote(content string, tags []string) (string, error) {
	var clean []string
	for _, t := range tags {
		for _, part := range strings.Split(t, ",") {
			part = strings.TrimPrefix(strings.TrimSpace(part), "#")
			if part != "" {
				clean = append(clean, part)
			}
		}
	}
	if len(clean) == 0 {
		return content, nil
	}

	front, err := yaml.Marshal(map[string][]string{"tags": clean})
	if err != nil {
		return "", err
	}
	return "---\n" + string(front) + "---\n" + content, nil
}

// Delete removes the note file and any bookmark pointing at it.
func Delete(v vault.Vault, configFileName string, m Metadata) error {
	if err := os.Remove(m.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, m.Path)
		}
		return err
	}
	if m.Bookmarked {
		return RemoveBookmark(v, configFileName, m.Path)
	}
	return nil
}
