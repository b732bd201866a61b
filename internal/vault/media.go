package vault

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/constants"
)

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
	MediaDocument MediaKind = "document"
)

// Media is a non-note file stored in a vault.
type Media struct {
	Title string    `json:"title"`
	Path  string    `json:"path"`
	Kind  MediaKind `json:"kind"`
}

func MediaExtensions() []string {
	var exts []string
	exts = append(exts, constants.ImageExtensions...)
	exts = append(exts, constants.VideoExtensions...)
	exts = append(exts, constants.AudioExtensions...)
	exts = append(exts, constants.DocumentExtensions...)
	return exts
}

// KindOf classifies path by its extension.
func KindOf(path string) MediaKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(constants.ImageExtensions, ext):
		return MediaImage
	case slices.Contains(constants.VideoExtensions, ext):
		return MediaVideo
	case slices.Contains(constants.AudioExtensions, ext):
		return MediaAudio
	default:
		return MediaDocument
	}
}

// LoadMedia lists media files in v. Only the user's excluded folders apply.
func LoadMedia(v Vault, configFileName, excludedFolders string) ([]Media, error) {
	paths, err := WalkFiles(v.Path, WalkOptions{
		ConfigFileName: configFileName,
		Excluded:       ExcludedFolders(excludedFolders),
		Extensions:     MediaExtensions(),
	})
	if err != nil {
		return nil, err
	}

	media := make([]Media, 0, len(paths))
	for _, p := range paths {
		media = append(media, Media{
			Title: filepath.Base(p),
			Path:  p,
			Kind:  KindOf(p),
		})
	}
	return media, nil
}
