// Package content turns raw note text into the form shown in previews.
package content

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/parser"
)

// Options selects the optional pipeline stages.
type Options struct {
	RemoveYAML  bool
	RemoveLatex bool
	RemoveLinks bool
}

// Filter applies the display pipeline. Resolver may be nil, in which case
// image embeds are left untouched.
type Filter struct {
	Options  Options
	Resolver *ImageResolver
}

var (
	blockLatexPattern  = regexp.MustCompile(`(?s)\$\$.*?\$\$`)
	inlineLatexPattern = regexp.MustCompile(`\$[^$\n]+?\$`)
	imageEmbedPattern  = regexp.MustCompile(`(?i)!\[\[([^\]|#]+?\.(?:png|jpe?g|gif|bmp|svg|webp|avif))(?:\|([^\]]*))?\]\]`)
	drawingRefPattern  = regexp.MustCompile(`(?i)\[\[([^\]|#]+?\.(?:png|jpe?g|gif|bmp|svg|webp|avif))(?:\|[^\]]*)?\]\]`)
)

// Apply runs the pipeline in order: drawing placeholder (which short
// circuits), frontmatter, math, image embeds, then link brackets.
func (f Filter) Apply(text, notePath string) string {
	if IsExcalidraw(text) {
		return f.excalidrawPlaceholder(text, notePath)
	}

	if f.Options.RemoveYAML {
		text = parser.StripFrontMatter(text)
	}
	if f.Options.RemoveLatex {
		text = RemoveLatex(text)
	}
	if f.Resolver != nil {
		text = f.rewriteImages(text, notePath)
	}
	if f.Options.RemoveLinks {
		text = RemoveLinks(text)
	}
	return text
}

// RemoveLatex strips $$block$$ regions, then $inline$ ones.
func RemoveLatex(text string) string {
	text = blockLatexPattern.ReplaceAllString(text, "")
	return inlineLatexPattern.ReplaceAllString(text, "")
}

// RemoveLinks drops wiki-link brackets, keeping the link text.
func RemoveLinks(text string) string {
	text = strings.ReplaceAll(text, "[[", "")
	return strings.ReplaceAll(text, "]]", "")
}

func (f Filter) rewriteImages(text, notePath string) string {
	return imageEmbedPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := imageEmbedPattern.FindStringSubmatch(match)
		ref := strings.TrimSpace(groups[1])
		alt := strings.TrimSpace(groups[2])
		if alt == "" {
			alt = filepath.Base(ref)
		}

		resolved, ok := f.Resolver.Resolve(ref, notePath)
		if !ok {
			return fmt.Sprintf("[Image not found: %s]", ref)
		}
		return fmt.Sprintf("![%s](%s)", alt, FileURL(resolved))
	})
}

// FileURL renders an absolute path as a file:// URL.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}
