package content

import (
	"fmt"
	"strings"
)

const excalidrawHeading = "# 🎨 Excalidraw Drawing"

// IsExcalidraw reports whether text is an Excalidraw plugin drawing rather
// than prose.
func IsExcalidraw(text string) bool {
	return strings.Contains(text, "excalidraw-plugin:") || strings.Contains(text, "# Excalidraw Data")
}

func (f Filter) excalidrawPlaceholder(text, notePath string) string {
	var b strings.Builder
	b.WriteString(excalidrawHeading)
	b.WriteString("\n\n")
	b.WriteString("This note is an Excalidraw drawing. Open it in Obsidian to view or edit it.\n")

	seen := make(map[string]struct{})
	var refs []string
	for _, m := range drawingRefPattern.FindAllStringSubmatch(text, -1) {
		ref := strings.TrimSpace(m[1])
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return b.String()
	}

	b.WriteString("\n## Embedded Images\n\n")
	for _, ref := range refs {
		resolved, ok := "", false
		if f.Resolver != nil {
			resolved, ok = f.Resolver.Resolve(ref, notePath)
		}
		if ok {
			fmt.Fprintf(&b, "![%s](%s)\n", ref, FileURL(resolved))
		} else {
			fmt.Fprintf(&b, "- %s (not found)\n", ref)
		}
	}
	return b.String()
}
