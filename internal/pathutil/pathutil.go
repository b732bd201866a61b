package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault directory.
// The returned path always uses forward slashes.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// ResolveExcluded turns user supplied exclusions into absolute, normalized
// paths. Relative entries are anchored at root; blanks are dropped.
func ResolveExcluded(root string, entries []string) []string {
	resolved := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		entry = strings.TrimRight(strings.ReplaceAll(entry, "\\", "/"), "/")
		if entry == "" {
			continue
		}

		p := NormalizePath(entry)
		if !filepath.IsAbs(p) {
			p = filepath.Join(NormalizePath(root), p)
		}
		resolved = append(resolved, p)
	}

	return resolved
}

// IsExcluded reports whether p equals, or lives beneath, any of the excluded
// paths.
func IsExcluded(p string, excluded []string) bool {
	target := NormalizePath(p)
	for _, ex := range excluded {
		base := NormalizePath(ex)
		if base == "" {
			continue
		}
		if target == base {
			return true
		}

		prefix := base
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}

	return false
}

// SplitList splits a comma separated setting, trimming each entry and
// dropping empty ones.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
