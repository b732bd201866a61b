package arg

import (
	"strings"

	"github.com/Paintersrp/vaultnav/internal/pathutil"
)

// HandleQuery joins positional arguments into one query, so quoting is
// optional.
func HandleQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// HandleRef returns the first argument, or "" when there is none.
func HandleRef(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

// HandleTags splits comma separated tag lists, dropping any leading #.
func HandleTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, t := range pathutil.SplitList(v) {
			if t = strings.TrimPrefix(t, "#"); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
