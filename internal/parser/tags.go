package parser

import (
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/vaultnav/internal/order"
)

// HeadSize is how much of a note is read when listing tags. Tags that only
// appear later in a file are not reported.
const HeadSize = 2048

var inlineTagPattern = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_/-]*[\p{L}_/-][\p{L}\p{N}_/-]*)`)

// TagsFromFileHead reads at most HeadSize bytes of path and extracts its
// tags. Errors yield no tags.
func TagsFromFileHead(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{}
	}
	defer f.Close()

	buf := make([]byte, HeadSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return []string{}
	}

	return TagsForString(string(buf[:n]))
}

// TagsForString merges inline and frontmatter tags, deduplicated and sorted.
func TagsForString(content string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, tag := range append(InlineTags(content), YAMLTags(content)...) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	SortTags(tags)
	if tags == nil {
		return []string{}
	}
	return tags
}

// InlineTags returns #tag tokens in order of first appearance.
func InlineTags(content string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, match := range inlineTagPattern.FindAllStringSubmatch(content, -1) {
		tag := "#" + match[1]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// YAMLTags reads the tag or tags frontmatter key. Either may be a list or a
// comma separated string; tag takes precedence.
func YAMLTags(content string) []string {
	front, _, ok := SplitFrontMatter(content)
	if !ok {
		return nil
	}

	var data struct {
		Tag  yaml.Node `yaml:"tag"`
		Tags yaml.Node `yaml:"tags"`
	}
	if err := yaml.Unmarshal([]byte(front), &data); err != nil {
		return nil
	}

	node := data.Tag
	if node.Kind == 0 {
		node = data.Tags
	}

	var tags []string
	for _, value := range flattenNode(&node) {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimPrefix(strings.TrimSpace(part), "#")
			if part == "" {
				continue
			}
			tags = append(tags, "#"+part)
		}
	}
	return tags
}

// SortTags orders tags with the shared alphabetical comparator.
func SortTags(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		return order.Less(tags[i], tags[j])
	})
}
