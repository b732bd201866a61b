package parser

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterPattern = regexp.MustCompile(`(?s)\A\s*---[ \t]*\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|\z)`)

// SplitFrontMatter separates a leading YAML block from the body. ok is false
// when content has no such block.
func SplitFrontMatter(content string) (front, body string, ok bool) {
	loc := frontMatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", content, false
	}
	return content[loc[2]:loc[3]], content[loc[1]:], true
}

// StripFrontMatter removes a single leading YAML block.
func StripFrontMatter(content string) string {
	_, body, _ := SplitFrontMatter(content)
	return body
}

// ParseFrontMatter decodes the leading YAML block. Missing or malformed
// blocks yield nil.
func ParseFrontMatter(content string) map[string]any {
	front, _, ok := SplitFrontMatter(content)
	if !ok {
		return nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(front), &data); err != nil {
		return nil
	}
	return data
}

// YAMLProperty returns the string form of a top-level frontmatter key.
func YAMLProperty(content, key string) (string, bool) {
	front, _, ok := SplitFrontMatter(content)
	if !ok {
		return "", false
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(front), &root); err != nil || len(root.Content) == 0 {
		return "", false
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return "", false
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		values := flattenNode(mapping.Content[i+1])
		return strings.Join(values, ", "), true
	}
	return "", false
}

func flattenNode(node *yaml.Node) []string {
	switch node.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, child := range node.Content {
			out = append(out, flattenNode(child)...)
		}
		return out
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return []string{node.Value}
	case yaml.AliasNode:
		if node.Alias != nil {
			return flattenNode(node.Alias)
		}
	}
	return nil
}
