package parser

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type CodeBlock struct {
	Language string
	Code     string
}

// String names the block by language and first line.
func (b CodeBlock) String() string {
	first, _, _ := strings.Cut(b.Code, "\n")
	if len(first) > 48 {
		first = first[:48] + "..."
	}
	lang := b.Language
	if lang == "" {
		lang = "text"
	}
	return fmt.Sprintf("[%s] %s", lang, first)
}

// CodeBlocks returns the fenced code blocks of a markdown document in
// document order.
func CodeBlocks(content string) []CodeBlock {
	source := []byte(content)
	document := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []CodeBlock
	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}

			fenced, ok := n.(*ast.FencedCodeBlock)
			if !ok {
				return ast.WalkContinue, nil
			}

			var b strings.Builder
			lines := fenced.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				b.Write(segment.Value(source))
			}

			blocks = append(blocks, CodeBlock{
				Language: string(fenced.Language(source)),
				Code:     strings.TrimRight(b.String(), "\n"),
			})
			return ast.WalkSkipChildren, nil
		},
	)

	return blocks
}
