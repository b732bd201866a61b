package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeNote(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write note %s: %v", name, err)
	}
	return path
}

func TestTagsFromFileHeadMergesInlineAndYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "note.md", "---\ntags: [bar, baz]\n---\nSome text #foo here.\n")

	got := TagsFromFileHead(path)
	want := []string{"#bar", "#baz", "#foo"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTagsFromFileHeadIgnoresTagsPastHead(t *testing.T) {
	dir := t.TempDir()
	content := "#early\n" + strings.Repeat("x", HeadSize) + "\n#late\n"
	path := writeNote(t, dir, "long.md", content)

	got := TagsFromFileHead(path)
	if len(got) != 1 || got[0] != "#early" {
		t.Fatalf("expected only #early, got %v", got)
	}
}

func TestTagsFromFileHeadMissingFile(t *testing.T) {
	got := TagsFromFileHead(filepath.Join(t.TempDir(), "missing.md"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil tag list, got %#v", got)
	}
}

func TestYAMLTagsAcceptsScalarAndTagKey(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"comma string", "---\ntags: one, two\n---\n", []string{"#one", "#two"}},
		{"list", "---\ntags:\n  - a\n  - '#b'\n---\n", []string{"#a", "#b"}},
		{"tag wins", "---\ntag: solo\ntags: [ignored]\n---\n", []string{"#solo"}},
		{"empty", "---\ntags:\n---\n", nil},
		{"no frontmatter", "tags: [x]\n", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := YAMLTags(tc.content)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestInlineTagsSkipsHeadingsAndNumbers(t *testing.T) {
	content := "# Heading\n#project/alpha and #2024 but #v2 plus url.com/#anchor #project/alpha"
	got := InlineTags(content)
	want := []string{"#project/alpha", "#v2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTagsForStringSortsCaseInsensitively(t *testing.T) {
	got := TagsForString("#zeta #Alpha #beta")
	want := []string{"#Alpha", "#beta", "#zeta"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStripFrontMatterOnlyRemovesLeadingBlock(t *testing.T) {
	content := "---\ntitle: x\n---\nbody\n---\nnot frontmatter\n---\n"
	got := StripFrontMatter(content)
	if got != "body\n---\nnot frontmatter\n---\n" {
		t.Fatalf("unexpected body %q", got)
	}

	if got := StripFrontMatter("plain\n---\nx\n---\n"); got != "plain\n---\nx\n---\n" {
		t.Fatalf("expected content without leading block to be untouched, got %q", got)
	}
}

func TestYAMLProperty(t *testing.T) {
	content := "---\ntitle: Weekly Review\naliases: [wr, review]\n---\n"
	if v, ok := YAMLProperty(content, "title"); !ok || v != "Weekly Review" {
		t.Fatalf("expected title, got %q (ok=%v)", v, ok)
	}
	if v, ok := YAMLProperty(content, "aliases"); !ok || v != "wr, review" {
		t.Fatalf("expected joined aliases, got %q (ok=%v)", v, ok)
	}
	if _, ok := YAMLProperty(content, "missing"); ok {
		t.Fatalf("expected missing key to report false")
	}

	data := ParseFrontMatter(content)
	if data["title"] != "Weekly Review" {
		t.Fatalf("expected parsed frontmatter title, got %v", data["title"])
	}
}

func TestCodeBlocks(t *testing.T) {
	content := "intro\n\n```go\nfmt.Println(1)\n```\n\ntext\n\n```\nplain\nlines\n```\n"
	blocks := CodeBlocks(content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 code blocks, got %d", len(blocks))
	}
	if blocks[0].Language != "go" || blocks[0].Code != "fmt.Println(1)" {
		t.Fatalf("unexpected first block %+v", blocks[0])
	}
	if blocks[1].Language != "" || blocks[1].Code != "plain\nlines" {
		t.Fatalf("unexpected second block %+v", blocks[1])
	}
}

func TestCodeBlockString(t *testing.T) {
	if got := (CodeBlock{Language: "go", Code: "a := 1\nb := 2"}).String(); got != "[go] a := 1" {
		t.Fatalf("expected [go] a := 1, got %q", got)
	}
	if got := (CodeBlock{Code: "plain"}).String(); got != "[text] plain" {
		t.Fatalf("expected [text] plain, got %q", got)
	}
}
