package content

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestResolveOrder(t *testing.T) {
	root := t.TempDir()
	explicit := writeFile(t, root, "img/a.png", "")
	attach := writeFile(t, root, "Attachments/b.png", "")
	rootImg := writeFile(t, root, "c.png", "")
	noteDir := writeFile(t, root, "notes/d.png", "")
	deep := writeFile(t, root, "x/y/z/e.png", "")
	writeFile(t, root, ".hidden/f.png", "")
	notePath := filepath.Join(root, "notes", "n.md")

	r := &ImageResolver{VaultPath: root, AttachmentFolder: "Attachments"}

	cases := []struct {
		ref  string
		want string
		ok   bool
	}{
		{"img/a.png", explicit, true},
		{"b.png", attach, true},
		{"c.png", rootImg, true},
		{"d.png", noteDir, true},
		{"e.png", deep, true},
		{"f.png", "", false},
		{"nope.png", "", false},
	}

	for _, tc := range cases {
		got, ok := r.Resolve(tc.ref, notePath)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Resolve(%q) = %q, %v; want %q, %v", tc.ref, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveSameFolderAttachment(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "g.png", "")
	local := writeFile(t, root, "notes/g.png", "")

	r := &ImageResolver{VaultPath: root, AttachmentFolder: "./"}
	got, ok := r.Resolve("sub/g.png", filepath.Join(root, "notes", "n.md"))
	if !ok || got != local {
		t.Fatalf("expected note-folder attachment %q, got %q (ok=%v)", local, got, ok)
	}
}

func TestSearchHonoursBudgets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c/deep.png", "")

	shallow := &ImageResolver{VaultPath: root, MaxDepth: 2, MaxNodes: 100}
	if _, ok := shallow.Resolve("deep.png", filepath.Join(root, "n.md")); ok {
		t.Fatalf("expected depth budget to stop the search")
	}

	for i := 0; i < 10; i++ {
		writeFile(t, root, fmt.Sprintf("filler/%02d.txt", i), "")
	}
	tight := &ImageResolver{VaultPath: root, MaxDepth: 10, MaxNodes: 5}
	if _, ok := tight.Resolve("deep.png", filepath.Join(root, "n.md")); ok {
		t.Fatalf("expected node budget to stop the search")
	}

	roomy := &ImageResolver{VaultPath: root, MaxDepth: 10, MaxNodes: 100}
	if _, ok := roomy.Resolve("deep.png", filepath.Join(root, "n.md")); !ok {
		t.Fatalf("expected search to find deep.png within budget")
	}
}
