package note

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/pathutil"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// URIAction is an obsidian:// action.
type URIAction string

const (
	URIOpen   URIAction = "open"
	URINew    URIAction = "new"
	URISearch URIAction = "search"
)

// URITarget holds the parameters of an obsidian:// link.
type URITarget struct {
	Action  URIAction
	Vault   string
	Path    string
	Name    string
	Content string
	Query   string
}

// ObsidianURI builds a link the desktop app understands. Path must be
// vault-relative.
func ObsidianURI(t URITarget) string {
	q := url.Values{}
	if t.Vault != "" {
		q.Set("vault", t.Vault)
	}
	switch t.Action {
	case URINew:
		if t.Path != "" {
			q.Set("file", strings.TrimSuffix(t.Path, "/")+"/"+t.Name)
		} else {
			q.Set("name", t.Name)
		}
		if t.Content != "" {
			q.Set("content", t.Content)
		}
	case URISearch:
		q.Set("query", t.Query)
	default:
		t.Action = URIOpen
		q.Set("file", t.Path)
	}
	// Obsidian expects %20 rather than + for spaces.
	return "obsidian://" + string(t.Action) + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

// OpenURI builds the obsidian link for a note file.
func OpenURI(v vault.Vault, path string) (string, error) {
	rel, err := pathutil.VaultRelative(v.Path, path)
	if err != nil {
		return "", fmt.Errorf("unable to determine relative path for obsidian: %w", err)
	}
	return ObsidianURI(URITarget{Action: URIOpen, Vault: v.Name, Path: rel}), nil
}

// EditorLaunch is a prepared editor process. Wait reports whether the caller
// should hand the terminal over until it exits.
type EditorLaunch struct {
	Cmd  *exec.Cmd
	Wait bool
}

// EditorLaunchFor prepares the command that opens path with editor.
// "obsidian" opens the note through the desktop app.
func EditorLaunchFor(v vault.Vault, path, editor string) (*EditorLaunch, error) {
	editor = strings.TrimSpace(editor)
	switch editor {
	case "obsidian":
		uri, err := OpenURI(v, path)
		if err != nil {
			return nil, err
		}
		return systemOpen(uri)
	case "vscode", "code":
		return newEditorLaunch("code", []string{path}, false, true), nil
	case "":
		return nil, fmt.Errorf("editor not configured")
	default:
		fields := strings.Fields(editor)
		return newEditorLaunch(fields[0], append(fields[1:], path), true, false), nil
	}
}

func systemOpen(target string) (*EditorLaunch, error) {
	switch runtime.GOOS {
	case "darwin":
		return newEditorLaunch("open", []string{target}, false, true), nil
	case "linux", "freebsd", "openbsd":
		return newEditorLaunch("xdg-open", []string{target}, false, true), nil
	case "windows":
		return newEditorLaunch("cmd", []string{"/c", "start", "", target}, false, true), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// Open launches the editor and, for terminal editors, waits for it.
func Open(v vault.Vault, path, editor string) error {
	launch, err := EditorLaunchFor(v, path, editor)
	if err != nil {
		return err
	}

	if launch.Wait {
		launch.Cmd.Stdin = os.Stdin
		launch.Cmd.Stdout = os.Stdout
		launch.Cmd.Stderr = os.Stderr
		return launch.Cmd.Run()
	}
	return launch.Cmd.Start()
}

func newEditorLaunch(command string, args []string, wait bool, silence bool) *EditorLaunch {
	cmd := exec.Command(command, args...)
	if silence {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}
	return &EditorLaunch{Cmd: cmd, Wait: wait}
}
