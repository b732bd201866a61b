package create

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

const blankNoteName = "Blank Note"

type options struct {
	folder   string
	tags     []string
	content  string
	openNote bool
}

func NewCmdCreate(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "create [name]",
		Aliases: []string{"new", "c"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note in the vault. Tags are written as frontmatter and the
			folder is relative to the vault root. Folder and tags default to the
			create section of the config file. Existing notes are never
			overwritten.

			Without a name, a blank note is created when create.blank_note is set,
			otherwise the name is asked for. --content - reads the body from stdin.
		`),
		Example: heredoc.Doc(`
			vaultnav create "Reading list" --folder inbox --tags books,todo
			echo "call back" | vaultnav create Phone --content -
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("folder") {
				opts.folder = s.Config.Create.Folder
			}
			if !cmd.Flags().Changed("tags") {
				opts.tags = s.Config.Create.Tags
			}
			return run(cmd, s, arg.HandleRef(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.folder, "folder", "", "Folder relative to the vault root")
	cmd.Flags().StringSliceVarP(&opts.tags, "tags", "t", nil, "Comma separated tags")
	cmd.Flags().StringVar(&opts.content, "content", "", "Note body, or - for stdin")
	cmd.Flags().BoolVarP(&opts.openNote, "open", "o", false, "Open the note after creating it")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, name string, opts options) error {
	v, err := s.SelectVault(cmd.Context())
	if err != nil {
		return err
	}

	if name == "" {
		name, err = promptName(s, v.Vault, opts.folder)
		if err != nil {
			return err
		}
	}

	body := opts.content
	if body == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read note content: %w", err)
		}
		body = string(data)
	}

	n, err := note.Create(v.Vault, note.CreateParams{
		Path:    opts.folder,
		Name:    name,
		Content: body,
		Tags:    arg.HandleTags(opts.tags),
	})
	if err != nil {
		return err
	}

	s.Logger.Info("created note", "vault", v.Name, "path", n.Path)
	fmt.Fprintln(cmd.OutOrStdout(), n.Path)

	if opts.openNote {
		return note.Open(v.Vault, n.Path, s.Config.Editor)
	}
	return nil
}

func promptName(s *state.State, v vault.Vault, folder string) (string, error) {
	if s.Config.Create.BlankNote {
		return freeName(filepath.Join(v.Path, filepath.FromSlash(folder)), blankNoteName), nil
	}
	if !cmdpkg.IsInteractive() {
		return "", fmt.Errorf("a note name is required")
	}

	input := textinput.New("Note name:")
	input.Placeholder = "Untitled"
	input.Validate = func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("name must not be empty")
		}
		return nil
	}
	return input.RunPrompt()
}

// freeName returns base, or base followed by the first number that does not
// collide with a note in dir.
func freeName(dir, base string) string {
	name := base
	for i := 1; note.Exists(filepath.Join(dir, name+constants.NoteExtension)); i++ {
		name = fmt.Sprintf("%s %d", base, i)
	}
	return name
}
