package show

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/parser"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

type options struct {
	raw  bool
	copy bool
	code bool
}

// copyFn is swapped in tests.
var copyFn = clipboard.WriteAll

func NewCmdShow(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "show [note]",
		Aliases: []string{"cat"},
		Short:   "Print a note, filtered for reading.",
		Long: heredoc.Doc(`
			Prints the note given by title or path. Unless --raw is set, the
			configured content filters run first (frontmatter, LaTeX and link
			removal, image embeds resolved to file links), and on a terminal the
			result is rendered as markdown.

			--code prints only the fenced code blocks. Combined with --copy, the
			chosen block is copied to the clipboard instead.
		`),
		Example: heredoc.Doc(`
			vaultnav show "Project plan"
			vaultnav show projects/plan.md --raw
			vaultnav show snippets --code --copy
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleRef(args), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.raw, "raw", "r", false, "Print the file as stored")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy to the clipboard instead of printing")
	cmd.Flags().BoolVar(&opts.code, "code", false, "Only the fenced code blocks")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref string, opts options) error {
	v, m, err := cmdpkg.ResolveNote(cmd, s, ref)
	if err != nil {
		return err
	}

	n, err := s.Loader.Load(m)
	if err != nil {
		return err
	}

	if opts.code {
		return showCode(cmd, n, opts.copy)
	}

	text := note.Content(n, !opts.raw, s.Filter(v.Vault))
	if opts.copy {
		if err := copyFn(text); err != nil {
			return fmt.Errorf("failed to copy note: %w", err)
		}
		cmd.Printf("Copied %s to the clipboard.\n", n.Title)
		return nil
	}

	if !opts.raw && cmdpkg.IsInteractive() {
		if r, err := fzf.NewRenderer(); err == nil {
			if out, err := r.Render(text); err == nil {
				text = out
			}
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func showCode(cmd *cobra.Command, n note.WithContent, copyBlock bool) error {
	blocks := parser.CodeBlocks(n.Content)
	if len(blocks) == 0 {
		return fmt.Errorf("%s has no code blocks", n.Title)
	}

	if !copyBlock {
		for i, b := range blocks {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.Code)
		}
		return nil
	}

	block := blocks[0]
	if len(blocks) > 1 && cmdpkg.IsInteractive() {
		sp := selection.New("Which code block?", blocks)
		sp.Filter = nil
		chosen, err := sp.RunPrompt()
		if err != nil {
			return err
		}
		block = chosen
	}

	if err := copyFn(block.Code); err != nil {
		return fmt.Errorf("failed to copy code block: %w", err)
	}
	cmd.Printf("Copied %s to the clipboard.\n", block)
	return nil
}
