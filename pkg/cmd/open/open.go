/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package open

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	var (
		editor    string
		printLink bool
	)

	cmd := &cobra.Command{
		Use:     "open [note]",
		Aliases: []string{"o"},
		Short:   "Open a note in Obsidian or your editor.",
		Long: heredoc.Doc(`
			Opens the note given by title or path with the configured editor. The
			editor "obsidian" opens the note through an obsidian:// link, any other
			value is run as a command with the note path. Without a note, the
			fuzzy finder picks one.
		`),
		Example: heredoc.Doc(`
			vaultnav open "Project plan"
			vaultnav open daily/2024-05-01.md --editor nvim
			vaultnav open Inbox --uri
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleRef(args), editor, printLink)
		},
	}

	cmd.Flags().StringVarP(&editor, "editor", "e", "", "Editor to use instead of the configured one")
	cmd.Flags().BoolVar(&printLink, "uri", false, "Print the obsidian:// link instead of opening")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref, editor string, printLink bool) error {
	v, n, err := cmdpkg.ResolveNote(cmd, s, ref)
	if err != nil {
		return err
	}

	if printLink {
		uri, err := note.OpenURI(v.Vault, n.Path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	}

	if editor == "" {
		editor = s.Config.Editor
	}
	return note.Open(v.Vault, n.Path, editor)
}
