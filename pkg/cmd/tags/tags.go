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
package tags

import (
	"sort"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/tui/table"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

func NewCmdTags(s *state.State) *cobra.Command {
	var (
		byName bool
		plain  bool
	)

	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"t"},
		Short:   "Show every tag in the vault with its note count.",
		Long: heredoc.Doc(`
			Tags are collected from inline #tags and the tag/tags frontmatter keys
			at the top of each note. The most used tags come first unless --name
			is given.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, byName, plain)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Sort alphabetically")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text even on a terminal")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, byName, plain bool) error {
	_, notes, err := cmdpkg.LoadVault(cmd, s)
	if err != nil {
		return err
	}

	tags := note.TagsForNotes(notes)
	counts := note.TagCounts(notes)
	if len(tags) == 0 {
		cmd.Println("No tags found.")
		return nil
	}
	if !byName {
		sort.SliceStable(tags, func(i, j int) bool {
			return counts[tags[i]] > counts[tags[j]]
		})
	}

	rows := make([]btable.Row, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, btable.Row{tag, strconv.Itoa(counts[tag])})
	}

	return cmdpkg.PrintTable(cmd, table.TableConfig{
		Columns: []btable.Column{
			{Title: "Tag", Width: 30},
			{Title: "Notes", Width: 8},
		},
		Rows:    rows,
		Focused: true,
		Height:  20,
	}, plain)
}
