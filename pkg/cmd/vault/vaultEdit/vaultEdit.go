package vaultEdit

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
	"github.com/Paintersrp/vaultnav/pkg/arg"
	cmdpkg "github.com/Paintersrp/vaultnav/pkg/cmd"
)

type options struct {
	name   string
	abbrev string
	emoji  string
	color  string
	reset  bool
}

func NewCmdVaultEdit(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "edit [vault]",
		Aliases: []string{"e"},
		Short:   "Change a vault's display name, abbreviation, emoji or colour.",
		Long: heredoc.Doc(`
			Updates how a vault is shown in lists. Only the given flags change.
			Without flags on a terminal, each value is asked for in turn with the
			current one prefilled. An empty value restores the default.

			Abbreviations hold up to three letters. Colours are a name or #RRGGBB.
		`),
		Example: heredoc.Doc(`
			vaultnav vault edit work --name "Work Notes" --emoji 💼
			vaultnav vault edit personal --abbrev ME --color "#FF8800"
			vaultnav vault edit work --reset
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, arg.HandleRef(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Display name")
	cmd.Flags().StringVar(&opts.abbrev, "abbrev", "", "Abbreviation (up to three letters)")
	cmd.Flags().StringVar(&opts.emoji, "emoji", "", "Emoji shown before the name")
	cmd.Flags().StringVar(&opts.color, "color", "", "Colour name or #RRGGBB")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "Clear every customisation")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, ref string, opts options) error {
	e, err := cmdpkg.ResolveVault(cmd, s, ref, "Edit vault")
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	m := e.Metadata
	switch {
	case opts.reset:
		m.DisplayName, m.Abbreviation, m.Emoji, m.Color = "", "", "", ""
	case anyChanged(cmd):
		apply(cmd, &m, opts)
	case cmdpkg.IsInteractive():
		if err := prompt(&m); err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing to change: pass --name, --abbrev, --emoji, --color or --reset")
	}

	if err := s.Meta.Save(cmd.Context(), m); err != nil {
		return err
	}

	e.Metadata = m
	cmd.Printf("Updated %s.\n", e.DisplayName())
	return nil
}

var editFlags = []string{"name", "abbrev", "emoji", "color"}

func anyChanged(cmd *cobra.Command) bool {
	for _, f := range editFlags {
		if cmd.Flags().Changed(f) {
			return true
		}
	}
	return false
}

func apply(cmd *cobra.Command, m *vaultmeta.Metadata, opts options) {
	if cmd.Flags().Changed("name") {
		m.DisplayName = opts.name
	}
	if cmd.Flags().Changed("abbrev") {
		m.Abbreviation = opts.abbrev
	}
	if cmd.Flags().Changed("emoji") {
		m.Emoji = opts.emoji
	}
	if cmd.Flags().Changed("color") {
		m.Color = opts.color
	}
}

func prompt(m *vaultmeta.Metadata) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Display name:", &m.DisplayName},
		{"Abbreviation:", &m.Abbreviation},
		{"Emoji:", &m.Emoji},
		{"Colour:", &m.Color},
	}

	for _, f := range fields {
		input := textinput.New(f.label)
		input.InitialValue = *f.value
		input.Placeholder = "default"
		input.Validate = nil
		value, err := input.RunPrompt()
		if err != nil {
			return err
		}
		*f.value = value
	}
	return nil
}
