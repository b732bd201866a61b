package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/vaultnav/internal/fzf"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/state"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

var ErrNoteRequired = errors.New("a note title or path is required")

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// LoadVault selects the session vault and loads its notes.
func LoadVault(cmd *cobra.Command, s *state.State) (vaultmeta.Enhanced, []note.Metadata, error) {
	if s == nil || s.Config == nil {
		return vaultmeta.Enhanced{}, nil, fmt.Errorf("state configuration is not initialized")
	}

	v, err := s.SelectVault(cmd.Context())
	if err != nil {
		return vaultmeta.Enhanced{}, nil, err
	}

	notes, err := s.LoadNotes(v.Vault)
	if err != nil {
		return vaultmeta.Enhanced{}, nil, fmt.Errorf("failed to load notes from %s: %w", v.Name, err)
	}
	return v, notes, nil
}

// ResolveNote finds the note ref names in the session vault. An empty ref
// opens the fuzzy finder when a terminal is attached.
func ResolveNote(cmd *cobra.Command, s *state.State, ref string) (vaultmeta.Enhanced, note.Metadata, error) {
	v, notes, err := LoadVault(cmd, s)
	if err != nil {
		return vaultmeta.Enhanced{}, note.Metadata{}, err
	}

	if ref != "" {
		n, err := note.Resolve(notes, v.Path, ref)
		return v, n, err
	}

	if !IsInteractive() {
		return v, note.Metadata{}, ErrNoteRequired
	}

	finder := fzf.NewFuzzyFinder(notes, s.Loader, s.Filter(v.Vault), fmt.Sprintf("Select a note in %s", v.DisplayName()))
	n, err := finder.Find("")
	return v, n, err
}

// Warn reports a best-effort failure without failing the command.
func Warn(cmd *cobra.Command, s *state.State, msg string, err error) {
	if s != nil && s.Logger != nil {
		s.Logger.Warn(msg, "err", err)
	}
	cmd.PrintErrf("Warning: %s: %v\n", msg, err)
}
