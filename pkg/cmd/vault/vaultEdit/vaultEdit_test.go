package vaultEdit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "work")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default(t.TempDir())
	cfg.DiscoverVaults = false
	cfg.VaultPath = dir
	return state.New(t.TempDir(), cfg, logging.Discard(), kvstore.NewMemory(), "")
}

func execute(s *state.State, args ...string) (string, error) {
	cmd := NewCmdVaultEdit(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEditAppliesChangedFlagsOnly(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()

	out, err := execute(s, "work", "--name", "Work Notes", "--emoji", "💼")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Updated 💼 Work Notes.") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := execute(s, "work", "--abbrev", "WN"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := s.Meta.Load(ctx, s.Vaults[0])
	if m.DisplayName != "Work Notes" || m.Emoji != "💼" || m.Abbreviation != "WN" {
		t.Fatalf("unexpected metadata %+v", m)
	}

	if _, err := execute(s, "work", "--reset"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m = s.Meta.Load(ctx, s.Vaults[0])
	if m.DisplayName != "" || m.Emoji != "" || m.Abbreviation != "" {
		t.Fatalf("expected a reset, got %+v", m)
	}
}

func TestEditRejectsInvalidValues(t *testing.T) {
	s := newTestState(t)

	if _, err := execute(s, "work", "--abbrev", "TOOLONG"); err == nil {
		t.Error("expected an error for a long abbreviation")
	}
	if _, err := execute(s, "work", "--color", "#12"); err == nil {
		t.Error("expected an error for a malformed colour")
	}
	if m := s.Meta.Load(context.Background(), s.Vaults[0]); m.Abbreviation != "" || m.Color != "" {
		t.Fatalf("invalid values were stored: %+v", m)
	}
}

func TestEditWithoutFlagsNeedsTerminal(t *testing.T) {
	s := newTestState(t)

	if _, err := execute(s, "work"); err == nil || !strings.Contains(err.Error(), "nothing to change") {
		t.Fatalf("expected a usage error, got %v", err)
	}
}
