package vaultFavorite

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
	"github.com/Paintersrp/vaultnav/internal/vault"
)

func newTestState(t *testing.T, names ...string) *state.State {
	t.Helper()
	root := t.TempDir()
	var paths []string
	for _, name := range names {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	cfg := config.Default(t.TempDir())
	cfg.DiscoverVaults = false
	cfg.VaultPath = strings.Join(paths, ",")
	return state.New(t.TempDir(), cfg, logging.Discard(), kvstore.NewMemory(), "")
}

func toggle(t *testing.T, s *state.State, ref string) string {
	t.Helper()
	cmd := NewCmdVaultFavorite(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{ref})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func hotkey(s *state.State, name string) int {
	v, _ := vault.FindByName(s.Vaults, name)
	return s.Meta.Load(context.Background(), v).HotkeyIndex
}

func TestFavoriteTogglesAndNumbersHotkeys(t *testing.T) {
	s := newTestState(t, "alpha", "beta")

	if out := toggle(t, s, "beta"); !strings.Contains(out, "Added beta to favourites.") {
		t.Fatalf("unexpected output %q", out)
	}
	if got := hotkey(s, "beta"); got != 1 {
		t.Fatalf("beta hotkey = %d, want 1", got)
	}

	toggle(t, s, "alpha")
	if a, b := hotkey(s, "alpha"), hotkey(s, "beta"); a != 1 || b != 2 {
		t.Fatalf("hotkeys alpha=%d beta=%d, want 1 and 2", a, b)
	}

	if out := toggle(t, s, "alpha"); !strings.Contains(out, "Removed alpha from favourites.") {
		t.Fatalf("unexpected output %q", out)
	}
	if a, b := hotkey(s, "alpha"), hotkey(s, "beta"); a != 0 || b != 1 {
		t.Fatalf("hotkeys alpha=%d beta=%d, want 0 and 1", a, b)
	}
}

func TestFavoriteUnknownVault(t *testing.T) {
	s := newTestState(t, "alpha")

	cmd := NewCmdVaultFavorite(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"nope"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown vault")
	}
}
