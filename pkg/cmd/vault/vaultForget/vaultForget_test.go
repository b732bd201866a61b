package vaultForget

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
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "notes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default(t.TempDir())
	cfg.DiscoverVaults = false
	cfg.VaultPath = dir
	return state.New(t.TempDir(), cfg, logging.Discard(), kvstore.NewMemory(), "")
}

func execute(t *testing.T, s *state.State, args ...string) string {
	t.Helper()
	cmd := NewCmdVaultForget(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestForgetClearsActiveVault(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	key := s.Vaults[0].Key
	if _, err := s.Meta.ToggleFavorite(ctx, key); err != nil {
		t.Fatal(err)
	}
	if err := s.Meta.SetActive(ctx, key); err != nil {
		t.Fatal(err)
	}

	if out := execute(t, s, "notes"); !strings.Contains(out, "Forgot notes.") {
		t.Fatalf("unexpected output %q", out)
	}
	if s.Meta.Load(ctx, s.Vaults[0]).IsFavorite {
		t.Error("expected the favourite flag to be gone")
	}
	if s.Meta.IsActive(ctx, key) {
		t.Error("expected the active vault to be cleared")
	}
}

func TestForgetStale(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	if err := s.Meta.Save(ctx, vaultmeta.Metadata{Key: "/gone/vault", DisplayName: "Gone"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Meta.ToggleFavorite(ctx, s.Vaults[0].Key); err != nil {
		t.Fatal(err)
	}

	out := execute(t, s, "--stale")
	if !strings.Contains(out, "Forgot /gone/vault.") {
		t.Fatalf("expected the stale record to be forgotten, got %q", out)
	}
	keys, err := s.Meta.StoredKeys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != s.Vaults[0].Key {
		t.Fatalf("stored keys = %v, want only the configured vault", keys)
	}

	if out := execute(t, s, "--stale"); !strings.Contains(out, "No stale vaults.") {
		t.Fatalf("expected nothing left to forget, got %q", out)
	}
}
