package fzf

import (
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

func TestLabel(t *testing.T) {
	if got := Label(note.Metadata{Title: "plain"}); got != "plain [No tags] " {
		t.Fatalf("unexpected label %q", got)
	}
	if got := Label(note.Metadata{Title: "tagged", Tags: []string{"#a", "#b"}}); got != "tagged [Tags: #a, #b] " {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestVaultSummary(t *testing.T) {
	e := vaultmeta.Enhanced{
		Vault: vault.Vault{Name: "work", Key: "/v/work", Path: "/v/work"},
		Metadata: vaultmeta.Metadata{
			IsFavorite:   true,
			HotkeyIndex:  2,
			LastAccessed: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
		},
	}

	got := VaultSummary(e)
	for _, want := range []string{"work", "Path: /v/work", "Favourite (hotkey 2)", "Last opened:"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected summary to contain %q, got %q", want, got)
		}
	}

	plain := VaultSummary(vaultmeta.Enhanced{Vault: vault.Vault{Name: "x", Path: "/x"}, Metadata: vaultmeta.Default("/x")})
	if strings.Contains(plain, "Favourite") || strings.Contains(plain, "Last opened") {
		t.Fatalf("expected bare summary for default metadata, got %q", plain)
	}
}
