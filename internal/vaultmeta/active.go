package vaultmeta

import (
	"context"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// ActiveKey returns the active vault key, or "" when none is set.
func (s *Store) ActiveKey(ctx context.Context) (string, error) {
	key, _, err := s.kv.Get(ctx, constants.ActiveVaultKey)
	return key, err
}

// SetActive marks vaultKey active and stamps its last access.
func (s *Store) SetActive(ctx context.Context, vaultKey string) error {
	if err := s.kv.Set(ctx, constants.ActiveVaultKey, vaultKey); err != nil {
		return err
	}
	return s.TouchLastAccessed(ctx, vaultKey)
}

func (s *Store) ClearActive(ctx context.Context) error {
	return s.kv.Delete(ctx, constants.ActiveVaultKey)
}

// ActiveVault returns the active vault when it is one of vaults. A stored key
// naming a vault that is no longer configured is cleared.
func (s *Store) ActiveVault(ctx context.Context, vaults []vault.Vault) (Enhanced, bool) {
	key, err := s.ActiveKey(ctx)
	if err != nil {
		s.logger.Warn("failed to read active vault", "err", err)
		return Enhanced{}, false
	}
	if key == "" {
		return Enhanced{}, false
	}

	for _, v := range vaults {
		if v.Key == key {
			return s.Enhance(ctx, v), true
		}
	}

	s.logger.Info("clearing active vault that is no longer configured", "key", key)
	if err := s.ClearActive(ctx); err != nil {
		s.logger.Warn("failed to clear active vault", "err", err)
	}
	return Enhanced{}, false
}

// DefaultVault is the active vault, else the first of vaults.
func (s *Store) DefaultVault(ctx context.Context, vaults []vault.Vault) (Enhanced, bool) {
	if len(vaults) == 0 {
		return Enhanced{}, false
	}
	if e, ok := s.ActiveVault(ctx, vaults); ok {
		return e, true
	}
	return s.Enhance(ctx, vaults[0]), true
}

func (s *Store) IsActive(ctx context.Context, vaultKey string) bool {
	key, err := s.ActiveKey(ctx)
	return err == nil && key != "" && key == vaultKey
}

// ToggleActive clears vaultKey when it is active and sets it otherwise. It
// returns whether the vault is active afterwards.
func (s *Store) ToggleActive(ctx context.Context, vaultKey string) (bool, error) {
	if s.IsActive(ctx, vaultKey) {
		return false, s.ClearActive(ctx)
	}
	return true, s.SetActive(ctx, vaultKey)
}
