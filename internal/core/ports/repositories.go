package ports

import (
	"context"
	"time"

	"zeckit-faucet/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// WalletStore persists the wallet ledger snapshot. Save must be atomic: a
// crash mid-write may never leave a corrupt or partial snapshot behind.
type WalletStore interface {
	// Load returns the persisted state, or nil when no snapshot exists yet.
	Load(ctx context.Context) (*domain.WalletState, error)
	// Save durably persists the full state, trimming each event stream to the
	// snapshot window.
	Save(ctx context.Context, state *domain.WalletState) error
}

// FixtureStore persists the UA fixture set.
type FixtureStore interface {
	Load(ctx context.Context) (*domain.FixtureSet, error)
	Save(ctx context.Context, set *domain.FixtureSet) error
}

// AuditRepository defines persistence for the faucet request audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// CooldownStore enforces a per-destination-address cooldown between grants,
// independent of the per-IP rate limits.
type CooldownStore interface {
	// Acquire claims the cooldown slot for an address. When the slot is
	// already held it returns false and the remaining hold time.
	Acquire(ctx context.Context, address string, ttl time.Duration) (bool, time.Duration, error)
	// Release frees the slot early, e.g. when the request it guarded failed.
	Release(ctx context.Context, address string) error
}
