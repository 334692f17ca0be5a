// Package file persists wallet and fixture snapshots as JSON documents on
// local disk. Writes go through a temp file plus rename so a crash mid-write
// leaves the previous snapshot intact.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletStore keeps the ledger snapshot in a single JSON file.
type WalletStore struct {
	path string
	log  zerolog.Logger
}

func NewWalletStore(path string, log zerolog.Logger) *WalletStore {
	return &WalletStore{path: path, log: log}
}

var _ ports.WalletStore = (*WalletStore)(nil)

// Load reads the snapshot. A missing file is not an error: it returns
// (nil, nil) and the caller initializes a fresh wallet.
func (s *WalletStore) Load(_ context.Context) (*domain.WalletState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.ErrPersistenceFailure(fmt.Errorf("reading wallet snapshot: %w", err))
	}

	var state domain.WalletState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperror.ErrPersistenceFailure(fmt.Errorf("decoding wallet snapshot %s: %w", s.path, err))
	}
	return &state, nil
}

// Save writes the snapshot atomically, trimming both event streams to the
// rolling window first.
func (s *WalletStore) Save(_ context.Context, state *domain.WalletState) error {
	trimmed := state.Trimmed()

	data, err := json.MarshalIndent(trimmed, "", "  ")
	if err != nil {
		return apperror.ErrPersistenceFailure(fmt.Errorf("encoding wallet snapshot: %w", err))
	}
	if err := writeAtomic(s.path, data); err != nil {
		return apperror.ErrPersistenceFailure(err)
	}

	s.log.Debug().
		Str("path", s.path).
		Int64("balance", trimmed.Balance()).
		Int("funding_events", len(trimmed.FundingHistory)).
		Int("spending_events", len(trimmed.SpendingHistory)).
		Msg("wallet snapshot saved")
	return nil
}

// FixtureStore keeps the generated test-address fixtures in a JSON file.
type FixtureStore struct {
	path string
	log  zerolog.Logger
}

func NewFixtureStore(path string, log zerolog.Logger) *FixtureStore {
	return &FixtureStore{path: path, log: log}
}

var _ ports.FixtureStore = (*FixtureStore)(nil)

func (s *FixtureStore) Load(_ context.Context) (*domain.FixtureSet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.ErrPersistenceFailure(fmt.Errorf("reading fixtures: %w", err))
	}

	var set domain.FixtureSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, apperror.ErrPersistenceFailure(fmt.Errorf("decoding fixtures %s: %w", s.path, err))
	}
	return &set, nil
}

func (s *FixtureStore) Save(_ context.Context, set *domain.FixtureSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return apperror.ErrPersistenceFailure(fmt.Errorf("encoding fixtures: %w", err))
	}
	if err := writeAtomic(s.path, data); err != nil {
		return apperror.ErrPersistenceFailure(err)
	}
	return nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over the destination. Rename within one filesystem is atomic, so readers
// never observe a partial snapshot.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
