package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"zeckit-faucet/config"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// ledgerService is the authoritative record of faucet funding and spending.
// All access goes through one mutex; the balance is recomputed from the event
// streams on every read and every mutation is persisted before it returns.
type ledgerService struct {
	mu    sync.Mutex
	store ports.WalletStore
	state *domain.WalletState
	log   zerolog.Logger
}

// NewLedgerService loads the wallet snapshot or initializes a fresh wallet.
// A fresh wallet gets its receiving address from the chain node, falling back
// to the well-known regtest address when the node is unreachable, and is
// seeded with cfg.SeedAmount so the faucet is usable immediately.
func NewLedgerService(ctx context.Context, store ports.WalletStore, chain ports.ChainClient, cfg config.FaucetConfig, log zerolog.Logger) (ports.LedgerService, error) {
	s := &ledgerService{store: store, log: log}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if state == nil {
		address, err := chain.GetNewAddress(ctx, domain.AddressKindTransparent)
		if err != nil {
			log.Warn().Err(err).Msg("chain node unavailable for address minting, using fallback address")
			address = domain.FallbackAddress
		}
		state = &domain.WalletState{
			Address:   address,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.Save(ctx, state); err != nil {
			return nil, err
		}
		log.Info().Str("address", address).Msg("initialized fresh faucet wallet")
	}
	s.state = state

	if s.state.Balance() == 0 && cfg.SeedAmount > 0 {
		seed := domain.Zatoshi(cfg.SeedAmount)
		if _, err := s.RecordFunding(ctx, seed, "", "initial regtest seed"); err != nil {
			return nil, err
		}
		log.Info().Int64("amount", seed).Msg("seeded empty faucet wallet")
	}

	log.Info().
		Str("address", s.state.Address).
		Int64("balance", s.state.Balance()).
		Msg("wallet ledger ready")
	return s, nil
}

// RecordFunding appends a funding event and persists the snapshot. An empty
// txid gets a generated identifier.
func (s *ledgerService) RecordFunding(ctx context.Context, amount int64, txid, note string) (*domain.FundingEvent, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount(fmt.Sprintf("funding amount must be positive, got %d", amount))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if txid == "" {
		txid = mockTxID(s.state.Address, amount, now)
	}

	event := domain.FundingEvent{
		TxID:      txid,
		Amount:    amount,
		Timestamp: now,
		Note:      note,
	}
	s.state.FundingHistory = append(s.state.FundingHistory, event)

	if err := s.store.Save(ctx, s.state); err != nil {
		s.state.FundingHistory = s.state.FundingHistory[:len(s.state.FundingHistory)-1]
		return nil, err
	}

	s.log.Info().
		Str("txid", txid).
		Int64("amount", amount).
		Int64("balance", s.state.Balance()).
		Msg("funding recorded")
	return &event, nil
}

// RecordSpending appends a spending event and persists the snapshot. The
// balance pre-check and the append happen under the same lock, so the balance
// can never go negative through this path.
func (s *ledgerService) RecordSpending(ctx context.Context, rec ports.SpendRecord) (*domain.SpendingEvent, error) {
	if rec.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount(fmt.Sprintf("spending amount must be positive, got %d", rec.Amount))
	}
	if rec.ToAddress == "" {
		return nil, apperror.ErrInvalidAddress("destination address is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if balance := s.state.Balance(); balance < rec.Amount {
		return nil, apperror.ErrInsufficientBalance(balance, rec.Amount)
	}

	now := time.Now().UTC()
	txid := rec.TxID
	mock := rec.Mock
	if txid == "" {
		txid = mockTxID(rec.ToAddress, rec.Amount, now)
		mock = true
	}

	event := domain.SpendingEvent{
		TxID:      txid,
		ToAddress: rec.ToAddress,
		Amount:    rec.Amount,
		Timestamp: now,
		Memo:      rec.Memo,
		Mock:      mock,
	}
	s.state.SpendingHistory = append(s.state.SpendingHistory, event)

	if err := s.store.Save(ctx, s.state); err != nil {
		s.state.SpendingHistory = s.state.SpendingHistory[:len(s.state.SpendingHistory)-1]
		return nil, err
	}

	s.log.Info().
		Str("txid", txid).
		Str("to", rec.ToAddress).
		Int64("amount", rec.Amount).
		Bool("mock", mock).
		Int64("balance", s.state.Balance()).
		Msg("spending recorded")
	return &event, nil
}

func (s *ledgerService) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balance()
}

func (s *ledgerService) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Address
}

func (s *ledgerService) History(limit int) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.History(limit)
}

func (s *ledgerService) Stats() domain.WalletStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Stats()
}

// mockTxID derives a deterministic transaction id for simulated transfers and
// seed funding. Same shape as a real txid (64 hex chars).
func mockTxID(address string, amount int64, ts time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s%d%d", address, amount, ts.UnixNano())))
	return hex.EncodeToString(sum[:])
}
