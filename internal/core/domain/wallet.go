package domain

import (
	"math"
	"sort"
	"time"
)

// ZatoshisPerZEC is the number of minor units in one ZEC.
const ZatoshisPerZEC = 100_000_000

// SnapshotWindow is the number of events retained per stream in the persisted
// snapshot. Older events roll off; this is a deliberate bound, not a bug.
const SnapshotWindow = 1000

// Zatoshi converts a ZEC amount to minor units, rounding to the nearest unit.
func Zatoshi(zec float64) int64 {
	return int64(math.Round(zec * ZatoshisPerZEC))
}

// ZEC converts minor units to a ZEC amount.
func ZEC(zats int64) float64 {
	return float64(zats) / ZatoshisPerZEC
}

// FundingEvent records value added to the faucet (seed funding, admin top-ups).
type FundingEvent struct {
	TxID      string    `json:"txid"`
	Amount    int64     `json:"amount"` // zatoshi, > 0
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// SpendingEvent records value paid out to a requester. Mock distinguishes
// simulated transfers from ones that went through the wallet process.
type SpendingEvent struct {
	TxID      string    `json:"txid"`
	ToAddress string    `json:"to_address"`
	Amount    int64     `json:"amount"` // zatoshi, > 0
	Timestamp time.Time `json:"timestamp"`
	Memo      string    `json:"memo,omitempty"`
	Mock      bool      `json:"mock"`
}

// WalletState is the full persisted state of the faucet wallet: its receiving
// address and the two event streams the balance is computed from.
type WalletState struct {
	Address         string          `json:"address"`
	CreatedAt       time.Time       `json:"created_at"`
	FundingHistory  []FundingEvent  `json:"funding_history"`
	SpendingHistory []SpendingEvent `json:"spending_history"`
}

// Balance is max(0, Σfunding − Σspending), recomputed from the event streams
// on every call rather than cached.
func (w *WalletState) Balance() int64 {
	balance := w.TotalFunded() - w.TotalSpent()
	if balance < 0 {
		return 0
	}
	return balance
}

// TotalFunded sums all funding event amounts.
func (w *WalletState) TotalFunded() int64 {
	var total int64
	for _, e := range w.FundingHistory {
		total += e.Amount
	}
	return total
}

// TotalSpent sums all spending event amounts.
func (w *WalletState) TotalSpent() int64 {
	var total int64
	for _, e := range w.SpendingHistory {
		total += e.Amount
	}
	return total
}

// HistoryKind tags a merged history entry with its source stream.
type HistoryKind string

const (
	HistoryKindFunding  HistoryKind = "funding"
	HistoryKindSpending HistoryKind = "spending"
)

// HistoryEntry is one event in the merged funding+spending view.
type HistoryEntry struct {
	Kind      HistoryKind `json:"type"`
	TxID      string      `json:"txid"`
	Amount    int64       `json:"amount"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
	ToAddress string      `json:"to_address,omitempty"`
	Memo      string      `json:"memo,omitempty"`
	Mock      bool        `json:"mock,omitempty"`
}

// History merges both event streams, newest first, truncated to limit.
func (w *WalletState) History(limit int) []HistoryEntry {
	merged := make([]HistoryEntry, 0, len(w.FundingHistory)+len(w.SpendingHistory))
	for _, e := range w.FundingHistory {
		merged = append(merged, HistoryEntry{
			Kind:      HistoryKindFunding,
			TxID:      e.TxID,
			Amount:    e.Amount,
			Timestamp: e.Timestamp,
			Note:      e.Note,
		})
	}
	for _, e := range w.SpendingHistory {
		merged = append(merged, HistoryEntry{
			Kind:      HistoryKindSpending,
			TxID:      e.TxID,
			Amount:    e.Amount,
			Timestamp: e.Timestamp,
			ToAddress: e.ToAddress,
			Memo:      e.Memo,
			Mock:      e.Mock,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// WalletStats is the aggregate view served by the stats endpoint.
type WalletStats struct {
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	Balance       int64     `json:"balance"`
	FundingCount  int       `json:"funding_count"`
	SpendingCount int       `json:"spending_count"`
	TotalFunded   int64     `json:"total_funded"`
	TotalSpent    int64     `json:"total_spent"`
}

// Stats computes the aggregate view of the wallet state.
func (w *WalletState) Stats() WalletStats {
	return WalletStats{
		Address:       w.Address,
		CreatedAt:     w.CreatedAt,
		Balance:       w.Balance(),
		FundingCount:  len(w.FundingHistory),
		SpendingCount: len(w.SpendingHistory),
		TotalFunded:   w.TotalFunded(),
		TotalSpent:    w.TotalSpent(),
	}
}

// Trimmed returns a copy of the state with each stream cut to the snapshot
// window, keeping the most recent events. Used at persist time.
func (w *WalletState) Trimmed() *WalletState {
	out := &WalletState{
		Address:         w.Address,
		CreatedAt:       w.CreatedAt,
		FundingHistory:  w.FundingHistory,
		SpendingHistory: w.SpendingHistory,
	}
	if n := len(out.FundingHistory); n > SnapshotWindow {
		out.FundingHistory = out.FundingHistory[n-SnapshotWindow:]
	}
	if n := len(out.SpendingHistory); n > SnapshotWindow {
		out.SpendingHistory = out.SpendingHistory[n-SnapshotWindow:]
	}
	return out
}
