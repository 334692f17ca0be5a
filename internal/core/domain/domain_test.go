package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(offset int) time.Time {
	return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Minute)
}

func TestZatoshiConversion(t *testing.T) {
	assert.Equal(t, int64(100_000_000), Zatoshi(1.0))
	assert.Equal(t, int64(1_000_000_000), Zatoshi(10.0))
	assert.Equal(t, int64(1_000_000), Zatoshi(0.01))
	assert.Equal(t, int64(1), Zatoshi(0.00000001))
	assert.Equal(t, 10.0, ZEC(1_000_000_000))
}

func TestWalletState_Balance(t *testing.T) {
	w := &WalletState{}
	assert.Equal(t, int64(0), w.Balance())

	w.FundingHistory = append(w.FundingHistory, FundingEvent{Amount: Zatoshi(1000), Timestamp: ts(0)})
	assert.Equal(t, Zatoshi(1000), w.Balance())

	w.SpendingHistory = append(w.SpendingHistory, SpendingEvent{Amount: Zatoshi(10), Timestamp: ts(1)})
	assert.Equal(t, Zatoshi(990), w.Balance())
}

func TestWalletState_BalanceNeverNegative(t *testing.T) {
	w := &WalletState{
		FundingHistory:  []FundingEvent{{Amount: 100, Timestamp: ts(0)}},
		SpendingHistory: []SpendingEvent{{Amount: 500, Timestamp: ts(1)}},
	}
	assert.Equal(t, int64(0), w.Balance())
	// The raw totals are still visible in stats.
	assert.Equal(t, int64(100), w.TotalFunded())
	assert.Equal(t, int64(500), w.TotalSpent())
}

func TestWalletState_BalanceIdempotent(t *testing.T) {
	w := &WalletState{
		FundingHistory:  []FundingEvent{{Amount: 750, Timestamp: ts(0)}},
		SpendingHistory: []SpendingEvent{{Amount: 250, Timestamp: ts(1)}},
	}
	first := w.Balance()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, w.Balance())
	}
}

func TestWalletState_History(t *testing.T) {
	w := &WalletState{
		FundingHistory: []FundingEvent{
			{TxID: "fund-1", Amount: 100, Timestamp: ts(0), Note: "seed"},
			{TxID: "fund-2", Amount: 200, Timestamp: ts(2)},
		},
		SpendingHistory: []SpendingEvent{
			{TxID: "spend-1", ToAddress: "tAddr1", Amount: 50, Timestamp: ts(1)},
			{TxID: "spend-2", ToAddress: "tAddr2", Amount: 75, Timestamp: ts(3), Mock: true},
		},
	}

	history := w.History(10)
	assert.Len(t, history, 4)

	// Newest first
	assert.Equal(t, "spend-2", history[0].TxID)
	assert.Equal(t, HistoryKindSpending, history[0].Kind)
	assert.True(t, history[0].Mock)
	assert.Equal(t, "fund-2", history[1].TxID)
	assert.Equal(t, "spend-1", history[2].TxID)
	assert.Equal(t, "fund-1", history[3].TxID)
	assert.Equal(t, "seed", history[3].Note)

	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}
}

func TestWalletState_HistoryLimit(t *testing.T) {
	w := &WalletState{}
	for i := 0; i < 20; i++ {
		w.FundingHistory = append(w.FundingHistory, FundingEvent{TxID: "f", Amount: 1, Timestamp: ts(i)})
	}

	assert.Len(t, w.History(5), 5)
	assert.Len(t, w.History(0), 20)
	assert.Len(t, w.History(100), 20)
}

func TestWalletState_Stats(t *testing.T) {
	created := ts(0)
	w := &WalletState{
		Address:   "tmTest",
		CreatedAt: created,
		FundingHistory: []FundingEvent{
			{Amount: 1000, Timestamp: ts(1)},
			{Amount: 500, Timestamp: ts(2)},
		},
		SpendingHistory: []SpendingEvent{
			{Amount: 300, Timestamp: ts(3)},
		},
	}

	stats := w.Stats()
	assert.Equal(t, "tmTest", stats.Address)
	assert.Equal(t, created, stats.CreatedAt)
	assert.Equal(t, int64(1200), stats.Balance)
	assert.Equal(t, 2, stats.FundingCount)
	assert.Equal(t, 1, stats.SpendingCount)
	assert.Equal(t, int64(1500), stats.TotalFunded)
	assert.Equal(t, int64(300), stats.TotalSpent)
}

func TestWalletState_Trimmed(t *testing.T) {
	w := &WalletState{Address: "tmTest", CreatedAt: ts(0)}
	for i := 0; i < SnapshotWindow+50; i++ {
		w.FundingHistory = append(w.FundingHistory, FundingEvent{TxID: "f", Amount: 1, Timestamp: ts(i)})
	}
	w.SpendingHistory = []SpendingEvent{{TxID: "s", Amount: 1, Timestamp: ts(0)}}

	trimmed := w.Trimmed()
	assert.Len(t, trimmed.FundingHistory, SnapshotWindow)
	assert.Len(t, trimmed.SpendingHistory, 1)
	// The most recent events are the ones kept.
	assert.Equal(t, ts(SnapshotWindow+49), trimmed.FundingHistory[SnapshotWindow-1].Timestamp)
	// Original state untouched.
	assert.Len(t, w.FundingHistory, SnapshotWindow+50)
}

func TestKindOfAddress(t *testing.T) {
	tests := []struct {
		addr string
		want AddressKind
	}{
		{"tmBsTi2xWTjUdEXnuTceL7fecEQKeWu4u6d", AddressKindTransparent},
		{"t1abc", AddressKindTransparent},
		{"zs1qqqqqq", AddressKindSapling},
		{"u1qqqqqq", AddressKindUnified},
		{"0x1234", AddressKindUnknown},
		{"", AddressKindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOfAddress(tt.addr), "address %q", tt.addr)
	}
}

func TestAddressKind_SupportsMemo(t *testing.T) {
	assert.False(t, AddressKindTransparent.SupportsMemo())
	assert.True(t, AddressKindSapling.SupportsMemo())
	assert.True(t, AddressKindUnified.SupportsMemo())
	assert.False(t, AddressKindUnknown.SupportsMemo())
}

func TestFixtureSet_Export(t *testing.T) {
	set := &FixtureSet{
		GeneratedAt: ts(0),
		Fixtures: []UAFixture{
			{Name: "ua_full", AddressType: AddressKindUnified},
			{Name: "sapling_standalone", AddressType: AddressKindSapling},
			{Name: "transparent_standalone", AddressType: AddressKindTransparent},
		},
	}

	export := set.Export()
	assert.Len(t, export.AllFixtures, 3)
	assert.Len(t, export.UnifiedAddresses, 1)
	assert.Len(t, export.SaplingAddresses, 1)
	assert.Len(t, export.TransparentAddresses, 1)
	assert.Equal(t, "ua_full", export.UnifiedAddresses[0].Name)
}

func TestTransferPhase_String(t *testing.T) {
	assert.Equal(t, "queued", PhaseQueued.String())
	assert.Equal(t, "shield", PhaseShield.String())
	assert.Equal(t, "send", PhaseSend.String())
	assert.Equal(t, "done", PhaseDone.String())
}
