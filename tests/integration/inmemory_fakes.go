package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
)

// fakeChainClient mints deterministic addresses without a running node.
type fakeChainClient struct {
	mu     sync.Mutex
	minted int
}

func (f *fakeChainClient) Ping(context.Context) error { return nil }

func (f *fakeChainClient) Name() string { return "zebra" }

func (f *fakeChainClient) GetBlockCount(context.Context) (int64, error) { return 200, nil }

func (f *fakeChainClient) GetNewAddress(_ context.Context, kind domain.AddressKind) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.minted++

	seed := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", kind, f.minted)))
	body := hex.EncodeToString(seed[:])

	switch kind {
	case domain.AddressKindSapling:
		return "zs1" + body + body[:11], nil // 78 chars
	case domain.AddressKindUnified:
		return "u1" + body + body + "zk", nil // 132 chars
	default:
		return "tm" + body[:33], nil // 35 chars, t-addr shape
	}
}

var _ ports.ChainClient = (*fakeChainClient)(nil)

// fakeWalletConsole plays the external wallet process with a fixed script:
// shielding yields a txid, the spendable pool is always flush, and sends
// return a deterministic txid.
type fakeWalletConsole struct {
	mu        sync.Mutex
	spendable int64
	sends     []sentTransfer
}

type sentTransfer struct {
	ToAddress string
	Amount    int64
	Memo      string
}

func newFakeWalletConsole(spendable int64) *fakeWalletConsole {
	return &fakeWalletConsole{spendable: spendable}
}

func (f *fakeWalletConsole) StopSync(context.Context) error { return nil }

func (f *fakeWalletConsole) Shield(context.Context) (*ports.ShieldResult, error) {
	return &ports.ShieldResult{TxID: fakeTxID("shield")}, nil
}

func (f *fakeWalletConsole) SpendableBalance(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spendable, nil
}

func (f *fakeWalletConsole) Send(_ context.Context, toAddress string, amount int64, memo string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentTransfer{ToAddress: toAddress, Amount: amount, Memo: memo})
	f.spendable -= amount
	return fakeTxID(toAddress), nil
}

func (f *fakeWalletConsole) Address(context.Context) (string, error) {
	return "uregtest1fakeprimaryaddress", nil
}

func (f *fakeWalletConsole) PoolBalances(context.Context) (*ports.PoolBalances, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &ports.PoolBalances{Orchard: f.spendable}, nil
}

func (f *fakeWalletConsole) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

var _ ports.WalletConsole = (*fakeWalletConsole)(nil)

func fakeTxID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
