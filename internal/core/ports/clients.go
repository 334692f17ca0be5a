package ports

import (
	"context"

	"zeckit-faucet/internal/core/domain"
)

//go:generate mockgen -source=clients.go -destination=mocks/clients_mock.go -package=mocks

// ChainClient is the chain-node RPC collaborator, used only for address
// minting and connectivity checks.
type ChainClient interface {
	Ping(ctx context.Context) error
	GetBlockCount(ctx context.Context) (int64, error)
	GetNewAddress(ctx context.Context, kind domain.AddressKind) (string, error)
}

// ShieldResult is the outcome of a pool-preparation command. NoOp means the
// process reported nothing to move, which callers treat as success.
type ShieldResult struct {
	TxID string
	NoOp bool
}

// PoolBalances holds the per-pool confirmed balances in zatoshi.
type PoolBalances struct {
	Transparent int64
	Sapling     int64
	Orchard     int64
}

// WalletConsole is the command-driven external wallet process. Each call
// launches the process, issues one console command, and parses its output.
// Deadlines are carried on the context; an exceeded deadline surfaces as
// PRC_001. The process is a single shared stateful resource: mutating calls
// must be serialized by the caller.
type WalletConsole interface {
	// StopSync asks the process to quiesce its background sync job.
	StopSync(ctx context.Context) error
	// Shield moves value from the exposed pool into the spendable pool.
	Shield(ctx context.Context) (*ShieldResult, error)
	// SpendableBalance reports the spendable pool in zatoshi.
	SpendableBalance(ctx context.Context) (int64, error)
	// Send issues a transfer and returns the observed transaction id.
	// memo is attached only when the destination supports private receivers.
	Send(ctx context.Context, toAddress string, amount int64, memo string) (string, error)
	// Address returns the process's primary receiving address.
	Address(ctx context.Context) (string, error)
	// PoolBalances reports all confirmed pool balances.
	PoolBalances(ctx context.Context) (*PoolBalances, error)
}
