package walletcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// Config fixes how the external wallet process is invoked. Every command runs
// a fresh process against the same data directory, so the process sees the
// same wallet state across invocations.
type Config struct {
	CLIPath   string
	DataDir   string
	ServerURI string
	ChainName string
	// AddressPrefix identifies the primary receiving address in `addresses`
	// output (e.g. "uregtest" on regtest).
	AddressPrefix string
}

// Client implements ports.WalletConsole by driving the zingo-cli console.
// The console is line-oriented: commands are written to stdin followed by
// `quit`, and results are scraped from combined output.
type Client struct {
	cfg Config
	log zerolog.Logger
}

// New creates a wallet process client.
func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.AddressPrefix == "" {
		cfg.AddressPrefix = "uregtest"
	}
	return &Client{cfg: cfg, log: log}
}

var _ ports.WalletConsole = (*Client)(nil)

// Run executes one console command and returns the raw combined output.
// The deadline on ctx bounds the whole process lifetime.
func (c *Client) Run(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, c.cfg.CLIPath,
		"--data-dir", c.cfg.DataDir,
		"--server", c.cfg.ServerURI,
		"--chain", c.cfg.ChainName,
	)
	cmd.Stdin = strings.NewReader(command + "\nquit\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.log.Debug().Str("command", firstWord(command)).Msg("running wallet process command")

	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return "", apperror.ErrProcessTimeout(firstWord(command), ctxErr)
	}
	if err != nil {
		return "", apperror.ErrProcessError(firstWord(command),
			fmt.Errorf("%w: %s", err, snippet(stderr.String())))
	}

	return stdout.String(), nil
}

// StopSync asks the process to stop its background sync job. The console
// gives no reliable response for this command, so any clean exit counts.
func (c *Client) StopSync(ctx context.Context) error {
	_, err := c.Run(ctx, "sync stop")
	return err
}

// Shield moves exposed-pool funds into the spendable pool.
func (c *Client) Shield(ctx context.Context) (*ports.ShieldResult, error) {
	raw, err := c.Run(ctx, "quickshield")
	if err != nil {
		return nil, err
	}

	if IsNothingToShield(raw) {
		return &ports.ShieldResult{NoOp: true}, nil
	}
	if txid, ok := ExtractTxID(raw); ok {
		return &ports.ShieldResult{TxID: txid}, nil
	}
	// Anything else that lacks a txid is a hard failure.
	return nil, apperror.ErrShieldFailure(snippet(raw))
}

// SpendableBalance queries the spendable pool in zatoshi.
func (c *Client) SpendableBalance(ctx context.Context) (int64, error) {
	raw, err := c.Run(ctx, "spendable_balance")
	if err != nil {
		return 0, err
	}

	if n, ok := ParseSpendableBalance(raw); ok {
		return n, nil
	}
	if obj, ok := ExtractJSONLine(raw); ok {
		if v, ok := obj["spendable_balance"].(float64); ok {
			return int64(v), nil
		}
	}
	return 0, apperror.ErrProtocolMismatch("spendable_balance", snippet(raw))
}

// Send issues a transfer. Amounts are integer minor units; memo is attached
// only when non-empty (callers gate it on the destination's receiver
// capabilities).
func (c *Client) Send(ctx context.Context, toAddress string, amount int64, memo string) (string, error) {
	command := fmt.Sprintf("send %s %d", toAddress, amount)
	if memo != "" {
		command = fmt.Sprintf("%s %q", command, memo)
	}

	raw, err := c.Run(ctx, command)
	if err != nil {
		return "", err
	}

	if txid, ok := ExtractTxID(raw); ok {
		return txid, nil
	}
	if text, ok := ErrorText(raw); ok {
		return "", apperror.ErrProcessError("send", errors.New(text))
	}
	// No txid and no explicit error: the outcome is unknowable from here.
	return "", apperror.ErrProtocolMismatch("send", snippet(raw))
}

// Address returns the process's primary receiving address.
func (c *Client) Address(ctx context.Context) (string, error) {
	raw, err := c.Run(ctx, "addresses")
	if err != nil {
		return "", err
	}

	if addr, ok := ParsePrimaryAddress(raw, c.cfg.AddressPrefix); ok {
		return addr, nil
	}
	return "", apperror.ErrProtocolMismatch("addresses", snippet(raw))
}

// PoolBalances queries all confirmed pool balances.
func (c *Client) PoolBalances(ctx context.Context) (*ports.PoolBalances, error) {
	raw, err := c.Run(ctx, "balance")
	if err != nil {
		return nil, err
	}

	t, s, o, ok := ParsePoolBalances(raw)
	if !ok {
		return nil, apperror.ErrProtocolMismatch("balance", snippet(raw))
	}
	return &ports.PoolBalances{Transparent: t, Sapling: s, Orchard: o}, nil
}

func firstWord(command string) string {
	if i := strings.IndexByte(command, ' '); i > 0 {
		return command[:i]
	}
	return command
}
