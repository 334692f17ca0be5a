// Package chainrpc talks JSON-RPC to a Zcash full node (zebra or zcashd).
// The faucet only needs a handful of calls: liveness, chain height, and
// address generation for fixtures.
package chainrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

var (
	_ ports.ChainClient   = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      "zeckit",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return apperror.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Username != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.ErrChainNodeError(fmt.Errorf("%s: %w", method, err))
	}
	defer resp.Body.Close()

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return apperror.ErrChainNodeError(fmt.Errorf("%s: decoding response: %w", method, err))
	}
	if out.Error != nil {
		return apperror.ErrChainNodeError(fmt.Errorf("%s: node error %d: %s", method, out.Error.Code, out.Error.Message))
	}
	if result != nil {
		if err := json.Unmarshal(out.Result, result); err != nil {
			return apperror.ErrChainNodeError(fmt.Errorf("%s: decoding result: %w", method, err))
		}
	}
	return nil
}

// Ping checks node liveness via getblockcount.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetBlockCount(ctx)
	return err
}

// Name identifies this checker in health responses.
func (c *Client) Name() string { return "zebra" }

// GetBlockCount returns the current chain height.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var height int64
	if err := c.call(ctx, "getblockcount", []any{}, &height); err != nil {
		return 0, err
	}
	return height, nil
}

// GetNewAddress asks the node's wallet for a fresh address of the given kind.
func (c *Client) GetNewAddress(ctx context.Context, kind domain.AddressKind) (string, error) {
	params := []any{}
	if kind != domain.AddressKindUnknown && kind != domain.AddressKindTransparent {
		params = append(params, string(kind))
	}

	var addr string
	if err := c.call(ctx, "getnewaddress", params, &addr); err != nil {
		return "", err
	}
	if addr == "" {
		return "", apperror.ErrChainNodeError(fmt.Errorf("getnewaddress: empty address in response"))
	}
	return addr, nil
}
