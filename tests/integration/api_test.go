package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"zeckit-faucet/config"
	httpHandler "zeckit-faucet/internal/adapter/http/handler"
	fileStorage "zeckit-faucet/internal/adapter/storage/file"
	redisStorage "zeckit-faucet/internal/adapter/storage/redis"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/internal/service"
	"zeckit-faucet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack: real services and file stores
// in a temp dir, miniredis for rate limits and cooldowns, and in-memory
// fakes for the chain node and the external wallet process. This exercises
// the HTTP layer, middleware, services, and the transfer worker end-to-end.

const adminSecret = "integration-secret"

type testApp struct {
	server  *httptest.Server
	redis   *miniredis.Miniredis
	console *fakeWalletConsole
	stop    context.CancelFunc
}

func newTestApp(t *testing.T, mutate func(cfg *config.FaucetConfig)) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	dir := t.TempDir()
	faucetCfg := config.FaucetConfig{
		AmountMin:     0.01,
		AmountMax:     100,
		AmountDefault: 10,
		SeedAmount:    1000,
		FeeMarginZats: 20000,
		WalletFile:    filepath.Join(dir, "wallet.json"),
		FixturesFile:  filepath.Join(dir, "ua_fixtures.json"),
		AdminSecret:   adminSecret,
		Mock:          true,
	}
	if mutate != nil {
		mutate(&faucetCfg)
	}

	log := logger.New("error", false)
	ctx := context.Background()
	chain := &fakeChainClient{}

	walletStore := fileStorage.NewWalletStore(faucetCfg.WalletFile, log)
	ledgerSvc, err := service.NewLedgerService(ctx, walletStore, chain, faucetCfg, log)
	require.NoError(t, err)

	console := newFakeWalletConsole(2000 * domain.ZatoshisPerZEC)
	transferSvc := service.NewTransferService(console, config.WalletConfig{
		QuiesceTimeout: time.Second,
		ShieldTimeout:  time.Second,
		SettleDelay:    50 * time.Millisecond,
		SettlePoll:     10 * time.Millisecond,
		VerifyTimeout:  time.Second,
		SendTimeout:    time.Second,
	}, faucetCfg.FeeMarginZats, log)

	auditSvc := service.NewAuditService(nil, log)
	faucetSvc := service.NewFaucetService(faucetCfg, ledgerSvc, transferSvc, auditSvc, log)
	transferSvc.OnComplete(faucetSvc.HandleTransferComplete)

	workerCtx, stop := context.WithCancel(ctx)
	go transferSvc.Run(workerCtx)

	fixtureStore := fileStorage.NewFixtureStore(faucetCfg.FixturesFile, log)
	fixtureSvc := service.NewFixtureService(fixtureStore, chain, ledgerSvc, log)
	_, err = fixtureSvc.Generate(ctx, false)
	require.NoError(t, err)

	if faucetCfg.CooldownTTL > 0 {
		faucetSvc.UseCooldown(redisStorage.NewCooldownStore(rdb))
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FaucetSvc:      faucetSvc,
		LedgerSvc:      ledgerSvc,
		FixtureSvc:     fixtureSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{chain, redisStorage.NewHealthCheck(rdb)},
		AdminSecret:    faucetCfg.AdminSecret,
		ChainName:      "regtest",
		CORSOrigins:    []string{"*"},
		Logger:         log,
	})

	return &testApp{
		server:  httptest.NewServer(router),
		redis:   mr,
		console: console,
		stop:    stop,
	}
}

func (a *testApp) close() {
	a.stop()
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) postJSON(t *testing.T, path string, body map[string]any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (a *testApp) getJSON(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

var saplingDest = "zs1" + strings.Repeat("q", 75)

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t, nil)
	defer app.close()

	resp, body := app.getJSON(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_MockFundingFlow(t *testing.T) {
	app := newTestApp(t, nil)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/faucet/request", map[string]any{
		"address": saplingDest,
		"amount":  25.0,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	grant := data(t, body)
	assert.Len(t, grant["txid"], 64)
	assert.Equal(t, true, grant["mock"])
	assert.Equal(t, 25.0, grant["amount"])
	assert.Equal(t, 975.0, grant["balance"])

	// Ledger views reflect the spend.
	resp, body = app.getJSON(t, "/api/v1/faucet/balance")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 975.0, data(t, body)["balance"])

	resp, body = app.getJSON(t, "/api/v1/faucet/history?limit=10")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.0, data(t, body)["count"]) // seed funding + this spend

	// Nothing reached the wallet process in mock mode.
	assert.Equal(t, 0, app.console.sentCount())
}

func TestIntegration_RealTransferFlow(t *testing.T) {
	app := newTestApp(t, func(cfg *config.FaucetConfig) { cfg.Mock = false })
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/faucet/request", map[string]any{
		"address": saplingDest,
		"amount":  25.0,
		"memo":    "integration run",
	}, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	job := data(t, body)
	jobID, _ := job["job_id"].(string)
	require.NotEmpty(t, jobID)

	// Poll until the worker drives the job to a terminal state.
	require.Eventually(t, func() bool {
		resp, body := app.getJSON(t, "/api/v1/faucet/request/"+jobID)
		if resp.StatusCode != http.StatusOK {
			return false
		}
		status, _ := data(t, body)["status"].(string)
		return status == "SUCCEEDED"
	}, 5*time.Second, 25*time.Millisecond)

	assert.Equal(t, 1, app.console.sentCount())

	// The completed transfer lands in the ledger.
	require.Eventually(t, func() bool {
		_, body := app.getJSON(t, "/api/v1/faucet/balance")
		return data(t, body)["balance"] == 975.0
	}, 5*time.Second, 25*time.Millisecond)
}

func TestIntegration_AdminFund(t *testing.T) {
	app := newTestApp(t, nil)
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/admin/fund", map[string]any{"amount": 500.0}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := app.postJSON(t, "/api/v1/admin/fund", map[string]any{"amount": 500.0},
		map[string]string{"X-Admin-Secret": adminSecret})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1500.0, data(t, body)["balance"])
}

func TestIntegration_Fixtures(t *testing.T) {
	app := newTestApp(t, nil)
	defer app.close()

	resp, body := app.getJSON(t, "/api/v1/fixtures")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	export := data(t, body)
	all, ok := export["all_fixtures"].([]any)
	require.True(t, ok)
	assert.Len(t, all, 3)
}

func TestIntegration_AddressCooldown(t *testing.T) {
	app := newTestApp(t, func(cfg *config.FaucetConfig) { cfg.CooldownTTL = time.Hour })
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/faucet/request", map[string]any{
		"address": saplingDest,
		"amount":  1.0,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := app.postJSON(t, "/api/v1/faucet/request", map[string]any{
		"address": saplingDest,
		"amount":  1.0,
	}, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_002", body["error_code"])

	// A different destination is unaffected.
	other := fmt.Sprintf("zs1%075d", 7)
	resp, _ = app.postJSON(t, "/api/v1/faucet/request", map[string]any{
		"address": other,
		"amount":  1.0,
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
