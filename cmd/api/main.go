package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zeckit-faucet/config"
	"zeckit-faucet/internal/adapter/chainrpc"
	httpHandler "zeckit-faucet/internal/adapter/http/handler"
	fileStorage "zeckit-faucet/internal/adapter/storage/file"
	pgStorage "zeckit-faucet/internal/adapter/storage/postgres"
	redisStorage "zeckit-faucet/internal/adapter/storage/redis"
	"zeckit-faucet/internal/adapter/walletcli"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/internal/service"
	"zeckit-faucet/pkg/logger"
)

// fixturePreFundZEC is sent to each generated UA fixture when the wallet
// holds enough to cover all of them.
const fixturePreFundZEC = 100.0

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("chain", cfg.Wallet.ChainName).
		Bool("mock", cfg.Faucet.Mock).
		Int("port", cfg.Server.Port).
		Msg("Starting ZecKit faucet")

	ctx := context.Background()

	// Chain node RPC client (address minting + health)
	chain := chainrpc.New(chainrpc.Config{
		URL:      cfg.Chain.RPCURL,
		Username: cfg.Chain.RPCUser,
		Password: cfg.Chain.RPCPass,
		Timeout:  cfg.Chain.Timeout,
	}, logger.Component(log, "chainrpc"))

	healthCheckers := []ports.HealthChecker{chain}

	// Wallet ledger: snapshot store + service (mints the faucet address and
	// seeds the balance on first start)
	walletStore := fileStorage.NewWalletStore(cfg.Faucet.WalletFile, logger.Component(log, "walletstore"))
	ledgerSvc, err := service.NewLedgerService(ctx, walletStore, chain, cfg.Faucet, logger.Component(log, "ledger"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet ledger")
	}
	log.Info().
		Str("address", ledgerSvc.Address()).
		Float64("balance_zec", domain.ZEC(ledgerSvc.Balance())).
		Msg("Wallet ledger ready")

	// External wallet process client + transfer orchestrator
	console := walletcli.New(walletcli.Config{
		CLIPath:   cfg.Wallet.CLIPath,
		DataDir:   cfg.Wallet.DataDir,
		ServerURI: cfg.Wallet.LightwalletdURI,
		ChainName: cfg.Wallet.ChainName,
	}, logger.Component(log, "walletcli"))
	transferSvc := service.NewTransferService(console, cfg.Wallet, cfg.Faucet.FeeMarginZats, logger.Component(log, "transfer"))

	// Audit trail: PostgreSQL-backed when enabled, log-only otherwise
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected, audit trail persisted")
	}
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	faucetSvc := service.NewFaucetService(cfg.Faucet, ledgerSvc, transferSvc, auditSvc, logger.Component(log, "faucet"))

	// Completed background transfers are recorded in the ledger by the
	// faucet service.
	transferSvc.OnComplete(faucetSvc.HandleTransferComplete)

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go transferSvc.Run(workerCtx)

	// UA fixtures for E2E suites
	fixtureStore := fileStorage.NewFixtureStore(cfg.Faucet.FixturesFile, logger.Component(log, "fixturestore"))
	fixtureSvc := service.NewFixtureService(fixtureStore, chain, ledgerSvc, logger.Component(log, "fixtures"))
	if _, err := fixtureSvc.Generate(ctx, false); err != nil {
		log.Warn().Err(err).Msg("Fixture generation failed, continuing without fixtures")
	} else if ledgerSvc.Balance() >= 3*domain.Zatoshi(fixturePreFundZEC) {
		results := fixtureSvc.PreFund(ctx, domain.Zatoshi(fixturePreFundZEC))
		log.Info().Interface("results", results).Msg("Fixture pre-funding done")
	} else {
		log.Info().Msg("Skipping fixture pre-funding, balance too low")
	}

	// Redis: IP rate limits + per-address cooldown (optional)
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		faucetSvc.UseCooldown(redisStorage.NewCooldownStore(rdb))
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected, rate limiting enabled")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FaucetSvc:      faucetSvc,
		LedgerSvc:      ledgerSvc,
		FixtureSvc:     fixtureSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AdminSecret:    cfg.Faucet.AdminSecret,
		ChainName:      cfg.Wallet.ChainName,
		CORSOrigins:    cfg.CORS.Origins,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stopWorker()

	log.Info().Msg("Server exited")
}
