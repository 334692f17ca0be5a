package handler

import (
	"zeckit-faucet/internal/adapter/http/middleware"
	redisStore "zeckit-faucet/internal/adapter/storage/redis"
	"zeckit-faucet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	FaucetSvc      ports.FaucetService
	LedgerSvc      ports.LedgerService
	FixtureSvc     ports.FixtureService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AdminSecret    string
	ChainName      string
	CORSOrigins    []string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.CORS(deps.CORSOrigins))

	// Service info and health
	r.GET("/", ServiceInfo(deps.ChainName))
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	faucetHandler := NewFaucetHandler(deps.FaucetSvc, deps.LedgerSvc)
	statsHandler := NewStatsHandler(deps.LedgerSvc)

	faucet := v1.Group("/faucet")
	{
		faucet.POST("/request", rl("faucet_request"), faucetHandler.RequestFunds)
		faucet.GET("/request/:id", rl("faucet_status"), faucetHandler.TransferStatus)
		faucet.DELETE("/request/:id", rl("faucet_status"), faucetHandler.CancelTransfer)

		faucet.GET("/balance", rl("faucet_read"), statsHandler.GetBalance)
		faucet.GET("/address", rl("faucet_read"), statsHandler.GetAddress)
		faucet.GET("/stats", rl("faucet_read"), statsHandler.GetStats)
		faucet.GET("/history", rl("faucet_read"), statsHandler.GetHistory)
	}

	fixturesHandler := NewFixturesHandler(deps.FixtureSvc)
	v1.GET("/fixtures", rl("faucet_read"), fixturesHandler.GetFixtures)

	// --- Admin routes (shared-secret authenticated) ---
	adminAuth := middleware.AdminAuth(deps.AdminSecret, deps.Logger)
	admin := v1.Group("/admin", adminAuth)
	{
		admin.POST("/fund", rl("admin"), faucetHandler.AdminFund)
		admin.POST("/fixtures/regenerate", rl("admin"), fixturesHandler.Regenerate)
	}

	return r
}
