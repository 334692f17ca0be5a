package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.01, cfg.Faucet.AmountMin)
	assert.Equal(t, 100.0, cfg.Faucet.AmountMax)
	assert.Equal(t, 10.0, cfg.Faucet.AmountDefault)
	assert.Equal(t, 1000.0, cfg.Faucet.SeedAmount)
	assert.Equal(t, int64(20000), cfg.Faucet.FeeMarginZats)
	assert.Equal(t, "/var/faucet/wallet.json", cfg.Faucet.WalletFile)
	assert.Equal(t, time.Duration(0), cfg.Faucet.CooldownTTL)
	assert.False(t, cfg.Faucet.Mock)

	assert.Equal(t, "/usr/local/bin/zingo-cli", cfg.Wallet.CLIPath)
	assert.Equal(t, "regtest", cfg.Wallet.ChainName)
	assert.Equal(t, 5*time.Second, cfg.Wallet.QuiesceTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Wallet.ShieldTimeout)
	assert.Equal(t, 15*time.Second, cfg.Wallet.SettleDelay)
	assert.Equal(t, 2*time.Minute, cfg.Wallet.SendTimeout)

	assert.Equal(t, "http://zebra:8232", cfg.Chain.RPCURL)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ZKF_FAUCET_AMOUNT_MAX", "50.0")
	t.Setenv("ZKF_WALLET_CHAIN_NAME", "testnet")
	t.Setenv("ZKF_CHAIN_RPC_URL", "http://localhost:18232")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Faucet.AmountMax)
	assert.Equal(t, "testnet", cfg.Wallet.ChainName)
	assert.Equal(t, "http://localhost:18232", cfg.Chain.RPCURL)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
faucet:
  amount_default: 5.0
  mock: true
wallet:
  settle_delay: 20s
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Faucet.AmountDefault)
	assert.True(t, cfg.Faucet.Mock)
	assert.Equal(t, 20*time.Second, cfg.Wallet.SettleDelay)
	// Untouched values keep defaults
	assert.Equal(t, 100.0, cfg.Faucet.AmountMax)
}

func TestLoad_InvalidBounds(t *testing.T) {
	t.Setenv("ZKF_FAUCET_AMOUNT_MIN", "10.0")
	t.Setenv("ZKF_FAUCET_AMOUNT_MAX", "1.0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount bounds")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p",
		DBName: "faucet", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/faucet?sslmode=disable", d.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", r.Addr())
}
