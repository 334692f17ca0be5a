package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Faucet   FaucetConfig   `mapstructure:"faucet"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// FaucetConfig bounds funding requests and locates the ledger snapshot.
// Amounts are in ZEC; they are converted to zatoshi at the service boundary.
type FaucetConfig struct {
	AmountMin     float64       `mapstructure:"amount_min"`
	AmountMax     float64       `mapstructure:"amount_max"`
	AmountDefault float64       `mapstructure:"amount_default"`
	SeedAmount    float64       `mapstructure:"seed_amount"` // auto-funded when the ledger starts empty
	FeeMarginZats int64         `mapstructure:"fee_margin_zats"`
	CooldownTTL   time.Duration `mapstructure:"cooldown_ttl"` // per-address; 0 disables
	WalletFile    string        `mapstructure:"wallet_file"`
	FixturesFile  string        `mapstructure:"fixtures_file"`
	AdminSecret   string        `mapstructure:"admin_secret"`
	Mock          bool          `mapstructure:"mock"` // simulate sends without the external wallet process
}

// WalletConfig describes the external wallet process and the per-phase
// timeouts of the transfer protocol.
type WalletConfig struct {
	CLIPath        string        `mapstructure:"cli_path"`
	DataDir        string        `mapstructure:"data_dir"`
	LightwalletdURI string       `mapstructure:"lightwalletd_uri"`
	ChainName      string        `mapstructure:"chain_name"`
	QuiesceTimeout time.Duration `mapstructure:"quiesce_timeout"`
	ShieldTimeout  time.Duration `mapstructure:"shield_timeout"`
	SettleDelay    time.Duration `mapstructure:"settle_delay"`
	SettlePoll     time.Duration `mapstructure:"settle_poll"` // 0 disables polling, falls back to the fixed delay
	VerifyTimeout  time.Duration `mapstructure:"verify_timeout"`
	SendTimeout    time.Duration `mapstructure:"send_timeout"`
}

// ChainConfig points at the Zebra JSON-RPC endpoint.
type ChainConfig struct {
	RPCURL  string        `mapstructure:"rpc_url"`
	RPCUser string        `mapstructure:"rpc_user"`
	RPCPass string        `mapstructure:"rpc_pass"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// DatabaseConfig is optional; when Enabled the faucet keeps a request audit
// trail in PostgreSQL.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ZKF (ZecKit Faucet).
// Nested keys use underscore: ZKF_FAUCET_AMOUNT_MAX, ZKF_CHAIN_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("faucet.amount_min", 0.01)
	v.SetDefault("faucet.amount_max", 100.0)
	v.SetDefault("faucet.amount_default", 10.0)
	v.SetDefault("faucet.seed_amount", 1000.0)
	v.SetDefault("faucet.fee_margin_zats", 20000)
	v.SetDefault("faucet.cooldown_ttl", "0s")
	v.SetDefault("faucet.wallet_file", "/var/faucet/wallet.json")
	v.SetDefault("faucet.fixtures_file", "/var/faucet/ua_fixtures.json")
	v.SetDefault("faucet.admin_secret", "dev-secret-change-in-production")
	v.SetDefault("faucet.mock", false)
	v.SetDefault("wallet.cli_path", "/usr/local/bin/zingo-cli")
	v.SetDefault("wallet.data_dir", "/var/zingo")
	v.SetDefault("wallet.lightwalletd_uri", "http://lightwalletd:9067")
	v.SetDefault("wallet.chain_name", "regtest")
	v.SetDefault("wallet.quiesce_timeout", "5s")
	v.SetDefault("wallet.shield_timeout", "2m")
	v.SetDefault("wallet.settle_delay", "15s")
	v.SetDefault("wallet.settle_poll", "3s")
	v.SetDefault("wallet.verify_timeout", "30s")
	v.SetDefault("wallet.send_timeout", "2m")
	v.SetDefault("chain.rpc_url", "http://zebra:8232")
	v.SetDefault("chain.rpc_user", "")
	v.SetDefault("chain.rpc_pass", "")
	v.SetDefault("chain.timeout", "10s")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "faucet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ZKF_FAUCET_AMOUNT_MAX -> faucet.amount_max
	v.SetEnvPrefix("ZKF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Faucet.AmountMin <= 0 || cfg.Faucet.AmountMax < cfg.Faucet.AmountMin {
		return nil, fmt.Errorf("invalid faucet amount bounds: min=%v max=%v", cfg.Faucet.AmountMin, cfg.Faucet.AmountMax)
	}

	return &cfg, nil
}
