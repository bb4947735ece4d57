package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// BuyTaxes holds the percent cuts of a buy.
type BuyTaxes struct {
	// Marketing is the share accrued for the marketing wallet
	Marketing uint8 `env:"MARKETING" env-default:"1" yaml:"marketing" validate:"lte=100"`
	// Liquidity is the share accrued for liquidity provisioning
	Liquidity uint8 `env:"LIQUIDITY" env-default:"1" yaml:"liquidity" validate:"lte=100"`
	// Stake is the share credited straight to the vault
	Stake uint8 `env:"STAKE" env-default:"1" yaml:"stake" validate:"lte=100"`
}

// SellTaxes holds the percent cuts of a sell.
type SellTaxes struct {
	Marketing uint8 `env:"MARKETING" env-default:"2" yaml:"marketing" validate:"lte=100"`
	Liquidity uint8 `env:"LIQUIDITY" env-default:"1" yaml:"liquidity" validate:"lte=100"`
	Stake     uint8 `env:"STAKE" env-default:"3" yaml:"stake" validate:"lte=100"`
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the deployed token, its router, the event worker and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment" validate:"oneof=development production"` //nolint: lll

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowOrigin is the CORS origin allowed to call the API
		AllowOrigin string `env:"HTTP_ALLOW_ORIGIN" env-default:"*" yaml:"allowOrigin"`
		// Pprof mounts the profiling endpoints under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"true" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"taxtoken" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to authenticate API callers
	JWT struct {
		// PublicKey is the PEM encoded key the API verifies tokens with
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key the jwt command signs tokens with
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Token describes the token created by the deploy command. Quantities are in human units.
	Token struct {
		Name     string `env:"TOKEN_NAME" env-default:"Taxed Token" yaml:"name" validate:"required"`
		Symbol   string `env:"TOKEN_SYMBOL" env-default:"TAX" yaml:"symbol" validate:"required"`
		Decimals uint8  `env:"TOKEN_DECIMALS" env-default:"18" yaml:"decimals" validate:"lte=36"`
		// Variant is either tiered (buy/sell tiers with distribution) or decay
		Variant string `env:"TOKEN_VARIANT" env-default:"tiered" yaml:"variant" validate:"oneof=tiered decay"`
		// Supply is minted to the owner at deployment
		Supply string `env:"TOKEN_SUPPLY" env-default:"1000000000" yaml:"supply" validate:"numeric"`
		// Threshold is the accrued fee balance that triggers a distribution
		Threshold string `env:"TOKEN_THRESHOLD" env-default:"100" yaml:"threshold" validate:"numeric"`

		// Address is the token's own account, derived from the owner when empty
		Address        string `env:"TOKEN_ADDRESS" yaml:"address" validate:"omitempty,eth_addr"`
		Owner          string `env:"TOKEN_OWNER" yaml:"owner" validate:"omitempty,eth_addr"`
		Minter         string `env:"TOKEN_MINTER" yaml:"minter" validate:"omitempty,eth_addr"`
		Marketing      string `env:"TOKEN_MARKETING" yaml:"marketing" validate:"omitempty,eth_addr"`
		Vault          string `env:"TOKEN_VAULT" yaml:"vault" validate:"omitempty,eth_addr"`
		LiquidityVault string `env:"TOKEN_LIQUIDITY_VAULT" yaml:"liquidityVault" validate:"omitempty,eth_addr"`
		Dev            string `env:"TOKEN_DEV" yaml:"dev" validate:"omitempty,eth_addr"`

		BuyTaxes  BuyTaxes  `env-prefix:"TOKEN_BUY_TAXES_" yaml:"buyTaxes"`
		SellTaxes SellTaxes `env-prefix:"TOKEN_SELL_TAXES_" yaml:"sellTaxes"`

		// DecayWindow is how long after receipt a send is taxed (decay variant)
		DecayWindow time.Duration `env:"TOKEN_DECAY_WINDOW" env-default:"72h" yaml:"decayWindow"`
		// DecayPercent is the tax applied inside the window (decay variant)
		DecayPercent uint8 `env:"TOKEN_DECAY_PERCENT" env-default:"20" yaml:"decayPercent" validate:"lte=100"`

		// Funding credits native currency (18 decimals) to accounts at deployment
		Funding map[string]string `env:"TOKEN_FUNDING" yaml:"funding" validate:"dive,keys,eth_addr,endkeys,numeric"`
	} `yaml:"token"`

	// Router configures the built-in constant-product swap router
	Router struct {
		// Address is the account the router spends allowances as
		Address string `env:"ROUTER_ADDRESS" yaml:"address" validate:"omitempty,eth_addr"`
		// Factory is the account pair addresses are derived from
		Factory string `env:"ROUTER_FACTORY" yaml:"factory" validate:"omitempty,eth_addr"`
	} `yaml:"router"`

	// Worker configures publishing of committed events to the audit sink
	Worker struct {
		// PublishEvents enqueues a publish job with every committed call
		PublishEvents bool `env:"WORKER_PUBLISH_EVENTS" env-default:"false" yaml:"publishEvents"`
		// WebhookURL is where events are posted
		WebhookURL string `env:"WORKER_WEBHOOK_URL" yaml:"webhookURL" validate:"required_if=PublishEvents true"`
		// WebhookSecret is sent as a bearer token with every post
		WebhookSecret string `env:"WORKER_WEBHOOK_SECRET" yaml:"webhookSecret"`
		// Timeout bounds a single publish attempt
		Timeout time.Duration `env:"WORKER_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// MaxWorkers is the number of jobs worked concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers" validate:"gt=0"`
		// MaxAttempts is the number of times a publish job is tried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts" validate:"gt=0"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field formats and the tax tier bounds.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	buy := c.Token.BuyTaxes
	if total := int(buy.Marketing) + int(buy.Liquidity) + int(buy.Stake); total > 100 {
		return fmt.Errorf("invalid config: buy taxes add up to %d%%", total)
	}
	sell := c.Token.SellTaxes
	if total := int(sell.Marketing) + int(sell.Liquidity) + int(sell.Stake); total > 100 {
		return fmt.Errorf("invalid config: sell taxes add up to %d%%", total)
	}

	return nil
}
