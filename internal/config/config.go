package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=90s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	HandlerTimeout        time.Duration `env:"HANDLER_TIMEOUT,default=75s"`

	// request protection
	AllowedOrigins      []string `env:"ALLOWED_ORIGINS,default=http://localhost:5173|http://127.0.0.1:5173,separator=|"`
	RateLimitRPS        int32    `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst      int32    `env:"RATE_LIMIT_BURST,default=200"`
	MaxRequestBodyBytes int64    `env:"MAX_REQUEST_BODY_BYTES,default=65536"`

	// ledger settings
	SolanaRPCURL        string        `env:"SOLANA_RPC_URL,default=https://api.devnet.solana.com"`
	SolanaCommitment    string        `env:"SOLANA_COMMITMENT,default=confirmed"`
	RPCTimeout          time.Duration `env:"RPC_TIMEOUT,default=30s"`
	ConfirmTimeout      time.Duration `env:"CONFIRM_TIMEOUT,default=60s"`
	ConfirmPollInterval time.Duration `env:"CONFIRM_POLL_INTERVAL,default=500ms"`
	AirdropLamports     uint64        `env:"AIRDROP_LAMPORTS,default=1000000000"`

	// SignerKeyPath is the keypair that pays for and signs submitted transactions.
	// Optional - when unset the endpoints that submit transactions return an error.
	SignerKeyPath string `env:"SIGNER_KEY_PATH"`

	// OTLP gRPC collector endpoint (host:port). Tracing is disabled when unset.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

var validCommitments = map[string]bool{
	"processed": true,
	"confirmed": true,
	"finalized": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil

}

// validateConfig checks the loaded values are usable
func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}

	if !validCommitments[cfg.SolanaCommitment] {
		return fmt.Errorf("invalid SOLANA_COMMITMENT: %s (must be processed, confirmed or finalized)", cfg.SolanaCommitment)
	}

	u, err := url.Parse(cfg.SolanaRPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SOLANA_RPC_URL must be an absolute http(s) URL, got %q", cfg.SolanaRPCURL)
	}

	if cfg.RPCTimeout <= 0 {
		return fmt.Errorf("RPC_TIMEOUT must be greater than 0")
	}
	if cfg.ConfirmPollInterval <= 0 {
		return fmt.Errorf("CONFIRM_POLL_INTERVAL must be greater than 0")
	}
	if cfg.ConfirmTimeout < cfg.ConfirmPollInterval {
		return fmt.Errorf("CONFIRM_TIMEOUT (%s) cannot be less than CONFIRM_POLL_INTERVAL (%s)",
			cfg.ConfirmTimeout, cfg.ConfirmPollInterval)
	}

	if cfg.MaxRequestBodyBytes < 1 {
		return fmt.Errorf("MAX_REQUEST_BODY_BYTES must be at least 1")
	}

	if cfg.AirdropLamports == 0 {
		return fmt.Errorf("AIRDROP_LAMPORTS must be greater than 0")
	}

	return nil
}

// ClientEnvironment configures the solgate CLI. Flags take precedence over these values.
type ClientEnvironment struct {
	ServerURL  string        `env:"SOLGATE_SERVER_URL,default=http://localhost:8080"`
	Timeout    time.Duration `env:"SOLGATE_TIMEOUT,default=90s"`
	MaxRetries uint64        `env:"SOLGATE_MAX_RETRIES,default=3"`
	LogLevel   string        `env:"LOG_LEVEL,default=warn"`
}

// NewClientConfig loads the CLI settings from the environment
func NewClientConfig() (*ClientEnvironment, error) {
	var cfg ClientEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("SOLGATE_TIMEOUT must be greater than 0")
	}
	return &cfg, nil
}
