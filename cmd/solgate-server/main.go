package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/solgate/solgate/internal/config"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/docs"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
	"github.com/solgate/solgate/internal/server"
	"github.com/solgate/solgate/internal/telemetry"
	"github.com/solgate/solgate/internal/version"
)

//	@title			solgate-server
//	@description	solgate-server is an HTTP gateway to a Solana cluster: keypair generation, SPL token mints,
//	@description	token transfers, message signing and verification, balances and devnet airdrops.
//	@description
//	@description	## Response envelope
//	@description	Every endpoint answers with `{"success": true, "data": {...}}` or `{"success": false, "error": "..."}`.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `400` Malformed request or invalid input (bad public key, secret key, signature or amount)
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` The Solana RPC node rejected or failed the request
//	@description
//	@description	## Request Limits
//	@description	All endpoints are protected by:
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 64KB
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit.
//	@description
//	@description	## Keys
//	@description	Secret keys sent to the sign and verify endpoints are used for the one request and never stored.
//	@description	Transactions are paid for and signed by the server signer (SIGNER_KEY_PATH), whose public key is
//	@description	published at /.well-known/jwks.json.
//	@description
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Keys
//	@tag.description	Keypair generation

//	@tag.name			Messages
//	@tag.description	Ed25519 message signing and verification

//	@tag.name			Tokens
//	@tag.description	SPL token mints and transfers

//	@tag.name			Accounts
//	@tag.description	Balances and devnet airdrops

//	@tag.name			Common
//	@tag.description	Server API endpoints (jwks, health, readiness, version, etc.)

func main() {
	cmd := &cobra.Command{
		Use:   "solgate-server",
		Short: "Solana HTTP gateway",
		Long:  `solgate-server exposes keypair, SPL token, message signing, balance and airdrop operations over HTTP`,
		// run errors are operational, not usage mistakes
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("SOLANA_RPC_URL", cfg.SolanaRPCURL),
		slog.String("SOLANA_COMMITMENT", cfg.SolanaCommitment),
		slog.String("SIGNER_KEY_PATH", cfg.SignerKeyPath),
		slog.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTLPEndpoint),
		slog.Any("ALLOWED_ORIGINS", cfg.AllowedOrigins),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := version.Get()
	docs.SwaggerInfo.Version = v.Version

	shutdownTracer, err := telemetry.InitTracer(ctx, telemetry.TracerConfig{
		ServiceName:    "solgate-server",
		ServiceVersion: v.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		appLogger.Error("Failed to initialise tracing", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			appLogger.Warn("tracer shutdown error", slog.String("error", err.Error()))
		}
	}()

	var signer solana.PrivateKey
	if cfg.SignerKeyPath != "" {
		signer, err = crypto.LoadSignerKey(cfg.SignerKeyPath)
		if err != nil {
			appLogger.Error("Failed to load signer key", slog.String("error", err.Error()))
			return err
		}
		appLogger.Info("signer key loaded", slog.String("signer", signer.PublicKey().String()))
	} else {
		appLogger.Warn("SIGNER_KEY_PATH is not set - token create and send endpoints are disabled")
	}

	client := ledger.NewRPCClient(ledger.RPCConfig{
		Endpoint:       cfg.SolanaRPCURL,
		Commitment:     rpc.CommitmentType(cfg.SolanaCommitment),
		Timeout:        cfg.RPCTimeout,
		ConfirmTimeout: cfg.ConfirmTimeout,
		PollInterval:   cfg.ConfirmPollInterval,
	}, appLogger)

	appLogger.Info("Starting server", slog.String("version", v.Version))

	server, err := server.NewServer(cfg, appLogger, client, signer)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		return err
	}

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
