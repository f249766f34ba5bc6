package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/solgate/solgate/internal/telemetry"
)

// Client is the subset of the Solana JSON-RPC API used by the gateway.
//
// RPCClient is the production implementation; ledgertest.FakeClient is used in tests.
// Implementations must be safe for concurrent use.
type Client interface {
	// GetBalance returns the balance of the account in lamports
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)

	// RequestAirdrop asks the cluster faucet to send lamports to the account
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)

	// GetMinimumBalanceForRentExemption returns the lamports an account of dataSize bytes needs to be rent exempt
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error)

	// GetLatestBlockhash returns the blockhash new transactions should reference
	GetLatestBlockhash(ctx context.Context) (solana.Hash, error)

	// AccountExists reports whether the account has been created on chain
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)

	// SendAndConfirmTransaction submits a signed transaction and waits until it reaches the client commitment level
	SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// Health returns an error when the RPC node is not healthy
	Health(ctx context.Context) error
}

// RPCConfig configures the RPC client
type RPCConfig struct {
	// Endpoint is the JSON-RPC URL (e.g. https://api.devnet.solana.com)
	Endpoint string

	// Commitment used for queries, preflight checks and confirmation
	Commitment rpc.CommitmentType

	// Timeout bounds each individual RPC call
	Timeout time.Duration

	// ConfirmTimeout bounds the wait for a submitted transaction to be confirmed
	ConfirmTimeout time.Duration

	// PollInterval is the delay between signature status checks while waiting for confirmation
	PollInterval time.Duration
}

// RPCClient implements Client on top of the solana-go JSON-RPC client.
// Each call is traced, timed and counted.
type RPCClient struct {
	rpc    *rpc.Client
	config RPCConfig
	logger *slog.Logger
}

// NewRPCClient creates a client for the configured endpoint
func NewRPCClient(cfg RPCConfig, logger *slog.Logger) *RPCClient {
	if cfg.Commitment == "" {
		cfg.Commitment = rpc.CommitmentConfirmed
	}
	return &RPCClient{
		rpc:    rpc.New(cfg.Endpoint),
		config: cfg,
		logger: logger,
	}
}

// call runs fn with a per call timeout inside a client span and records the call metrics
func (c *RPCClient) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	ctx, span := telemetry.Tracer().Start(ctx, "solana.rpc "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "jsonrpc"),
			attribute.String("rpc.method", method),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	telemetry.LedgerCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	telemetry.LedgerCallsTotal.WithLabelValues(method, status).Inc()

	return err
}

func (c *RPCClient) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var balance uint64
	err := c.call(ctx, "getBalance", func(ctx context.Context) error {
		out, err := c.rpc.GetBalance(ctx, account, c.config.Commitment)
		if err != nil {
			return err
		}
		balance = out.Value
		return nil
	})
	return balance, err
}

func (c *RPCClient) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	var signature solana.Signature
	err := c.call(ctx, "requestAirdrop", func(ctx context.Context) error {
		var err error
		signature, err = c.rpc.RequestAirdrop(ctx, account, lamports, c.config.Commitment)
		return err
	})
	return signature, err
}

func (c *RPCClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error) {
	var lamports uint64
	err := c.call(ctx, "getMinimumBalanceForRentExemption", func(ctx context.Context) error {
		var err error
		lamports, err = c.rpc.GetMinimumBalanceForRentExemption(ctx, dataSize, c.config.Commitment)
		return err
	})
	return lamports, err
}

func (c *RPCClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	var blockhash solana.Hash
	err := c.call(ctx, "getLatestBlockhash", func(ctx context.Context) error {
		out, err := c.rpc.GetLatestBlockhash(ctx, c.config.Commitment)
		if err != nil {
			return err
		}
		blockhash = out.Value.Blockhash
		return nil
	})
	return blockhash, err
}

func (c *RPCClient) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	exists := true
	err := c.call(ctx, "getAccountInfo", func(ctx context.Context) error {
		_, err := c.rpc.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
			Commitment: c.config.Commitment,
		})
		if errors.Is(err, rpc.ErrNotFound) {
			exists = false
			return nil
		}
		return err
	})
	return exists, err
}

func (c *RPCClient) Health(ctx context.Context) error {
	return c.call(ctx, "getHealth", func(ctx context.Context) error {
		status, err := c.rpc.GetHealth(ctx)
		if err != nil {
			return err
		}
		if status != "ok" {
			return fmt.Errorf("node reported health %q", status)
		}
		return nil
	})
}

// SendAndConfirmTransaction submits tx and polls its signature status until it reaches the configured commitment,
// fails on chain, or ConfirmTimeout expires.
//
// The transaction is submitted once; status polling errors are logged and polling continues.
func (c *RPCClient) SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	var signature solana.Signature
	err := c.call(ctx, "sendTransaction", func(ctx context.Context) error {
		var err error
		signature, err = c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
			PreflightCommitment: c.config.Commitment,
		})
		return err
	})
	if err != nil {
		return solana.Signature{}, err
	}

	confirmCtx, cancel := context.WithTimeout(ctx, c.config.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-confirmCtx.Done():
			return signature, WrapConfirmationError(confirmCtx.Err(),
				fmt.Sprintf("transaction %s was not confirmed", signature))
		case <-ticker.C:
		}

		var status *rpc.SignatureStatusesResult
		err := c.call(confirmCtx, "getSignatureStatuses", func(ctx context.Context) error {
			out, err := c.rpc.GetSignatureStatuses(ctx, false, signature)
			if err != nil {
				return err
			}
			if len(out.Value) > 0 {
				status = out.Value[0]
			}
			return nil
		})
		if err != nil {
			c.logger.Debug("signature status check failed",
				slog.String("signature", signature.String()),
				slog.String("error", err.Error()))
			continue
		}
		if status == nil {
			continue
		}

		if status.Err != nil {
			return signature, NewTransactionError(fmt.Sprintf("transaction %s failed: %v", signature, status.Err))
		}

		if commitmentReached(status.ConfirmationStatus, c.config.Commitment) {
			return signature, nil
		}
	}
}

var commitmentRank = map[string]int{
	"processed": 1,
	"confirmed": 2,
	"finalized": 3,
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	got, ok := commitmentRank[string(status)]
	if !ok {
		return false
	}
	return got >= commitmentRank[string(want)]
}
