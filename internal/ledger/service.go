package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/telemetry"
)

// airdropLimitNote is appended to airdrop failures, the public devnet faucet rejects requests above these limits
const airdropLimitNote = "Devnet airdrops are limited to 1 SOL per request and 5 SOL per day"

// Service implements the ledger operations exposed by the API on top of a Client.
//
// The signer pays for and signs every submitted transaction. It is optional:
// read-only operations work without it, operations that submit transactions return a
// signer_unavailable error.
type Service struct {
	client Client
	signer solana.PrivateKey
	logger *slog.Logger
}

// CreateMintResult describes a newly created SPL token mint
type CreateMintResult struct {
	Mint          solana.PublicKey
	MintAuthority solana.PublicKey
	Signature     solana.Signature
}

// TransferResult describes a confirmed token transfer
type TransferResult struct {
	Signature   solana.Signature
	Source      solana.PublicKey
	Destination solana.PublicKey

	// CreatedDestination is true when the destination token account was created by the transfer transaction
	CreatedDestination bool
}

// NewService creates a Service. signer may be nil.
func NewService(client Client, signer solana.PrivateKey, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		signer: signer,
		logger: logger,
	}
}

// Signer returns the public key of the configured signer and whether one is configured
func (s *Service) Signer() (solana.PublicKey, bool) {
	if len(s.signer) == 0 {
		return solana.PublicKey{}, false
	}
	return s.signer.PublicKey(), true
}

// Ready returns an error when the ledger RPC endpoint is not healthy
func (s *Service) Ready(ctx context.Context) error {
	if err := s.client.Health(ctx); err != nil {
		return wrapRPC(err, "ledger RPC endpoint is not healthy")
	}
	return nil
}

// Balance returns the balance of account in lamports
func (s *Service) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := s.client.GetBalance(ctx, account)
	if err != nil {
		return 0, wrapRPC(err, fmt.Sprintf("failed to get balance of %s", account))
	}
	return balance, nil
}

// Airdrop requests lamports from the cluster faucet for account.
// The airdrop is not waited for: the returned signature identifies the faucet transaction.
func (s *Service) Airdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	signature, err := s.client.RequestAirdrop(ctx, account, lamports)
	if err != nil {
		telemetry.AirdropsTotal.WithLabelValues("failed").Inc()
		return solana.Signature{}, WrapRPCError(err, "airdrop failed. "+airdropLimitNote)
	}

	telemetry.AirdropsTotal.WithLabelValues("requested").Inc()
	s.logger.Info("airdrop requested",
		slog.String("pubkey", account.String()),
		slog.Uint64("lamports", lamports),
		slog.String("signature", signature.String()),
	)
	return signature, nil
}

// CreateMint creates a new SPL token mint with the given authority and decimals.
//
// A fresh mint keypair is generated; the transaction creates the mint account (funded by the signer
// with the rent exemption minimum) and initializes it. The mint has no freeze authority.
func (s *Service) CreateMint(ctx context.Context, mintAuthority solana.PublicKey, decimals uint8) (*CreateMintResult, error) {
	if len(s.signer) == 0 {
		return nil, NewSignerUnavailableError()
	}

	mint, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, WrapTransactionError(err, "failed to generate mint keypair")
	}

	rent, err := s.client.GetMinimumBalanceForRentExemption(ctx, MintAccountSize)
	if err != nil {
		return nil, wrapRPC(err, "failed to get rent exemption minimum for mint account")
	}

	instructions, err := CreateMintInstructions(s.signer.PublicKey(), mint.PublicKey(), mintAuthority, decimals, rent)
	if err != nil {
		return nil, err
	}

	signature, err := s.signAndSubmit(ctx, "create_mint", instructions, mint)
	if err != nil {
		return nil, err
	}

	s.logger.Info("token mint created",
		slog.String("mint", mint.PublicKey().String()),
		slog.String("mint_authority", mintAuthority.String()),
		slog.Int("decimals", int(decimals)),
		slog.String("signature", signature.String()),
	)

	return &CreateMintResult{
		Mint:          mint.PublicKey(),
		MintAuthority: mintAuthority,
		Signature:     signature,
	}, nil
}

// TransferTokens moves amount base units of mint from the owner's associated token account
// to the associated token account of destinationOwner.
//
// owner must be the configured signer. The destination token account is created in the same
// transaction when it does not exist yet.
func (s *Service) TransferTokens(ctx context.Context, mint, owner, destinationOwner solana.PublicKey, amount uint64) (*TransferResult, error) {
	if len(s.signer) == 0 {
		return nil, NewSignerUnavailableError()
	}
	if !owner.Equals(s.signer.PublicKey()) {
		return nil, NewOwnerMismatchError(fmt.Sprintf("owner %s is not the server signer %s", owner, s.signer.PublicKey()))
	}

	source, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	destination, err := AssociatedTokenAddress(destinationOwner, mint)
	if err != nil {
		return nil, err
	}

	exists, err := s.client.AccountExists(ctx, destination)
	if err != nil {
		return nil, wrapRPC(err, fmt.Sprintf("failed to look up destination token account %s", destination))
	}

	instructions := make([]solana.Instruction, 0, 2)
	if !exists {
		create, err := CreateAssociatedTokenAccountInstruction(s.signer.PublicKey(), destinationOwner, mint)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, create)
	}

	transfer, err := TransferInstruction(source, destination, owner, amount)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, transfer)

	signature, err := s.signAndSubmit(ctx, "transfer_token", instructions)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tokens transferred",
		slog.String("mint", mint.String()),
		slog.String("source", source.String()),
		slog.String("destination", destination.String()),
		slog.Uint64("amount", amount),
		slog.Bool("created_destination", !exists),
		slog.String("signature", signature.String()),
	)

	return &TransferResult{
		Signature:          signature,
		Source:             source,
		Destination:        destination,
		CreatedDestination: !exists,
	}, nil
}

// signAndSubmit builds a transaction paid for by the signer, signs it with the signer and any
// additional signers, submits it and waits for confirmation.
func (s *Service) signAndSubmit(ctx context.Context, kind string, instructions []solana.Instruction, additionalSigners ...solana.PrivateKey) (solana.Signature, error) {
	signature, err := s.submit(ctx, instructions, additionalSigners)
	status := "confirmed"
	if err != nil {
		status = "failed"
	}
	telemetry.TransactionsTotal.WithLabelValues(kind, status).Inc()
	return signature, err
}

func (s *Service) submit(ctx context.Context, instructions []solana.Instruction, additionalSigners []solana.PrivateKey) (solana.Signature, error) {
	blockhash, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, wrapRPC(err, "failed to get latest blockhash")
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(s.signer.PublicKey()))
	if err != nil {
		return solana.Signature{}, WrapTransactionError(err, "failed to build transaction")
	}

	signers := append([]solana.PrivateKey{s.signer}, additionalSigners...)
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return solana.Signature{}, WrapTransactionError(err, "failed to sign transaction")
	}

	signature, err := s.client.SendAndConfirmTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, wrapRPC(err, "failed to submit transaction")
	}
	return signature, nil
}

// wrapRPC wraps errors returned by the Client as rpc errors.
// Errors that are already ledger errors (e.g. failed confirmation) are returned unchanged.
func wrapRPC(err error, msg string) error {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return err
	}
	return WrapRPCError(err, msg)
}
