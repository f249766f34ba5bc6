package handlers

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/ledger"
)

// LedgerService is the part of ledger.Service used by the handlers
type LedgerService interface {
	Balance(ctx context.Context, account solana.PublicKey) (uint64, error)
	Airdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	CreateMint(ctx context.Context, mintAuthority solana.PublicKey, decimals uint8) (*ledger.CreateMintResult, error)
	TransferTokens(ctx context.Context, mint, owner, destinationOwner solana.PublicKey, amount uint64) (*ledger.TransferResult, error)
}
