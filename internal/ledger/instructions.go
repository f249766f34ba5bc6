package ledger

import (
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	// LamportsPerSOL is the number of lamports in one SOL
	LamportsPerSOL uint64 = 1_000_000_000

	// MintAccountSize is the size in bytes of an SPL token mint account
	MintAccountSize uint64 = 82
)

// SOLToLamports converts an amount of SOL to lamports, rounding to the nearest lamport
func SOLToLamports(sol float64) (uint64, error) {
	if math.IsNaN(sol) || math.IsInf(sol, 0) {
		return 0, fmt.Errorf("amount must be a finite number")
	}
	if sol <= 0 {
		return 0, fmt.Errorf("amount must be greater than 0")
	}

	lamports := math.Round(sol * float64(LamportsPerSOL))
	if lamports < 1 {
		return 0, fmt.Errorf("amount %v SOL is less than 1 lamport", sol)
	}
	if lamports >= math.MaxUint64 {
		return 0, fmt.Errorf("amount %v SOL is too large", sol)
	}
	return uint64(lamports), nil
}

// LamportsToSOL converts lamports to SOL
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / float64(LamportsPerSOL)
}

// CreateMintInstructions returns the two instructions that create a new SPL token mint:
//   - a system program create-account for the mint, funded by payer with rentLamports and owned by the token program
//   - a token program initialize-mint with the mint authority and no freeze authority
//
// Both the payer and the mint account must sign the transaction.
func CreateMintInstructions(payer, mint, mintAuthority solana.PublicKey, decimals uint8, rentLamports uint64) ([]solana.Instruction, error) {
	createAccount, err := system.NewCreateAccountInstruction(
		rentLamports,
		MintAccountSize,
		solana.TokenProgramID,
		payer,
		mint,
	).ValidateAndBuild()
	if err != nil {
		return nil, WrapInstructionError(err, "failed to build create account instruction")
	}

	initializeMint, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, WrapInstructionError(err, "failed to build initialize mint instruction")
	}

	return []solana.Instruction{createAccount, initializeMint}, nil
}

// AssociatedTokenAddress returns the associated token account of owner for mint
func AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, WrapInstructionError(err, "failed to derive associated token address")
	}
	return address, nil
}

// MintToInstruction returns a token program mint-to instruction that mints amount base units of mint
// into the associated token account of destinationOwner. authority must sign the transaction.
func MintToInstruction(mint, destinationOwner, authority solana.PublicKey, amount uint64) (solana.Instruction, error) {
	destination, err := AssociatedTokenAddress(destinationOwner, mint)
	if err != nil {
		return nil, err
	}

	instruction, err := token.NewMintToInstruction(
		amount,
		mint,
		destination,
		authority,
		nil,
	).ValidateAndBuild()
	if err != nil {
		return nil, WrapInstructionError(err, "failed to build mint to instruction")
	}
	return instruction, nil
}

// TransferInstruction returns a token program transfer instruction moving amount base units
// from the source token account to the destination token account. owner must sign the transaction.
func TransferInstruction(source, destination, owner solana.PublicKey, amount uint64) (solana.Instruction, error) {
	instruction, err := token.NewTransferInstruction(
		amount,
		source,
		destination,
		owner,
		nil,
	).ValidateAndBuild()
	if err != nil {
		return nil, WrapInstructionError(err, "failed to build transfer instruction")
	}
	return instruction, nil
}

// CreateAssociatedTokenAccountInstruction returns the instruction creating the associated token account
// of wallet for mint, paid for by payer
func CreateAssociatedTokenAccountInstruction(payer, wallet, mint solana.PublicKey) (solana.Instruction, error) {
	instruction, err := associatedtokenaccount.NewCreateInstruction(payer, wallet, mint).ValidateAndBuild()
	if err != nil {
		return nil, WrapInstructionError(err, "failed to build create associated token account instruction")
	}
	return instruction, nil
}
