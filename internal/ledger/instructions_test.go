package ledger

import (
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func TestSOLToLamports(t *testing.T) {
	tests := []struct {
		name    string
		sol     float64
		want    uint64
		wantErr bool
	}{
		{"one sol", 1, 1_000_000_000, false},
		{"fraction", 0.5, 500_000_000, false},
		{"one lamport", 0.000000001, 1, false},
		{"rounds to nearest lamport", 0.0000000016, 2, false},
		{"zero", 0, 0, true},
		{"negative", -1, 0, true},
		{"below one lamport", 0.0000000001, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"infinite", math.Inf(1), 0, true},
		{"overflow", 1e11, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SOLToLamports(tt.sol)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SOLToLamports(%v) = %d, want error", tt.sol, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SOLToLamports(%v) error: %v", tt.sol, err)
			}
			if got != tt.want {
				t.Errorf("SOLToLamports(%v) = %d, want %d", tt.sol, got, tt.want)
			}
		})
	}
}

func TestLamportsToSOL(t *testing.T) {
	if got := LamportsToSOL(1_500_000_000); got != 1.5 {
		t.Errorf("LamportsToSOL() = %v, want 1.5", got)
	}
	if got := LamportsToSOL(0); got != 0 {
		t.Errorf("LamportsToSOL(0) = %v, want 0", got)
	}
}

func TestCreateMintInstructions(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	instructions, err := CreateMintInstructions(payer, mint, authority, 6, 1461600)
	if err != nil {
		t.Fatalf("CreateMintInstructions() error: %v", err)
	}
	if len(instructions) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instructions))
	}

	createAccount := instructions[0]
	if !createAccount.ProgramID().Equals(solana.SystemProgramID) {
		t.Errorf("first instruction program = %s, want system program", createAccount.ProgramID())
	}
	accounts := createAccount.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("create account has %d accounts, want 2", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(payer) || !accounts[0].IsSigner || !accounts[0].IsWritable {
		t.Errorf("payer account meta = %+v, want writable signer %s", accounts[0], payer)
	}
	if !accounts[1].PublicKey.Equals(mint) || !accounts[1].IsSigner || !accounts[1].IsWritable {
		t.Errorf("mint account meta = %+v, want writable signer %s", accounts[1], mint)
	}

	initializeMint := instructions[1]
	if !initializeMint.ProgramID().Equals(solana.TokenProgramID) {
		t.Errorf("second instruction program = %s, want token program", initializeMint.ProgramID())
	}
	accounts = initializeMint.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("initialize mint has %d accounts, want 2", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(mint) || !accounts[0].IsWritable {
		t.Errorf("initialize mint account = %+v, want writable %s", accounts[0], mint)
	}
	if !accounts[1].PublicKey.Equals(solana.SysVarRentPubkey) {
		t.Errorf("initialize mint sysvar = %s, want rent sysvar", accounts[1].PublicKey)
	}

	data, err := initializeMint.Data()
	if err != nil {
		t.Fatalf("Data() error: %v", err)
	}
	// instruction tag (0 = InitializeMint) followed by decimals
	if len(data) < 2 || data[0] != 0 || data[1] != 6 {
		t.Errorf("initialize mint data prefix = %v, want [0 6 ...]", data[:min(len(data), 2)])
	}
}

func TestMintToInstruction(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	instruction, err := MintToInstruction(mint, owner, authority, 1000)
	if err != nil {
		t.Fatalf("MintToInstruction() error: %v", err)
	}
	if !instruction.ProgramID().Equals(solana.TokenProgramID) {
		t.Errorf("program = %s, want token program", instruction.ProgramID())
	}

	wantDestination, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("FindAssociatedTokenAddress() error: %v", err)
	}

	accounts := instruction.Accounts()
	if len(accounts) != 3 {
		t.Fatalf("got %d accounts, want 3", len(accounts))
	}

	tests := []struct {
		name     string
		key      solana.PublicKey
		signer   bool
		writable bool
	}{
		{"mint", mint, false, true},
		{"destination", wantDestination, false, true},
		{"authority", authority, true, false},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounts[i]
			if !got.PublicKey.Equals(tt.key) {
				t.Errorf("pubkey = %s, want %s", got.PublicKey, tt.key)
			}
			if got.IsSigner != tt.signer {
				t.Errorf("is_signer = %v, want %v", got.IsSigner, tt.signer)
			}
			if got.IsWritable != tt.writable {
				t.Errorf("is_writable = %v, want %v", got.IsWritable, tt.writable)
			}
		})
	}
}

func TestTransferInstructionAccounts(t *testing.T) {
	source := solana.NewWallet().PublicKey()
	destination := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	instruction, err := TransferInstruction(source, destination, owner, 42)
	if err != nil {
		t.Fatalf("TransferInstruction() error: %v", err)
	}
	accounts := instruction.Accounts()
	if len(accounts) != 3 {
		t.Fatalf("got %d accounts, want 3", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(source) || !accounts[1].PublicKey.Equals(destination) {
		t.Error("source and destination accounts are not in order")
	}
	if !accounts[2].PublicKey.Equals(owner) || !accounts[2].IsSigner {
		t.Error("owner must be the signing account")
	}
}

func TestCommitmentReached(t *testing.T) {
	tests := []struct {
		status string
		want   string
		ok     bool
	}{
		{"processed", "confirmed", false},
		{"confirmed", "confirmed", true},
		{"finalized", "confirmed", true},
		{"confirmed", "finalized", false},
		{"", "processed", false},
	}
	for _, tt := range tests {
		t.Run(tt.status+"/"+tt.want, func(t *testing.T) {
			if got := commitmentReached(rpc.ConfirmationStatusType(tt.status), rpc.CommitmentType(tt.want)); got != tt.ok {
				t.Errorf("commitmentReached(%q, %q) = %v, want %v", tt.status, tt.want, got, tt.ok)
			}
		})
	}
}
