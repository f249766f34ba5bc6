// Package ledgertest provides an in-memory ledger client for tests.
package ledgertest

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// ErrUnavailable is a convenience error for simulating an unreachable RPC endpoint
var ErrUnavailable = errors.New("rpc endpoint unavailable")

// Airdrop records a RequestAirdrop call
type Airdrop struct {
	Account  solana.PublicKey
	Lamports uint64
}

// FakeClient implements the ledger Client interface in memory.
//
// Each call is recorded by method name in Calls. Setting Err makes every call fail with it;
// the per method error fields take precedence.
type FakeClient struct {
	mu sync.Mutex

	Balances         map[solana.PublicKey]uint64
	ExistingAccounts map[solana.PublicKey]bool
	RentExemption    uint64
	Blockhash        solana.Hash

	Err              error
	AirdropErr       error
	SubmitErr        error
	HealthErr        error
	RentExemptionErr error

	Calls     []string
	Airdrops  []Airdrop
	Submitted []*solana.Transaction
}

// NewFakeClient returns a FakeClient with a fixed blockhash and the devnet rent exemption for a mint account
func NewFakeClient() *FakeClient {
	return &FakeClient{
		Balances:         make(map[solana.PublicKey]uint64),
		ExistingAccounts: make(map[solana.PublicKey]bool),
		RentExemption:    1461600,
		Blockhash:        solana.MustHashFromBase58("EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"),
	}
}

func (f *FakeClient) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, method)
	return f.Err
}

// CallCount returns the number of calls made to the client
func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// LastSubmitted returns the last submitted transaction, or nil
func (f *FakeClient) LastSubmitted() *solana.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Submitted) == 0 {
		return nil
	}
	return f.Submitted[len(f.Submitted)-1]
}

func (f *FakeClient) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	if err := f.record("getBalance"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Balances[account], nil
}

func (f *FakeClient) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	if err := f.record("requestAirdrop"); err != nil {
		return solana.Signature{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AirdropErr != nil {
		return solana.Signature{}, f.AirdropErr
	}
	f.Airdrops = append(f.Airdrops, Airdrop{Account: account, Lamports: lamports})
	f.Balances[account] += lamports

	var signature solana.Signature
	binary.BigEndian.PutUint64(signature[:8], uint64(len(f.Airdrops)))
	copy(signature[8:40], account[:])
	return signature, nil
}

func (f *FakeClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error) {
	if err := f.record("getMinimumBalanceForRentExemption"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RentExemptionErr != nil {
		return 0, f.RentExemptionErr
	}
	return f.RentExemption, nil
}

func (f *FakeClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	if err := f.record("getLatestBlockhash"); err != nil {
		return solana.Hash{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Blockhash, nil
}

func (f *FakeClient) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	if err := f.record("getAccountInfo"); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ExistingAccounts[account], nil
}

// SendAndConfirmTransaction records tx and returns its first signature
func (f *FakeClient) SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if err := f.record("sendTransaction"); err != nil {
		return solana.Signature{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SubmitErr != nil {
		return solana.Signature{}, f.SubmitErr
	}
	if len(tx.Signatures) == 0 {
		return solana.Signature{}, errors.New("transaction is not signed")
	}
	f.Submitted = append(f.Submitted, tx)
	return tx.Signatures[0], nil
}

func (f *FakeClient) Health(ctx context.Context) error {
	if err := f.record("getHealth"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.HealthErr
}
