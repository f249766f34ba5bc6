package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/config"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger/ledgertest"
	"github.com/solgate/solgate/internal/server"
)

// startServer runs the full router over the fake ledger client
func startServer(t *testing.T) (string, *ledgertest.FakeClient) {
	t.Helper()

	cfg := &config.ServerEnvironment{
		Environment:         "test",
		HandlerTimeout:      5 * time.Second,
		MaxRequestBodyBytes: 65536,
		AirdropLamports:     1_000_000_000,
	}
	fake := ledgertest.NewFakeClient()

	srv, err := server.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), fake, nil)
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	t.Setenv("SOLGATE_MAX_RETRIES", "0")
	return ts.URL, fake
}

func runCLI(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestKeypairSignVerify(t *testing.T) {
	serverURL, fake := startServer(t)
	keyPath := filepath.Join(t.TempDir(), "signer.json")

	out, err := runCLI(t, serverURL, "keypair", "--output", keyPath)
	if err != nil {
		t.Fatalf("keypair failed: %v", err)
	}
	var keypair struct {
		Pubkey string `json:"pubkey"`
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal([]byte(out), &keypair); err != nil {
		t.Fatalf("failed to decode keypair output %q: %v", out, err)
	}

	saved, err := crypto.LoadSignerKey(keyPath)
	if err != nil {
		t.Fatalf("failed to load saved keypair: %v", err)
	}
	if saved.PublicKey().String() != keypair.Pubkey {
		t.Errorf("saved key %s does not match %s", saved.PublicKey(), keypair.Pubkey)
	}

	out, err = runCLI(t, serverURL, "sign", "--message", "hello", "--keyfile", keyPath)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	var signed struct {
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal([]byte(out), &signed); err != nil {
		t.Fatalf("failed to decode sign output: %v", err)
	}

	if _, err := runCLI(t, serverURL, "verify", "-m", "hello", "-s", signed.Signature, "-p", keypair.Pubkey); err != nil {
		t.Errorf("verify failed: %v", err)
	}
	if _, err := runCLI(t, serverURL, "verify", "-m", "goodbye", "-s", signed.Signature, "-p", keypair.Pubkey); err == nil {
		t.Error("verify of a different message succeeded")
	}

	if fake.CallCount() != 0 {
		t.Errorf("made %d ledger calls, want 0", fake.CallCount())
	}
}

func TestBalanceAndAirdrop(t *testing.T) {
	serverURL, fake := startServer(t)

	account := solana.NewWallet().PublicKey()
	fake.Balances[account] = 2_500_000_000

	out, err := runCLI(t, serverURL, "balance", account.String())
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if !strings.Contains(out, `"sol": 2.5`) {
		t.Errorf("unexpected balance output %s", out)
	}

	if _, err := runCLI(t, serverURL, "airdrop", account.String()); err != nil {
		t.Fatalf("airdrop failed: %v", err)
	}
	if _, err := runCLI(t, serverURL, "airdrop", account.String(), "--amount", "0.25"); err != nil {
		t.Fatalf("airdrop --amount failed: %v", err)
	}

	if len(fake.Airdrops) != 2 {
		t.Fatalf("got %d airdrops, want 2", len(fake.Airdrops))
	}
	if fake.Airdrops[0].Lamports != 1_000_000_000 || fake.Airdrops[1].Lamports != 250_000_000 {
		t.Errorf("unexpected airdrops %+v", fake.Airdrops)
	}
}

func TestServerErrorsAreReturned(t *testing.T) {
	serverURL, _ := startServer(t)

	_, err := runCLI(t, serverURL, "balance", "not-a-real-pubkey")
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Errorf("expected a 400 error, got %v", err)
	}

	_, err = runCLI(t, serverURL, "token", "create", "--authority", solana.NewWallet().PublicKey().String(), "--decimals", "6")
	if err == nil || !strings.Contains(err.Error(), "signer not configured") {
		t.Errorf("expected signer not configured, got %v", err)
	}
}

func TestTokenMintPrintsInstruction(t *testing.T) {
	serverURL, fake := startServer(t)

	out, err := runCLI(t, serverURL, "token", "mint",
		"--mint", solana.NewWallet().PublicKey().String(),
		"--destination", solana.NewWallet().PublicKey().String(),
		"--authority", solana.NewWallet().PublicKey().String(),
		"--amount", "1000",
	)
	if err != nil {
		t.Fatalf("token mint failed: %v", err)
	}
	if !strings.Contains(out, solana.TokenProgramID.String()) {
		t.Errorf("output does not name the token program: %s", out)
	}
	if fake.CallCount() != 0 {
		t.Errorf("made %d ledger calls, want 0", fake.CallCount())
	}
}

func TestMissingRequiredFlags(t *testing.T) {
	serverURL, _ := startServer(t)

	tests := [][]string{
		{"sign", "--message", "hello"},
		{"verify", "--message", "hello"},
		{"send", "--mint", "x"},
		{"balance"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := runCLI(t, serverURL, args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMain(m *testing.M) {
	os.Setenv("LOG_LEVEL", "error")
	os.Exit(m.Run())
}
