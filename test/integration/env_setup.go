//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// Each test gets a new signer keypair written to a temporary directory, funded with an airdrop
// before the server starts.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/solgate/solgate/internal/client"
	"github.com/solgate/solgate/internal/config"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
	"github.com/solgate/solgate/internal/server"
)

const defaultRPCURL = "http://localhost:8899"

// testEnv provides access to the running server for integration tests
type testEnv struct {
	baseURL  string
	cfg      *config.ServerEnvironment
	client   *client.Client
	signer   solana.PrivateKey
	shutdown func()
}

func rpcURL() string {
	if u := os.Getenv("INTEGRATION_RPC_URL"); u != "" {
		return u
	}
	return defaultRPCURL
}

// startInProcessServer starts solgate-server in-process with a funded signer
func startInProcessServer(t *testing.T) *testEnv {
	t.Helper()

	rpcClient := ledger.NewRPCClient(ledger.RPCConfig{
		Endpoint:       rpcURL(),
		Commitment:     rpc.CommitmentConfirmed,
		Timeout:        10 * time.Second,
		ConfirmTimeout: 30 * time.Second,
		PollInterval:   250 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	if err := rpcClient.Health(ctx); err != nil {
		t.Skipf("no healthy Solana RPC node at %s: %v", rpcURL(), err)
	}

	testEnv := &testEnv{}

	// signer keypair file
	keysDir := t.TempDir()
	signer, err := crypto.GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate signer: %v", err)
	}
	if err := crypto.SaveKeypairFile(signer, keysDir, "signer.json"); err != nil {
		t.Fatalf("failed to save signer: %v", err)
	}
	testEnv.signer = signer

	fundAccount(t, rpcClient, signer.PublicKey(), 2*ledger.LamportsPerSOL)

	port := findFreePort(t)

	logLevel := "error"
	if os.Getenv("ENABLE_SERVER_LOGS") == "true" {
		logLevel = "debug"
	}

	// Set environment variables before calling NewServerConfig
	testEnvVars := map[string]string{
		"ENVIRONMENT":       "test",
		"HOST":              "localhost",
		"PORT":              fmt.Sprintf("%d", port),
		"LOG_LEVEL":         logLevel,
		"RATE_LIMIT_RPS":    "0",
		"SOLANA_RPC_URL":    rpcURL(),
		"SOLANA_COMMITMENT": "confirmed",
		"SIGNER_KEY_PATH":   filepath.Join(keysDir, "signer.json"),
		"AIRDROP_LAMPORTS":  "500000000",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	testEnv.cfg = cfg

	loadedSigner, err := crypto.LoadSignerKey(cfg.SignerKeyPath)
	if err != nil {
		t.Fatalf("Failed to load signer: %v", err)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverClient := ledger.NewRPCClient(ledger.RPCConfig{
		Endpoint:       cfg.SolanaRPCURL,
		Commitment:     rpc.CommitmentType(cfg.SolanaCommitment),
		Timeout:        cfg.RPCTimeout,
		ConfirmTimeout: cfg.ConfirmTimeout,
		PollInterval:   cfg.ConfirmPollInterval,
	}, appLogger)

	serverInstance, err := server.NewServer(cfg, appLogger, serverClient, loadedSigner)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	serverCtx, serverCancel := context.WithCancel(ctx)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	testEnv.shutdown = func() {
		t.Log("Stopping server...")
		serverCancel()

		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("❌ Server shutdown with error: %v", err)
			} else {
				t.Log("✅ Server shut down gracefully")
			}
		case <-time.After(5 * time.Second):
			t.Log("⚠️ Server shutdown timeout")
		}
	}

	testEnv.baseURL = fmt.Sprintf("http://localhost:%d", port)

	if !waitForServer(t, testEnv.baseURL+"/health", 30*time.Second) {
		t.Fatal("Server failed to start within timeout")
	}

	testEnv.client, err = client.New(client.Config{BaseURL: testEnv.baseURL, MaxRetries: 2})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	t.Log("✅ Server started")
	return testEnv
}

// fundAccount airdrops lamports to account and waits until the balance shows them
func fundAccount(t *testing.T, c ledger.Client, account solana.PublicKey, lamports uint64) {
	t.Helper()

	ctx := context.Background()
	if _, err := c.RequestAirdrop(ctx, account, lamports); err != nil {
		t.Fatalf("airdrop to %s failed: %v", account, err)
	}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		balance, err := c.GetBalance(ctx, account)
		if err == nil && balance >= lamports {
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("airdrop to %s was not credited within 30s", account)
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
