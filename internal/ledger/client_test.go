package ledger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

// rpcNode answers JSON-RPC requests with canned results keyed by method name
type rpcNode struct {
	mu      sync.Mutex
	results map[string]string
	errors  map[string]string
	calls   map[string]int
}

func newRPCNode(t *testing.T, results, errors map[string]string) (*rpcNode, *httptest.Server) {
	t.Helper()
	node := &rpcNode{results: results, errors: errors, calls: map[string]int{}}
	ts := httptest.NewServer(http.HandlerFunc(node.serveHTTP))
	t.Cleanup(ts.Close)
	return node, ts
}

func (n *rpcNode) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	result, ok := n.results[req.Method]
	rpcErr, failed := n.errors[req.Method]
	n.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case failed:
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(req.ID)+`,"error":{"code":-32005,"message":"`+rpcErr+`"}}`)
	case ok:
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(req.ID)+`,"result":`+result+`}`)
	default:
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(req.ID)+`,"error":{"code":-32601,"message":"Method not found"}}`)
	}
}

func (n *rpcNode) callCount(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

func newTestRPCClient(endpoint string) *RPCClient {
	return NewRPCClient(RPCConfig{
		Endpoint:       endpoint,
		Commitment:     rpc.CommitmentConfirmed,
		Timeout:        time.Second,
		ConfirmTimeout: 300 * time.Millisecond,
		PollInterval:   10 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSignedTransaction(t *testing.T) *solana.Transaction {
	t.Helper()
	payer := newSigner(t)

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(1, payer.PublicKey(), solana.NewWallet().PublicKey()).Build(),
		},
		solana.Hash{},
		solana.TransactionPayer(payer.PublicKey()),
	)
	if err != nil {
		t.Fatalf("failed to build transaction: %v", err)
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer.PublicKey()) {
			return &payer
		}
		return nil
	}); err != nil {
		t.Fatalf("failed to sign transaction: %v", err)
	}
	return tx
}

func signatureStatus(status string) string {
	return `{"context":{"slot":10},"value":[` + status + `]}`
}

func TestSendAndConfirmTransaction(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantCode ErrorCode
	}{
		{
			name:   "confirmed",
			status: signatureStatus(`{"slot":10,"confirmations":1,"err":null,"confirmationStatus":"confirmed"}`),
		},
		{
			name:   "finalized",
			status: signatureStatus(`{"slot":10,"confirmations":null,"err":null,"confirmationStatus":"finalized"}`),
		},
		{
			name:     "processed only",
			status:   signatureStatus(`{"slot":10,"confirmations":0,"err":null,"confirmationStatus":"processed"}`),
			wantCode: ErrCodeConfirmation,
		},
		{
			name:     "not yet seen",
			status:   signatureStatus(`null`),
			wantCode: ErrCodeConfirmation,
		},
		{
			name:     "failed on chain",
			status:   signatureStatus(`{"slot":10,"confirmations":1,"err":{"InstructionError":[0,{"Custom":1}]},"confirmationStatus":"confirmed"}`),
			wantCode: ErrCodeTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := newSignedTransaction(t)
			want := tx.Signatures[0]

			node, ts := newRPCNode(t, map[string]string{
				"sendTransaction":      `"` + want.String() + `"`,
				"getSignatureStatuses": tt.status,
			}, nil)
			client := newTestRPCClient(ts.URL)

			signature, err := client.SendAndConfirmTransaction(context.Background(), tx)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else {
				assertLedgerErrorCode(t, err, tt.wantCode)
			}
			if !signature.Equals(want) {
				t.Errorf("signature = %s, want %s", signature, want)
			}
			if got := node.callCount("sendTransaction"); got != 1 {
				t.Errorf("sendTransaction called %d times, want 1", got)
			}
		})
	}
}

func TestSendAndConfirmTransactionRejected(t *testing.T) {
	node, ts := newRPCNode(t, nil, map[string]string{
		"sendTransaction": "Transaction simulation failed: Blockhash not found",
	})
	client := newTestRPCClient(ts.URL)

	_, err := client.SendAndConfirmTransaction(context.Background(), newSignedTransaction(t))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := node.callCount("getSignatureStatuses"); got != 0 {
		t.Errorf("polled %d times after a rejected submission, want 0", got)
	}
}

func TestAccountExists(t *testing.T) {
	tests := []struct {
		name   string
		result string
		want   bool
	}{
		{
			name:   "missing account",
			result: `{"context":{"slot":10},"value":null}`,
			want:   false,
		},
		{
			name: "existing account",
			result: `{"context":{"slot":10},"value":{"data":["","base64"],"executable":false,` +
				`"lamports":1000000,"owner":"11111111111111111111111111111111","rentEpoch":0,"space":0}}`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ts := newRPCNode(t, map[string]string{"getAccountInfo": tt.result}, nil)
			client := newTestRPCClient(ts.URL)

			exists, err := client.AccountExists(context.Background(), solana.NewWallet().PublicKey())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.want {
				t.Errorf("exists = %v, want %v", exists, tt.want)
			}
		})
	}

	t.Run("rpc failure", func(t *testing.T) {
		_, ts := newRPCNode(t, nil, map[string]string{"getAccountInfo": "node is unavailable"})
		client := newTestRPCClient(ts.URL)

		if _, err := client.AccountExists(context.Background(), solana.NewWallet().PublicKey()); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		_, ts := newRPCNode(t, map[string]string{"getHealth": `"ok"`}, nil)
		if err := newTestRPCClient(ts.URL).Health(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("behind", func(t *testing.T) {
		_, ts := newRPCNode(t, nil, map[string]string{"getHealth": "Node is behind by 42 slots"})
		if err := newTestRPCClient(ts.URL).Health(context.Background()); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestCommitmentReached(t *testing.T) {
	tests := []struct {
		status rpc.ConfirmationStatusType
		want   rpc.CommitmentType
		ok     bool
	}{
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentProcessed, true},
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentConfirmed, false},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentConfirmed, true},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentFinalized, false},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentConfirmed, true},
		{"", rpc.CommitmentProcessed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+string(tt.want), func(t *testing.T) {
			if got := commitmentReached(tt.status, tt.want); got != tt.ok {
				t.Errorf("commitmentReached(%q, %q) = %v, want %v", tt.status, tt.want, got, tt.ok)
			}
		})
	}
}
