package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/config"
	_ "github.com/solgate/solgate/internal/docs"
	"github.com/solgate/solgate/internal/ledger/ledgertest"
)

func testConfig() *config.ServerEnvironment {
	return &config.ServerEnvironment{
		Environment:         "test",
		Host:                "127.0.0.1",
		Port:                8080,
		HandlerTimeout:      5 * time.Second,
		AllowedOrigins:      []string{"http://localhost:5173"},
		RateLimitRPS:        0,
		MaxRequestBodyBytes: 65536,
		AirdropLamports:     1_000_000_000,
	}
}

func newTestServer(t *testing.T, signer solana.PrivateKey) (*httptest.Server, *ledgertest.FakeClient) {
	t.Helper()

	client := ledgertest.NewFakeClient()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server, err := NewServer(testConfig(), logger, client, signer)
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts, client
}

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

func postJSON(t *testing.T, url string, body any) (*http.Response, envelope) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", strings.NewReader(string(payload)))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env
}

// sign a message, then verify it through both verify routes
func TestSignVerifyScenario(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	keypair, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	resp, signed := postJSON(t, ts.URL+"/message/sign", map[string]string{
		"message": "hello",
		"secret":  keypair.String(),
	})
	if resp.StatusCode != http.StatusOK || !signed.Success {
		t.Fatalf("sign: status = %d, error = %q", resp.StatusCode, signed.Error)
	}

	for _, path := range []string{"/message/verify", "/verify"} {
		t.Run(path, func(t *testing.T) {
			resp, verified := postJSON(t, ts.URL+path, map[string]any{
				"message":   "hello",
				"signature": signed.Data["signature"],
				"pubkey":    signed.Data["public_key"],
			})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, error = %q", resp.StatusCode, verified.Error)
			}
			if verified.Data["valid"] != true {
				t.Errorf("valid = %v, want true", verified.Data["valid"])
			}
		})
	}
}

func TestBalanceWithMalformedPubkey(t *testing.T) {
	ts, client := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/balance/not-a-real-pubkey")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", resp.Header.Get("Content-Type"))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("error is empty")
	}
	if _, ok := body["balance"]; ok {
		t.Error("response has a balance field")
	}
	if _, ok := body["data"]; ok {
		t.Error("response has a data field")
	}
	if client.CallCount() != 0 {
		t.Errorf("made %d ledger calls, want 0", client.CallCount())
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/keypair", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var env envelope
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if env.Success || env.Error == "" {
				t.Errorf("unexpected envelope %+v", env)
			}
		})
	}
}

func TestInfrastructureEndpoints(t *testing.T) {
	signer, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate signer: %v", err)
	}
	ts, _ := newTestServer(t, signer)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/health", http.StatusOK, "OK"},
		{"/ready", http.StatusOK, `"ready"`},
		{"/version", http.StatusOK, `"service":"solgate-server"`},
		{"/.well-known/jwks.json", http.StatusOK, `"crv":"Ed25519"`},
		{"/swagger/doc.json", http.StatusOK, `"/token/create"`},
		{"/metrics", http.StatusOK, "solgate_http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body %q does not contain %q", string(body), tt.wantBody)
			}
		})
	}

	t.Run("not ready", func(t *testing.T) {
		client := ledgertest.NewFakeClient()
		client.HealthErr = errors.New("node is behind")
		server, err := NewServer(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), client, nil)
		if err != nil {
			t.Fatalf("NewServer() error: %v", err)
		}
		notReady := httptest.NewServer(server.Router())
		defer notReady.Close()

		resp, err := http.Get(notReady.URL + "/ready")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", resp.StatusCode)
		}
	})
}

func TestJWKSIsEmptyWithoutSigner(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/.well-known/jwks.json")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var set struct {
		Keys []map[string]any `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		t.Fatalf("failed to decode JWK set: %v", err)
	}
	if len(set.Keys) != 0 {
		t.Errorf("got %d keys, want 0", len(set.Keys))
	}
}

func TestCreateTokenWithoutSigner(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	authority, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	resp, env := postJSON(t, ts.URL+"/token/create", map[string]any{
		"mint_authority": authority.PublicKey().String(),
		"decimals":       9,
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if !strings.Contains(env.Error, "signer not configured") {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/user/airdrop", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
