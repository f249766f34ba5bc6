package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
)

func TestMapErrorToResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"malformed request", NewMalformedRequestError("bad json"), http.StatusBadRequest, "malformed_request"},
		{"invalid input", NewInvalidInputError("amount must be greater than 0"), http.StatusBadRequest, "invalid_input"},
		{"not found", NewNotFoundError("no route"), http.StatusNotFound, "not_found"},
		{"method not allowed", NewMethodNotAllowedError("GET not allowed"), http.StatusMethodNotAllowed, "method_not_allowed"},
		{"rate limit", NewRateLimitError("slow down"), http.StatusTooManyRequests, "rate_limit_exceeded"},
		{"too large", NewRequestTooLargeError("too big"), http.StatusRequestEntityTooLarge, "request_too_large"},
		{"api internal", NewInternalError("boom"), http.StatusInternalServerError, "internal"},
		{"crypto validation", crypto.NewValidationError("invalid pubkey"), http.StatusBadRequest, "validation"},
		{"crypto signature", crypto.NewSignatureError("invalid signature"), http.StatusBadRequest, "invalid_signature"},
		{"crypto internal", crypto.WrapInternalError(errors.New("bad key"), "failed to set key ID"), http.StatusInternalServerError, "internal"},
		{"ledger rpc", ledger.WrapRPCError(errors.New("connection refused"), "failed to get balance"), http.StatusInternalServerError, "rpc"},
		{"ledger signer", ledger.NewSignerUnavailableError(), http.StatusInternalServerError, "signer_unavailable"},
		{"ledger owner mismatch", ledger.NewOwnerMismatchError("owner is not the signer"), http.StatusBadRequest, "owner_mismatch"},
		{"unmapped", errors.New("something else"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/balance/x", nil)
			resp := MapErrorToResponse(tt.err, req)

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.ErrorCode != tt.wantCode {
				t.Errorf("ErrorCode = %q, want %q", resp.ErrorCode, tt.wantCode)
			}
			if resp.Success {
				t.Error("Success = true on an error response")
			}
			if resp.Error != tt.err.Error() {
				t.Errorf("Error = %q, want %q", resp.Error, tt.err.Error())
			}
		})
	}
}

// wrapped errors keep their mapping
func TestMapErrorToResponseWrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), crypto.NewValidationError("invalid mint"))
	resp := MapErrorToResponse(err, httptest.NewRequest(http.MethodPost, "/token/mint", nil))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", resp.StatusCode)
	}
}

func TestRespondWithErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance/not-a-real-pubkey", nil)
	rec := httptest.NewRecorder()

	RespondWithErrorResponse(rec, req, crypto.NewValidationError("invalid pubkey"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("error envelope has fields %v, want only success and error", body)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "invalid pubkey" {
		t.Errorf("error = %v, want %q", body["error"], "invalid pubkey")
	}
}

func TestRespondWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithData(rec, BalanceResponse{Pubkey: "abc", Balance: 1_500_000_000, SOL: 1.5})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	want := `{"success":true,"data":{"pubkey":"abc","balance":1500000000,"sol":1.5}}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		limit    int64
		wantCode ErrorCode
	}{
		{"valid", `{"pubkey":"abc","amount":1.5}`, 0, ""},
		{"unknown fields are ignored", `{"pubkey":"abc","note":"x"}`, 0, ""},
		{"empty body", ``, 0, ErrCodeMalformedRequest},
		{"invalid json", `{"pubkey":`, 0, ErrCodeMalformedRequest},
		{"wrong type", `{"pubkey":123}`, 0, ErrCodeMalformedRequest},
		{"trailing object", `{"pubkey":"a"}{"pubkey":"b"}`, 0, ErrCodeMalformedRequest},
		{"too large", `{"pubkey":"` + strings.Repeat("a", 100) + `"}`, 16, ErrCodeRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/user/airdrop", strings.NewReader(tt.body))
			if tt.limit > 0 {
				req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, tt.limit)
			}

			var dst UserAirdropRequest
			err := DecodeJSONBody(req, &dst)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("DecodeJSONBody() error: %v", err)
				}
				return
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", apiErr.Code(), tt.wantCode)
			}
		})
	}
}
