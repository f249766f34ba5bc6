package api

// error_response.go maps the errors returned by the api, crypto and ledger packages to
// HTTP status codes and the error envelope returned to the client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
)

// ErrorResponse is the error envelope returned to the client.
//
// Only Success and Error are serialized; the remaining fields are used for the server side log.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid pubkey: decode: invalid base58 digit ('l')"`

	// StatusCode is the HTTP status code returned
	StatusCode int `json:"-"`

	// ErrorCode is the code of the mapped error, e.g. "validation" or "rpc"
	ErrorCode string `json:"-"`

	// ErrorCodeText is a short description of the error category
	ErrorCodeText string `json:"-"`

	// RequestID is the chi request id of the failed request
	RequestID string `json:"-"`
}

// MapErrorToResponse maps api.APIError, crypto.CryptoError, ledger.LedgerError or generic errors to an error envelope.
//
// The envelope carries the full error text, including the underlying library error.
// Client input problems map to 4xx, ledger and unexpected failures to 500.
//
// Call this function to set up the error response before sending it to the client (using RespondWithErrorResponse).
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		statusCode, text := apiErrorStatus(apiErr.Code())
		return newErrorResponse(err, statusCode, string(apiErr.Code()), text, requestID)
	}

	var cryptoErr *crypto.CryptoError
	if errors.As(err, &cryptoErr) {
		statusCode, text := cryptoErrorStatus(cryptoErr.Code())
		return newErrorResponse(err, statusCode, string(cryptoErr.Code()), text, requestID)
	}

	var ledgerErr *ledger.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode, text := ledgerErrorStatus(ledgerErr.Code())
		return newErrorResponse(err, statusCode, string(ledgerErr.Code()), text, requestID)
	}

	// fallback - not expected. Return an internal error and log the unmapped error type
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return newErrorResponse(err, http.StatusInternalServerError, string(ErrCodeInternal), "Internal error", requestID)
}

func newErrorResponse(err error, statusCode int, code, text, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Success:       false,
		Error:         err.Error(),
		StatusCode:    statusCode,
		ErrorCode:     code,
		ErrorCodeText: text,
		RequestID:     requestID,
	}
}

func apiErrorStatus(code ErrorCode) (int, string) {
	switch code {
	case ErrCodeMalformedRequest:
		return http.StatusBadRequest, "Malformed request"
	case ErrCodeInvalidInput:
		return http.StatusBadRequest, "Invalid input"
	case ErrCodeNotFound:
		return http.StatusNotFound, "Not found"
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, "Method not allowed"
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, "Rate limit exceeded"
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge, "Request too large"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func cryptoErrorStatus(code crypto.ErrorCode) (int, string) {
	switch code {
	case crypto.ErrCodeValidation:
		return http.StatusBadRequest, "Invalid identifier"
	case crypto.ErrCodeInvalidSignature:
		return http.StatusBadRequest, "Bad signature"
	case crypto.ErrCodeKeyManagement:
		return http.StatusBadRequest, "Bad key"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func ledgerErrorStatus(code ledger.ErrorCode) (int, string) {
	switch code {
	case ledger.ErrCodeOwnerMismatch:
		return http.StatusBadRequest, "Owner is not the signer"
	case ledger.ErrCodeRPC:
		return http.StatusInternalServerError, "Ledger RPC error"
	case ledger.ErrCodeInstruction:
		return http.StatusInternalServerError, "Instruction error"
	case ledger.ErrCodeTransaction:
		return http.StatusInternalServerError, "Transaction failed"
	case ledger.ErrCodeConfirmation:
		return http.StatusInternalServerError, "Transaction not confirmed"
	case ledger.ErrCodeSignerUnavailable:
		return http.StatusInternalServerError, "Signer not configured"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
