package api

// responses.go provides helper functions for sending HTTP responses from the API handlers.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/solgate/solgate/internal/logger"
)

// Response is the success envelope. Data holds the endpoint specific payload.
type Response struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data,omitempty"`
}

// RespondWithData sends a success envelope wrapping data with status 200
func RespondWithData(w http.ResponseWriter, data any) {
	RespondWithJSONPayload(w, http.StatusOK, Response{Success: true, Data: data})
}

// RespondWithErrorResponse sends the error envelope for err.
//
// Use this function whenever a request fails, whatever the cause. The status code is derived
// from the error type (see MapErrorToResponse) and the failure is logged once server-side.
func RespondWithErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse := MapErrorToResponse(err, r)

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Warn("Request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", errorResponse.StatusCode),
		slog.String("error_code", errorResponse.ErrorCode),
		slog.String("error_code_text", errorResponse.ErrorCodeText),
		slog.String("request_id", errorResponse.RequestID),
	)

	RespondWithJSONPayload(w, errorResponse.StatusCode, errorResponse)
}

// RespondWithJSONPayload sends a JSON response with the given status code
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// headers are already written, nothing more can be sent
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}
