package handler

import (
	"encoding/json"
	"net/http"

	"mini-market/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response. Code carries the
// machine-readable domain error code when one applies.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError writes an error response carrying the domain error code.
func writeDomainError(w http.ResponseWriter, status int, derr *model.DomainError, logger zerolog.Logger) {
	logger.Error().Str("error", derr.Message).Str("code", derr.Code).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: derr.Message, Code: derr.Code})
}
