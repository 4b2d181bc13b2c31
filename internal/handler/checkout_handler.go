package handler

import (
	"encoding/json"
	"net/http"

	"mini-market/internal/model"
	"mini-market/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout and receipt HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Create handles POST /api/checkout requests.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	receipt, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		// Determine appropriate status code based on error type
		switch err {
		case model.ErrMissingItems:
			writeDomainError(w, http.StatusBadRequest, model.ErrMissingItems, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to record checkout", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

// GetByID handles GET /api/receipts/{id} requests.
func (h *CheckoutHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Extract receipt ID from path
	// Expecting path: /api/receipts/{id}
	path := r.URL.Path
	if len(path) < len("/api/receipts/") {
		writeError(w, http.StatusBadRequest, "receipt ID is required", h.logger)
		return
	}
	receiptIDStr := path[len("/api/receipts/"):]

	if receiptIDStr == "" {
		writeError(w, http.StatusBadRequest, "receipt ID is required", h.logger)
		return
	}

	receiptID, err := uuid.Parse(receiptIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid receipt ID format", h.logger)
		return
	}

	receipt, err := h.service.GetReceipt(r.Context(), receiptID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve receipt", h.logger)
		return
	}

	if receipt == nil {
		writeDomainError(w, http.StatusNotFound, model.ErrReceiptNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
