package handler

import (
	"net/http"

	"mini-market/internal/model"
	"mini-market/internal/service"

	"github.com/rs/zerolog"
)

// RuleHandler handles pricing rule HTTP requests.
type RuleHandler struct {
	service service.RuleService
	logger  zerolog.Logger
}

// NewRuleHandler creates a new rule handler.
func NewRuleHandler(service service.RuleService, logger zerolog.Logger) *RuleHandler {
	return &RuleHandler{
		service: service,
		logger:  logger.With().Str("handler", "rule").Logger(),
	}
}

// GetAll handles GET /api/rules requests.
func (h *RuleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rules := h.service.GetAll(r.Context())

	// Respond with the same document shape the catalog is loaded from
	writeJSON(w, http.StatusOK, model.RuleCatalog{Rules: rules})
}
