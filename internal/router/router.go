package router

import (
	"net/http"
	"strings"

	"mini-market/internal/handler"
	"mini-market/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	checkoutHandler *handler.CheckoutHandler,
	ruleHandler *handler.RuleHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Register checkout routes (both with and without trailing slash)
	mux.HandleFunc("/api/checkout", checkoutHandler.Create)
	mux.HandleFunc("/api/checkout/", checkoutHandler.Create)

	// Receipt handler function
	receiptRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific receipt ID
		if strings.HasPrefix(r.URL.Path, "/api/receipts/") && r.URL.Path != "/api/receipts/" {
			checkoutHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register receipt routes (both with and without trailing slash)
	mux.HandleFunc("/api/receipts", receiptRouteHandler)
	mux.HandleFunc("/api/receipts/", receiptRouteHandler)

	// Register rule routes; the price list is public
	mux.HandleFunc("/api/rules", ruleHandler.GetAll)
	mux.HandleFunc("/api/rules/", ruleHandler.GetAll)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
