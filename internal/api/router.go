package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/playforge/bangate/internal/api/handler"
	apimiddleware "github.com/playforge/bangate/internal/api/middleware"
	"github.com/playforge/bangate/internal/middleware"
	"github.com/playforge/bangate/internal/services/audit"
	"github.com/playforge/bangate/internal/services/verdict"
	"github.com/playforge/bangate/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	VerdictService *verdict.Service
	AuditService   *audit.Service
	Store          storage.Store

	// AdminTokenHash is the bcrypt hash gating the admin endpoints.
	// Empty disables admin access entirely.
	AdminTokenHash string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	checkHandler := handler.NewCheckHandler(cfg.VerdictService)
	entriesHandler := handler.NewEntriesHandler(cfg.Store, cfg.AuditService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)
	adminMiddleware := apimiddleware.AdminAuth(cfg.AdminTokenHash)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Check endpoint: POST only, anything else is a 405 before the body
	// is touched
	api.HandleFunc("/check", checkHandler.Check).Methods(http.MethodPost)

	// Admin routes. Each carries concrete path and method matchers; a
	// matcher-less subrouter here would swallow the method-mismatch state
	// of sibling routes and turn their 405s into 404s.
	api.Handle("/entries", adminMiddleware(http.HandlerFunc(entriesHandler.Add))).Methods(http.MethodPost)
	api.Handle("/entries", adminMiddleware(http.HandlerFunc(entriesHandler.List))).Methods(http.MethodGet)
	api.Handle("/entries/{id}", adminMiddleware(http.HandlerFunc(entriesHandler.Delete))).Methods(http.MethodDelete)
	api.Handle("/audit", adminMiddleware(http.HandlerFunc(entriesHandler.Audit))).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Compat routes for the historical wire shapes
	compat := r.PathPrefix("/compat").Subrouter()
	compat.Use(recoveryMiddleware)
	compat.Use(loggingMiddleware)
	compat.HandleFunc("/v1/check", checkHandler.CheckV1).Methods(http.MethodPost)
	compat.HandleFunc("/v2/check", checkHandler.CheckV2).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
