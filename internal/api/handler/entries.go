package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playforge/bangate/internal/api/apierr"
	"github.com/playforge/bangate/internal/api/request"
	"github.com/playforge/bangate/internal/api/response"
	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/services/audit"
	"github.com/playforge/bangate/internal/storage"
)

// EntriesHandler handles blacklist administration endpoints
type EntriesHandler struct {
	store storage.Store
	audit *audit.Service
}

// NewEntriesHandler creates a new entries handler
func NewEntriesHandler(store storage.Store, auditSvc *audit.Service) *EntriesHandler {
	return &EntriesHandler{
		store: store,
		audit: auditSvc,
	}
}

// Add handles POST /api/v1/entries
func (h *EntriesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	entry := req.Entry()
	if entry.IsEmpty() {
		apierr.WriteError(w, model.ErrEmptyEntry)
		return
	}

	if err := h.store.AddEntry(r.Context(), &entry); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EntryFromModel(entry))
}

// List handles GET /api/v1/entries
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListEntries(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EntryListFromModel(entries))
}

// Delete handles DELETE /api/v1/entries/{id}
func (h *EntriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteEntry(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Audit handles GET /api/v1/audit
func (h *EntriesHandler) Audit(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	records, err := h.audit.List(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuditListFromModel(records))
}
