package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/playforge/bangate/internal/api/apierr"
	"github.com/playforge/bangate/internal/api/request"
	"github.com/playforge/bangate/internal/api/response"
	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/services/verdict"
)

// CheckHandler handles identity check endpoints
type CheckHandler struct {
	verdicts *verdict.Service
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(verdicts *verdict.Service) *CheckHandler {
	return &CheckHandler{
		verdicts: verdicts,
	}
}

// Check handles POST /api/v1/check
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req request.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	h.respond(w, r, req.Identity())
}

// CheckV1 handles POST /compat/v1/check, the oldest wire shape
func (h *CheckHandler) CheckV1(w http.ResponseWriter, r *http.Request) {
	var req request.CheckRequestV1
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	h.respond(w, r, req.Identity())
}

// CheckV2 handles POST /compat/v2/check
func (h *CheckHandler) CheckV2(w http.ResponseWriter, r *http.Request) {
	var req request.CheckRequestV2
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	h.respond(w, r, req.Identity())
}

func (h *CheckHandler) respond(w http.ResponseWriter, r *http.Request, id model.IdentityTuple) {
	result, err := h.verdicts.Check(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	// max-age and the verdict cache TTL are one contract
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cache.VerdictTTL.Seconds())))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	response.JSON(w, http.StatusOK, response.CheckResponseFromVerdict(result))
}
