package category

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

// HTTPHandler exposes REST endpoints for the category catalog.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "category_http").Logger(),
	}
}

type listResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type createRequest struct {
	Type string `json:"type"`
}

type createResponse struct {
	Success         bool       `json:"success"`
	Created         int64      `json:"created"`
	Categories      []Category `json:"categories"`
	TotalCategories int        `json:"total_categories"`
}

type deleteResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// HandleList responds to GET /categories with every category type.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, listResponse{Success: true, Categories: types})
}

// HandleCreate responds to POST /categories.
func (h *HTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Respond(w, apierr.BadRequest)
		return
	}

	result, err := h.svc.Create(r.Context(), req.Type)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, createResponse{
		Success:         true,
		Created:         result.Created,
		Categories:      result.Categories,
		TotalCategories: result.Total,
	})
}

// HandleDelete responds to DELETE /categories/{id}.
func (h *HTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apierr.Respond(w, apierr.NotFound)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, deleteResponse{Success: true, Deleted: deleted})
}
