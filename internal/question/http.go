package question

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/pkg/http/apierr"
	"github.com/quizbank/trivia-api/pkg/paging"
)

// HTTPHandler exposes REST endpoints for the question catalog.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

type listResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []string   `json:"categories"`
	CurrentCategory []string   `json:"current_category"`
}

type searchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory []string   `json:"current_category"`
}

type createResponse struct {
	Success        bool       `json:"success"`
	Created        int64      `json:"created"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type deleteResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type byCategoryResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

// HandleList responds to GET /questions?page=N.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.List(r.Context(), page)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, listResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.CategoryTypes,
		CurrentCategory: result.CategoryTypes,
	})
}

// postVariant is the request shape of POST /questions resolved once at the
// boundary: a search, a creation, or an empty body.
type postVariant int

const (
	postEmpty postVariant = iota
	postSearch
	postCreate
)

type postRequest struct {
	SearchTerm string `json:"searchTerm"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// resolvePost classifies the body once: an empty object (or undecodable
// body) is postEmpty, a non-empty searchTerm wins over creation fields.
func resolvePost(body io.Reader) (postVariant, postRequest) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil || len(fields) == 0 {
		return postEmpty, postRequest{}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return postEmpty, postRequest{}
	}
	var req postRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return postEmpty, postRequest{}
	}

	if req.SearchTerm != "" {
		return postSearch, req
	}
	return postCreate, req
}

// HandlePost responds to POST /questions, dispatching on the body shape: a
// non-empty searchTerm routes to search, anything else to create. A body with
// no fields at all is a bad request before either branch is considered.
func (h *HTTPHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	variant, req := resolvePost(r.Body)
	page := paging.ParsePage(r.URL.Query().Get("page"))

	switch variant {
	case postSearch:
		h.search(w, r, req.SearchTerm, page)
	case postCreate:
		h.create(w, r, req, page)
	default:
		apierr.Respond(w, apierr.BadRequest)
	}
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, term string, page int) {
	result, err := h.svc.Search(r.Context(), term, page)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, searchResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.CategoryTypes,
	})
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request, req postRequest, page int) {
	params := CreateParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	result, err := h.svc.Create(r.Context(), params, page)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, createResponse{
		Success:        true,
		Created:        result.Created,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// HandleDelete responds to DELETE /questions/{id}.
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

// HandleListByCategory responds to GET /categories/{id}/questions?page=N. The
// category id is echoed back verbatim, not checked against the catalog.
func (h *HTTPHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	categoryID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		apierr.Respond(w, apierr.NotFound)
		return
	}

	page := paging.ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListByCategory(r.Context(), categoryID, page)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, byCategoryResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: rawID,
	})
}
