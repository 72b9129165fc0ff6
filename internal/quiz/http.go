package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/internal/question"
	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

// HTTPHandler exposes the play endpoint.
type HTTPHandler struct {
	selector *Selector
	logger   zerolog.Logger
}

func NewHTTPHandler(selector *Selector, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		selector: selector,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

type nextResponse struct {
	Success  bool               `json:"success"`
	Question *question.Question `json:"question"`
}

// HandleNext responds to POST /quizzes. A null question on success signals
// the quiz is complete.
func (h *HTTPHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Respond(w, apierr.BadRequest)
		return
	}

	next, err := h.selector.Next(r.Context(), req)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	apierr.RespondOK(w, nextResponse{Success: true, Question: next})
}
