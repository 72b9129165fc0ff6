// Package quiz picks the next unseen question for a play session. The
// selector is stateless across calls; clients accumulate the ids they have
// already seen and send them back each round.
package quiz

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/internal/question"
	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

// AllCategories is the sentinel category type the frontend sends when the
// player picks "All" instead of a single category.
const AllCategories = "click"

type questionStore interface {
	List(ctx context.Context) ([]question.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]question.Question, error)
}

// Intn returns a uniform random int in [0, n). Injected so selection is
// deterministic under test.
type Intn func(n int) int

// CategoryRef identifies the category a quiz round plays in.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NextRequest carries one round's inputs. Both fields are required; pointers
// distinguish an absent field from an empty one.
type NextRequest struct {
	Category *CategoryRef `json:"quiz_category"`
	Previous *[]int64     `json:"previous_questions"`
}

// Selector chooses one unseen question per round.
type Selector struct {
	store  questionStore
	intn   Intn
	logger zerolog.Logger
}

func NewSelector(store questionStore, intn Intn, logger zerolog.Logger) *Selector {
	return &Selector{
		store:  store,
		intn:   intn,
		logger: logger.With().Str("component", "quiz_selector").Logger(),
	}
}

// Next returns a uniformly random question from the eligible pool: the
// requested category (or all of them, under the AllCategories sentinel) minus
// every id the player has already seen. A nil result with a nil error means
// the pool is exhausted and the quiz is over.
func (s *Selector) Next(ctx context.Context, req NextRequest) (*question.Question, error) {
	if req.Category == nil || req.Previous == nil {
		return nil, apierr.BadRequest
	}

	var (
		pool []question.Question
		err  error
	)
	if req.Category.Type == AllCategories {
		pool, err = s.store.List(ctx)
	} else {
		pool, err = s.store.ListByCategory(ctx, req.Category.ID)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("fetch quiz pool failed")
		return nil, apierr.Unprocessable
	}

	seen := make(map[int64]struct{}, len(*req.Previous))
	for _, id := range *req.Previous {
		seen[id] = struct{}{}
	}

	eligible := pool[:0:0]
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	picked := eligible[s.intn(len(eligible))]
	return &picked, nil
}
