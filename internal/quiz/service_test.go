package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbank/trivia-api/internal/question"
	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

type stubStore struct {
	all []question.Question
	err error
}

func (s *stubStore) List(context.Context) ([]question.Question, error) {
	return s.all, s.err
}

func (s *stubStore) ListByCategory(_ context.Context, categoryID int64) ([]question.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var filtered []question.Question
	for _, q := range s.all {
		if q.Category == categoryID {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func fixedIntn(pick int) Intn {
	return func(n int) int {
		if pick >= n {
			return n - 1
		}
		return pick
	}
}

func testBank() []question.Question {
	return []question.Question{
		{ID: 1, Question: "Q1", Category: 3},
		{ID: 2, Question: "Q2", Category: 3},
		{ID: 3, Question: "Q3", Category: 5},
		{ID: 4, Question: "Q4", Category: 5},
	}
}

func request(ref *CategoryRef, previous []int64) NextRequest {
	return NextRequest{Category: ref, Previous: &previous}
}

func TestNextExcludesPreviousQuestions(t *testing.T) {
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(0), zerolog.Nop())

	next, err := selector.Next(context.Background(), request(&CategoryRef{ID: 3, Type: "Science"}, []int64{1}))

	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.ID)
}

func TestNextNeverReturnsASeenID(t *testing.T) {
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(1), zerolog.Nop())
	previous := []int64{2, 4}

	for i := 0; i < 20; i++ {
		next, err := selector.Next(context.Background(), request(&CategoryRef{Type: AllCategories}, previous))
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.NotContains(t, previous, next.ID)
	}
}

func TestNextExhaustedPoolReturnsNil(t *testing.T) {
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(0), zerolog.Nop())

	next, err := selector.Next(context.Background(), request(&CategoryRef{ID: 3, Type: "Science"}, []int64{1, 2}))

	require.NoError(t, err, "exhaustion is quiz completion, not an error")
	assert.Nil(t, next)
}

func TestNextAllCategoriesSentinelBypassesFilter(t *testing.T) {
	// The sentinel carries a bogus id; only the type matters.
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(2), zerolog.Nop())

	next, err := selector.Next(context.Background(), request(&CategoryRef{ID: 0, Type: AllCategories}, nil))

	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, int64(3), next.ID, "question from a category other than 0")
}

func TestNextCategoryFilterApplies(t *testing.T) {
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(0), zerolog.Nop())

	for pick := 0; pick < 2; pick++ {
		selector.intn = fixedIntn(pick)
		next, err := selector.Next(context.Background(), request(&CategoryRef{ID: 3, Type: "Science"}, nil))
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, int64(3), next.Category)
	}
}

func TestNextMissingFieldsAreBadRequest(t *testing.T) {
	selector := NewSelector(&stubStore{all: testBank()}, fixedIntn(0), zerolog.Nop())

	previous := []int64{}
	_, err := selector.Next(context.Background(), NextRequest{Previous: &previous})
	assert.Equal(t, apierr.BadRequest, err, "missing category")

	_, err = selector.Next(context.Background(), NextRequest{Category: &CategoryRef{Type: AllCategories}})
	assert.Equal(t, apierr.BadRequest, err, "missing previous questions")
}

func TestNextStoreFailureIsUnprocessable(t *testing.T) {
	selector := NewSelector(&stubStore{err: errors.New("db down")}, fixedIntn(0), zerolog.Nop())

	_, err := selector.Next(context.Background(), request(&CategoryRef{ID: 3, Type: "Science"}, nil))
	assert.Equal(t, apierr.Unprocessable, err)
}
