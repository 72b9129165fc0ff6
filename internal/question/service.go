package question

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/internal/category"
	"github.com/quizbank/trivia-api/pkg/http/apierr"
	"github.com/quizbank/trivia-api/pkg/paging"
)

type questionStore interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	Get(ctx context.Context, id int64) (Question, error)
	Insert(ctx context.Context, params CreateParams) (Question, error)
	Delete(ctx context.Context, id int64) error
}

type categoryLister interface {
	List(ctx context.Context) ([]category.Category, error)
}

// Service owns question catalog logic: paginated listing, substring search,
// creation with a refreshed listing, and deletion.
type Service struct {
	store      questionStore
	categories categoryLister
	logger     zerolog.Logger
}

func NewService(store questionStore, categories categoryLister, logger zerolog.Logger) *Service {
	return &Service{
		store:      store,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// List returns one page of the catalog, id-ascending. A page that yields zero
// questions is NotFound, whether the bank is empty or the page is past the
// end.
func (s *Service) List(ctx context.Context, page int) (ListResult, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list questions failed")
		return ListResult{}, apierr.Internal
	}

	pageItems := paging.Page(page, items)
	if len(pageItems) == 0 {
		return ListResult{}, apierr.NotFound
	}

	types, err := s.categoryTypes(ctx)
	if err != nil {
		return ListResult{}, apierr.Internal
	}

	return ListResult{
		Questions:     pageItems,
		Total:         len(items),
		CategoryTypes: types,
	}, nil
}

// Search returns one page of the questions containing term, with Total set to
// the full match count. Zero matches is NotFound.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list questions failed")
		return SearchResult{}, apierr.Internal
	}

	matches := Filter(term, items)
	if len(matches) == 0 {
		return SearchResult{}, apierr.NotFound
	}

	types, err := s.categoryTypes(ctx)
	if err != nil {
		return SearchResult{}, apierr.Internal
	}

	return SearchResult{
		Questions:     paging.Page(page, matches),
		Total:         len(matches),
		CategoryTypes: types,
	}, nil
}

// Create validates and persists a new question, then returns the requested
// page of the refreshed catalog. Validation runs before the store is touched;
// any missing field is the same BadRequest.
func (s *Service) Create(ctx context.Context, params CreateParams, page int) (CreateResult, error) {
	switch {
	case params.Question == "":
		return CreateResult{}, apierr.BadRequest
	case params.Answer == "":
		return CreateResult{}, apierr.BadRequest
	case params.Category == 0:
		return CreateResult{}, apierr.BadRequest
	case params.Difficulty == 0:
		return CreateResult{}, apierr.BadRequest
	}

	created, err := s.store.Insert(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("insert question failed")
		return CreateResult{}, apierr.Unprocessable
	}

	items, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("refresh questions failed")
		return CreateResult{}, apierr.Unprocessable
	}

	return CreateResult{
		Created:   created.ID,
		Questions: paging.Page(page, items),
		Total:     len(items),
	}, nil
}

// Delete removes a question by id. Absent ids are NotFound on the first call
// and every call after it.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, apierr.NotFound
		}
		s.logger.Error().Err(err).Int64("question_id", id).Msg("get question failed")
		return 0, apierr.Internal
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("question_id", id).Msg("delete question failed")
		return 0, apierr.Unprocessable
	}
	return id, nil
}

// ListByCategory returns one page of the questions tagged with categoryID.
// A category with zero questions is NotFound; the id itself is not checked
// against the category table.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64, page int) (ByCategoryResult, error) {
	items, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", categoryID).Msg("list by category failed")
		return ByCategoryResult{}, apierr.Internal
	}
	if len(items) == 0 {
		return ByCategoryResult{}, apierr.NotFound
	}

	return ByCategoryResult{
		Questions: paging.Page(page, items),
		Total:     len(items),
	}, nil
}

func (s *Service) categoryTypes(ctx context.Context) ([]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list categories failed")
		return nil, err
	}
	return category.Types(categories), nil
}
