package category

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

type categoryStore interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	Insert(ctx context.Context, categoryType string) (Category, error)
	Delete(ctx context.Context, id int64) error
}

// Service owns category catalog logic: type projection, creation with a
// refreshed listing, and deletion.
type Service struct {
	store  categoryStore
	logger zerolog.Logger
}

func NewService(store categoryStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "category_service").Logger(),
	}
}

// ListTypes returns every category's display type, id-ascending. An empty
// catalog is NotFound.
func (s *Service) ListTypes(ctx context.Context) ([]string, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list categories failed")
		return nil, apierr.Internal
	}
	if len(categories) == 0 {
		return nil, apierr.NotFound
	}
	return Types(categories), nil
}

// Create inserts a new category and returns it alongside the full refreshed
// catalog. An absent or empty type is a bad request; a rejected write is
// unprocessable.
func (s *Service) Create(ctx context.Context, categoryType string) (CreateResult, error) {
	if categoryType == "" {
		return CreateResult{}, apierr.BadRequest
	}

	created, err := s.store.Insert(ctx, categoryType)
	if err != nil {
		s.logger.Error().Err(err).Msg("insert category failed")
		return CreateResult{}, apierr.Unprocessable
	}

	categories, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("refresh categories failed")
		return CreateResult{}, apierr.Unprocessable
	}

	return CreateResult{
		Created:    created.ID,
		Categories: categories,
		Total:      len(categories),
	}, nil
}

// Delete removes a category by id. Deleting a category never cascades to its
// questions; orphaned category ids are tolerated.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, apierr.NotFound
		}
		s.logger.Error().Err(err).Int64("category_id", id).Msg("get category failed")
		return 0, apierr.Internal
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("delete category failed")
		return 0, apierr.Unprocessable
	}
	return id, nil
}

// Types projects categories onto their display types, preserving order.
func Types(categories []Category) []string {
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	return types
}
