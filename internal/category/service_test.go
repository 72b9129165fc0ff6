package category

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Category), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id int64) (Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Category), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, categoryType string) (Category, error) {
	args := m.Called(ctx, categoryType)
	return args.Get(0).(Category), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestListTypes(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return([]Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}, nil)

	svc := NewService(store, zerolog.Nop())
	types, err := svc.ListTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art", "Geography"}, types)
	store.AssertExpectations(t)
}

func TestListTypesEmptyCatalogIsNotFound(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return([]Category{}, nil)

	svc := NewService(store, zerolog.Nop())
	_, err := svc.ListTypes(context.Background())

	assert.EqualError(t, err, "404 resource not found")
}

func TestCreateReturnsRefreshedCatalog(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, "Music").Return(Category{ID: 7, Type: "Music"}, nil)
	store.On("List", mock.Anything).Return([]Category{
		{ID: 1, Type: "Science"},
		{ID: 7, Type: "Music"},
	}, nil)

	svc := NewService(store, zerolog.Nop())
	result, err := svc.Create(context.Background(), "Music")

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Created)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Categories, 2)
	store.AssertExpectations(t)
}

func TestCreateEmptyTypeIsBadRequest(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), "")

	assert.EqualError(t, err, "400 bad request")
	store.AssertNotCalled(t, "Insert")
}

func TestCreateRejectedWriteIsUnprocessable(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, "Music").Return(Category{}, errors.New("db down"))

	svc := NewService(store, zerolog.Nop())
	_, err := svc.Create(context.Background(), "Music")

	assert.EqualError(t, err, "422 unprocessable")
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, int64(42)).Return(Category{}, ErrNotFound)

	svc := NewService(store, zerolog.Nop())
	_, err := svc.Delete(context.Background(), 42)

	assert.EqualError(t, err, "404 resource not found")
	store.AssertNotCalled(t, "Delete")
}

func TestDeleteReturnsID(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, int64(2)).Return(Category{ID: 2, Type: "Art"}, nil)
	store.On("Delete", mock.Anything, int64(2)).Return(nil)

	svc := NewService(store, zerolog.Nop())
	deleted, err := svc.Delete(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	store.AssertExpectations(t)
}

func TestDeleteStoreFailureIsUnprocessable(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, int64(2)).Return(Category{ID: 2, Type: "Art"}, nil)
	store.On("Delete", mock.Anything, int64(2)).Return(errors.New("db down"))

	svc := NewService(store, zerolog.Nop())
	_, err := svc.Delete(context.Background(), 2)

	assert.EqualError(t, err, "422 unprocessable")
}
