package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

var noTx pgx.Tx

func newCategoryService(repo *mockCategoryRepo, bus *recordingBus) CategoryServiceInterface {
	return NewCategoryService(repo, bus, zap.NewNop())
}

func TestCategoryCreate_ParentMissing(t *testing.T) {
	repo := new(mockCategoryRepo)
	bus := &recordingBus{}
	repo.On("FindByID", mock.Anything, uint64(42)).Return(nil, apperrors.ErrNotFound)

	_, err := newCategoryService(repo, bus).Create(context.Background(), dto.CreateCategoryDTO{
		Name:           "Краны",
		BaseCategoryID: null.Uint64From(42),
	})

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, bus.names())
}

func TestCategoryCreate_EmitsEvent(t *testing.T) {
	repo := new(mockCategoryRepo)
	bus := &recordingBus{}
	d := dto.CreateCategoryDTO{Name: "Экскаваторы"}
	repo.On("Create", mock.Anything, noTx, d).Return(&entities.Category{ID: 7, Name: d.Name}, nil)

	category, err := newCategoryService(repo, bus).Create(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), category.ID)
	assert.Equal(t, []string{"category.created"}, bus.names())
	repo.AssertExpectations(t)
}

func TestCategoryUpdate_SelfParent(t *testing.T) {
	repo := new(mockCategoryRepo)
	d := dto.UpdateCategoryDTO{BaseCategoryID: null.Uint64From(3)}

	err := newCategoryService(repo, &recordingBus{}).
		Update(context.Background(), 3, d, types.Fields{"baseCategoryId": {}})

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryUpdate_Cycle(t *testing.T) {
	repo := new(mockCategoryRepo)
	d := dto.UpdateCategoryDTO{BaseCategoryID: null.Uint64From(5)}
	repo.On("FindByID", mock.Anything, uint64(5)).Return(&entities.Category{ID: 5}, nil)
	repo.On("IsDescendant", mock.Anything, uint64(1), uint64(5)).Return(true, nil)

	err := newCategoryService(repo, &recordingBus{}).
		Update(context.Background(), 1, d, types.Fields{"baseCategoryId": {}})

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryUpdate_ClearParentSkipsChecks(t *testing.T) {
	repo := new(mockCategoryRepo)
	bus := &recordingBus{}
	d := dto.UpdateCategoryDTO{}
	fields := types.Fields{"baseCategoryId": {}}
	repo.On("Update", mock.Anything, noTx, uint64(2), d, fields).Return(nil)

	err := newCategoryService(repo, bus).Update(context.Background(), 2, d, fields)

	require.NoError(t, err)
	assert.Equal(t, []string{"category.updated"}, bus.names())
	repo.AssertNotCalled(t, "IsDescendant", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	repo := new(mockCategoryRepo)
	bus := &recordingBus{}
	repo.On("Delete", mock.Anything, noTx, uint64(99)).Return(apperrors.ErrNotFound)

	err := newCategoryService(repo, bus).Delete(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, bus.names())
}

func TestCategoryDeleteAll(t *testing.T) {
	repo := new(mockCategoryRepo)
	bus := &recordingBus{}
	repo.On("DeleteAll", mock.Anything, noTx).Return(int64(4), nil)

	affected, err := newCategoryService(repo, bus).DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
	assert.Equal(t, []string{"category.purged"}, bus.names())
}
