package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

func TestDeleteCategory_BlockedWhileActive(t *testing.T) {
	stored := storedCategory(t, entities.CategoryStatusActive, entities.CategoryUsage{})
	repo := repoWith(stored)
	uc := NewDeleteCategoryUseCase(repo, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeleteCategoryCommand{ID: stored.ID().String()})
	require.Error(t, err)
	assert.True(t, errors.IsStateTransition(err))
	assert.Contains(t, err.Error(), "ACTIVE", "the rejection names the blocking status")
	assert.Empty(t, repo.deleted)
}

func TestDeleteCategory_BlockedByLinkedRecords(t *testing.T) {
	stored := storedCategory(t, entities.CategoryStatusInactive,
		entities.CategoryUsage{Inscriptions: 4, Participants: 1})
	repo := repoWith(stored)
	uc := NewDeleteCategoryUseCase(repo, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeleteCategoryCommand{ID: stored.ID().String()})
	require.Error(t, err)
	assert.True(t, errors.IsStateTransition(err))
	assert.Contains(t, err.Error(), "4 inscriptions")
	assert.Contains(t, err.Error(), "1 participants")
	assert.Empty(t, repo.deleted)
}

func TestDeleteCategory_AllowedWhenInactiveAndUnused(t *testing.T) {
	stored := storedCategory(t, entities.CategoryStatusInactive, entities.CategoryUsage{})
	repo := repoWith(stored)
	uc := NewDeleteCategoryUseCase(repo, fakeUOW{})

	result, err := uc.Execute(context.Background(), dtos.DeleteCategoryCommand{ID: stored.ID().String()})
	require.NoError(t, err)
	assert.Equal(t, "Category Sub-15 deleted successfully", result.Message)
	require.Len(t, repo.deleted, 1)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc := NewDeleteCategoryUseCase(&fakeCategoryRepo{}, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeleteCategoryCommand{ID: uuid.NewString()})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListCategories(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&fakeCategoryRepo{})
		_, err := uc.Execute(context.Background(), dtos.ListCategoriesQuery{Status: "BROKEN"})
		require.Error(t, err)
		_, ok := errors.AsValidationErrors(err)
		assert.True(t, ok)
	})

	t.Run("meta for the last page", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			ListFn: func(context.Context, ports.CategoryFilter, int, int) ([]*entities.SportsCategory, int, error) {
				return nil, 41, nil
			},
		}
		uc := NewListCategoriesUseCase(repo)
		result, err := uc.Execute(context.Background(), dtos.ListCategoriesQuery{Page: 3, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Meta.TotalPages)
		assert.False(t, result.Meta.HasNext)
		assert.True(t, result.Meta.HasPrev)
	})
}

func TestCheckName(t *testing.T) {
	t.Run("taken", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			ExistsByNameFn: func(context.Context, string, *uuid.UUID) (bool, error) {
				return true, nil
			},
		}
		result, err := NewCheckNameUseCase(repo).
			Execute(context.Background(), dtos.CheckAvailabilityQuery{Value: "Sub-15"})
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Contains(t, result.Message, "already in use")
	})

	t.Run("available after whitespace folding", func(t *testing.T) {
		var checked string
		repo := &fakeCategoryRepo{
			ExistsByNameFn: func(_ context.Context, name string, _ *uuid.UUID) (bool, error) {
				checked = name
				return false, nil
			},
		}
		result, err := NewCheckNameUseCase(repo).
			Execute(context.Background(), dtos.CheckAvailabilityQuery{Value: "  Sub   15 "})
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, "Sub 15", checked)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewCheckNameUseCase(&fakeCategoryRepo{}).
			Execute(context.Background(), dtos.CheckAvailabilityQuery{Value: "   "})
		require.Error(t, err)
		_, ok := errors.AsValidationErrors(err)
		assert.True(t, ok)
	})
}
