package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// GetCategoryUseCase loads one category by id, usage aggregates included.
type GetCategoryUseCase struct {
	categories ports.SportsCategoryRepository
}

// NewGetCategoryUseCase wires the use case with its port.
func NewGetCategoryUseCase(categories ports.SportsCategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categories: categories}
}

// Execute returns the category or NotFoundError.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, query dtos.GetCategoryQuery) (*dtos.CategoryDTO, error) {
	id, err := uuid.Parse(query.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: query.ID}}
	}

	c, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		if ports.IsRepoNotFound(err) {
			return nil, errors.NewNotFoundError("sports category", query.ID)
		}
		return nil, errors.NewInternalError("category lookup", err)
	}

	dto := dtos.ToCategoryDTO(c)
	return &dto, nil
}
