package category

import (
	"context"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// Listing defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListCategoriesUseCase returns a filtered, paginated page of categories.
type ListCategoriesUseCase struct {
	categories ports.SportsCategoryRepository
}

// NewListCategoriesUseCase wires the use case with its port.
func NewListCategoriesUseCase(categories ports.SportsCategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

// Execute lists categories. An invalid status filter is a validation error.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query dtos.ListCategoriesQuery) (*dtos.CategoryListDTO, error) {
	page := query.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := ports.CategoryFilter{Search: query.Search}
	if query.Status != "" {
		status := entities.CategoryStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.ValidationErrors{{Field: "status", Message: "must be one of ACTIVE, INACTIVE", RejectedValue: query.Status}}
		}
		filter.Status = &status
	}

	categories, total, err := uc.categories.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.NewInternalError("category listing", err)
	}

	return &dtos.CategoryListDTO{
		Categories: dtos.ToCategoryDTOList(categories),
		Meta:       dtos.BuildPageMeta(page, limit, total),
	}, nil
}
