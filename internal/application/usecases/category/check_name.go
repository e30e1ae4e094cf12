package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// CheckNameUseCase answers the category name availability pre-check. Names
// compare case-insensitively; the storage constraint remains authoritative.
type CheckNameUseCase struct {
	categories ports.SportsCategoryRepository
}

// NewCheckNameUseCase wires the use case with its port.
func NewCheckNameUseCase(categories ports.SportsCategoryRepository) *CheckNameUseCase {
	return &CheckNameUseCase{categories: categories}
}

// Execute reports whether the name is free.
func (uc *CheckNameUseCase) Execute(ctx context.Context, query dtos.CheckAvailabilityQuery) (*dtos.AvailabilityDTO, error) {
	name := validation.NormalizeCategory(validation.CategoryInput{Name: query.Value}).Name
	if name == "" {
		return nil, errors.ValidationErrors{{Field: "name", Message: "is required", RejectedValue: query.Value}}
	}

	var excludeID *uuid.UUID
	if query.ExcludeID != "" {
		id, err := uuid.Parse(query.ExcludeID)
		if err != nil {
			return nil, errors.ValidationErrors{{Field: "excludeId", Message: "must be a valid UUID", RejectedValue: query.ExcludeID}}
		}
		excludeID = &id
	}

	taken, err := uc.categories.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return nil, errors.NewInternalError("category name availability check", err)
	}

	if taken {
		return &dtos.AvailabilityDTO{
			Available: false,
			Message:   fmt.Sprintf("name '%s' is already in use", name),
		}, nil
	}
	return &dtos.AvailabilityDTO{
		Available: true,
		Message:   fmt.Sprintf("name '%s' is available", name),
	}, nil
}
