package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// UpdateCategoryUseCase merges a partial payload onto the stored category
// and re-runs the pipeline, with name uniqueness excluding the record's own
// id.
type UpdateCategoryUseCase struct {
	categories ports.SportsCategoryRepository
	uow        ports.UnitOfWork
}

// NewUpdateCategoryUseCase wires the use case with its ports.
func NewUpdateCategoryUseCase(categories ports.SportsCategoryRepository, uow ports.UnitOfWork) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categories: categories, uow: uow}
}

func inputFromCategory(c *entities.SportsCategory) validation.CategoryInput {
	minAge, maxAge := c.MinAge(), c.MaxAge()
	published := c.Published()
	return validation.CategoryInput{
		Name:        c.Name(),
		MinAge:      &minAge,
		MaxAge:      &maxAge,
		Status:      string(c.Status()),
		Published:   &published,
		ImageURL:    c.ImageURL(),
		Description: c.Description(),
	}
}

func mergeInput(stored validation.CategoryInput, cmd dtos.UpdateCategoryCommand) validation.CategoryInput {
	merged := stored
	if cmd.Name != nil {
		merged.Name = *cmd.Name
	}
	if cmd.MinAge != nil {
		merged.MinAge = cmd.MinAge
	}
	if cmd.MaxAge != nil {
		merged.MaxAge = cmd.MaxAge
	}
	if cmd.Status != nil {
		merged.Status = *cmd.Status
	} else if cmd.Estado != "" {
		merged.Estado = cmd.Estado
		merged.Status = ""
	}
	if cmd.Published != nil {
		merged.Published = cmd.Published
	}
	if cmd.ImageURL != nil {
		merged.ImageURL = cmd.ImageURL
	}
	if cmd.Description != nil {
		merged.Description = cmd.Description
	}
	return merged
}

// Execute applies a partial update after re-running the pipeline. A status
// change to INACTIVE is reported as a warning, matching the person pipeline.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd dtos.UpdateCategoryCommand) (*dtos.CategoryUpdatedDTO, error) {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: cmd.ID}}
	}

	var result *dtos.CategoryUpdatedDTO
	err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
		prior, err := uc.categories.FindByID(txCtx, id)
		if err != nil {
			if ports.IsRepoNotFound(err) {
				return errors.NewNotFoundError("sports category", cmd.ID)
			}
			return errors.NewInternalError("category lookup", err)
		}

		merged := validation.NormalizeCategory(mergeInput(inputFromCategory(prior), cmd))

		fields, fieldErrs := validation.ValidateCategoryFields(merged)
		if fieldErrs.HasErrors() {
			return fieldErrs
		}
		if ruleErrs := validation.ValidateCategoryRules(fields); ruleErrs.HasErrors() {
			return ruleErrs
		}

		taken, err := uc.categories.ExistsByName(txCtx, fields.Name, &id)
		if err != nil {
			return errors.NewInternalError("category name uniqueness check", err)
		}
		if taken {
			return errors.NewConflictError("name", fields.Name)
		}

		var warnings []string
		if prior.Status() == entities.CategoryStatusActive && fields.Status == entities.CategoryStatusInactive {
			warnings = append(warnings, "status change to INACTIVE deactivates the category")
		}

		prior.Update(attrsFromFields(fields))

		if err := uc.categories.Save(txCtx, prior); err != nil {
			return translateSaveError(err, fields.Name)
		}

		result = &dtos.CategoryUpdatedDTO{
			Category: dtos.ToCategoryDTO(prior),
			Message:  "Category updated successfully",
			Warnings: warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
