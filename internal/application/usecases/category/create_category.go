// Package category contains the use cases for sports categories: the same
// validation pipeline as persons, plus the usage-count delete guard.
package category

import (
	"context"
	"fmt"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

func attrsFromFields(f validation.CategoryFields) entities.CategoryAttrs {
	return entities.CategoryAttrs{
		Name:        f.Name,
		MinAge:      f.MinAge,
		MaxAge:      f.MaxAge,
		Status:      f.Status,
		Published:   f.Published,
		ImageURL:    f.ImageURL,
		Description: f.Description,
	}
}

func translateSaveError(err error, name string) error {
	if _, ok := ports.IsRepoConflict(err); ok {
		return errors.NewConflictError("name", name)
	}
	return errors.NewInternalError("category save", fmt.Errorf("save category: %w", err))
}

// CreateCategoryUseCase runs the creation pipeline for a sports category.
// The minAge < maxAge invariant is rejected here, never deferred to delete
// time.
type CreateCategoryUseCase struct {
	categories ports.SportsCategoryRepository
	uow        ports.UnitOfWork
}

// NewCreateCategoryUseCase wires the use case with its ports.
func NewCreateCategoryUseCase(categories ports.SportsCategoryRepository, uow ports.UnitOfWork) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categories: categories, uow: uow}
}

// Execute validates, normalizes and stores a new category.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd dtos.CreateCategoryCommand) (*dtos.CategoryCreatedDTO, error) {
	norm := validation.NormalizeCategory(cmd.CategoryInput)

	fields, fieldErrs := validation.ValidateCategoryFields(norm)
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}
	if ruleErrs := validation.ValidateCategoryRules(fields); ruleErrs.HasErrors() {
		return nil, ruleErrs
	}

	var result *dtos.CategoryCreatedDTO
	err := uc.uow.Execute(ctx, func(txCtx context.Context) error {
		taken, err := uc.categories.ExistsByName(txCtx, fields.Name, nil)
		if err != nil {
			return errors.NewInternalError("category name uniqueness check", err)
		}
		if taken {
			return errors.NewConflictError("name", fields.Name)
		}

		c, err := entities.NewSportsCategory(attrsFromFields(fields))
		if err != nil {
			return err
		}

		if err := uc.categories.Save(txCtx, c); err != nil {
			return translateSaveError(err, fields.Name)
		}

		result = &dtos.CategoryCreatedDTO{
			Category: dtos.ToCategoryDTO(c),
			Message:  fmt.Sprintf("Category %s created successfully", c.Name()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
