package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// DeleteCategoryUseCase hard-deletes a category. The guard checks the
// lifecycle status and the usage aggregates read in the same transaction;
// the rejection names the specific blocker.
type DeleteCategoryUseCase struct {
	categories ports.SportsCategoryRepository
	uow        ports.UnitOfWork
}

// NewDeleteCategoryUseCase wires the use case with its ports.
func NewDeleteCategoryUseCase(categories ports.SportsCategoryRepository, uow ports.UnitOfWork) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categories: categories, uow: uow}
}

// Execute deletes the category when the guard allows it.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd dtos.DeleteCategoryCommand) (*dtos.CategoryDeletedDTO, error) {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: cmd.ID}}
	}

	var result *dtos.CategoryDeletedDTO
	err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
		c, err := uc.categories.FindByID(txCtx, id)
		if err != nil {
			if ports.IsRepoNotFound(err) {
				return errors.NewNotFoundError("sports category", cmd.ID)
			}
			return errors.NewInternalError("category lookup", err)
		}

		if err := c.CanHardDelete(); err != nil {
			return err
		}

		if err := uc.categories.Delete(txCtx, id); err != nil {
			return errors.NewInternalError("category delete", err)
		}

		result = &dtos.CategoryDeletedDTO{
			Message: fmt.Sprintf("Category %s deleted successfully", c.Name()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
