package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// DeletePersonUseCase hard-deletes a record. The lifecycle guard is
// evaluated against the record read immediately before the delete, inside
// the same transaction.
type DeletePersonUseCase struct {
	persons ports.TemporaryPersonRepository
	uow     ports.UnitOfWork
}

// NewDeletePersonUseCase wires the use case with its ports.
func NewDeletePersonUseCase(persons ports.TemporaryPersonRepository, uow ports.UnitOfWork) *DeletePersonUseCase {
	return &DeletePersonUseCase{persons: persons, uow: uow}
}

// Execute deletes the record when the guard allows it.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, cmd dtos.DeletePersonCommand) (*dtos.PersonDeletedDTO, error) {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: cmd.ID}}
	}

	var result *dtos.PersonDeletedDTO
	err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
		p, err := uc.persons.FindByID(txCtx, id)
		if err != nil {
			if ports.IsRepoNotFound(err) {
				return errors.NewNotFoundError("temporary person", cmd.ID)
			}
			return errors.NewInternalError("person lookup", err)
		}

		if err := p.CanHardDelete(); err != nil {
			return err
		}

		if err := uc.persons.Delete(txCtx, id); err != nil {
			return errors.NewInternalError("person delete", err)
		}

		result = &dtos.PersonDeletedDTO{
			Message: fmt.Sprintf("Temporary person %s %s deleted successfully", p.FirstName(), p.LastName()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
