package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// GetPersonUseCase loads one record by id.
type GetPersonUseCase struct {
	persons ports.TemporaryPersonRepository
}

// NewGetPersonUseCase wires the use case with its port.
func NewGetPersonUseCase(persons ports.TemporaryPersonRepository) *GetPersonUseCase {
	return &GetPersonUseCase{persons: persons}
}

// Execute returns the record or NotFoundError.
func (uc *GetPersonUseCase) Execute(ctx context.Context, query dtos.GetPersonQuery) (*dtos.PersonDTO, error) {
	id, err := uuid.Parse(query.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: query.ID}}
	}

	p, err := uc.persons.FindByID(ctx, id)
	if err != nil {
		if ports.IsRepoNotFound(err) {
			return nil, errors.NewNotFoundError("temporary person", query.ID)
		}
		return nil, errors.NewInternalError("person lookup", err)
	}

	dto := dtos.ToPersonDTO(p)
	return &dto, nil
}
