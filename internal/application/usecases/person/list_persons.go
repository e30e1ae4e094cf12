package person

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

// ListPersonsUseCase returns a filtered, paginated page of persons.
type ListPersonsUseCase struct {
	persons ports.TemporaryPersonRepository
}

// NewListPersonsUseCase wires the use case with its port.
func NewListPersonsUseCase(persons ports.TemporaryPersonRepository) *ListPersonsUseCase {
	return &ListPersonsUseCase{persons: persons}
}

// Execute lists persons. Invalid filter values are validation errors, not
// silently ignored.
func (uc *ListPersonsUseCase) Execute(ctx context.Context, query dtos.ListPersonsQuery) (*dtos.PersonListDTO, error) {
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

	var violations errors.ValidationErrors
	filter := ports.PersonFilter{Search: query.Search}

	if query.Status != "" {
		status := entities.PersonStatus(query.Status)
		if !status.IsValid() {
			violations.Add("status", "must be one of ACTIVE, INACTIVE", query.Status)
		} else {
			filter.Status = &status
		}
	}
	if query.PersonType != "" {
		personType := entities.PersonType(query.PersonType)
		if !personType.IsValid() {
			violations.Add("personType", "must be one of ATHLETE, TRAINER, PARTICIPANT", query.PersonType)
		} else {
			filter.PersonType = &personType
		}
	}
	if violations.HasErrors() {
		return nil, violations
	}

	persons, total, err := uc.persons.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.NewInternalError("person listing", err)
	}

	return &dtos.PersonListDTO{
		Persons: dtos.ToPersonDTOList(persons),
		Meta:    dtos.BuildPageMeta(page, limit, total),
	}, nil
}
