package person

import (
	"context"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// PersonStatsUseCase returns the read-only aggregates: counts by status and
// by person type.
type PersonStatsUseCase struct {
	persons ports.TemporaryPersonRepository
}

// NewPersonStatsUseCase wires the use case with its port.
func NewPersonStatsUseCase(persons ports.TemporaryPersonRepository) *PersonStatsUseCase {
	return &PersonStatsUseCase{persons: persons}
}

// Execute loads the aggregates.
func (uc *PersonStatsUseCase) Execute(ctx context.Context) (*dtos.PersonStatsDTO, error) {
	stats, err := uc.persons.Stats(ctx)
	if err != nil {
		return nil, errors.NewInternalError("person stats", err)
	}
	return &dtos.PersonStatsDTO{
		Total:    stats.Total,
		ByStatus: stats.ByStatus,
		ByType:   stats.ByType,
	}, nil
}
