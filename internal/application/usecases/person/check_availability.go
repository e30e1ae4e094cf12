package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// parseExcludeID turns the optional exclude-id parameter into a uuid.
func parseExcludeID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "excludeId", Message: "must be a valid UUID", RejectedValue: raw}}
	}
	return &id, nil
}

func availability(field, value string, taken bool) *dtos.AvailabilityDTO {
	if taken {
		return &dtos.AvailabilityDTO{
			Available: false,
			Message:   fmt.Sprintf("%s '%s' is already in use", field, value),
		}
	}
	return &dtos.AvailabilityDTO{
		Available: true,
		Message:   fmt.Sprintf("%s '%s' is available", field, value),
	}
}

// CheckIdentificationUseCase answers the identification availability
// pre-check. This is the fast, user-facing half of uniqueness enforcement;
// the storage constraint remains authoritative.
type CheckIdentificationUseCase struct {
	persons ports.TemporaryPersonRepository
}

// NewCheckIdentificationUseCase wires the use case with its port.
func NewCheckIdentificationUseCase(persons ports.TemporaryPersonRepository) *CheckIdentificationUseCase {
	return &CheckIdentificationUseCase{persons: persons}
}

// Execute reports whether the identification is free.
func (uc *CheckIdentificationUseCase) Execute(ctx context.Context, query dtos.CheckAvailabilityQuery) (*dtos.AvailabilityDTO, error) {
	if query.Value == "" {
		return nil, errors.ValidationErrors{{Field: "identification", Message: "is required", RejectedValue: query.Value}}
	}
	excludeID, err := parseExcludeID(query.ExcludeID)
	if err != nil {
		return nil, err
	}

	taken, err := uc.persons.ExistsByIdentification(ctx, query.Value, excludeID)
	if err != nil {
		return nil, errors.NewInternalError("identification availability check", err)
	}
	return availability("identification", query.Value, taken), nil
}

// CheckEmailUseCase answers the email availability pre-check. The value is
// lowercased the same way the normalizer does before storing.
type CheckEmailUseCase struct {
	persons ports.TemporaryPersonRepository
}

// NewCheckEmailUseCase wires the use case with its port.
func NewCheckEmailUseCase(persons ports.TemporaryPersonRepository) *CheckEmailUseCase {
	return &CheckEmailUseCase{persons: persons}
}

// Execute reports whether the email is free.
func (uc *CheckEmailUseCase) Execute(ctx context.Context, query dtos.CheckAvailabilityQuery) (*dtos.AvailabilityDTO, error) {
	if query.Value == "" {
		return nil, errors.ValidationErrors{{Field: "email", Message: "is required", RejectedValue: query.Value}}
	}
	excludeID, err := parseExcludeID(query.ExcludeID)
	if err != nil {
		return nil, err
	}

	email := validation.PersonInput{Email: &query.Value}
	normalized := validation.NormalizePerson(email).Email

	taken, err := uc.persons.ExistsByEmail(ctx, *normalized, excludeID)
	if err != nil {
		return nil, errors.NewInternalError("email availability check", err)
	}
	return availability("email", *normalized, taken), nil
}
