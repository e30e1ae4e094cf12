// Package person contains the use cases orchestrating the temporary person
// pipeline: field validation, normalization, business rules, uniqueness
// pre-checks and the repository write, in that order.
package person

import (
	"fmt"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// attrsFromFields converts the validated value set into entity attributes.
// The stored age is the derived one when a birth date is present.
func attrsFromFields(f validation.PersonFields) entities.PersonAttrs {
	return entities.PersonAttrs{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Identification: emptyToNil(f.Identification),
		Email:          emptyToNil(f.Email),
		Phone:          emptyToNil(f.Phone),
		PersonType:     f.PersonType,
		BirthDate:      f.BirthDate,
		Age:            validation.ResolveAge(f),
		Team:           emptyToNil(f.Team),
		Category:       emptyToNil(f.Category),
		Status:         f.Status,
		DocumentTypeID: f.DocumentTypeID,
	}
}

// inputFromPerson rebuilds the canonical input shape from a stored record,
// the starting point for merging a partial update payload.
func inputFromPerson(p *entities.TemporaryPerson) validation.PersonInput {
	in := validation.PersonInput{
		FirstName:      p.FirstName(),
		LastName:       p.LastName(),
		Identification: p.Identification(),
		Email:          p.Email(),
		Phone:          p.Phone(),
		PersonType:     string(p.PersonType()),
		Age:            p.Age(),
		Team:           p.Team(),
		Category:       p.Category(),
		Status:         string(p.Status()),
	}
	if bd := p.BirthDate(); bd != nil {
		formatted := bd.Format(validation.DateLayout)
		in.BirthDate = &formatted
	}
	if dt := p.DocumentTypeID(); dt != nil {
		id := dt.String()
		in.DocumentTypeID = &id
	}
	return in
}

// conflictFor maps a repository conflict onto the user-facing ConflictError,
// echoing the value the caller attempted to store.
func conflictFor(field string, f validation.PersonFields) error {
	value := ""
	switch field {
	case "identification":
		if f.Identification != nil {
			value = *f.Identification
		}
	case "email":
		if f.Email != nil {
			value = *f.Email
		}
	}
	return errors.NewConflictError(field, value)
}

// translateSaveError converts a typed repository failure into the domain
// taxonomy: constraint rejections become ConflictError, everything else is
// wrapped as internal.
func translateSaveError(err error, f validation.PersonFields) error {
	if field, ok := ports.IsRepoConflict(err); ok {
		return conflictFor(field, f)
	}
	return errors.NewInternalError("person save", fmt.Errorf("save person: %w", err))
}
