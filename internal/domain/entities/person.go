// Package entities contains the domain entities of the roster administration
// core. Entities carry identity, lifecycle state and the guard predicates the
// lifecycle controller evaluates before mutating operations.
package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// PersonType classifies a temporary person record.
type PersonType string

const (
	PersonTypeAthlete     PersonType = "ATHLETE"
	PersonTypeTrainer     PersonType = "TRAINER"
	PersonTypeParticipant PersonType = "PARTICIPANT"
)

// IsValid reports whether the value belongs to the closed set.
// Unknown values are rejected, never coerced.
func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypeAthlete, PersonTypeTrainer, PersonTypeParticipant:
		return true
	default:
		return false
	}
}

// PersonStatus is the lifecycle status of a temporary person.
type PersonStatus string

const (
	PersonStatusActive   PersonStatus = "ACTIVE"
	PersonStatusInactive PersonStatus = "INACTIVE"
)

// IsValid reports whether the value belongs to the closed set.
func (s PersonStatus) IsValid() bool {
	return s == PersonStatusActive || s == PersonStatusInactive
}

// PersonAttrs groups the mutable attributes of a TemporaryPerson. The
// validation pipeline produces a normalized PersonAttrs; the entity assumes
// field-level validation already happened.
type PersonAttrs struct {
	FirstName      string
	LastName       string
	Identification *string
	Email          *string
	Phone          *string
	PersonType     PersonType
	BirthDate      *time.Time
	Age            *int
	Team           *string
	Category       *string
	Status         PersonStatus
	DocumentTypeID *uuid.UUID
}

// TemporaryPerson is a domain record for an athlete, trainer or participant
// without a full user account. Identity lives in the id; all other state is
// mutable through the update pipeline only.
type TemporaryPerson struct {
	id             uuid.UUID
	firstName      string
	lastName       string
	identification *string
	email          *string
	phone          *string
	personType     PersonType
	birthDate      *time.Time
	age            *int
	team           *string
	category       *string
	status         PersonStatus
	documentTypeID *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTemporaryPerson creates a person from normalized, field-validated
// attributes. It re-checks only the structural invariants the entity cannot
// live without; the full rule engine runs earlier in the pipeline.
func NewTemporaryPerson(attrs PersonAttrs) (*TemporaryPerson, error) {
	var violations errors.ValidationErrors

	if strings.TrimSpace(attrs.FirstName) == "" {
		violations.Add("firstName", "first name is required", attrs.FirstName)
	}
	if strings.TrimSpace(attrs.LastName) == "" {
		violations.Add("lastName", "last name is required", attrs.LastName)
	}
	if !attrs.PersonType.IsValid() {
		violations.Add("personType", "unknown person type", string(attrs.PersonType))
	}
	if attrs.Status == "" {
		attrs.Status = PersonStatusActive
	}
	if !attrs.Status.IsValid() {
		violations.Add("status", "unknown status", string(attrs.Status))
	}
	if violations.HasErrors() {
		return nil, violations
	}

	now := time.Now().UTC()
	p := &TemporaryPerson{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	p.apply(attrs)
	return p, nil
}

// ReconstructTemporaryPerson rebuilds a person from stored data. Used by the
// repository layer to hydrate entities; assumes the data is already valid.
func ReconstructTemporaryPerson(
	id uuid.UUID,
	attrs PersonAttrs,
	createdAt, updatedAt time.Time,
) *TemporaryPerson {
	p := &TemporaryPerson{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	p.apply(attrs)
	p.updatedAt = updatedAt
	return p
}

func (p *TemporaryPerson) apply(attrs PersonAttrs) {
	p.firstName = attrs.FirstName
	p.lastName = attrs.LastName
	p.identification = attrs.Identification
	p.email = attrs.Email
	p.phone = attrs.Phone
	p.personType = attrs.PersonType
	p.birthDate = attrs.BirthDate
	p.age = attrs.Age
	p.team = attrs.Team
	p.category = attrs.Category
	p.status = attrs.Status
	p.documentTypeID = attrs.DocumentTypeID
	p.updatedAt = time.Now().UTC()
}

// Update replaces the mutable attributes with the merged, re-validated set.
// The caller (update use case) is responsible for running the full pipeline
// before calling this.
func (p *TemporaryPerson) Update(attrs PersonAttrs) {
	p.apply(attrs)
}

// ID returns the surrogate identity assigned at creation.
func (p *TemporaryPerson) ID() uuid.UUID { return p.id }

// FirstName returns the first name.
func (p *TemporaryPerson) FirstName() string { return p.firstName }

// LastName returns the last name.
func (p *TemporaryPerson) LastName() string { return p.lastName }

// Identification returns the identification document number, if present.
func (p *TemporaryPerson) Identification() *string { return p.identification }

// Email returns the email address, if present.
func (p *TemporaryPerson) Email() *string { return p.email }

// Phone returns the phone number, if present.
func (p *TemporaryPerson) Phone() *string { return p.phone }

// PersonType returns the classification.
func (p *TemporaryPerson) PersonType() PersonType { return p.personType }

// BirthDate returns the birth date, if present.
func (p *TemporaryPerson) BirthDate() *time.Time { return p.birthDate }

// Age returns the stored age, if present. Derived from the birth date at
// validation time when one is supplied.
func (p *TemporaryPerson) Age() *int { return p.age }

// Team returns the team affiliation, if present.
func (p *TemporaryPerson) Team() *string { return p.team }

// Category returns the category affiliation, if present.
func (p *TemporaryPerson) Category() *string { return p.category }

// Status returns the lifecycle status.
func (p *TemporaryPerson) Status() PersonStatus { return p.status }

// DocumentTypeID returns the document type reference, if present.
func (p *TemporaryPerson) DocumentTypeID() *uuid.UUID { return p.documentTypeID }

// CreatedAt returns when the record was created.
func (p *TemporaryPerson) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the record was last updated.
func (p *TemporaryPerson) UpdatedAt() time.Time { return p.updatedAt }

// Activate transitions the record to ACTIVE. The ACTIVE ⇄ INACTIVE
// transition is free in both directions.
func (p *TemporaryPerson) Activate() {
	p.status = PersonStatusActive
	p.updatedAt = time.Now().UTC()
}

// Deactivate transitions the record to INACTIVE (soft delete).
func (p *TemporaryPerson) Deactivate() {
	p.status = PersonStatusInactive
	p.updatedAt = time.Now().UTC()
}

// CanHardDelete is the lifecycle guard for the delete path: a record may be
// hard-deleted only while INACTIVE. The guard is evaluated against the record
// read immediately before the delete.
func (p *TemporaryPerson) CanHardDelete() error {
	if p.status != PersonStatusInactive {
		return errors.NewStateTransitionError(
			"temporary person",
			"cannot delete a record while its status is ACTIVE; deactivate it first",
		)
	}
	return nil
}
