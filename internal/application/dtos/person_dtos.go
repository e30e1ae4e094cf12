// Package dtos defines the commands, queries and data transfer objects that
// cross the application boundary. Domain entities never leave the core.
package dtos

import (
	"time"

	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// CreatePersonCommand carries the full payload for a create request, in any
// of the accepted historical shapes. The pipeline normalizes it before
// validation.
type CreatePersonCommand struct {
	validation.PersonInput
}

// UpdatePersonCommand carries a partial payload: nil members keep the stored
// value. Legacy aliases are accepted the same way as on create.
type UpdatePersonCommand struct {
	ID             string
	FirstName      *string
	LastName       *string
	Identification *string
	Email          *string
	Phone          *string
	PersonType     *string
	BirthDate      *string
	Age            *int
	Team           *string
	Category       *string
	Status         *string
	DocumentTypeID *string

	// Legacy aliases, folded by the normalizer when present.
	FullName    string
	Estado      string
	TipoPersona string
}

// GetPersonQuery targets one record by id.
type GetPersonQuery struct {
	ID string
}

// ListPersonsQuery pages and filters the person listing.
type ListPersonsQuery struct {
	Page       int
	Limit      int
	Search     string
	Status     string
	PersonType string
}

// DeletePersonCommand targets one record for hard deletion.
type DeletePersonCommand struct {
	ID string
}

// CheckAvailabilityQuery asks whether a unique value is free, excluding the
// given record id during updates.
type CheckAvailabilityQuery struct {
	Value     string
	ExcludeID string
}

// PersonDTO is the outward representation of a temporary person.
type PersonDTO struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Identification *string   `json:"identification,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	PersonType     string    `json:"personType"`
	BirthDate      *string   `json:"birthDate,omitempty"`
	Age            *int      `json:"age,omitempty"`
	Team           *string   `json:"team,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Status         string    `json:"status"`
	DocumentTypeID *string   `json:"documentTypeId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PersonCreatedDTO is the create result: record plus confirmation message.
type PersonCreatedDTO struct {
	Person  PersonDTO `json:"person"`
	Message string    `json:"message"`
}

// PersonUpdatedDTO is the update result; Warnings carries the non-blocking
// rule outcomes.
type PersonUpdatedDTO struct {
	Person   PersonDTO `json:"person"`
	Message  string    `json:"message"`
	Warnings []string  `json:"warnings,omitempty"`
}

// PersonDeletedDTO confirms a hard delete.
type PersonDeletedDTO struct {
	Message string `json:"message"`
}

// PageMeta is the pagination metadata attached to listings.
type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// PersonListDTO is one page of persons plus its metadata.
type PersonListDTO struct {
	Persons []PersonDTO `json:"persons"`
	Meta    PageMeta    `json:"meta"`
}

// AvailabilityDTO answers a uniqueness pre-check.
type AvailabilityDTO struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// DocumentTypeDTO is one entry of the document type catalog.
type DocumentTypeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PersonStatsDTO aggregates counts by status and by person type.
type PersonStatsDTO struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`
}
