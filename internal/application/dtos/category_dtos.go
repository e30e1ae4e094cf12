package dtos

import (
	"time"

	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// CreateCategoryCommand carries the full payload for a category create.
type CreateCategoryCommand struct {
	validation.CategoryInput
}

// UpdateCategoryCommand carries a partial payload: nil members keep the
// stored value.
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	MinAge      *int
	MaxAge      *int
	Status      *string
	Published   *bool
	ImageURL    *string
	Description *string

	// Legacy aliases.
	Estado string
}

// GetCategoryQuery targets one category by id.
type GetCategoryQuery struct {
	ID string
}

// ListCategoriesQuery pages and filters the category listing.
type ListCategoriesQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// DeleteCategoryCommand targets one category for hard deletion.
type DeleteCategoryCommand struct {
	ID string
}

// CategoryDTO is the outward representation of a sports category, including
// the read-only usage aggregates.
type CategoryDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	MinAge           int       `json:"minAge"`
	MaxAge           int       `json:"maxAge"`
	Status           string    `json:"status"`
	Published        bool      `json:"published"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	Description      *string   `json:"description,omitempty"`
	InscriptionCount int       `json:"inscriptionCount"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CategoryCreatedDTO is the create result.
type CategoryCreatedDTO struct {
	Category CategoryDTO `json:"category"`
	Message  string      `json:"message"`
}

// CategoryUpdatedDTO is the update result.
type CategoryUpdatedDTO struct {
	Category CategoryDTO `json:"category"`
	Message  string      `json:"message"`
	Warnings []string    `json:"warnings,omitempty"`
}

// CategoryDeletedDTO confirms a hard delete.
type CategoryDeletedDTO struct {
	Message string `json:"message"`
}

// CategoryListDTO is one page of categories plus its metadata.
type CategoryListDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Meta       PageMeta      `json:"meta"`
}
