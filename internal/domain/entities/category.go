package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// CategoryStatus is the lifecycle status of a sports category.
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "ACTIVE"
	CategoryStatusInactive CategoryStatus = "INACTIVE"
)

// IsValid reports whether the value belongs to the closed set.
func (s CategoryStatus) IsValid() bool {
	return s == CategoryStatusActive || s == CategoryStatusInactive
}

// CategoryAttrs groups the mutable attributes of a SportsCategory.
type CategoryAttrs struct {
	Name        string
	MinAge      int
	MaxAge      int
	Status      CategoryStatus
	Published   bool
	ImageURL    *string
	Description *string
}

// CategoryUsage holds the read-only referential aggregates that guard
// deletion. Populated by the repository on load, never written by callers.
type CategoryUsage struct {
	Inscriptions int
	Participants int
}

// Total returns the combined usage count.
func (u CategoryUsage) Total() int {
	return u.Inscriptions + u.Participants
}

// SportsCategory is a classification entity with an age range, a lifecycle
// status and usage aggregates that block deletion while non-zero.
type SportsCategory struct {
	id          uuid.UUID
	name        string
	minAge      int
	maxAge      int
	status      CategoryStatus
	published   bool
	imageURL    *string
	description *string
	usage       CategoryUsage
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSportsCategory creates a category from validated attributes.
// The minAge < maxAge invariant is enforced here as well as in the rule
// engine: a category violating the range can never be constructed.
func NewSportsCategory(attrs CategoryAttrs) (*SportsCategory, error) {
	var violations errors.ValidationErrors

	if strings.TrimSpace(attrs.Name) == "" {
		violations.Add("name", "name is required", attrs.Name)
	}
	if attrs.MinAge >= attrs.MaxAge {
		violations.Add("minAge", "minimum age must be lower than maximum age", attrs.MinAge)
	}
	if attrs.Status == "" {
		attrs.Status = CategoryStatusActive
	}
	if !attrs.Status.IsValid() {
		violations.Add("status", "unknown status", string(attrs.Status))
	}
	if violations.HasErrors() {
		return nil, violations
	}

	now := time.Now().UTC()
	c := &SportsCategory{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	c.apply(attrs)
	return c, nil
}

// ReconstructSportsCategory rebuilds a category from stored data, including
// its usage aggregates. Assumes the data is already valid.
func ReconstructSportsCategory(
	id uuid.UUID,
	attrs CategoryAttrs,
	usage CategoryUsage,
	createdAt, updatedAt time.Time,
) *SportsCategory {
	c := &SportsCategory{
		id:        id,
		usage:     usage,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	c.apply(attrs)
	c.updatedAt = updatedAt
	return c
}

func (c *SportsCategory) apply(attrs CategoryAttrs) {
	c.name = attrs.Name
	c.minAge = attrs.MinAge
	c.maxAge = attrs.MaxAge
	c.status = attrs.Status
	c.published = attrs.Published
	c.imageURL = attrs.ImageURL
	c.description = attrs.Description
	c.updatedAt = time.Now().UTC()
}

// Update replaces the mutable attributes with the merged, re-validated set.
func (c *SportsCategory) Update(attrs CategoryAttrs) {
	c.apply(attrs)
}

// ID returns the category identity.
func (c *SportsCategory) ID() uuid.UUID { return c.id }

// Name returns the unique, case-insensitively checked name.
func (c *SportsCategory) Name() string { return c.name }

// MinAge returns the lower bound of the age range.
func (c *SportsCategory) MinAge() int { return c.minAge }

// MaxAge returns the upper bound of the age range.
func (c *SportsCategory) MaxAge() int { return c.maxAge }

// Status returns the lifecycle status.
func (c *SportsCategory) Status() CategoryStatus { return c.status }

// Published reports whether the category is publicly visible.
func (c *SportsCategory) Published() bool { return c.published }

// ImageURL returns the optional image reference.
func (c *SportsCategory) ImageURL() *string { return c.imageURL }

// Description returns the optional description.
func (c *SportsCategory) Description() *string { return c.description }

// Usage returns the read-only referential aggregates.
func (c *SportsCategory) Usage() CategoryUsage { return c.usage }

// CreatedAt returns when the record was created.
func (c *SportsCategory) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the record was last updated.
func (c *SportsCategory) UpdatedAt() time.Time { return c.updatedAt }

// Activate transitions the category to ACTIVE.
func (c *SportsCategory) Activate() {
	c.status = CategoryStatusActive
	c.updatedAt = time.Now().UTC()
}

// Deactivate transitions the category to INACTIVE.
func (c *SportsCategory) Deactivate() {
	c.status = CategoryStatusInactive
	c.updatedAt = time.Now().UTC()
}

// CanHardDelete is the lifecycle guard for the delete path. Deletion is
// permitted only when the category is INACTIVE and both usage counts are
// zero; the rejection names the specific blocking condition.
func (c *SportsCategory) CanHardDelete() error {
	if c.status == CategoryStatusActive {
		return errors.NewStateTransitionError(
			"sports category",
			"cannot delete a category while its status is ACTIVE; deactivate it first",
		)
	}
	if c.usage.Total() > 0 {
		return errors.NewStateTransitionError(
			"sports category",
			fmt.Sprintf(
				"cannot delete a category with linked records (%d inscriptions, %d participants)",
				c.usage.Inscriptions, c.usage.Participants,
			),
		)
	}
	return nil
}
