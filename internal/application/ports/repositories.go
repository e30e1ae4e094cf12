// Package ports defines the interfaces the application core depends on.
// The infrastructure layer provides the implementations; the core never
// imports a storage driver.
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/domain/entities"
)

// PersonFilter narrows a person listing. Nil members mean "no filter";
// Search matches names, identification and email case-insensitively.
type PersonFilter struct {
	Search     string
	Status     *entities.PersonStatus
	PersonType *entities.PersonType
}

// PersonStats are the read-only aggregates behind the stats operation.
type PersonStats struct {
	Total    int
	ByStatus map[string]int
	ByType   map[string]int
}

// TemporaryPersonRepository is the persistence contract for temporary
// persons. Implementations must enforce uniqueness of identification and
// email authoritatively; the application-level pre-check only produces the
// friendlier message in the common case.
type TemporaryPersonRepository interface {
	// Save inserts or updates by id. A unique-constraint rejection comes
	// back as a RepoError with KindConflict naming the offending field.
	Save(ctx context.Context, person *entities.TemporaryPerson) error

	// FindByID loads one record; RepoError KindNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.TemporaryPerson, error)

	// List returns a page of records plus the total matching count.
	List(ctx context.Context, filter PersonFilter, offset, limit int) ([]*entities.TemporaryPerson, int, error)

	// Delete removes the record irreversibly. The lifecycle guard runs
	// before this is called.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByIdentification checks the unique field, excluding the record
	// itself during updates.
	ExistsByIdentification(ctx context.Context, identification string, excludeID *uuid.UUID) (bool, error)

	// ExistsByEmail checks the unique field, excluding the record itself
	// during updates.
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)

	// Stats returns counts by status and by person type.
	Stats(ctx context.Context) (*PersonStats, error)
}

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Search string
	Status *entities.CategoryStatus
}

// SportsCategoryRepository is the persistence contract for sports
// categories. FindByID populates the usage aggregates that guard deletion.
type SportsCategoryRepository interface {
	Save(ctx context.Context, category *entities.SportsCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.SportsCategory, error)
	List(ctx context.Context, filter CategoryFilter, offset, limit int) ([]*entities.SportsCategory, int, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks the name case-insensitively, excluding the record
	// itself during updates.
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

// DocumentTypeRepository resolves the external document type lookup.
type DocumentTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.DocumentType, error)
	List(ctx context.Context) ([]*entities.DocumentType, error)
}
