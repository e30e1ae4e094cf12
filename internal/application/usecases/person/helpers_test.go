package person

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// fakePersonRepo implements ports.TemporaryPersonRepository with overridable
// function fields; unset fields fall back to inert defaults.
type fakePersonRepo struct {
	SaveFn                   func(ctx context.Context, p *entities.TemporaryPerson) error
	FindByIDFn               func(ctx context.Context, id uuid.UUID) (*entities.TemporaryPerson, error)
	ListFn                   func(ctx context.Context, f ports.PersonFilter, offset, limit int) ([]*entities.TemporaryPerson, int, error)
	DeleteFn                 func(ctx context.Context, id uuid.UUID) error
	ExistsByIdentificationFn func(ctx context.Context, v string, excl *uuid.UUID) (bool, error)
	ExistsByEmailFn          func(ctx context.Context, v string, excl *uuid.UUID) (bool, error)
	StatsFn                  func(ctx context.Context) (*ports.PersonStats, error)

	saved   []*entities.TemporaryPerson
	deleted []uuid.UUID
}

func (f *fakePersonRepo) Save(ctx context.Context, p *entities.TemporaryPerson) error {
	f.saved = append(f.saved, p)
	if f.SaveFn != nil {
		return f.SaveFn(ctx, p)
	}
	return nil
}

func (f *fakePersonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.TemporaryPerson, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, ports.NewRepoError(ports.KindNotFound, "", pgx.ErrNoRows)
}

func (f *fakePersonRepo) List(ctx context.Context, filter ports.PersonFilter, offset, limit int) ([]*entities.TemporaryPerson, int, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakePersonRepo) ExistsByIdentification(ctx context.Context, v string, excl *uuid.UUID) (bool, error) {
	if f.ExistsByIdentificationFn != nil {
		return f.ExistsByIdentificationFn(ctx, v, excl)
	}
	return false, nil
}

func (f *fakePersonRepo) ExistsByEmail(ctx context.Context, v string, excl *uuid.UUID) (bool, error) {
	if f.ExistsByEmailFn != nil {
		return f.ExistsByEmailFn(ctx, v, excl)
	}
	return false, nil
}

func (f *fakePersonRepo) Stats(ctx context.Context) (*ports.PersonStats, error) {
	if f.StatsFn != nil {
		return f.StatsFn(ctx)
	}
	return &ports.PersonStats{ByStatus: map[string]int{}, ByType: map[string]int{}}, nil
}

// fakeDocTypeRepo resolves every id unless told otherwise.
type fakeDocTypeRepo struct {
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*entities.DocumentType, error)
}

func (f *fakeDocTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.DocumentType, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return entities.ReconstructDocumentType(id, "National ID"), nil
}

func (f *fakeDocTypeRepo) List(ctx context.Context) ([]*entities.DocumentType, error) {
	return nil, nil
}

// fakeUOW runs the unit directly, no transaction.
type fakeUOW struct{}

func (fakeUOW) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func storedPerson(t *testing.T, attrs entities.PersonAttrs) *entities.TemporaryPerson {
	t.Helper()
	p, err := entities.NewTemporaryPerson(attrs)
	require.NoError(t, err)
	return p
}

func validationInputWithIdent(ident string) validation.PersonInput {
	return validation.PersonInput{
		FirstName:      "Juan",
		LastName:       "Pérez",
		PersonType:     "ATHLETE",
		Identification: strp(ident),
	}
}
