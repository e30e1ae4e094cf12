package category

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
)

// fakeCategoryRepo implements ports.SportsCategoryRepository with overridable
// function fields.
type fakeCategoryRepo struct {
	SaveFn         func(ctx context.Context, c *entities.SportsCategory) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entities.SportsCategory, error)
	ListFn         func(ctx context.Context, f ports.CategoryFilter, offset, limit int) ([]*entities.SportsCategory, int, error)
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	ExistsByNameFn func(ctx context.Context, name string, excl *uuid.UUID) (bool, error)

	saved   []*entities.SportsCategory
	deleted []uuid.UUID
}

func (f *fakeCategoryRepo) Save(ctx context.Context, c *entities.SportsCategory) error {
	f.saved = append(f.saved, c)
	if f.SaveFn != nil {
		return f.SaveFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.SportsCategory, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, ports.NewRepoError(ports.KindNotFound, "", pgx.ErrNoRows)
}

func (f *fakeCategoryRepo) List(ctx context.Context, filter ports.CategoryFilter, offset, limit int) ([]*entities.SportsCategory, int, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCategoryRepo) ExistsByName(ctx context.Context, name string, excl *uuid.UUID) (bool, error) {
	if f.ExistsByNameFn != nil {
		return f.ExistsByNameFn(ctx, name, excl)
	}
	return false, nil
}

// fakeUOW runs the unit directly, no transaction.
type fakeUOW struct{}

func (fakeUOW) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }

func storedCategory(t *testing.T, status entities.CategoryStatus, usage entities.CategoryUsage) *entities.SportsCategory {
	t.Helper()
	c := entities.ReconstructSportsCategory(uuid.New(), entities.CategoryAttrs{
		Name:   "Sub-15",
		MinAge: 13,
		MaxAge: 15,
		Status: status,
	}, usage, time.Now().UTC(), time.Now().UTC())
	require.NotNil(t, c)
	return c
}

func repoWith(c *entities.SportsCategory) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		FindByIDFn: func(_ context.Context, id uuid.UUID) (*entities.SportsCategory, error) {
			if id == c.ID() {
				return c, nil
			}
			return nil, ports.NewRepoError(ports.KindNotFound, "", pgx.ErrNoRows)
		},
	}
}
