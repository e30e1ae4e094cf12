// Integration tests for the PostgreSQL repositories with testcontainers.
//
// Requirements:
//   - Docker running
//
// Run with:
//
//	go test ./internal/infrastructure/persistence/postgres/...
package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
)

type testContainer struct {
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
}

// Shared container for all tests; starting one per test is too slow.
var sharedTestContainer *testContainer

func setupSharedTestDB(t *testing.T) *testContainer {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	if sharedTestContainer != nil {
		cleanupTables(t, sharedTestContainer.pool)
		return sharedTestContainer
	}

	ctx := context.Background()
	migrationsPath := filepath.Join("..", "..", "..", "..", "migrations")

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "000001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	require.NoError(t, err)
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	sharedTestContainer = &testContainer{container: container, pool: pool}
	return sharedTestContainer
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	// Referencing tables first, document_types keeps its seed rows.
	tables := []string{"category_participants", "inscriptions", "temporary_persons", "sports_categories"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Logf("Warning: failed to cleanup %s: %v", table, err)
		}
	}
}

func newPerson(t *testing.T, attrs entities.PersonAttrs) *entities.TemporaryPerson {
	t.Helper()
	if attrs.FirstName == "" {
		attrs.FirstName = "Juan"
	}
	if attrs.LastName == "" {
		attrs.LastName = "Pérez"
	}
	if attrs.PersonType == "" {
		attrs.PersonType = entities.PersonTypeAthlete
	}
	p, err := entities.NewTemporaryPerson(attrs)
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }

func TestTemporaryPersonRepository_Integration_Save(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewTemporaryPersonRepository(tc.pool)
	ctx := context.Background()

	t.Run("SaveAndReload", func(t *testing.T) {
		person := newPerson(t, entities.PersonAttrs{
			Identification: strPtr("1017234567"),
			Email:          strPtr("juan.perez@club.example"),
			Team:           strPtr("Tigres"),
		})
		require.NoError(t, repo.Save(ctx, person))

		loaded, err := repo.FindByID(ctx, person.ID())
		require.NoError(t, err)
		assert.Equal(t, person.FirstName(), loaded.FirstName())
		assert.Equal(t, entities.PersonStatusActive, loaded.Status())
		require.NotNil(t, loaded.Identification())
		assert.Equal(t, "1017234567", *loaded.Identification())
	})

	t.Run("UpsertKeepsIdentity", func(t *testing.T) {
		person := newPerson(t, entities.PersonAttrs{
			Identification: strPtr("1017000001"),
		})
		require.NoError(t, repo.Save(ctx, person))

		person.Deactivate()
		require.NoError(t, repo.Save(ctx, person))

		loaded, err := repo.FindByID(ctx, person.ID())
		require.NoError(t, err)
		assert.Equal(t, entities.PersonStatusInactive, loaded.Status())
	})

	t.Run("DuplicateIdentification", func(t *testing.T) {
		first := newPerson(t, entities.PersonAttrs{Identification: strPtr("1017999999")})
		require.NoError(t, repo.Save(ctx, first))

		second := newPerson(t, entities.PersonAttrs{Identification: strPtr("1017999999")})
		err := repo.Save(ctx, second)
		require.Error(t, err)

		re, ok := ports.AsRepoError(err)
		require.True(t, ok)
		assert.Equal(t, ports.KindConflict, re.Kind)
		assert.Equal(t, "identification", re.Field)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		first := newPerson(t, entities.PersonAttrs{Email: strPtr("dup@club.example")})
		require.NoError(t, repo.Save(ctx, first))

		second := newPerson(t, entities.PersonAttrs{Email: strPtr("dup@club.example")})
		err := repo.Save(ctx, second)
		require.Error(t, err)

		re, ok := ports.AsRepoError(err)
		require.True(t, ok)
		assert.Equal(t, ports.KindConflict, re.Kind)
		assert.Equal(t, "email", re.Field)
	})

	t.Run("TwoRecordsWithoutOptionalFields", func(t *testing.T) {
		// The partial unique indexes must not collide on NULL.
		require.NoError(t, repo.Save(ctx, newPerson(t, entities.PersonAttrs{})))
		require.NoError(t, repo.Save(ctx, newPerson(t, entities.PersonAttrs{})))
	})
}

func TestTemporaryPersonRepository_Integration_Exists(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewTemporaryPersonRepository(tc.pool)
	ctx := context.Background()

	person := newPerson(t, entities.PersonAttrs{
		Identification: strPtr("1017111111"),
		Email:          strPtr("exists@club.example"),
	})
	require.NoError(t, repo.Save(ctx, person))

	t.Run("Taken", func(t *testing.T) {
		exists, err := repo.ExistsByIdentification(ctx, "1017111111", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("SelfExcluded", func(t *testing.T) {
		id := person.ID()
		exists, err := repo.ExistsByIdentification(ctx, "1017111111", &id)
		require.NoError(t, err)
		assert.False(t, exists, "the record does not conflict with itself")
	})

	t.Run("EmailFree", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "free@club.example", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTemporaryPersonRepository_Integration_ListAndStats(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewTemporaryPersonRepository(tc.pool)
	ctx := context.Background()

	seed := []entities.PersonAttrs{
		{FirstName: "Ana", LastName: "García", PersonType: entities.PersonTypeAthlete, Team: strPtr("Tigres")},
		{FirstName: "Luis", LastName: "Martínez", PersonType: entities.PersonTypeTrainer},
		{FirstName: "Sofía", LastName: "López", PersonType: entities.PersonTypeParticipant},
	}
	for _, attrs := range seed {
		require.NoError(t, repo.Save(ctx, newPerson(t, attrs)))
	}
	inactive := newPerson(t, entities.PersonAttrs{
		FirstName: "Pedro", LastName: "Ruiz", PersonType: entities.PersonTypeTrainer,
	})
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))

	t.Run("FilterByType", func(t *testing.T) {
		athlete := entities.PersonTypeAthlete
		persons, total, err := repo.List(ctx, ports.PersonFilter{PersonType: &athlete}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, persons, 1)
		assert.Equal(t, "Ana", persons[0].FirstName())
	})

	t.Run("SearchMatchesName", func(t *testing.T) {
		_, total, err := repo.List(ctx, ports.PersonFilter{Search: "mart"}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("FilterByStatus", func(t *testing.T) {
		status := entities.PersonStatusInactive
		_, total, err := repo.List(ctx, ports.PersonFilter{Status: &status}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 3, stats.ByStatus["ACTIVE"])
		assert.Equal(t, 1, stats.ByStatus["INACTIVE"])
		assert.Equal(t, 1, stats.ByType["ATHLETE"])
		assert.Equal(t, 2, stats.ByType["TRAINER"])
	})
}

func TestTemporaryPersonRepository_Integration_Delete(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewTemporaryPersonRepository(tc.pool)
	ctx := context.Background()

	t.Run("DeleteFreesUniqueValues", func(t *testing.T) {
		person := newPerson(t, entities.PersonAttrs{Identification: strPtr("1017222222")})
		require.NoError(t, repo.Save(ctx, person))
		require.NoError(t, repo.Delete(ctx, person.ID()))

		// The identification is reusable after a hard delete.
		replacement := newPerson(t, entities.PersonAttrs{Identification: strPtr("1017222222")})
		assert.NoError(t, repo.Save(ctx, replacement))
	})

	t.Run("NotFound", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		require.Error(t, err)
		re, ok := ports.AsRepoError(err)
		require.True(t, ok)
		assert.Equal(t, ports.KindNotFound, re.Kind)
	})
}

func TestSportsCategoryRepository_Integration(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewSportsCategoryRepository(tc.pool)
	ctx := context.Background()

	newCategory := func(name string) *entities.SportsCategory {
		c, err := entities.NewSportsCategory(entities.CategoryAttrs{
			Name: name, MinAge: 13, MaxAge: 15,
		})
		require.NoError(t, err)
		return c
	}

	t.Run("SaveAndReload", func(t *testing.T) {
		category := newCategory("Sub-15")
		require.NoError(t, repo.Save(ctx, category))

		loaded, err := repo.FindByID(ctx, category.ID())
		require.NoError(t, err)
		assert.Equal(t, "Sub-15", loaded.Name())
		assert.Equal(t, entities.CategoryUsage{}, loaded.Usage())
	})

	t.Run("NameUniqueIgnoresCase", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newCategory("Juvenil")))

		err := repo.Save(ctx, newCategory("JUVENIL"))
		require.Error(t, err)
		re, ok := ports.AsRepoError(err)
		require.True(t, ok)
		assert.Equal(t, ports.KindConflict, re.Kind)
		assert.Equal(t, "name", re.Field)

		exists, err := repo.ExistsByName(ctx, "juvenil", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("UsageCountsFromReferencingRows", func(t *testing.T) {
		category := newCategory("Infantil")
		require.NoError(t, repo.Save(ctx, category))

		for i := 0; i < 3; i++ {
			_, err := tc.pool.Exec(ctx,
				"INSERT INTO inscriptions (id, category_id) VALUES ($1, $2)",
				uuid.New(), category.ID())
			require.NoError(t, err)
		}
		_, err := tc.pool.Exec(ctx,
			"INSERT INTO category_participants (id, category_id) VALUES ($1, $2)",
			uuid.New(), category.ID())
		require.NoError(t, err)

		loaded, err := repo.FindByID(ctx, category.ID())
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.Usage().Inscriptions)
		assert.Equal(t, 1, loaded.Usage().Participants)
	})
}

func TestDocumentTypeRepository_Integration(t *testing.T) {
	tc := setupSharedTestDB(t)
	repo := NewDocumentTypeRepository(tc.pool)
	ctx := context.Background()

	types, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3, "the migration seeds the document types")

	found, err := repo.FindByID(ctx, types[0].ID())
	require.NoError(t, err)
	assert.Equal(t, types[0].Name(), found.Name())

	_, err = repo.FindByID(ctx, uuid.New())
	require.Error(t, err)
	re, ok := ports.AsRepoError(err)
	require.True(t, ok)
	assert.Equal(t, ports.KindNotFound, re.Kind)
}

func TestUnitOfWork_Integration(t *testing.T) {
	tc := setupSharedTestDB(t)
	uow := NewUnitOfWork(tc.pool)
	repo := NewTemporaryPersonRepository(tc.pool)
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		person := newPerson(t, entities.PersonAttrs{Email: strPtr("commit@club.example")})
		err := uow.Execute(ctx, func(txCtx context.Context) error {
			return repo.Save(txCtx, person)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, person.ID())
		assert.NoError(t, err)
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		person := newPerson(t, entities.PersonAttrs{Email: strPtr("rollback@club.example")})
		err := uow.Execute(ctx, func(txCtx context.Context) error {
			if err := repo.Save(txCtx, person); err != nil {
				return err
			}
			return fmt.Errorf("intentional failure")
		})
		require.Error(t, err)

		_, err = repo.FindByID(ctx, person.ID())
		require.Error(t, err, "the write must not survive the rollback")
		re, ok := ports.AsRepoError(err)
		require.True(t, ok)
		assert.Equal(t, ports.KindNotFound, re.Kind)
	})
}
