package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
)

// Compile-time check: SportsCategoryRepository implements the port.
var _ ports.SportsCategoryRepository = (*SportsCategoryRepository)(nil)

var categoryConstraintFields = map[string]string{
	"name": "name",
}

// SportsCategoryRepository persists sports categories in PostgreSQL. Reads
// hydrate the usage aggregates from the referencing tables in the same
// statement, so the deletion guard always sees counts consistent with the
// surrounding transaction.
type SportsCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewSportsCategoryRepository creates a repository on the given pool.
func NewSportsCategoryRepository(pool *pgxpool.Pool) *SportsCategoryRepository {
	return &SportsCategoryRepository{pool: pool}
}

func (r *SportsCategoryRepository) conn(ctx context.Context) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const categorySelect = `
	SELECT c.id, c.name, c.min_age, c.max_age, c.status, c.published,
		c.image_url, c.description, c.created_at, c.updated_at,
		(SELECT COUNT(*) FROM inscriptions i WHERE i.category_id = c.id),
		(SELECT COUNT(*) FROM category_participants p WHERE p.category_id = c.id)
	FROM sports_categories c`

// Save inserts or updates by id. The unique index on LOWER(name) comes back
// as KindConflict on the name field.
func (r *SportsCategoryRepository) Save(ctx context.Context, category *entities.SportsCategory) error {
	query := `
		INSERT INTO sports_categories
			(id, name, min_age, max_age, status, published, image_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			min_age = EXCLUDED.min_age,
			max_age = EXCLUDED.max_age,
			status = EXCLUDED.status,
			published = EXCLUDED.published,
			image_url = EXCLUDED.image_url,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`

	_, err := r.conn(ctx).Exec(ctx, query,
		category.ID(),
		category.Name(),
		category.MinAge(),
		category.MaxAge(),
		string(category.Status()),
		category.Published(),
		category.ImageURL(),
		category.Description(),
		category.CreatedAt(),
		category.UpdatedAt(),
	)
	if err != nil {
		return classifyError(err, categoryConstraintFields)
	}
	return nil
}

// FindByID loads one category with its usage aggregates.
func (r *SportsCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.SportsCategory, error) {
	row := r.conn(ctx).QueryRow(ctx, categorySelect+` WHERE c.id = $1`, id)
	category, err := scanCategory(row)
	if err != nil {
		return nil, classifyError(err, nil)
	}
	return category, nil
}

// List returns a filtered page plus the total matching count.
func (r *SportsCategoryRepository) List(ctx context.Context, filter ports.CategoryFilter, offset, limit int) ([]*entities.SportsCategory, int, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.description ILIKE $%d)", len(args), len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += fmt.Sprintf(" AND c.status = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM sports_categories c` + where
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, classifyError(err, nil)
	}

	args = append(args, limit, offset)
	pageQuery := fmt.Sprintf(
		categorySelect+where+` ORDER BY c.name ASC LIMIT $%d OFFSET $%d`,
		len(args)-1, len(args),
	)

	rows, err := r.conn(ctx).Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, classifyError(err, nil)
	}
	defer rows.Close()

	categories := make([]*entities.SportsCategory, 0, limit)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, classifyError(err, nil)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyError(err, nil)
	}
	return categories, total, nil
}

// Delete removes the category. The lifecycle and usage guards run before
// this is called; foreign-key rejections still classify defensively.
func (r *SportsCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM sports_categories WHERE id = $1`, id)
	if err != nil {
		return classifyError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return ports.NewRepoError(ports.KindNotFound, "", pgx.ErrNoRows)
	}
	return nil
}

// ExistsByName checks the name case-insensitively, optionally excluding one id.
func (r *SportsCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sports_categories
			WHERE LOWER(name) = LOWER($1) AND ($2::uuid IS NULL OR id <> $2)
		)`

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, classifyError(err, nil)
	}
	return exists, nil
}

func scanCategory(row pgx.Row) (*entities.SportsCategory, error) {
	var (
		id        uuid.UUID
		attrs     entities.CategoryAttrs
		status    string
		usage     entities.CategoryUsage
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&id,
		&attrs.Name,
		&attrs.MinAge,
		&attrs.MaxAge,
		&status,
		&attrs.Published,
		&attrs.ImageURL,
		&attrs.Description,
		&createdAt,
		&updatedAt,
		&usage.Inscriptions,
		&usage.Participants,
	)
	if err != nil {
		return nil, err
	}
	attrs.Status = entities.CategoryStatus(status)
	return entities.ReconstructSportsCategory(id, attrs, usage, createdAt, updatedAt), nil
}
