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

// Compile-time check: TemporaryPersonRepository implements the port.
var _ ports.TemporaryPersonRepository = (*TemporaryPersonRepository)(nil)

// personConstraintFields maps unique-constraint name fragments to the logical
// field reported upward on a conflict.
var personConstraintFields = map[string]string{
	"identification": "identification",
	"email":          "email",
}

// TemporaryPersonRepository persists temporary persons in PostgreSQL.
type TemporaryPersonRepository struct {
	pool *pgxpool.Pool
}

// NewTemporaryPersonRepository creates a repository on the given pool.
func NewTemporaryPersonRepository(pool *pgxpool.Pool) *TemporaryPersonRepository {
	return &TemporaryPersonRepository{pool: pool}
}

func (r *TemporaryPersonRepository) conn(ctx context.Context) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const personColumns = `id, first_name, last_name, identification, email, phone,
	person_type, birth_date, age, team, category, status, document_type_id,
	created_at, updated_at`

// Save inserts or updates by id. Unique-index rejections on identification
// and email surface as KindConflict with the field name attached.
func (r *TemporaryPersonRepository) Save(ctx context.Context, person *entities.TemporaryPerson) error {
	query := `
		INSERT INTO temporary_persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			identification = EXCLUDED.identification,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			person_type = EXCLUDED.person_type,
			birth_date = EXCLUDED.birth_date,
			age = EXCLUDED.age,
			team = EXCLUDED.team,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			document_type_id = EXCLUDED.document_type_id,
			updated_at = EXCLUDED.updated_at`

	_, err := r.conn(ctx).Exec(ctx, query,
		person.ID(),
		person.FirstName(),
		person.LastName(),
		person.Identification(),
		person.Email(),
		person.Phone(),
		string(person.PersonType()),
		person.BirthDate(),
		person.Age(),
		person.Team(),
		person.Category(),
		string(person.Status()),
		person.DocumentTypeID(),
		person.CreatedAt(),
		person.UpdatedAt(),
	)
	if err != nil {
		return classifyError(err, personConstraintFields)
	}
	return nil
}

// FindByID loads one record by id.
func (r *TemporaryPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TemporaryPerson, error) {
	query := `SELECT ` + personColumns + ` FROM temporary_persons WHERE id = $1`

	row := r.conn(ctx).QueryRow(ctx, query, id)
	person, err := scanPerson(row)
	if err != nil {
		return nil, classifyError(err, nil)
	}
	return person, nil
}

// List returns a filtered page plus the total matching count. Search matches
// names, identification and email case-insensitively.
func (r *TemporaryPersonRepository) List(ctx context.Context, filter ports.PersonFilter, offset, limit int) ([]*entities.TemporaryPerson, int, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(
			" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR identification ILIKE $%d OR email ILIKE $%d)",
			n, n, n, n,
		)
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PersonType != nil {
		args = append(args, string(*filter.PersonType))
		where += fmt.Sprintf(" AND person_type = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM temporary_persons` + where
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, classifyError(err, nil)
	}

	args = append(args, limit, offset)
	pageQuery := fmt.Sprintf(
		`SELECT `+personColumns+` FROM temporary_persons`+where+
			` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		len(args)-1, len(args),
	)

	rows, err := r.conn(ctx).Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, classifyError(err, nil)
	}
	defer rows.Close()

	persons := make([]*entities.TemporaryPerson, 0, limit)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, 0, classifyError(err, nil)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyError(err, nil)
	}
	return persons, total, nil
}

// Delete removes the record. Deleting a missing record is KindNotFound.
func (r *TemporaryPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM temporary_persons WHERE id = $1`, id)
	if err != nil {
		return classifyError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return ports.NewRepoError(ports.KindNotFound, "", pgx.ErrNoRows)
	}
	return nil
}

// ExistsByIdentification checks the unique field, optionally excluding one id.
func (r *TemporaryPersonRepository) ExistsByIdentification(ctx context.Context, identification string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "identification", identification, excludeID)
}

// ExistsByEmail checks the unique field, optionally excluding one id.
func (r *TemporaryPersonRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *TemporaryPersonRepository) exists(ctx context.Context, column, value string, excludeID *uuid.UUID) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS (
			SELECT 1 FROM temporary_persons
			WHERE %s = $1 AND ($2::uuid IS NULL OR id <> $2)
		)`, column,
	)

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, classifyError(err, nil)
	}
	return exists, nil
}

// Stats returns counts by status and by person type.
func (r *TemporaryPersonRepository) Stats(ctx context.Context) (*ports.PersonStats, error) {
	stats := &ports.PersonStats{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT status, person_type, COUNT(*) FROM temporary_persons GROUP BY status, person_type`)
	if err != nil {
		return nil, classifyError(err, nil)
	}
	defer rows.Close()

	for rows.Next() {
		var status, personType string
		var count int
		if err := rows.Scan(&status, &personType, &count); err != nil {
			return nil, classifyError(err, nil)
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByType[personType] += count
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, nil)
	}
	return stats, nil
}

func scanPerson(row pgx.Row) (*entities.TemporaryPerson, error) {
	var (
		id         uuid.UUID
		attrs      entities.PersonAttrs
		personType string
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(
		&id,
		&attrs.FirstName,
		&attrs.LastName,
		&attrs.Identification,
		&attrs.Email,
		&attrs.Phone,
		&personType,
		&attrs.BirthDate,
		&attrs.Age,
		&attrs.Team,
		&attrs.Category,
		&status,
		&attrs.DocumentTypeID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	attrs.PersonType = entities.PersonType(personType)
	attrs.Status = entities.PersonStatus(status)
	return entities.ReconstructTemporaryPerson(id, attrs, createdAt, updatedAt), nil
}
