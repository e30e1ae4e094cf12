package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
)

// Compile-time check: DocumentTypeRepository implements the port.
var _ ports.DocumentTypeRepository = (*DocumentTypeRepository)(nil)

// DocumentTypeRepository reads the document type catalog. The catalog is
// seeded by migrations and read-only at runtime.
type DocumentTypeRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentTypeRepository creates a repository on the given pool.
func NewDocumentTypeRepository(pool *pgxpool.Pool) *DocumentTypeRepository {
	return &DocumentTypeRepository{pool: pool}
}

func (r *DocumentTypeRepository) conn(ctx context.Context) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// FindByID resolves one document type by id.
func (r *DocumentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.DocumentType, error) {
	var name string
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT name FROM document_types WHERE id = $1`, id).Scan(&name)
	if err != nil {
		return nil, classifyError(err, nil)
	}
	return entities.ReconstructDocumentType(id, name), nil
}

// List returns the full catalog ordered by name.
func (r *DocumentTypeRepository) List(ctx context.Context) ([]*entities.DocumentType, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name FROM document_types ORDER BY name ASC`)
	if err != nil {
		return nil, classifyError(err, nil)
	}
	defer rows.Close()

	var types []*entities.DocumentType
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, classifyError(err, nil)
		}
		types = append(types, entities.ReconstructDocumentType(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, nil)
	}
	return types, nil
}
