package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clubarena/rosterhub/internal/application/ports"
)

// txKey carries the active transaction in the context. The UnitOfWork puts
// it there; repositories pick it up transparently.
type txKey struct{}

func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func extractTx(ctx context.Context) pgx.Tx {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// querier abstracts over the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgreSQL error codes, per the wire spec.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// classifyError maps a storage failure onto the typed RepoError variant.
// constraintFields maps constraint-name fragments to the offending logical
// field, so the core receives a field name instead of a pg code.
func classifyError(err error, constraintFields map[string]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.NewRepoError(ports.KindNotFound, "", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			field := ""
			for fragment, f := range constraintFields {
				if strings.Contains(pgErr.ConstraintName, fragment) {
					field = f
					break
				}
			}
			return ports.NewRepoError(ports.KindConflict, field, err)
		case pgErr.Code == pgSerializationFailure,
			pgErr.Code == pgDeadlockDetected,
			strings.HasPrefix(pgErr.Code, "08"): // connection exception class
			return ports.NewRepoError(ports.KindTransient, "", err)
		}
	}

	return ports.NewRepoError(ports.KindUnknown, "", err)
}
