package ports

import "context"

// UnitOfWork runs a function inside one storage transaction: rollback when
// the function errors, commit otherwise. The transaction travels in the
// context handed to fn; repository calls inside fn must use that context.
//
// Note the inherent check/use race of the uniqueness pre-check: the
// transaction narrows but does not close it. The storage constraints remain
// the authoritative guarantee.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
