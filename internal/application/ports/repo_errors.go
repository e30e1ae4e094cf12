package ports

import (
	"errors"
	"fmt"
)

// RepoErrorKind is the tagged variant of persistence failures. The port
// produces these so the core never pattern-matches storage-engine error
// codes.
type RepoErrorKind int

const (
	// KindUnknown is any failure the adapter could not classify.
	KindUnknown RepoErrorKind = iota
	// KindConflict is a unique-constraint rejection.
	KindConflict
	// KindNotFound means the targeted row does not exist.
	KindNotFound
	// KindTransient is a retryable failure (serialization, connection).
	KindTransient
)

// String returns the kind label.
func (k RepoErrorKind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// RepoError is the typed persistence-error result produced by repository
// implementations. Field names the offending column for conflicts.
type RepoError struct {
	Kind  RepoErrorKind
	Field string
	Err   error
}

// Error implements the error interface.
func (e *RepoError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("repository %s on %s: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("repository %s: %v", e.Kind, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *RepoError) Unwrap() error {
	return e.Err
}

// NewRepoError creates a classified repository error.
func NewRepoError(kind RepoErrorKind, field string, err error) *RepoError {
	return &RepoError{Kind: kind, Field: field, Err: err}
}

// AsRepoError extracts a RepoError from an error chain.
func AsRepoError(err error) (*RepoError, bool) {
	var re *RepoError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsRepoConflict reports whether err is a unique-constraint rejection and
// returns the offending field.
func IsRepoConflict(err error) (string, bool) {
	if re, ok := AsRepoError(err); ok && re.Kind == KindConflict {
		return re.Field, true
	}
	return "", false
}

// IsRepoNotFound reports whether err means the targeted row is absent.
func IsRepoNotFound(err error) bool {
	re, ok := AsRepoError(err)
	return ok && re.Kind == KindNotFound
}
