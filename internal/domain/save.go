package domain

// SaveStatus discriminates the outcome of a create or update.
type SaveStatus int

const (
	SaveOK SaveStatus = iota + 1
	SaveValidationConflict
	SaveLockConflict
	SavePersistenceError
)

// String implements fmt.Stringer.
func (s SaveStatus) String() string {
	switch s {
	case SaveOK:
		return "ok"
	case SaveValidationConflict:
		return "validation_conflict"
	case SaveLockConflict:
		return "lock_conflict"
	case SavePersistenceError:
		return "persistence_error"
	default:
		return "unknown"
	}
}

// SaveResult is the persistence collaborator's answer to a create or update.
// Object is set for SaveOK, Fields for SaveValidationConflict and Err for the
// two failure kinds.
type SaveResult[T any] struct {
	Status SaveStatus
	Object T
	Fields map[string]string
	Err    error
}

// Saved reports a successful write of obj.
func Saved[T any](obj T) SaveResult[T] {
	return SaveResult[T]{Status: SaveOK, Object: obj}
}

// ValidationConflict reports field-level constraint violations detected by
// the store (unique keys and similar).
func ValidationConflict[T any](fields map[string]string) SaveResult[T] {
	return SaveResult[T]{Status: SaveValidationConflict, Fields: fields}
}

// LockConflict reports an optimistic locking failure.
func LockConflict[T any](err error) SaveResult[T] {
	return SaveResult[T]{Status: SaveLockConflict, Err: err}
}

// PersistenceFailure reports a recoverable storage failure.
func PersistenceFailure[T any](err error) SaveResult[T] {
	return SaveResult[T]{Status: SavePersistenceError, Err: err}
}

// OK reports whether the write succeeded.
func (r SaveResult[T]) OK() bool {
	return r.Status == SaveOK
}
