package fintrack

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by [Store.Remove] when no transaction has the given id.
var ErrNotFound = errors.New("transaction not found")

// Field identifies the input field a ValidationError is about.
type Field string

const (
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldKind        Field = "type"
)

// ValidationError reports the first invalid field of a transaction input.
// Nothing was recorded when it is returned.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// StorageError reports a failure of the underlying storage.
//
// When returned by [Store.Add] or [Store.Remove], the in-memory change has been
// applied anyway: memory and storage diverge until the next successful write.
type StorageError struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
