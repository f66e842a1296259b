package records

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrMissingRecord = errors.New("record id is required")

	// ErrIncompleteInput marks an add action whose required fields are
	// empty. Nothing is persisted; callers may ignore it silently.
	ErrIncompleteInput = errors.New("incomplete input")
	ErrInvalidInput    = errors.New("invalid input")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NotFoundError builds a domain sentinel that matches ErrNotFound.
func NotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// IncompleteError builds a domain sentinel that matches ErrIncompleteInput.
func IncompleteError(msg string) error {
	return &kindError{kind: ErrIncompleteInput, msg: msg}
}

// InvalidError builds a domain sentinel that matches ErrInvalidInput.
func InvalidError(msg string) error {
	return &kindError{kind: ErrInvalidInput, msg: msg}
}
