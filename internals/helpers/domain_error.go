package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ErrorKind string

const (
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindConflict   ErrorKind = "CONFLICT"
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindStorage    ErrorKind = "STORAGE_ERROR"
)

// Sentinels for errors.Is; a *DomainError matches the sentinel of its kind.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage error")
)

// DomainError is the only error type the repositories return.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func (e *DomainError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrStorage:
		return e.Kind == KindStorage
	}
	return false
}

func NotFound(format string, args ...any) error {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &DomainError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Storage(op string, err error) error {
	return &DomainError{Kind: KindStorage, Message: op, Err: err}
}

// StoreMessages carries the domain messages used when a raw store error is classified.
type StoreMessages struct {
	Op         string // operation label for opaque storage errors
	NotFound   string // primary row missing
	Conflict   string // unique / primary key violation
	MissingRef string // foreign key violation
}

// MapStoreError turns a gorm / driver error into a DomainError.
// Errors that are already domain errors pass through untouched.
func MapStoreError(err error, m StoreMessages) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && m.NotFound != "":
		return NotFound("%s", m.NotFound)
	case IsUniqueViolation(err) && m.Conflict != "":
		return Conflict("%s", m.Conflict)
	case IsForeignKeyViolation(err) && m.MissingRef != "":
		return NotFound("%s", m.MissingRef)
	}
	return Storage(m.Op, err)
}

// --- PG error mapping (pgx/libpq) ---
func pgCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == "23505" {
		return true
	}
	// other dialects: cek substring
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == "23503" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
