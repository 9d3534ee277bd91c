package repository

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound signals that a lookup matched no row. Absence is an expected
// outcome (the HTTP layer turns it into a 404), so it stays a plain sentinel
// and never goes through the classifier below.
var ErrNotFound = errors.New("not found")

// Kind labels a classified store failure.
type Kind string

const (
	KindDuplicate  Kind = "duplicate"
	KindConstraint Kind = "constraint"
	KindInternal   Kind = "internal"
)

// StoreError is a database failure classified for the HTTP boundary: which
// family it belongs to, the status and message the API may expose, and the
// original cause, kept reachable through Unwrap so nothing about the failure
// is lost on the way up.
type StoreError struct {
	Kind   Kind
	Status int
	Public string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Public
	}
	return fmt.Sprintf("%s: %v", e.Public, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// MapPgError classifies a store failure by the Postgres error code alone,
// never by message text. The mapping is total: a code I do not recognize, and
// any error that is not a *pgconn.PgError at all, lands in the internal arm
// rather than passing through unclassified.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &StoreError{
				Kind:   KindDuplicate,
				Status: http.StatusConflict,
				Public: "player already exists",
				Err:    err,
			}
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return &StoreError{
				Kind:   KindConstraint,
				Status: http.StatusBadRequest,
				Public: "invalid player data (constraint violation)",
				Err:    err,
			}
		}
	}
	return &StoreError{
		Kind:   KindInternal,
		Status: http.StatusInternalServerError,
		Public: "database error",
		Err:    err,
	}
}
