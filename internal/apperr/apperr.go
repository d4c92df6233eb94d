// Package apperr defines the tagged error type carried between the data
// access layer and the HTTP boundary, and the single point where raw store
// errors are classified into it.
package apperr

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Error is an error with a fixed HTTP status and client-facing message.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

var (
	// ErrNotFound covers well-formed identifiers that reference no row.
	ErrNotFound = &Error{Status: http.StatusNotFound, Msg: "Not Found"}

	// ErrBadRequest covers caller-supplied values that fail validation or
	// store integrity checks.
	ErrBadRequest = &Error{Status: http.StatusBadRequest, Msg: "Bad Request"}
)

// Postgres error classes reclassified to Bad Request at the boundary.
const (
	pqInvalidTextRepresentation = "22P02"
	pqNotNullViolation          = "23502"
	pqForeignKeyViolation       = "23503"
)

// FromStore classifies an error coming out of the database. Missing rows
// become ErrNotFound; integrity violations caused by bad input become
// ErrBadRequest; anything else passes through unchanged and will surface as
// an internal error at the HTTP layer. Errors that are already *Error are
// returned as-is.
func FromStore(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqInvalidTextRepresentation, pqNotNullViolation, pqForeignKeyViolation:
			return ErrBadRequest
		}
	}

	return err
}

// Status returns the HTTP status for err, defaulting to 500 for anything
// that is not a tagged *Error.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message for err. Untagged errors never
// leak their text to the client.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	return "Internal Server Error"
}
