package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the base sentinel for all missing-entity errors.
	ErrNotFound = errors.New("not found")

	ErrCompanyNotFound  = fmt.Errorf("company %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned when a signup races or repeats an email
	// already registered for the same principal type.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidResetToken covers wrong, already-redeemed and expired reset
	// tickets indistinguishably.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrMissingFields = errors.New("missing required fields")
)

// Session token verification failures. All wrap ErrTokenInvalid; the guard
// reports only the umbrella to clients so the failure mode is not leaked.
var (
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenMalformed    = fmt.Errorf("malformed: %w", ErrTokenInvalid)
	ErrTokenBadSignature = fmt.Errorf("bad signature: %w", ErrTokenInvalid)
	ErrTokenExpired      = fmt.Errorf("expired: %w", ErrTokenInvalid)
)

// MissingFieldsError lists every absent required field of a request, not just
// the first one encountered.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Please fill all required details: " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrMissingFields) match.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
