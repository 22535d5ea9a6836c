// Package common defines sentinel errors and small helpers shared by the
// server and the client shell. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// ErrorValidation marks missing or malformed input the caller can correct.
	ErrorValidation = errors.New("validation error")

	// ErrorNotFound marks a referenced entity that does not exist
	// (or is not visible to the caller).
	ErrorNotFound = errors.New("not found")

	// ErrorUnauthorized marks a credential mismatch.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorConflict marks a uniqueness violation.
	ErrorConflict = errors.New("already exists")

	// ErrorInternal marks store or transport failures. Its text is the only
	// thing clients ever see for such failures.
	ErrorInternal = errors.New("internal error")
)
