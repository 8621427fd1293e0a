package errs

import "errors"

// Cross-layer sentinel errors. Usecase packages mark their own errors with these
// so the handler layer can map them without importing every package.
var (
	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// State errors
	ErrConflict = errors.New("conflict")
)
