package errs

import "errors"

// Sentinels shared between the usecase and handler layers.
var (
	// Workflow outcomes
	ErrValidation  = errors.New("reservation request is invalid")
	ErrNoCapacity  = errors.New("no tables available for the requested slot")
	ErrPersistence = errors.New("reservation could not be persisted")

	// Confirmation hand-off
	ErrConfirmationNotFound = errors.New("pending confirmation not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCodeExhausted           = errors.New("could not allocate a unique reservation code")
)
