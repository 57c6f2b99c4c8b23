package errs

import "errors"

// Sentinel errors shared by the command and query sides; handlers map them to status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidWindow = errors.New("invalid window")
	ErrInvalidInput  = errors.New("invalid input")

	ErrNotFound = errors.New("not found")

	// Availability errors
	ErrDuplicateBlock = errors.New("availability block already exists")

	// Booking errors
	ErrConflict          = errors.New("slot no longer available, choose another")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrDuplicateRequest       = errors.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
