package errs

import "errors"

// Sentinels shared by the usecase layer and the adapters of the venue API.
var (
	// Venue API errors
	ErrUpstreamRejected     = errors.New("venue api rejected the request")
	ErrUpstreamNotFound     = errors.New("venue api resource not found")
	ErrUpstreamConflict     = errors.New("venue api reported a conflict")
	ErrUpstreamUnauthorized = errors.New("venue api refused the credentials")
	ErrUpstreamUnavailable  = errors.New("venue api unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
