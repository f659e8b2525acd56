package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrInvalid  = errors.New("invalid")
	// ErrUnavailable marks repository/transport failures. The reporting
	// engine performs no retries itself; retry policy lives below it.
	ErrUnavailable = errors.New("data_unavailable")
)
