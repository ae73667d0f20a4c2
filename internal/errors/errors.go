package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portal authentication subsystem
var (
	// Ticket validation errors. Transport failures and protocol failures are
	// deliberately collapsed into one sentinel: callers must not be able to
	// tell an unreachable CAS server from a rejected ticket.
	ErrValidationFailed = errors.New("ticket validation failed")

	// Cookie errors
	ErrMalformedCookie = errors.New("malformed session cookie")
	ErrBadSignature    = errors.New("bad cookie signature")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrUserAgentMismatch = errors.New("user agent mismatch")

	// SLO errors
	ErrMissingSessionIndex = errors.New("missing SessionIndex")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
