package github

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an API failure.
type ErrorKind int

const (
	// ErrKindAPI is the generic bucket for unclassified HTTP failures.
	ErrKindAPI ErrorKind = iota
	// ErrKindNotFound is an HTTP 404.
	ErrKindNotFound
	// ErrKindRateLimited is an HTTP 403 with zero remaining quota.
	ErrKindRateLimited
	// ErrKindUnauthorized is an HTTP 401.
	ErrKindUnauthorized
	// ErrKindNetwork is a transport-level failure with no HTTP status.
	ErrKindNetwork
)

// Error is a classified API failure. Status is 0 for non-HTTP failures;
// RateLimitRemaining carries the last value seen on the wire, -1 when
// unknown.
type Error struct {
	Message            string
	Kind               ErrorKind
	Status             int
	RateLimitRemaining int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Remediation returns the user-facing hint for this failure. Unclassified
// errors surface their raw message.
func (e *Error) Remediation() string {
	switch e.Kind {
	case ErrKindNotFound:
		return "User not found. Check the spelling of the username."
	case ErrKindRateLimited:
		return "GitHub API rate limit exceeded. Add a token or wait for the limit to reset."
	case ErrKindUnauthorized:
		return "Invalid or expired token. Remove it or generate a new one."
	case ErrKindNetwork:
		return "Network error. Check your connection and try again."
	case ErrKindAPI:
		return e.Message
	}
	return e.Message
}

func classify(status, rateRemaining int, message string) *Error {
	kind := ErrKindAPI
	switch {
	case status == 404:
		kind = ErrKindNotFound
	case status == 403 && rateRemaining == 0:
		kind = ErrKindRateLimited
	case status == 401:
		kind = ErrKindUnauthorized
	}
	return &Error{Kind: kind, Status: status, RateLimitRemaining: rateRemaining, Message: message}
}

// IsNotFound reports whether err carries a 404 classification.
func IsNotFound(err error) bool { return hasKind(err, ErrKindNotFound) }

// IsRateLimited reports whether err carries a rate-limit classification.
func IsRateLimited(err error) bool { return hasKind(err, ErrKindRateLimited) }

// IsUnauthorized reports whether err carries a 401 classification.
func IsUnauthorized(err error) bool { return hasKind(err, ErrKindUnauthorized) }

func hasKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
