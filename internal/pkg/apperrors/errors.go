// Package apperrors defines the error taxonomy shared across services.
// Handlers map these sentinels to HTTP status codes; everything below the
// handler boundary wraps them with fmt.Errorf("%w").
package apperrors

import "errors"

var (
	// ErrValidation marks malformed input (email, code, request shape).
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication covers wrong codes and wrong passwords. Expired
	// credentials are folded into the same message at the API boundary so
	// callers cannot distinguish failure causes.
	ErrAuthentication = errors.New("invalid or expired credentials")

	// ErrExpired marks a stale one-time code or signed state. Internal only;
	// handlers present it as ErrAuthentication.
	ErrExpired = errors.New("credential expired")

	// ErrCSRF marks a bad or altered state signature. Logged in full
	// server-side, surfaced with no detail.
	ErrCSRF = errors.New("state verification failed")

	// ErrAuthorization marks a role insufficient for an admin action.
	ErrAuthorization = errors.New("insufficient role")

	// ErrRateLimited marks exhausted verify attempts or a locked account.
	ErrRateLimited = errors.New("too many attempts")

	// ErrNotFound marks a missing row. Internal only; never surfaced where
	// existence would leak information.
	ErrNotFound = errors.New("not found")
)

// IsAuthFailure reports whether err should collapse into the single generic
// authentication failure response.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrNotFound)
}
