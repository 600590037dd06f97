// Package common defines shared constants and sentinel errors used across
// sessionkeeper components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Token format errors. All of them wrap ErrInvalidToken.
	ErrInvalidToken     = errors.New("invalid token")
	ErrMalformedToken   = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrInvalidSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrWrongTokenKind   = fmt.Errorf("%w: wrong token kind", ErrInvalidToken)

	// Token lifecycle errors.
	ErrNoToken      = errors.New("no token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	// Collaborator errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrIdentityNotFound = errors.New("identity not found")
)

// Reason maps an error to a short, stable label suitable for log fields and
// metric attributes. It never exposes the underlying error text.
func Reason(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoToken):
		return "no_token"
	case errors.Is(err, ErrMalformedToken):
		return "malformed"
	case errors.Is(err, ErrInvalidSignature):
		return "bad_signature"
	case errors.Is(err, ErrWrongTokenKind):
		return "wrong_kind"
	case errors.Is(err, ErrInvalidToken):
		return "invalid"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrIdentityNotFound):
		return "identity_not_found"
	case errors.Is(err, ErrorValidation):
		return "validation"
	case errors.Is(err, ErrorUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrorAlreadyExists):
		return "already_exists"
	default:
		return "error"
	}
}

// RequiresReauthentication reports whether err means the caller has to log in
// again, as opposed to retrying later.
func RequiresReauthentication(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrNoToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenRevoked) ||
		errors.Is(err, ErrIdentityNotFound)
}
