package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes access tokens from refresh tokens. It travels in the
// "type" claim so a refresh token can never pass as an access token.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// Claims is the signed payload of every token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
	Kind Kind   `json:"type"`
}

// NewClaims builds claims for subject valid for ttl starting at now.
func NewClaims(subject, role string, kind Kind, id string, now time.Time, ttl time.Duration) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
		Kind: kind,
	}
}

// ExpiresAtTime returns the expiry instant, or the zero time if absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Expired reports whether the token is no longer valid at now.
// A token is expired at exactly its expiry instant.
func (c *Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAtTime())
}

// Remaining is the lifetime left at now, never negative.
func (c *Claims) Remaining(now time.Time) time.Duration {
	d := c.ExpiresAtTime().Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
