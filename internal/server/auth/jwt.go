// Package auth encodes and decodes the signed session tokens (HS256 JWT).
// It is pure: the current time is always supplied by the caller.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errEmptySecret = errors.New("empty signing secret")

// Encode signs claims with secret. Identical claims and secret always yield
// the same token.
func Encode(c Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errEmptySecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Parse checks the format and signature of token and returns its claims.
// Expiry is not evaluated here; see Decode.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errEmptySecret
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		}
	}

	if claims.ExpiresAt == nil || claims.Subject == "" {
		return nil, common.ErrMalformedToken
	}

	return claims, nil
}

// Decode is Parse followed by an expiry check against now. Callers that must
// report a wrong token kind ahead of expiry use Parse and Claims.Expired.
func Decode(tokenString string, secret []byte, now time.Time) (*Claims, error) {
	claims, err := Parse(tokenString, secret)
	if err != nil {
		return nil, err
	}

	if claims.Expired(now) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}
