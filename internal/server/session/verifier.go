package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/revocation"
)

// Verifier accepts an access token iff its signature is valid, it is an
// access token, it has not expired and it is not blacklisted.
type Verifier struct {
	secret   []byte
	registry *revocation.Registry
	logger   logging.Logger
}

func NewVerifier(secret []byte, registry *revocation.Registry, logger logging.Logger) *Verifier {
	return &Verifier{secret: secret, registry: registry, logger: logger}
}

// Verify runs the local checks first and the blacklist lookup last. If the
// lookup cannot be answered the token is rejected.
func (v *Verifier) Verify(ctx context.Context, accessToken string, now time.Time) (*auth.Claims, error) {
	if accessToken == "" {
		return nil, common.ErrNoToken
	}

	claims, err := auth.Parse(accessToken, v.secret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != auth.KindAccess {
		return nil, common.ErrWrongTokenKind
	}
	if claims.Expired(now) {
		return nil, common.ErrTokenExpired
	}

	revoked, err := v.registry.IsBlacklisted(ctx, accessToken)
	if err != nil {
		v.logger.Warn(ctx, "blacklist lookup failed, rejecting token", "user_id", claims.Subject, "error", err)
		return nil, storeFailure(err)
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	return claims, nil
}
