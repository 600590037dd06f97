package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/revocation"
)

type Revoker struct {
	secret   []byte
	registry *revocation.Registry
	logger   logging.Logger
}

func NewRevoker(secret []byte, registry *revocation.Registry, logger logging.Logger) *Revoker {
	return &Revoker{secret: secret, registry: registry, logger: logger}
}

// RevokeOne ends a single session. A still-valid access token is blacklisted
// for exactly its remaining lifetime; the refresh record is deleted when both
// refreshToken and userID are given. Missing, expired or unparsable tokens are
// skipped, so calling it twice is harmless.
func (r *Revoker) RevokeOne(ctx context.Context, accessToken, refreshToken, userID string, now time.Time) error {
	if accessToken != "" {
		claims, err := auth.Decode(accessToken, r.secret, now)
		switch {
		case err != nil:
			r.logger.Debug(ctx, "logout with unusable access token", "reason", common.Reason(err))
		case claims.Kind != auth.KindAccess:
			r.logger.Debug(ctx, "logout with non-access token in access slot", "user_id", claims.Subject)
		default:
			if err := r.registry.Blacklist(ctx, accessToken, claims.Remaining(now)); err != nil {
				r.logger.Error(ctx, "failed to blacklist access token", "user_id", claims.Subject, "error", err)
				return storeFailure(err)
			}
		}
	}

	if refreshToken != "" && userID != "" {
		if err := r.registry.RevokeRefresh(ctx, userID, refreshToken); err != nil {
			r.logger.Error(ctx, "failed to delete refresh record", "user_id", userID, "error", err)
			return storeFailure(err)
		}
	}

	return nil
}

// RevokeAll deletes every refresh record of userID and reports how many were
// removed. Access tokens already handed out stay valid until they expire.
func (r *Revoker) RevokeAll(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: empty user id", common.ErrorValidation)
	}

	n, err := r.registry.RevokeAllRefresh(ctx, userID)
	if err != nil {
		r.logger.Error(ctx, "failed to revoke all sessions", "user_id", userID, "error", err)
		return n, storeFailure(err)
	}

	r.logger.Info(ctx, "all sessions revoked", "user_id", userID, "count", n)
	return n, nil
}
