package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/revocation"
)

// Rotator exchanges a refresh token for a new pair, exactly once.
type Rotator struct {
	secret   []byte
	registry *revocation.Registry
	users    UserFinder
	issuer   *Issuer
	logger   logging.Logger
}

func NewRotator(secret []byte, registry *revocation.Registry, users UserFinder, issuer *Issuer, logger logging.Logger) *Rotator {
	return &Rotator{secret: secret, registry: registry, users: users, issuer: issuer, logger: logger}
}

// Rotate consumes the record of refreshToken and issues a new pair carrying
// the subject's current role.
//
// The record is removed with an atomic delete-if-exists before the new pair
// is minted, so two concurrent rotations of one token cannot both succeed.
// If minting then fails the old token is already gone and the user has to
// log in again. A store outage reports as common.ErrStoreUnavailable, any
// other minting failure as common.ErrorInternal.
func (r *Rotator) Rotate(ctx context.Context, refreshToken string, now time.Time) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrNoToken
	}

	claims, err := auth.Parse(refreshToken, r.secret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != auth.KindRefresh {
		return nil, common.ErrWrongTokenKind
	}
	if claims.Expired(now) {
		return nil, common.ErrTokenExpired
	}

	user, err := r.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrIdentityNotFound
		}
		r.logger.Error(ctx, "user lookup failed during rotation", "user_id", claims.Subject, "error", err)
		return nil, fmt.Errorf("%w: user lookup: %v", common.ErrorInternal, err)
	}

	consumed, err := r.registry.ConsumeRefresh(ctx, claims.Subject, refreshToken)
	if err != nil {
		r.logger.Error(ctx, "failed to consume refresh record", "user_id", claims.Subject, "error", err)
		return nil, storeFailure(err)
	}
	if !consumed {
		r.logger.Warn(ctx, "refresh token reused or revoked", "user_id", claims.Subject)
		return nil, common.ErrTokenRevoked
	}

	pair, err := r.issuer.Issue(ctx, user.ID, user.Role, now)
	if err != nil {
		r.logger.Error(ctx, "rotation consumed old token but could not issue a new pair", "user_id", claims.Subject, "error", err)
		if errors.Is(err, common.ErrStoreUnavailable) || errors.Is(err, common.ErrorInternal) {
			return nil, err
		}
		// a stored role Issue rejects is bad server data, not caller input
		return nil, fmt.Errorf("%w: issue: %v", common.ErrorInternal, err)
	}

	if user.Role != claims.Role {
		r.logger.Info(ctx, "role changed on rotation", "user_id", user.ID, "from", claims.Role, "to", user.Role)
	}

	return pair, nil
}
