package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/revocation"
	"github.com/google/uuid"
)

// Issuer mints token pairs and records each refresh token as live.
type Issuer struct {
	cfg      Config
	registry *revocation.Registry
	newID    func() string
	logger   logging.Logger
}

func NewIssuer(cfg Config, registry *revocation.Registry, logger logging.Logger) *Issuer {
	return &Issuer{cfg: cfg, registry: registry, newID: uuid.NewString, logger: logger}
}

// Issue returns a fresh pair for userID. It fails with
// common.ErrStoreUnavailable when the refresh record cannot be written, so a
// refresh token is never handed out without its record.
func (i *Issuer) Issue(ctx context.Context, userID, role string, now time.Time) (*TokenPair, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", common.ErrorValidation)
	}
	if !auth.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	access := auth.NewClaims(userID, role, auth.KindAccess, i.newID(), now, i.cfg.AccessTTL)
	refresh := auth.NewClaims(userID, role, auth.KindRefresh, i.newID(), now, i.cfg.RefreshTTL)

	accessToken, err := auth.Encode(access, i.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	refreshToken, err := auth.Encode(refresh, i.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if err := i.registry.TrackRefresh(ctx, userID, refreshToken, now, refresh.Remaining(now)); err != nil {
		i.logger.Error(ctx, "failed to record refresh token", "user_id", userID, "error", err)
		return nil, storeFailure(err)
	}

	i.logger.Debug(ctx, "session issued", "user_id", userID, "role", role)

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  access.ExpiresAtTime(),
		RefreshExpiresAt: refresh.ExpiresAtTime(),
	}, nil
}
