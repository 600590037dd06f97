// Package session implements the token lifecycle: issuing an access/refresh
// pair, verifying access tokens, rotating refresh tokens and revoking
// sessions. Every operation takes the current time from the caller.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/revocation"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Config is read-only after construction.
type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c Config) Validate() error {
	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: empty secret", common.ErrorValidation)
	}
	// token timestamps have one second resolution
	if c.AccessTTL < time.Second || c.RefreshTTL < time.Second {
		return fmt.Errorf("%w: token lifetimes must be at least one second", common.ErrorValidation)
	}
	return nil
}

type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

// UserFinder resolves the current record of a subject. It returns
// common.ErrorNotFound when the subject no longer exists.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Manager is the full session lifecycle.
type Manager interface {
	Issue(ctx context.Context, userID, role string, now time.Time) (*TokenPair, error)
	Verify(ctx context.Context, accessToken string, now time.Time) (*auth.Claims, error)
	Rotate(ctx context.Context, refreshToken string, now time.Time) (*TokenPair, error)
	RevokeOne(ctx context.Context, accessToken, refreshToken, userID string, now time.Time) error
	RevokeAll(ctx context.Context, userID string) (int, error)
}

// Service groups the four components behind Manager.
type Service struct {
	*Issuer
	*Verifier
	*Rotator
	*Revoker
}

var _ Manager = (*Service)(nil)

// NewService wires the components over store. store should already be
// bounded with kvstore.WithTimeout.
func NewService(cfg Config, store kvstore.Store, users UserFinder, logger logging.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.With("module", "session")
	registry := revocation.NewRegistry(store)
	issuer := NewIssuer(cfg, registry, log)

	return &Service{
		Issuer:   issuer,
		Verifier: NewVerifier(cfg.Secret, registry, log),
		Rotator:  NewRotator(cfg.Secret, registry, users, issuer, log),
		Revoker:  NewRevoker(cfg.Secret, registry, log),
	}, nil
}

// storeFailure makes sure err reports as common.ErrStoreUnavailable.
func storeFailure(err error) error {
	if errors.Is(err, common.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
}
