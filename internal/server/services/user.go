// Package services contains server-side business logic. This file implements
// UserService: account registration and password login, both of which end
// in a freshly issued session.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	// bcrypt ignores anything past 72 bytes
	maxPasswordLen = 72
)

// dummyHash is compared against when the login is unknown so that both
// branches cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sessionkeeper-dummy-password"), bcrypt.MinCost)

type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	sessions    session.Manager
	bcryptCost  int
	now         func() time.Time
	logger      logging.Logger
}

func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, sessions session.Manager, bcryptCost int, logger logging.Logger) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		db:          db,
		repomanager: m,
		sessions:    sessions,
		bcryptCost:  bcryptCost,
		now:         time.Now,
		logger:      logger.With("module", "users"),
	}
}

// Register creates an account with the default role and logs it in.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*models.User, *session.TokenPair, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		Role:         auth.RoleUser,
		PasswordHash: hash,
	}

	user, err = s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "failed to create user", "error", err)
		return nil, nil, common.ErrorInternal
	}

	pair, err := s.sessions.Issue(ctx, user.ID, user.Role, s.now())
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, pair, nil
}

// Login checks the password and issues a session. Unknown accounts and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *session.TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "failed to load user", "error", err)
		return nil, nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn(ctx, "wrong password", "user_id", user.ID)
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.sessions.Issue(ctx, user.ID, user.Role, s.now())
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Profile returns the account behind a verified subject.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrIdentityNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// SetRole changes the role of userID. Tokens already issued keep the old role
// until their next rotation.
func (s *UserService) SetRole(ctx context.Context, userID, role string) error {
	if !auth.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	if err := s.repomanager.Users(s.db).UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "failed to update role", "user_id", userID, "error", err)
		return common.ErrorInternal
	}
	s.logger.Info(ctx, "role changed", "user_id", userID, "role", role)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be %d to %d bytes", common.ErrorValidation, minPasswordLen, maxPasswordLen)
	}
	return nil
}
