package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	usersrepo "github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

type fakeUsersRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	nextID  int
	failAll error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.nextID++
	cp := *u
	cp.ID = fmt.Sprintf("id-%d", f.nextID)
	cp.CreatedAt = time.Now()
	f.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return nil, f.failAll
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpdateRole(_ context.Context, id, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return f.failAll
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Role = role
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }

func (m *fakeRepoManager) KV(dbx.DBTX, kvstore.Clock) *kvstore.PostgresStore { return nil }

func newUserService(t *testing.T) (*UserService, *fakeUsersRepo, *session.Service) {
	t.Helper()
	repo := newFakeUsersRepo()
	sessions, err := session.NewService(session.Config{
		Secret:     []byte("k"),
		AccessTTL:  time.Hour,
		RefreshTTL: 2 * time.Hour,
	}, kvstore.NewMemoryStore(nil), repo, logging.Nop())
	require.NoError(t, err)

	return NewUserService(nil, &fakeRepoManager{u: repo}, sessions, bcrypt.MinCost, logging.Nop()), repo, sessions
}

func TestRegister_Success(t *testing.T) {
	s, repo, sessions := newUserService(t)
	ctx := context.Background()

	user, pair, err := s.Register(ctx, "  Alice@Example.com ", " Alice ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, auth.RoleUser, user.Role)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("correct horse")))

	claims, err := sessions.Verify(ctx, pair.AccessToken, time.Now())
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestRegister_Validation(t *testing.T) {
	s, _, _ := newUserService(t)
	ctx := context.Background()

	cases := []struct{ email, password string }{
		{"", "long enough"},
		{"not-an-email", "long enough"},
		{"Alice <alice@example.com>", "long enough"},
		{"alice@example.com", "short"},
		{"alice@example.com", string(make([]byte, 73))},
	}
	for _, c := range cases {
		_, _, err := s.Register(ctx, c.email, "", c.password)
		require.ErrorIs(t, err, common.ErrorValidation, "email=%q", c.email)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s, _, _ := newUserService(t)
	ctx := context.Background()

	_, _, err := s.Register(ctx, "bob@example.com", "Bob", "password-1")
	require.NoError(t, err)

	_, _, err = s.Register(ctx, "BOB@example.com", "Bob", "password-2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_RepoError(t *testing.T) {
	s, repo, _ := newUserService(t)
	repo.failAll = errors.New("db down")

	_, _, err := s.Register(context.Background(), "bob@example.com", "Bob", "password-1")
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotContains(t, err.Error(), "db down")
}

func TestLogin(t *testing.T) {
	s, _, sessions := newUserService(t)
	ctx := context.Background()

	registered, _, err := s.Register(ctx, "carol@example.com", "Carol", "s3cret-pass")
	require.NoError(t, err)

	user, pair, err := s.Login(ctx, "Carol@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = sessions.Verify(ctx, pair.AccessToken, time.Now())
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "carol@example.com", "wrong-pass")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = s.Login(ctx, "nobody@example.com", "s3cret-pass")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_RepoError(t *testing.T) {
	s, repo, _ := newUserService(t)
	repo.failAll = errors.New("db down")

	_, _, err := s.Login(context.Background(), "carol@example.com", "s3cret-pass")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestProfileAndSetRole(t *testing.T) {
	s, _, sessions := newUserService(t)
	ctx := context.Background()

	user, pair, err := s.Register(ctx, "dave@example.com", "Dave", "password-1")
	require.NoError(t, err)

	got, err := s.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", got.Email)

	_, err = s.Profile(ctx, "missing")
	require.ErrorIs(t, err, common.ErrIdentityNotFound)

	require.ErrorIs(t, s.SetRole(ctx, user.ID, "root"), common.ErrorValidation)
	require.ErrorIs(t, s.SetRole(ctx, "missing", auth.RoleAdmin), common.ErrorNotFound)
	require.NoError(t, s.SetRole(ctx, user.ID, auth.RoleAdmin))

	// the new role shows up after rotation
	next, err := sessions.Rotate(ctx, pair.RefreshToken, time.Now())
	require.NoError(t, err)
	claims, err := sessions.Verify(ctx, next.AccessToken, time.Now())
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}
