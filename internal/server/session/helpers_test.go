package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

var (
	testSecret = []byte("test-secret")
	t0         = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
	return t
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
	err   error
}

func newFakeUsers(us ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[string]*models.User{}}
	for _, u := range us {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) setRole(id, role string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id].Role = role
}

func (f *fakeUsers) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

// flakyStore fails selected operations on demand.
type flakyStore struct {
	kvstore.Store

	mu         sync.Mutex
	failPut    bool
	failGet    bool
	failDelete bool
}

var errDown = fmt.Errorf("%w: connection refused", common.ErrStoreUnavailable)

func (s *flakyStore) set(put, get, del bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPut, s.failGet, s.failDelete = put, get, del
}

func (s *flakyStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	fail := s.failPut
	s.mu.Unlock()
	if fail {
		return errDown
	}
	return s.Store.Put(ctx, key, value, ttl)
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	fail := s.failGet
	s.mu.Unlock()
	if fail {
		return nil, errDown
	}
	return s.Store.Get(ctx, key)
}

func (s *flakyStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	fail := s.failDelete
	s.mu.Unlock()
	if fail {
		return errDown
	}
	return s.Store.Delete(ctx, key)
}

func (s *flakyStore) DeleteIfExists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	fail := s.failDelete
	s.mu.Unlock()
	if fail {
		return false, errDown
	}
	return s.Store.DeleteIfExists(ctx, key)
}

func (s *flakyStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	s.mu.Lock()
	fail := s.failDelete
	s.mu.Unlock()
	if fail {
		return 0, errors.Join(errDown, errors.New("scan failed"))
	}
	return s.Store.DeleteByPrefix(ctx, prefix)
}

type fixture struct {
	svc   *Service
	mem   *kvstore.MemoryStore
	store *flakyStore
	users *fakeUsers
	clock *testClock
}

func newFixture() *fixture {
	clock := &testClock{now: t0}
	mem := kvstore.NewMemoryStore(clock.Now)
	store := &flakyStore{Store: mem}
	users := newFakeUsers(
		&models.User{ID: "u1", Email: "u1@example.com", Role: "user"},
		&models.User{ID: "u2", Email: "u2@example.com", Role: "admin"},
	)

	svc, err := NewService(Config{
		Secret:     testSecret,
		AccessTTL:  DefaultAccessTTL,
		RefreshTTL: DefaultRefreshTTL,
	}, store, users, logging.Nop())
	if err != nil {
		panic(err)
	}

	return &fixture{svc: svc, mem: mem, store: store, users: users, clock: clock}
}
