package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

type fakeAccount struct {
	user     models.User
	password string
}

// fakeUsers is an in-memory account service that issues real sessions.
type fakeUsers struct {
	mu       sync.Mutex
	byID     map[string]*fakeAccount
	sessions session.Manager
	seq      int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*fakeAccount{}}
}

func (f *fakeUsers) Register(ctx context.Context, email, name, password string) (*models.User, *session.TokenPair, error) {
	f.mu.Lock()
	for _, a := range f.byID {
		if a.user.Email == email {
			f.mu.Unlock()
			return nil, nil, common.ErrorAlreadyExists
		}
	}
	f.seq++
	a := &fakeAccount{
		user:     models.User{ID: fmt.Sprintf("user-%d", f.seq), Email: email, Name: name, Role: auth.RoleUser},
		password: password,
	}
	f.byID[a.user.ID] = a
	u := a.user
	f.mu.Unlock()

	pair, err := f.sessions.Issue(ctx, u.ID, u.Role, time.Now())
	if err != nil {
		return nil, nil, err
	}
	return &u, pair, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, *session.TokenPair, error) {
	f.mu.Lock()
	var found *models.User
	for _, a := range f.byID {
		if a.user.Email == email && a.password == password {
			u := a.user
			found = &u
		}
	}
	f.mu.Unlock()
	if found == nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := f.sessions.Issue(ctx, found.ID, found.Role, time.Now())
	if err != nil {
		return nil, nil, err
	}
	return found, pair, nil
}

func (f *fakeUsers) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := f.FindByID(ctx, userID)
	if err != nil {
		return nil, common.ErrIdentityNotFound
	}
	return u, nil
}

func (f *fakeUsers) SetRole(_ context.Context, userID, role string) error {
	if !auth.ValidRole(role) {
		return common.ErrorValidation
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[userID]
	if !ok {
		return common.ErrorNotFound
	}
	a.user.Role = role
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := a.user
	return &u, nil
}

type harness struct {
	client pb.SessionServiceClient
	conn   *grpc.ClientConn
	users  *fakeUsers
	store  *kvstore.MemoryStore
}

func newHarness(t *testing.T, rl RateLimit) *harness {
	t.Helper()

	store := kvstore.NewMemoryStore(nil)
	users := newFakeUsers()
	svc, err := session.NewService(session.Config{
		Secret:     []byte("test-secret"),
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, store, users, nopLogger{})
	require.NoError(t, err)
	users.sessions = svc

	srv := NewGRPCServer("bufnet", nopLogger{}, users, svc, rl)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return &harness{client: pb.NewSessionServiceClient(conn), conn: conn, users: users, store: store}
}

func withBearer(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, common.BearerPrefix+token)
}

func (h *harness) register(t *testing.T, email string) *pb.AuthResponse {
	t.Helper()
	resp, err := h.client.Register(context.Background(), &pb.RegisterRequest{Email: email, Name: "N", Password: "password1"})
	require.NoError(t, err)
	return resp
}

func TestRegisterThenWhoami(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")

	assert.NotEmpty(t, reg.UserId)
	assert.Equal(t, auth.RoleUser, reg.Role)
	assert.NotEmpty(t, reg.Tokens.AccessToken)
	assert.NotEmpty(t, reg.Tokens.RefreshToken)
	assert.True(t, reg.Tokens.RefreshExpiresAt.AsTime().After(reg.Tokens.AccessExpiresAt.AsTime()))

	me, err := h.client.Whoami(withBearer(reg.Tokens.AccessToken), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, reg.UserId, me.UserId)
	assert.Equal(t, "a@example.com", me.Email)
	assert.Equal(t, auth.RoleUser, me.Role)
}

func TestWhoami_AccessTokenHeaderFallback(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, reg.Tokens.AccessToken)
	_, err := h.client.Whoami(ctx, &emptypb.Empty{})
	require.NoError(t, err)
}

func TestProtectedMethods_RejectMissingOrBadTokens(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")

	cases := map[string]context.Context{
		"no token":      context.Background(),
		"garbage":       withBearer("garbage"),
		"refresh token": withBearer(reg.Tokens.RefreshToken),
	}
	for name, ctx := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := h.client.Whoami(ctx, &emptypb.Empty{})
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, "unauthenticated", status.Convert(err).Message())
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	h := newHarness(t, RateLimit{})
	h.register(t, "a@example.com")

	_, err := h.client.Register(context.Background(), &pb.RegisterRequest{Email: "a@example.com", Password: "password1"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t, RateLimit{})
	h.register(t, "a@example.com")

	_, err := h.client.Login(context.Background(), &pb.LoginRequest{Email: "a@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid credentials", status.Convert(err).Message())
}

func TestRefresh_RotatesAndRejectsReuse(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")

	rotated, err := h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: reg.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.Tokens.RefreshToken, rotated.Tokens.RefreshToken)

	_, err = h.client.Whoami(withBearer(rotated.Tokens.AccessToken), &emptypb.Empty{})
	require.NoError(t, err)

	_, err = h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: reg.Tokens.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "re-authentication required", status.Convert(err).Message())
}

func TestLogout_RevokesBothTokens(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")

	_, err := h.client.Logout(withBearer(reg.Tokens.AccessToken), &pb.LogoutRequest{RefreshToken: reg.Tokens.RefreshToken})
	require.NoError(t, err)

	_, err = h.client.Whoami(withBearer(reg.Tokens.AccessToken), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: reg.Tokens.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestLogoutAll_RevokesEverySession(t *testing.T) {
	h := newHarness(t, RateLimit{})
	reg := h.register(t, "a@example.com")
	second, err := h.client.Login(context.Background(), &pb.LoginRequest{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	resp, err := h.client.LogoutAll(withBearer(second.Tokens.AccessToken), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Revoked)

	for _, rt := range []string{reg.Tokens.RefreshToken, second.Tokens.RefreshToken} {
		_, err = h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: rt})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}

	_, err = h.client.Whoami(withBearer(second.Tokens.AccessToken), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestSetRole(t *testing.T) {
	h := newHarness(t, RateLimit{})
	admin := h.register(t, "admin@example.com")
	user := h.register(t, "user@example.com")

	_, err := h.client.SetRole(withBearer(user.Tokens.AccessToken), &pb.SetRoleRequest{UserId: user.UserId, Role: auth.RoleAdmin})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	require.NoError(t, h.users.SetRole(context.Background(), admin.UserId, auth.RoleAdmin))
	relogged, err := h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: admin.Tokens.RefreshToken})
	require.NoError(t, err)
	adminCtx := withBearer(relogged.Tokens.AccessToken)

	_, err = h.client.SetRole(adminCtx, &pb.SetRoleRequest{UserId: user.UserId, Role: "superuser"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.SetRole(adminCtx, &pb.SetRoleRequest{UserId: "missing", Role: auth.RoleAdmin})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.SetRole(adminCtx, &pb.SetRoleRequest{UserId: user.UserId, Role: auth.RoleAdmin})
	require.NoError(t, err)

	// the new role shows up on the next rotation
	rotated, err := h.client.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: user.Tokens.RefreshToken})
	require.NoError(t, err)
	me, err := h.client.Whoami(withBearer(rotated.Tokens.AccessToken), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, me.Role)
}

func TestRateLimit_Login(t *testing.T) {
	h := newHarness(t, RateLimit{RPS: 0.001, Burst: 2})
	h.register(t, "a@example.com")

	_, err := h.client.Login(context.Background(), &pb.LoginRequest{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = h.client.Login(context.Background(), &pb.LoginRequest{Email: "a@example.com", Password: "password1"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestHealthService(t *testing.T) {
	h := newHarness(t, RateLimit{})

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.SessionService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
