package client

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

// anonymousMethods never carry an access token.
var anonymousMethods = map[string]bool{
	pb.SessionService_Register_FullMethodName: true,
	pb.SessionService_Login_FullMethodName:    true,
	pb.SessionService_Refresh_FullMethodName:  true,
}

// noReplayMethods carry the refresh token in the request body. A rotation
// replaces that token, so the interceptor must not resend the old request.
var noReplayMethods = map[string]bool{
	pb.SessionService_Logout_FullMethodName: true,
}

type GRPCClient struct {
	conn  *grpc.ClientConn
	api   pb.SessionServiceClient
	store *TokenStore

	mu      sync.Mutex
	session *Session
}

// NewGRPCClient connects to addr and loads any saved session from store.
// Extra dial options are appended after the defaults (insecure transport).
func NewGRPCClient(addr string, store *TokenStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{store: store}

	sess, err := store.Load()
	switch {
	case err == nil:
		c.session = sess
	case !errors.Is(err, ErrNotLoggedIn):
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewSessionServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Session returns a copy of the current session, or nil.
func (c *GRPCClient) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *GRPCClient) setSession(s *Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	if s == nil {
		return c.store.Clear()
	}
	return c.store.Save(s)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token and, on Unauthenticated,
// rotates the session once and retries. Methods in noReplayMethods get the
// raw error back and handle the rotation themselves.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if anonymousMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	sess := c.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}

	err := invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated || noReplayMethods[method] {
		return err
	}

	sess, rerr := c.rotate(ctx, sess)
	if rerr != nil {
		return rerr
	}

	return invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
}

// rotate exchanges the refresh token of sess. A rejected refresh token ends
// the local session.
func (c *GRPCClient) rotate(ctx context.Context, sess *Session) (*Session, error) {
	resp, err := c.api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: sess.RefreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			_ = c.setSession(nil)
		}
		return nil, mapError(err)
	}

	next := *sess
	next.setTokens(resp.GetTokens())
	if err := c.setSession(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (c *GRPCClient) startSession(resp *pb.AuthResponse) (*Session, error) {
	sess := &Session{UserID: resp.GetUserId(), Role: resp.GetRole()}
	sess.setTokens(resp.GetTokens())
	if err := c.setSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (c *GRPCClient) Register(ctx context.Context, email, name, password string) (*Session, error) {
	resp, err := c.api.Register(ctx, &pb.RegisterRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return c.startSession(resp)
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return c.startSession(resp)
}

// Refresh rotates the saved session explicitly.
func (c *GRPCClient) Refresh(ctx context.Context) (*Session, error) {
	sess := c.Session()
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	return c.rotate(ctx, sess)
}

func (c *GRPCClient) Whoami(ctx context.Context) (*pb.WhoamiResponse, error) {
	resp, err := c.api.Whoami(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// Logout closes the current session on the server and forgets it locally.
func (c *GRPCClient) Logout(ctx context.Context) error {
	sess := c.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}

	_, err := c.api.Logout(ctx, &pb.LogoutRequest{RefreshToken: sess.RefreshToken})
	if status.Code(err) == codes.Unauthenticated {
		// expired access token: rotate, then close the rotated session
		sess, err = c.rotate(ctx, sess)
		if err != nil {
			return err
		}
		_, err = c.api.Logout(ctx, &pb.LogoutRequest{RefreshToken: sess.RefreshToken})
	}
	if err != nil {
		return mapError(err)
	}
	return c.setSession(nil)
}

// LogoutAll closes every session of the user and forgets the local one.
func (c *GRPCClient) LogoutAll(ctx context.Context) (int, error) {
	resp, err := c.api.LogoutAll(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, mapError(err)
	}
	return int(resp.GetRevoked()), c.setSession(nil)
}

func (c *GRPCClient) SetRole(ctx context.Context, userID, role string) error {
	_, err := c.api.SetRole(ctx, &pb.SetRoleRequest{UserId: userID, Role: role})
	return mapError(err)
}
