package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/netx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

type ctxKey string

const (
	claimsKey      ctxKey = "claims"
	accessTokenKey ctxKey = "accessToken"
)

// protectedMethods require a verified access token.
var protectedMethods = map[string]bool{
	pb.SessionService_Logout_FullMethodName:    true,
	pb.SessionService_LogoutAll_FullMethodName: true,
	pb.SessionService_Whoami_FullMethodName:    true,
	pb.SessionService_SetRole_FullMethodName:   true,
}

// limitedMethods are rate limited per peer.
var limitedMethods = map[string]bool{
	pb.SessionService_Register_FullMethodName: true,
	pb.SessionService_Login_FullMethodName:    true,
	pb.SessionService_Refresh_FullMethodName:  true,
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

func accessTokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(accessTokenKey).(string)
	return t
}

// tokenFromMetadata reads "authorization: Bearer <token>" and falls back to
// the access_token key.
func tokenFromMetadata(md metadata.MD) string {
	for _, v := range md.Get(common.AuthorizationHeaderName) {
		if len(v) > len(common.BearerPrefix) && strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
			return strings.TrimSpace(v[len(common.BearerPrefix):])
		}
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		accessToken = tokenFromMetadata(md)
	}

	claims, err := s.sessions.Verify(ctx, accessToken, s.now())
	if err != nil {
		// the caller only learns that it is not authenticated
		s.logger.Info(ctx, "access denied", "method", info.FullMethod, "reason", common.Reason(err))
		if statusFor(err) == codes.Unavailable {
			return nil, status.Error(codes.Unavailable, "service unavailable")
		}
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	ctx = context.WithValue(ctx, claimsKey, claims)
	ctx = context.WithValue(ctx, accessTokenKey, accessToken)

	return handler(ctx, req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !limitedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	key := peerKey(ctx)
	if !s.limiter.allow(key) {
		s.logger.Warn(ctx, "rate limit exceeded", "method", info.FullMethod, "peer", key)
		return nil, status.Error(codes.ResourceExhausted, "too many requests")
	}
	return handler(ctx, req)
}

// requestLogInterceptor tags every call with a request id (taken from
// x-request-id when present) and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.RequestIDHeaderName); len(v) > 0 {
			requestID = v[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	return netx.HostOf(p.Addr.String())
}
