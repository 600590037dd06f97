package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// access token on outbound requests.
	AccessTokenHeaderName = "access_token"

	// AuthorizationHeaderName carries "Bearer <token>" as an alternative to
	// AccessTokenHeaderName.
	AuthorizationHeaderName = "authorization"

	// BearerPrefix is the scheme prefix expected in AuthorizationHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates log lines of a single request.
	RequestIDHeaderName = "x-request-id"
)
