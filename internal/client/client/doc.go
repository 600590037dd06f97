// Package client is the client side of sessionkeeper.
//
// GRPCClient talks to the SessionService and keeps the current session in a
// TokenStore. Calls that need an access token attach it as a bearer token; when
// the server answers Unauthenticated the client rotates the refresh token once
// and retries the call with the new access token.
//
// Failures are reported through sentinel errors (ErrUnavailable,
// ErrUnauthorized, ErrNotLoggedIn and friends) matched with errors.Is.
package client
