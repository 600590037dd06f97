package grpc

import (
	"errors"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func statusFor(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrStoreUnavailable):
		return codes.Unavailable
	case common.RequiresReauthentication(err):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorUnauthorized):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrorAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a status whose message never
// carries the underlying error text.
func toStatus(err error) error {
	code := statusFor(err)
	var msg string
	switch {
	case code == codes.Unauthenticated && errors.Is(err, common.ErrorUnauthorized):
		msg = "invalid credentials"
	case code == codes.Unauthenticated:
		msg = "re-authentication required"
	case code == codes.Unavailable:
		msg = "service unavailable, retry later"
	case code == codes.InvalidArgument:
		msg = "invalid argument"
	case code == codes.AlreadyExists:
		msg = "already exists"
	case code == codes.NotFound:
		msg = "not found"
	default:
		msg = "internal error"
	}
	return status.Error(code, msg)
}
