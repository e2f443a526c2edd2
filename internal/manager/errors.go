package manager

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/geom"
)

// toStatus maps domain errors onto RPC status codes. Errors that already
// carry a status pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	var singular *geom.SingularError
	var conn *dexhand.ConnectionError
	switch {
	case errors.Is(err, dexhand.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, dexhand.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, dexhand.ErrNotImplemented):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, dexhand.ErrInvalidState), errors.Is(err, dexhand.ErrNotReady):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, geom.ErrNotConfigured):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, geom.ErrOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.As(err, &singular):
		return status.Error(codes.Internal, err.Error())
	case errors.As(err, &conn):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
