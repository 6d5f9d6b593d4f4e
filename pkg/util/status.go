package util

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func prependToStatus(err error, code *codes.Code, msg string) error {
	s := status.Convert(err).Proto()
	if code != nil {
		s.Code = int32(*code)
	}
	s.Message = msg + ": " + s.Message
	return status.ErrorProto(s)
}

// StatusWrap adds context to an error by prepending a string to its
// message. The error is converted to a gRPC status first, meaning that
// plain Go errors obtain code Unknown.
func StatusWrap(err error, msg string) error {
	return prependToStatus(err, nil, msg)
}

// StatusWrapf is identical to StatusWrap, except that the message is
// formatted.
func StatusWrapf(err error, format string, args ...any) error {
	return prependToStatus(err, nil, fmt.Sprintf(format, args...))
}

// StatusWrapWithCode is identical to StatusWrap, except that the code
// of the error is replaced. This is used to classify errors returned
// by the standard library, such as I/O errors of the entropy source.
func StatusWrapWithCode(err error, code codes.Code, msg string) error {
	return prependToStatus(err, &code, msg)
}

// StatusWrapfWithCode is identical to StatusWrapWithCode, except that
// the message is formatted.
func StatusWrapfWithCode(err error, code codes.Code, format string, args ...any) error {
	return prependToStatus(err, &code, fmt.Sprintf(format, args...))
}

// StatusFromContext returns the error of a context that is done as a
// gRPC status, so that context.Canceled and context.DeadlineExceeded
// map to codes Canceled and DeadlineExceeded, respectively.
func StatusFromContext(ctx context.Context) error {
	return status.FromContextError(ctx.Err()).Err()
}
