package util

import (
	"log"

	"google.golang.org/grpc/status"
)

// ErrorLogger may be used to report errors that cannot be returned to
// the caller directly, such as failures of goroutines or of work that
// is performed after the result of an estimation run is known.
type ErrorLogger interface {
	Log(err error)
}

// ErrorLoggerFunc is an adapter for using an ordinary function as an
// ErrorLogger.
type ErrorLoggerFunc func(err error)

// Log the error by calling the function.
func (f ErrorLoggerFunc) Log(err error) {
	f(err)
}

// DefaultErrorLogger writes errors using Go's standard logging
// package, including the status code of the error.
var DefaultErrorLogger ErrorLogger = ErrorLoggerFunc(func(err error) {
	s := status.Convert(err)
	log.Printf("Error (%s): %s", s.Code(), s.Message())
})
