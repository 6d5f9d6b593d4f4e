package random

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewDeviateSourceFactoryFromConfiguration returns the
// DeviateSourceFactory corresponding to the name of an algorithm, as
// used in configuration files. An empty name selects xorshift64*.
func NewDeviateSourceFactoryFromConfiguration(name string) (DeviateSourceFactory, error) {
	switch name {
	case "", "xorshift64star":
		return NewXorShiftSingleThreadedGenerator, nil
	case "pcg":
		return NewPCGSingleThreadedGenerator, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown deviate source %#v", name)
	}
}
