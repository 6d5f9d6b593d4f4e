package program

import (
	"context"
	"sync"

	"github.com/buildbarn/bb-montecarlo/pkg/util"
)

// RunLocal runs a routine and all of the routines it spawns, returning
// once all of them have completed. The first error returned by any of
// the routines cancels the context of all others, and is returned.
//
// Unlike errgroup.Group, routines are placed in a hierarchy of
// siblings and dependencies. An Estimator uses this to run its workers
// as siblings, while a progress reporter runs as a dependency that is
// only stopped once the last worker has returned.
func RunLocal(ctx context.Context, routine Routine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var firstErrorOnce sync.Once
	var firstError error
	run(ctx, util.ErrorLoggerFunc(func(err error) {
		firstErrorOnce.Do(func() {
			firstError = err
			cancel()
		})
	}), routine)
	return firstError
}
