package program_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/buildbarn/bb-montecarlo/pkg/program"
	"github.com/buildbarn/bb-montecarlo/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRunLocal(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var completed atomic.Int32
		require.NoError(t, program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			for i := 0; i < 8; i++ {
				siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					completed.Add(1)
					return nil
				})
			}
			completed.Add(1)
			return nil
		}))
		require.Equal(t, int32(9), completed.Load())
	})

	t.Run("FirstErrorCancelsSiblings", func(t *testing.T) {
		err := program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				<-ctx.Done()
				return nil
			})
			return status.Error(codes.Internal, "Worker failed")
		})
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Worker failed"), err)
	})

	t.Run("DependenciesOutliveSiblings", func(t *testing.T) {
		var siblingsDone atomic.Bool
		var dependencyObservedSiblingsDone atomic.Bool
		require.NoError(t, program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			dependenciesGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				<-ctx.Done()
				dependencyObservedSiblingsDone.Store(siblingsDone.Load())
				return nil
			})
			siblingsDone.Store(true)
			return nil
		}))
		require.True(t, dependencyObservedSiblingsDone.Load())
	})
}
