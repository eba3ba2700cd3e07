package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func indices(low, high int) []int {
	out := make([]int, 0, high-low)
	for i := low; i < high; i++ {
		out = append(out, i)
	}
	return out
}

func concat(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	return append(append(out, left...), right...)
}

func TestReduce(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves range order for any threshold", func(t *testing.T) {
		const n = 257
		for threshold := 1; threshold <= n+1; threshold += 16 {
			got, err := Reduce(ctx, n, []int(nil), indices, concat, WithThreshold(threshold))

			require.NoError(t, err)
			require.Equal(t, indices(0, n), got, "threshold=%d", threshold)
		}
	})

	t.Run("preserves range order for any worker count", func(t *testing.T) {
		const n = 1000
		for _, workers := range []int{1, 2, 3, 8, 64} {
			got, err := Reduce(ctx, n, []int(nil), indices, concat, WithWorkers(workers))

			require.NoError(t, err)
			require.Equal(t, indices(0, n), got, "workers=%d", workers)
		}
	})

	t.Run("leaves cover the range exactly once", func(t *testing.T) {
		var covered atomic.Int64
		leaf := func(low, high int) int {
			covered.Add(int64(high - low))
			return high - low
		}
		sum := func(a, b int) int { return a + b }

		got, err := Reduce(ctx, 10000, 0, leaf, sum, WithThreshold(7))

		require.NoError(t, err)
		require.Equal(t, 10000, got)
		require.Equal(t, int64(10000), covered.Load())
	})

	t.Run("leaves respect the threshold", func(t *testing.T) {
		var largest, smallest atomic.Int64
		smallest.Store(1 << 62)
		leaf := func(low, high int) int {
			size := int64(high - low)
			for cur := largest.Load(); size > cur && !largest.CompareAndSwap(cur, size); cur = largest.Load() {
			}
			for cur := smallest.Load(); size < cur && !smallest.CompareAndSwap(cur, size); cur = smallest.Load() {
			}
			return 1
		}
		sum := func(a, b int) int { return a + b }

		leaves, err := Reduce(ctx, 100, 0, leaf, sum, WithThreshold(5))

		require.NoError(t, err)
		require.GreaterOrEqual(t, leaves, 20)
		require.LessOrEqual(t, largest.Load(), int64(5))
		require.Greater(t, smallest.Load(), int64(0), "Leaves should never be empty")
	})

	t.Run("empty range returns the identity", func(t *testing.T) {
		called := false
		leaf := func(low, high int) int {
			called = true
			return 1
		}

		got, err := Reduce(ctx, 0, 42, leaf, func(a, b int) int { return a + b })

		require.NoError(t, err)
		require.Equal(t, 42, got)
		require.False(t, called, "Leaf should not run for an empty range")
	})

	t.Run("cancelled context stops the reduction", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Reduce(cancelled, 1000, []int(nil), indices, concat, WithThreshold(10))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestThreshold(t *testing.T) {
	t.Run("derived from workers", func(t *testing.T) {
		require.Equal(t, 25, Threshold(100, WithWorkers(1)))
		require.Equal(t, 4, Threshold(100, WithWorkers(8)))
		require.Equal(t, 1, Threshold(3, WithWorkers(8)), "Threshold should be at least one")
	})

	t.Run("explicit threshold wins", func(t *testing.T) {
		require.Equal(t, 9, Threshold(100, WithWorkers(8), WithThreshold(9)))
	})

	t.Run("non-positive options are ignored", func(t *testing.T) {
		require.Equal(t, Threshold(100, WithWorkers(2)), Threshold(100, WithWorkers(2), WithThreshold(0), WithWorkers(-1)))
	})
}
