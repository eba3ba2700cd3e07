// Package parallel reduces half-open index ranges with fork/join recursion.
//
// The range [0, n) is halved until a piece is no longer than the threshold.
// Pieces are reduced sequentially by a leaf function on their own goroutine
// and the results are combined pairwise in range order, left then right, so
// an associative combine yields the same value however the range was split.
package parallel

import (
	"context"
	"runtime"

	"coinflip/utils"

	"golang.org/x/sync/errgroup"
)

// Leaves per worker when the threshold is derived from the worker count.
const Oversubscription = 4

// A LeafFunc reduces the range from low to high, 0 <= low < high <= n,
// sequentially.
type LeafFunc[T any] func(low, high int) T

// A CombineFunc joins the result of a range with the result of the range
// immediately after it.
type CombineFunc[T any] func(left, right T) T

type Option func(c *config)

type config struct {
	workers   int
	threshold int
}

// WithWorkers sets the parallelism the range is split for. Defaults to
// GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(c *config) {
		if workers > 0 {
			c.workers = workers
		}
	}
}

// WithThreshold sets the largest range reduced sequentially. Overrides the
// threshold derived from the worker count.
func WithThreshold(threshold int) Option {
	return func(c *config) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

// Threshold returns the leaf size used for a range of n elements.
func Threshold(n int, options ...Option) int {
	c := config{workers: runtime.GOMAXPROCS(0)}
	for _, option := range options {
		option(&c)
	}
	if c.threshold > 0 {
		return c.threshold
	}
	return utils.AtLeast(utils.CeilDiv(n, c.workers*Oversubscription), 1)
}

// Reduce reduces [0, n) to a single value. identity is returned for an empty
// range. The only error is the context's, checked before each leaf runs.
func Reduce[T any](ctx context.Context, n int, identity T, leaf LeafFunc[T], combine CombineFunc[T], options ...Option) (T, error) {
	if n <= 0 {
		return identity, ctx.Err()
	}
	r := reducer[T]{
		threshold: Threshold(n, options...),
		leaf:      leaf,
		combine:   combine,
	}
	return r.reduce(ctx, 0, n)
}

type reducer[T any] struct {
	threshold int
	leaf      LeafFunc[T]
	combine   CombineFunc[T]
}

func (r *reducer[T]) reduce(ctx context.Context, low, high int) (T, error) {
	if high-low <= r.threshold {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return r.leaf(low, high), nil
	}

	mid := low + (high-low)/2
	var left, right T
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		left, err = r.reduce(ctx, low, mid)
		return err
	})
	g.Go(func() (err error) {
		right, err = r.reduce(ctx, mid, high)
		return err
	})
	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return r.combine(left, right), nil
}
