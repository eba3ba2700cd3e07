package engine

import (
	"context"
	"fmt"

	"coinflip/game"
	"coinflip/parallel"
	"coinflip/sequence"
)

type Option func(e *Engine)

// Engine plays trials on the local machine, spreading the flips of a trial
// across goroutines.
type Engine struct {
	seeder  game.Seeder
	options []parallel.Option
}

// WithWorkers sets how many goroutines the flips of a trial are split for.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		e.options = append(e.options, parallel.WithWorkers(workers))
	}
}

// WithThreshold sets the number of flips a goroutine reduces sequentially.
func WithThreshold(flips int) Option {
	return func(e *Engine) {
		e.options = append(e.options, parallel.WithThreshold(flips))
	}
}

func New(seeder game.Seeder, options ...Option) *Engine {
	e := &Engine{seeder: seeder}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run flips the coin flipCount times and decides the trial. The summary of
// the whole sequence is returned alongside the result.
func (e *Engine) Run(ctx context.Context, flipCount int) (game.Result, sequence.Summary, error) {
	if flipCount < 0 {
		return game.Tie, nil, fmt.Errorf("flip count %d: %w", flipCount, ErrNegativeCount)
	}

	summary, err := parallel.Reduce(ctx, flipCount, sequence.Identity(), e.flip, sequence.Combine, e.options...)
	if err != nil {
		return game.Tie, nil, err
	}
	return Classify(summary), summary, nil
}

// flip reduces the flips in [low, high) with a coin of its own.
func (e *Engine) flip(low, high int) sequence.Summary {
	coin := e.seeder.Coin(uint64(low))
	return sequence.Flip(coin, high-low)
}
