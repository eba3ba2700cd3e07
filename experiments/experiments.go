package experiments

import (
	"context"
	"fmt"
	"runtime"

	"coinflip/engine"
	"coinflip/experiments/metrics"
	"coinflip/game"
	"coinflip/parallel"

	"github.com/rs/zerolog/log"
)

type Option func(e *Experiment)

// Experiment runs many independent trials and tallies their results.
// Trials are spread across goroutines and each trial spreads its flips
// across goroutines again.
type Experiment struct {
	seeder         game.Seeder
	workers        int
	trialThreshold int
	flipThreshold  int
	metrics        metrics.Collector
	lastRunMetric  metrics.RunMetric
}

// WithSeeder sets where trials get their coins from. Defaults to a seeder
// seeded from crypto/rand.
func WithSeeder(seeder game.Seeder) Option {
	return func(e *Experiment) {
		if seeder != nil {
			e.seeder = seeder
		}
	}
}

func WithWorkers(workers int) Option {
	return func(e *Experiment) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithTrialThreshold sets how many trials a goroutine plays sequentially.
func WithTrialThreshold(trials int) Option {
	return func(e *Experiment) {
		if trials > 0 {
			e.trialThreshold = trials
		}
	}
}

// WithFlipThreshold sets how many flips of a trial a goroutine reduces
// sequentially.
func WithFlipThreshold(flips int) Option {
	return func(e *Experiment) {
		if flips > 0 {
			e.flipThreshold = flips
		}
	}
}

func WithMetrics() Option {
	return func(e *Experiment) {
		e.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) (*Experiment, error) {
	e := &Experiment{ // Default values
		workers: runtime.GOMAXPROCS(0),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.seeder == nil {
		seeder, err := game.NewEntropySeeder()
		if err != nil {
			return nil, fmt.Errorf("failed to seed experiment: %w", err)
		}
		e.seeder = seeder
	}
	return e, nil
}

// Run plays gameCount trials of flipCount flips each. The counters of the
// returned tally sum to gameCount.
func (e *Experiment) Run(ctx context.Context, gameCount, flipCount int) (game.Tally, error) {
	if gameCount < 0 {
		return game.Tally{}, fmt.Errorf("game count %d: %w", gameCount, engine.ErrNegativeCount)
	}
	if flipCount < 0 {
		return game.Tally{}, fmt.Errorf("flip count %d: %w", flipCount, engine.ErrNegativeCount)
	}

	log.Info().Msgf("starting experiment of %d games with %d flips each on %d workers...", gameCount, flipCount, e.workers)
	e.metrics.Start(e.workers)

	trialOptions := []parallel.Option{parallel.WithWorkers(e.workers), parallel.WithThreshold(e.trialThreshold)}
	flipOptions := []engine.Option{engine.WithWorkers(e.workers), engine.WithThreshold(e.flipThreshold)}

	play := func(low, high int) game.Tally {
		var tally game.Tally
		for i := low; i < high; i++ {
			eng := engine.New(e.seeder.Split(uint64(i)), flipOptions...)
			result, _, err := eng.Run(ctx, flipCount)
			if err != nil {
				// Cancelled; Reduce reports the context error
				return tally
			}
			e.metrics.AddTrial(flipCount)
			tally = tally.Merge(game.TallyOf(result))
		}
		log.Debug().Msgf("played games %d to %d", low, high-1)
		return tally
	}

	tally, err := parallel.Reduce(ctx, gameCount, game.Tally{}, play, game.Tally.Merge, trialOptions...)
	if err == nil {
		// A leaf cut short by cancellation still returns its partial tally
		err = ctx.Err()
	}
	e.lastRunMetric = e.metrics.Complete()
	if err != nil {
		log.Warn().Err(err).Msg("experiment interrupted")
		return game.Tally{}, fmt.Errorf("experiment interrupted: %w", err)
	}

	log.Info().Msgf("completed experiment: alice_wins=%d bob_wins=%d ties=%d", tally.AliceWins, tally.BobWins, tally.Ties)
	return tally, nil
}

// Metrics returns the metrics of the last run. They are only collected when
// the experiment was created WithMetrics.
func (e *Experiment) Metrics() metrics.RunMetric {
	return e.lastRunMetric
}
