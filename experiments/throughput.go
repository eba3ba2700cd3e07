package experiments

import (
	"context"
	"fmt"

	"coinflip/experiments/metrics"
	"coinflip/game"

	"github.com/rs/zerolog/log"
)

// ThroughputWorkers are the worker counts compared by RunThroughput when
// none are given.
var ThroughputWorkers = []int{1, 2, 4, 8, 16, 32, 64}

// RunThroughput plays the same experiment once per worker count and returns
// the metrics of each run. Every run uses the same seeder, so the tallies
// only differ by how the work was split.
func RunThroughput(ctx context.Context, seeder game.Seeder, gameCount, flipCount int, workers ...int) ([]metrics.ThroughputRecord, error) {
	if len(workers) == 0 {
		workers = ThroughputWorkers
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.ThroughputRecord{}
	for i, w := range workers {
		log.Info().Msgf("starting run %d of %d with %d workers...", i+1, len(workers), w)

		e, err := New(WithSeeder(seeder), WithWorkers(w), WithMetrics())
		if err != nil {
			return nil, err
		}
		tally, err := e.Run(ctx, gameCount, flipCount)
		if err != nil {
			return nil, fmt.Errorf("throughput run with %d workers: %w", w, err)
		}
		records = append(records, metrics.ThroughputRecord{
			ID:        i + 1,
			Tally:     tally,
			RunMetric: e.Metrics(),
		})

		log.Info().Msgf("completed run %d of %d in %s", i+1, len(workers), e.Metrics().Duration)
	}

	log.Info().Msg("completed throughput experiment")
	return records, nil
}
