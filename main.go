package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"coinflip/experiments"
	"coinflip/experiments/metrics"
	"coinflip/game"
	"coinflip/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.GAME_COUNT, "Number of independent games")
	flips := flag.Int("flips", meta.FLIP_COUNT, "Number of coin flips per game")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Number of goroutines work is split for")
	seed := flag.Uint64("seed", 0, "Seed for reproducible runs (0 seeds from crypto/rand)")
	format := flag.String("format", string(metrics.Text), "Report format: text, json or csv")
	level := flag.String("log-level", zerolog.InfoLevel.String(), "Log level")
	throughput := flag.Bool("throughput", false, "Compare throughput across worker counts instead of reporting a tally")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	reportFormat, err := metrics.ParseFormat(*format)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid report format")
	}
	if *games < 0 || *flips < 0 {
		log.Fatal().Msgf("games and flips must not be negative, got games=%d flips=%d", *games, *flips)
	}

	seeder, err := newSeeder(*seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed experiment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *throughput {
		records, err := experiments.RunThroughput(ctx, seeder, *games, *flips)
		exitOnError(err, stop)
		if err := metrics.WriteThroughput(os.Stdout, records); err != nil {
			log.Fatal().Err(err).Msg("failed to write throughput records")
		}
		return
	}

	experiment, err := experiments.New(experiments.WithSeeder(seeder), experiments.WithWorkers(*workers), experiments.WithMetrics())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment")
	}
	tally, err := experiment.Run(ctx, *games, *flips)
	exitOnError(err, stop)

	metric := experiment.Metrics()
	log.Info().Msgf("simulated %d flips in %s (%.0f flips/s)", metric.Flips, metric.Duration, metric.FlipsPerSecond())

	report := metrics.Report{GameCount: *games, FlipCount: *flips, Tally: tally, Metric: metric}
	if err := metrics.WriteReport(os.Stdout, reportFormat, report); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

func newSeeder(seed uint64) (game.Seeder, error) {
	if seed != 0 {
		return game.NewSeeder(seed), nil
	}
	seeder, err := game.NewEntropySeeder()
	if err != nil {
		return nil, err
	}
	log.Debug().Msgf("seeded from crypto/rand with %d", seeder.Seed())
	return seeder, nil
}

func exitOnError(err error, stop context.CancelFunc) {
	if errors.Is(err, context.Canceled) {
		log.Warn().Msg("interrupted")
		stop()
		os.Exit(meta.EXIT_INTERRUPTED)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
