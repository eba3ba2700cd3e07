package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Workers   int
	Trials    int64
	Flips     int64
	StartTime time.Time
	Duration  time.Duration
}

// FlipsPerSecond is the simulation throughput of the run.
func (m RunMetric) FlipsPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Flips) / m.Duration.Seconds()
}

type Collector interface {
	Start(workers int)
	AddTrial(flips int)
	Complete() RunMetric
}

type collector struct {
	workers   int
	startTime time.Time
	trials    atomic.Int64
	flips     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.trials.Store(0)
	m.flips.Store(0)
}

func (m *collector) AddTrial(flips int) {
	m.trials.Add(1)
	m.flips.Add(int64(flips))
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Workers:   m.workers,
		Trials:    m.trials.Load(),
		Flips:     m.flips.Load(),
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)   {}
func (m *dummyCollector) AddTrial(flips int)  {}
func (m *dummyCollector) Complete() RunMetric { return RunMetric{} }
