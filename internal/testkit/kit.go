// Package testkit provides deterministic fixtures for comparator tests.
package testkit

import (
	"distbench/adapters/rng"
	"distbench/app"
	"distbench/domain/bench"
	"distbench/internal"
)

// DefaultSeed is the parent seed used by fixtures unless overridden
const DefaultSeed uint64 = 42

// Kit wires a deterministic comparator for tests
type Kit struct {
	RNG *rng.PCGAdapter
	Log *internal.Logger
}

// NewKit creates a kit with the default parent seed
func NewKit() *Kit {
	return NewKitWithSeed(DefaultSeed)
}

// NewKitWithSeed creates a kit whose seed batches replay from seed
func NewKitWithSeed(seed uint64) *Kit {
	return &Kit{
		RNG: rng.NewPCGAdapter(seed),
		Log: internal.NewLogger(internal.LogLevelError),
	}
}

// Comparator builds a comparator service over the kit's RNG
func (k *Kit) Comparator() *app.ComparatorService {
	return app.NewComparatorService(k.RNG, k.Log)
}

// Experiment builds an experiment record
func (k *Kit) Experiment(agents, steps int, lambda float64) bench.Experiment {
	return bench.Experiment{Agents: agents, Steps: steps, Lambda: lambda}
}
