// Package app orchestrates sampling-pattern comparison runs.
package app

import (
	"context"
	"time"

	"distbench/domain/bench"
	"distbench/domain/core"
	"distbench/domain/sampling"
	"distbench/internal"
	"distbench/internal/profiling"
	"distbench/ports"
)

// Labels for tracked top-level sampling calls, one per variant
const (
	LabelObjectSample   = "poisson_object_sample"
	LabelExplicitSample = "poisson_explicit_sample"
)

// ComparatorService executes and times the two sampling call patterns.
// Each run owns its seeds and handles; nothing is shared between agents,
// variants, or runs. Execution is synchronous and single-threaded.
type ComparatorService struct {
	rng ports.RNGPort
	log *internal.Logger
}

// NewComparatorService creates a comparator over the given seed source
func NewComparatorService(rng ports.RNGPort, logger *internal.Logger) *ComparatorService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ComparatorService{rng: rng, log: logger}
}

// RunObjectOwned runs the object-owned variant: per agent, construct a frozen
// Poisson distribution seeded for that agent, then draw Steps samples through
// it. Sample values are discarded; only elapsed time is kept. collector may
// be nil.
func (s *ComparatorService) RunObjectOwned(ctx context.Context, exp bench.Experiment, collector *profiling.Collector) (*bench.VariantResult, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	seeds, err := s.rng.SeedBatch(ctx, exp.Agents)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	for _, seed := range seeds {
		stop := track(collector, LabelObjectSample)
		dist, err := sampling.NewPoisson(exp.Lambda, s.rng.Handle(seed))
		if err != nil {
			return nil, err
		}
		if _, err := dist.Sample(exp.Steps); err != nil {
			return nil, err
		}
		stop()
	}
	elapsed := time.Since(start)

	s.log.Debug("object-owned variant: %d agents x %d steps in %s", exp.Agents, exp.Steps, elapsed)
	return &bench.VariantResult{
		Variant:       bench.VariantObjectOwned,
		Experiment:    exp,
		Elapsed:       elapsed,
		SamplingCalls: len(seeds),
	}, nil
}

// RunExplicitState runs the explicit-state variant: per agent, construct only
// a raw generator handle and pass it to the stateless draw function. The
// handle advances in place; values are discarded. collector may be nil.
func (s *ComparatorService) RunExplicitState(ctx context.Context, exp bench.Experiment, collector *profiling.Collector) (*bench.VariantResult, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	seeds, err := s.rng.SeedBatch(ctx, exp.Agents)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	for _, seed := range seeds {
		src := s.rng.Handle(seed)
		stop := track(collector, LabelExplicitSample)
		if _, err := sampling.Draw(exp.Lambda, exp.Steps, src); err != nil {
			return nil, err
		}
		stop()
	}
	elapsed := time.Since(start)

	s.log.Debug("explicit-state variant: %d agents x %d steps in %s", exp.Agents, exp.Steps, elapsed)
	return &bench.VariantResult{
		Variant:       bench.VariantExplicitState,
		Experiment:    exp,
		Elapsed:       elapsed,
		SamplingCalls: len(seeds),
	}, nil
}

// Compare runs both variants back to back with independent seed batches and
// assembles the full comparison record.
func (s *ComparatorService) Compare(ctx context.Context, exp bench.Experiment, collector *profiling.Collector) (*bench.Comparison, error) {
	startedAt := core.Now()

	objectOwned, err := s.RunObjectOwned(ctx, exp, collector)
	if err != nil {
		return nil, err
	}
	explicitState, err := s.RunExplicitState(ctx, exp, collector)
	if err != nil {
		return nil, err
	}

	cmp := &bench.Comparison{
		RunID:         core.NewRunID(),
		Experiment:    exp,
		ObjectOwned:   *objectOwned,
		ExplicitState: *explicitState,
		StartedAt:     startedAt,
		FinishedAt:    core.Now(),
	}
	cmp.Speedup = cmp.ComputeSpeedup()

	s.log.Info("run %s: object-owned %s vs explicit-state %s (ratio %.2f, faster: %s)",
		cmp.RunID, cmp.ObjectOwned.Elapsed, cmp.ExplicitState.Elapsed, cmp.Speedup, cmp.Faster())
	return cmp, nil
}

// track starts one tracked call when a collector is attached
func track(collector *profiling.Collector, label string) func() {
	if collector == nil {
		return func() {}
	}
	return collector.Track(label)
}
