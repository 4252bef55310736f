// Package rng implements ports.RNGPort over math/rand/v2 PCG sources.
package rng

import (
	"context"
	"math/rand/v2"

	"distbench/domain/core"
	"distbench/domain/sampling"
)

// PCGAdapter derives agent seeds from a single parent generator injected at
// construction, so a run's entire seed sequence is reproducible from one
// top-level seed.
type PCGAdapter struct {
	parent *rand.Rand
}

// NewPCGAdapter creates an adapter whose parent generator is seeded with seed
func NewPCGAdapter(seed uint64) *PCGAdapter {
	return &PCGAdapter{parent: rand.New(rand.NewPCG(seed, seed))}
}

// SeedBatch draws n seeds uniformly from [0, 2^32)
func (a *PCGAdapter) SeedBatch(ctx context.Context, n int) ([]uint32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, core.ErrNegativeAgentCount
	}
	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = a.parent.Uint32()
	}
	return seeds, nil
}

// Handle constructs an independent generator handle from a seed
func (a *PCGAdapter) Handle(seed uint32) rand.Source {
	return sampling.NewSource(seed)
}

// ValidateSeed replays seed against a Poisson(lambda) draw and compares the
// produced prefix with expected.
func (a *PCGAdapter) ValidateSeed(ctx context.Context, seed uint32, lambda float64, expected []int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	got, err := sampling.Draw(lambda, len(expected), a.Handle(seed))
	if err != nil {
		return err
	}
	for i := range expected {
		if got[i] != expected[i] {
			return core.NewSeedMismatchError(seed, i, got[i], expected[i])
		}
	}
	return nil
}
