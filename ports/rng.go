package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides seeded random number generation for deterministic experiments.
// It is the single injectable source of top-level randomness: nothing in the
// comparator touches process-global generator state.
type RNGPort interface {
	// SeedBatch draws n agent seeds uniformly from [0, 2^32). Seeds are not
	// guaranteed distinct; collisions are possible and acceptable.
	SeedBatch(ctx context.Context, n int) ([]uint32, error)

	// Handle constructs an independent generator handle from a seed. Handles
	// built from the same seed produce identical draw sequences.
	Handle(seed uint32) rand.Source

	// ValidateSeed replays a seed against a Poisson(lambda) draw and checks
	// the produced prefix against an expected sequence.
	ValidateSeed(ctx context.Context, seed uint32, lambda float64, expected []int64) error
}
