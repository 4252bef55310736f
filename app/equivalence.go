package app

import (
	"context"
	"fmt"

	"distbench/domain/core"
	"distbench/domain/sampling"
)

// VerifyEquivalence checks the property motivating the comparison: for one
// seed and lambda, the frozen-object pattern and the explicit-state pattern
// must produce bit-identical sample sequences.
func (s *ComparatorService) VerifyEquivalence(ctx context.Context, seed uint32, lambda float64, steps int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frozen, err := sampling.NewPoisson(lambda, s.rng.Handle(seed))
	if err != nil {
		return err
	}
	owned, err := frozen.Sample(steps)
	if err != nil {
		return err
	}

	explicit, err := sampling.Draw(lambda, steps, s.rng.Handle(seed))
	if err != nil {
		return err
	}

	for i := range owned {
		if owned[i] != explicit[i] {
			return fmt.Errorf("%w: seed %d position %d: object-owned %d, explicit-state %d",
				core.ErrSequenceDiverged, seed, i, owned[i], explicit[i])
		}
	}
	s.log.Debug("equivalence verified: seed %d, lambda %.2f, %d steps", seed, lambda, steps)
	return nil
}
