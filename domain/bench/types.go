// Package bench defines the domain records produced by a sampling-pattern
// comparison run.
package bench

import (
	"time"

	"distbench/domain/core"
)

// Variant names one of the two call patterns under comparison
type Variant string

const (
	// VariantObjectOwned constructs one frozen distribution object per agent
	VariantObjectOwned Variant = "object_owned"
	// VariantExplicitState passes a raw generator handle to a stateless draw
	VariantExplicitState Variant = "explicit_state"
)

// Experiment describes one benchmark configuration: Agents independent
// entities each drawing Steps Poisson(Lambda) samples.
type Experiment struct {
	Agents int     `json:"agents"`
	Steps  int     `json:"steps"`
	Lambda float64 `json:"lambda"`
}

// Validate checks the experiment parameters. Zero agents or zero steps are
// legal degenerate runs; a non-positive lambda is not.
func (e Experiment) Validate() error {
	if e.Agents < 0 {
		return core.ErrNegativeAgentCount
	}
	if e.Steps < 0 {
		return core.ErrNegativeSampleCount
	}
	if !(e.Lambda > 0) {
		return core.ErrInvalidLambda
	}
	return nil
}

// VariantResult is the timing record for one variant of one experiment
type VariantResult struct {
	Variant       Variant       `json:"variant"`
	Experiment    Experiment    `json:"experiment"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	SamplingCalls int           `json:"sampling_calls"`
}

// PerCall returns the mean wall-clock time of one top-level sampling call
func (r VariantResult) PerCall() time.Duration {
	if r.SamplingCalls == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.SamplingCalls)
}

// Comparison is the full record of one run: both variants executed with
// independent seed batches against the same experiment parameters.
type Comparison struct {
	RunID         core.RunID     `json:"run_id"`
	Experiment    Experiment     `json:"experiment"`
	ObjectOwned   VariantResult  `json:"object_owned"`
	ExplicitState VariantResult  `json:"explicit_state"`
	Speedup       float64        `json:"speedup"`
	StartedAt     core.Timestamp `json:"started_at"`
	FinishedAt    core.Timestamp `json:"finished_at"`
}

// Faster names the variant with the lower elapsed time
func (c *Comparison) Faster() Variant {
	if c.ObjectOwned.Elapsed <= c.ExplicitState.Elapsed {
		return VariantObjectOwned
	}
	return VariantExplicitState
}

// ComputeSpeedup returns object-owned elapsed divided by explicit-state
// elapsed, the ratio the demonstration is after. Zero when undefined.
func (c *Comparison) ComputeSpeedup() float64 {
	if c.ExplicitState.Elapsed <= 0 {
		return 0
	}
	return float64(c.ObjectOwned.Elapsed) / float64(c.ExplicitState.Elapsed)
}
