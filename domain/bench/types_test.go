package bench

import (
	"errors"
	"testing"
	"time"

	"distbench/domain/core"
)

func TestExperimentValidate(t *testing.T) {
	valid := Experiment{Agents: 10, Steps: 100, Lambda: 5.0}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid experiment rejected: %v", err)
	}

	// Degenerate but legal
	if err := (Experiment{Agents: 0, Steps: 0, Lambda: 5.0}).Validate(); err != nil {
		t.Fatalf("zero agents/steps should be legal: %v", err)
	}

	cases := []struct {
		name string
		exp  Experiment
		want error
	}{
		{"negative agents", Experiment{Agents: -1, Steps: 10, Lambda: 5.0}, core.ErrNegativeAgentCount},
		{"negative steps", Experiment{Agents: 10, Steps: -1, Lambda: 5.0}, core.ErrNegativeSampleCount},
		{"zero lambda", Experiment{Agents: 10, Steps: 10, Lambda: 0}, core.ErrInvalidLambda},
		{"negative lambda", Experiment{Agents: 10, Steps: 10, Lambda: -12}, core.ErrInvalidLambda},
	}
	for _, tc := range cases {
		if err := tc.exp.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestVariantResultPerCall(t *testing.T) {
	r := VariantResult{Elapsed: 100 * time.Millisecond, SamplingCalls: 100}
	if got := r.PerCall(); got != time.Millisecond {
		t.Errorf("PerCall = %s, want 1ms", got)
	}

	empty := VariantResult{}
	if got := empty.PerCall(); got != 0 {
		t.Errorf("PerCall with zero calls = %s, want 0", got)
	}
}

func TestComparisonSpeedupAndFaster(t *testing.T) {
	cmp := &Comparison{
		ObjectOwned:   VariantResult{Variant: VariantObjectOwned, Elapsed: 300 * time.Millisecond},
		ExplicitState: VariantResult{Variant: VariantExplicitState, Elapsed: 100 * time.Millisecond},
	}
	cmp.Speedup = cmp.ComputeSpeedup()

	if cmp.Speedup != 3.0 {
		t.Errorf("Speedup = %f, want 3.0", cmp.Speedup)
	}
	if cmp.Faster() != VariantExplicitState {
		t.Errorf("Faster = %s, want %s", cmp.Faster(), VariantExplicitState)
	}

	undefined := &Comparison{}
	if got := undefined.ComputeSpeedup(); got != 0 {
		t.Errorf("ComputeSpeedup with zero elapsed = %f, want 0", got)
	}
}
