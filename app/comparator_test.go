package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distbench/app"
	"distbench/domain/bench"
	"distbench/domain/core"
	"distbench/internal/profiling"
	"distbench/internal/testkit"
)

func TestRunVariantsCallCounts(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()
	exp := kit.Experiment(50, 20, 12.0)

	collector := profiling.NewCollector()

	objectOwned, err := service.RunObjectOwned(ctx, exp, collector)
	require.NoError(t, err)
	explicitState, err := service.RunExplicitState(ctx, exp, collector)
	require.NoError(t, err)

	// Exactly one top-level sampling call per agent, per variant
	assert.Equal(t, 50, objectOwned.SamplingCalls)
	assert.Equal(t, 50, explicitState.SamplingCalls)
	assert.Equal(t, 50, collector.Calls(app.LabelObjectSample))
	assert.Equal(t, 50, collector.Calls(app.LabelExplicitSample))

	assert.Equal(t, bench.VariantObjectOwned, objectOwned.Variant)
	assert.Equal(t, bench.VariantExplicitState, explicitState.Variant)
	assert.Greater(t, objectOwned.Elapsed.Nanoseconds(), int64(0))
	assert.Greater(t, explicitState.Elapsed.Nanoseconds(), int64(0))
}

func TestRunVariantZeroAgents(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()
	exp := kit.Experiment(0, 1000, 12.0)

	collector := profiling.NewCollector()

	objectOwned, err := service.RunObjectOwned(ctx, exp, collector)
	require.NoError(t, err)
	explicitState, err := service.RunExplicitState(ctx, exp, collector)
	require.NoError(t, err)

	assert.Zero(t, objectOwned.SamplingCalls)
	assert.Zero(t, explicitState.SamplingCalls)
	assert.Zero(t, collector.Calls(app.LabelObjectSample))
	assert.Zero(t, collector.Calls(app.LabelExplicitSample))
}

func TestRunVariantZeroSteps(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()
	exp := kit.Experiment(25, 0, 5.0)

	objectOwned, err := service.RunObjectOwned(ctx, exp, nil)
	require.NoError(t, err)
	explicitState, err := service.RunExplicitState(ctx, exp, nil)
	require.NoError(t, err)

	assert.Equal(t, 25, objectOwned.SamplingCalls)
	assert.Equal(t, 25, explicitState.SamplingCalls)
}

func TestRunVariantInvalidParameters(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()

	_, err := service.RunObjectOwned(ctx, kit.Experiment(10, 10, 0), nil)
	assert.ErrorIs(t, err, core.ErrInvalidLambda)

	_, err = service.RunExplicitState(ctx, kit.Experiment(10, 10, -5), nil)
	assert.ErrorIs(t, err, core.ErrInvalidLambda)

	_, err = service.RunObjectOwned(ctx, kit.Experiment(-1, 10, 5.0), nil)
	assert.ErrorIs(t, err, core.ErrNegativeAgentCount)

	_, err = service.RunExplicitState(ctx, kit.Experiment(10, -1, 5.0), nil)
	assert.ErrorIs(t, err, core.ErrNegativeSampleCount)
}

func TestCompare(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()
	exp := kit.Experiment(100, 50, 12.0)

	collector := profiling.NewCollector()
	cmp, err := service.Compare(ctx, exp, collector)
	require.NoError(t, err)

	assert.False(t, core.ID(cmp.RunID).IsEmpty())
	assert.Equal(t, exp, cmp.Experiment)
	assert.Equal(t, 100, cmp.ObjectOwned.SamplingCalls)
	assert.Equal(t, 100, cmp.ExplicitState.SamplingCalls)
	assert.Greater(t, cmp.Speedup, 0.0)
	assert.False(t, cmp.StartedAt.IsZero())
	assert.False(t, cmp.FinishedAt.IsZero())
	assert.False(t, cmp.FinishedAt.Before(cmp.StartedAt))

	// Both variants tracked through the shared collector
	assert.Equal(t, 100, collector.Calls(app.LabelObjectSample))
	assert.Equal(t, 100, collector.Calls(app.LabelExplicitSample))
}

func TestVerifyEquivalence(t *testing.T) {
	kit := testkit.NewKit()
	service := kit.Comparator()
	ctx := context.Background()

	for _, seed := range []uint32{0, 7, 12345, 4294967295} {
		assert.NoError(t, service.VerifyEquivalence(ctx, seed, 12.0, 500))
	}

	// Invalid parameters surface unmodified
	err := service.VerifyEquivalence(ctx, 1, -1.0, 10)
	assert.ErrorIs(t, err, core.ErrInvalidLambda)
}
