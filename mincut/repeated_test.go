package mincut_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/mincut"
)

func TestRepeatedMinCut_Needle50(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(2024)}, builder.Needle(50, 0.5))

	res, err := mincut.RepeatedMinCut(context.Background(), g, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, core.Cut{Value: 2, Side: []int{0}}, res.Cut)
	assert.Equal(t, 100, res.Trials)
	assert.Equal(t, 100, res.Completed)
	assert.Positive(t, res.Hits)
	assert.Equal(t, int64(42), res.Seed)
}

func TestRepeatedMinCut_ContractBase(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.Needle(30, 0.5))

	res, err := mincut.RepeatedMinCut(context.Background(), g, 200, 9,
		mincut.WithBaseMode(mincut.BaseContract), mincut.WithBaseRepeats(3))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cut.Value)
}

func TestRepeatedMinCut_TwoTriangles(t *testing.T) {
	g := mustBuild(t, nil, builder.Barbell(3))

	res, err := mincut.RepeatedMinCut(context.Background(), g, 200, 3, mincut.WithStrategy(mincut.StrategyKarger))
	require.NoError(t, err)
	assert.Equal(t, core.Cut{Value: 1, Side: []int{0, 1, 2}}, res.Cut)
	assert.LessOrEqual(t, res.Hits, res.Completed)
}

// Trial i depends only on (seed, i), so the result is independent of the
// worker count.
func TestRepeatedMinCut_DeterministicAcrossWorkers(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.2))

	want, err := mincut.RepeatedMinCut(context.Background(), g, 24, 77, mincut.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 64} {
		got, err := mincut.RepeatedMinCut(context.Background(), g, 24, 77, mincut.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

// Growing the budget under a fixed seed only adds trials, so the value never increases.
func TestRepeatedMinCut_MonotoneInBudget(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(8)}, builder.Needle(40, 0.4))

	prev := -1
	for trials := 1; trials <= 30; trials++ {
		res, err := mincut.RepeatedMinCut(context.Background(), g, trials, 1234, mincut.WithStrategy(mincut.StrategyKarger))
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, res.Cut.Value, prev, "trials=%d", trials)
		}
		prev = res.Cut.Value
	}
}

func TestRepeatedMinCut_EntropySeed(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(20, 0.3))

	res, err := mincut.RepeatedMinCut(context.Background(), g, 5, 0)
	require.NoError(t, err)
	assert.NotZero(t, res.Seed)

	replay, err := mincut.RepeatedMinCut(context.Background(), g, 5, res.Seed)
	require.NoError(t, err)
	assert.Equal(t, res, replay)
}

func TestRepeatedMinCut_Disconnected(t *testing.T) {
	g := core.MustGraph(4, core.Edge{U: 0, V: 1}, core.Edge{U: 2, V: 3})

	res, err := mincut.RepeatedMinCut(context.Background(), g, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cut.Value)
	assert.Equal(t, 10, res.Hits)
	assert.Equal(t, 10, res.Completed)
}

func TestRepeatedMinCut_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := mincut.RepeatedMinCut(ctx, triangle(), 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Completed)
}

func TestRepeatedMinCut_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := mincut.RepeatedMinCut(ctx, nil, 1, 1)
	assert.ErrorIs(t, err, mincut.ErrNilGraph)

	_, err = mincut.RepeatedMinCut(ctx, core.MustGraph(1), 1, 1)
	assert.ErrorIs(t, err, mincut.ErrTooFewVertices)

	_, err = mincut.RepeatedMinCut(ctx, triangle(), 0, 1)
	assert.ErrorIs(t, err, mincut.ErrBadTrials)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, mincut.DeriveSeed(7, 3), mincut.DeriveSeed(7, 3))
	assert.NotEqual(t, mincut.DeriveSeed(7, 3), mincut.DeriveSeed(7, 4))
	assert.NotEqual(t, mincut.DeriveSeed(7, 3), mincut.DeriveSeed(8, 3))

	a, b := mincut.TrialRand(5, 0), mincut.TrialRand(5, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}

	s, err := mincut.NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, s)
}
