// Package builder_test verifies topology, counts, determinism and the known
// minimum cuts of every constructor.
package builder_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/exact"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)

	return g
}

func TestBuilders_CountsAndKnownCuts(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(11)}
	tests := []struct {
		name    string
		opts    []builder.BuilderOption
		ctor    builder.Constructor
		wantV   int
		wantE   int
		wantCut int
	}{
		{"Cycle(5)", nil, builder.Cycle(5), 5, 5, 2},
		{"Path(4)", nil, builder.Path(4), 4, 3, 1},
		{"Star(6)", nil, builder.Star(6), 6, 5, 1},
		{"Wheel(6)", nil, builder.Wheel(6), 6, 10, 3},
		{"Wheel(4) is K4", nil, builder.Wheel(4), 4, 6, 3},
		{"Complete(5)", nil, builder.Complete(5), 5, 10, 4},
		{"Barbell(3)", nil, builder.Barbell(3), 6, 7, 1},
		{"Barbell(5)", nil, builder.Barbell(5), 10, 21, 1},
		{"Needle(4,p=1)", nil, builder.Needle(4, 1), 4, 7, 2},
		{"Cycle(4)x3", []builder.BuilderOption{builder.WithMultiplicity(3)}, builder.Cycle(4), 4, 12, 6},
		{"RandomSparse(8,p=1)", seeded, builder.RandomSparse(8, 1), 8, 28, 7},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.opts, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			cut, err := exact.StoerWagner(g)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCut, cut.Value)
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Barbell(1)", nil, builder.Barbell(1), builder.ErrTooFewVertices},
		{"Needle(2)", nil, builder.Needle(2, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", nil, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"Needle(p>1)", nil, builder.Needle(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse without rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"Needle without rng", nil, builder.Needle(5, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"shuffle without rng", []builder.BuilderOption{builder.WithShuffle()}, builder.Cycle(3), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed, "no constructors means no vertices")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMultiplicity(0) })
}

func TestNeedle_Structure(t *testing.T) {
	const n = 50
	g := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.Needle(n, 0.5))
	require.Equal(t, n, g.VertexCount())

	// Needle edges come first, then only haystack/backbone edges avoid vertex 0.
	assert.Equal(t, core.Edge{U: 0, V: 1}, g.Edge(0))
	assert.Equal(t, core.Edge{U: 0, V: 2}, g.Edge(1))
	deg := g.Degrees()
	assert.Equal(t, 2, deg[0])
	for v := 1; v < n; v++ {
		assert.Greater(t, deg[v], 2, "haystack vertex %d must out-degree the needle", v)
	}

	// Backbone closes the edge list.
	edges := g.Edges()
	tail := edges[len(edges)-(n-2):]
	for i, e := range tail {
		assert.Equal(t, core.Edge{U: i + 1, V: i + 2}, e)
	}

	cut, err := exact.StoerWagner(g)
	require.NoError(t, err)
	assert.Equal(t, core.Cut{Value: 2, Side: []int{0}}, cut)
}

func TestRandom_SeedDeterminism(t *testing.T) {
	a := build(t, []builder.BuilderOption{builder.WithSeed(99)}, builder.RandomSparse(30, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(99)}, builder.RandomSparse(30, 0.3))
	if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
		t.Fatalf("same seed produced different graphs (-a +b):\n%s", diff)
	}

	c := build(t, []builder.BuilderOption{builder.WithSeed(100)}, builder.RandomSparse(30, 0.3))
	assert.NotEqual(t, a.Edges(), c.Edges())
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g := build(t, nil, builder.Path(2), builder.Cycle(3))
	want := []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 2}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, g.Connected())
}

func TestWithShuffle_PreservesDegreeMultiset(t *testing.T) {
	plain := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.Needle(20, 0.5))
	shuffled := build(t, []builder.BuilderOption{builder.WithSeed(1), builder.WithShuffle()}, builder.Needle(20, 0.5))

	a, b := plain.Degrees(), shuffled.Degrees()
	sort.Ints(a)
	sort.Ints(b)
	assert.Equal(t, a, b)
	assert.Equal(t, plain.EdgeCount(), shuffled.EdgeCount())

	cut, err := exact.StoerWagner(shuffled)
	require.NoError(t, err)
	assert.Equal(t, 2, cut.Value)
	require.Len(t, cut.Side, 1)
	assert.Equal(t, 2, shuffled.Degrees()[cut.Side[0]])
}
