// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the relaxation engine:
// input validation, the regression fixture, tie-breaking, unreachable targets,
// thresholds, and strategy equivalence.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

var strategies = []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, vertices []string, edges []core.EdgeSpec) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(vertices, edges)
	require.NoError(t, err)

	return g
}

// fixture is the six-vertex regression graph.
func fixture(t testing.TB) *core.Graph {
	return mustGraph(t,
		[]string{"a", "b", "c", "d", "e", "f"},
		[]core.EdgeSpec{
			{From: "a", To: "b", Weight: 5},
			{From: "a", To: "c", Weight: 4},
			{From: "a", To: "d", Weight: 2},
			{From: "b", To: "c", Weight: 2},
			{From: "b", To: "e", Weight: 6},
			{From: "c", To: "d", Weight: 3},
			{From: "c", To: "f", Weight: 2},
			{From: "d", To: "f", Weight: 6},
			{From: "e", To: "f", Weight: 4},
		},
	)
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned before any relaxation work.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, err := dijkstra.Dijkstra(fixture(t))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("a"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnknownSource(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("x"), dijkstra.Target("e"))
	require.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), `source "x"`)
}

func TestDijkstra_UnknownTarget(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("a"), dijkstra.Target("zz"))
	require.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), `target "zz"`)
}

func TestOptions_PanicOnBadThresholds(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := dijkstra.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := dijkstra.ParseStrategy("bellman-ford")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)
}

// ------------------------------------------------------------------------
// 2. Regression fixture.
// ------------------------------------------------------------------------

func TestDijkstra_Fixture(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			p, err := dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithStrategy(s))
			require.NoError(t, err)

			assert.Equal(t, "a(0) → c(4) → f(6) → e(10)", p.String())
			assert.Equal(t, []string{"a", "c", "f", "e"}, p.IDs())
			assert.Equal(t, int64(10), p.Cost())
			assert.Equal(t, 4, p.Len())
		})
	}
}

func TestDijkstra_FixtureFinalizationOrder(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("a"), dijkstra.Target("e"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "d", "c", "b", "f", "e"}, res.Order())
	assert.Equal(t, map[string]int64{"a": 0, "b": 5, "c": 4, "d": 2, "e": 10, "f": 6}, res.Distances())

	pred, ok := res.Predecessor("b")
	require.True(t, ok)
	assert.Equal(t, "a", pred, "a-b (5) beats a→c→b (6)")

	_, ok = res.Predecessor("a")
	assert.False(t, ok, "source has no predecessor")
	assert.Equal(t, "a", res.Source())
	assert.Equal(t, "e", res.Target())
}

func TestDijkstra_StopsAtTarget(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("a"), dijkstra.Target("d"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "d"}, res.Order())
	assert.False(t, res.Finalized("c"), "run ends once the target is finalized")
	_, ok := res.Distance("c")
	assert.False(t, ok, "tentative distances are not exposed")
	_, ok = res.Predecessor("c")
	assert.False(t, ok)

	_, err = res.Path("c")
	assert.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)
}

// ------------------------------------------------------------------------
// 3. Tie-breaking and determinism.
// ------------------------------------------------------------------------

// diamond has two equal-cost routes s→x→t and s→y→t.
func diamond(t testing.TB, order []string) *core.Graph {
	return mustGraph(t, order, []core.EdgeSpec{
		{From: "s", To: "x", Weight: 1},
		{From: "s", To: "y", Weight: 1},
		{From: "x", To: "t", Weight: 1},
		{From: "y", To: "t", Weight: 1},
	})
}

func TestDijkstra_TieBreakFollowsVertexOrder(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			p, err := dijkstra.ShortestPath(diamond(t, []string{"s", "x", "y", "t"}), "s", "t", dijkstra.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, "s(0) → x(1) → t(2)", p.String())

			p, err = dijkstra.ShortestPath(diamond(t, []string{"s", "y", "x", "t"}), "s", "t", dijkstra.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, "s(0) → y(1) → t(2)", p.String())
		})
	}
}

func TestDijkstra_EqualCandidateKeepsFirstPredecessor(t *testing.T) {
	// s-t(4) is discovered first; s-m(2), m-t(2) offers an equal cost later.
	g := mustGraph(t,
		[]string{"s", "m", "t"},
		[]core.EdgeSpec{
			{From: "s", To: "t", Weight: 4},
			{From: "s", To: "m", Weight: 2},
			{From: "m", To: "t", Weight: 2},
		},
	)
	p, err := dijkstra.ShortestPath(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, "s(0) → t(4)", p.String())
}

func TestDijkstra_Deterministic(t *testing.T) {
	g := diamond(t, []string{"s", "x", "y", "t"})
	first, err := dijkstra.ShortestPath(g, "s", "t")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		p, err := dijkstra.ShortestPath(g, "s", "t")
		require.NoError(t, err)
		require.Equal(t, first.String(), p.String())
	}
}

// ------------------------------------------------------------------------
// 4. Unreachable targets and edge cases.
// ------------------------------------------------------------------------

func TestDijkstra_UnreachableTarget(t *testing.T) {
	// The fixture with every edge touching e removed.
	var edges []core.EdgeSpec
	for _, e := range fixture(t).Edges() {
		if e.Contains("e") {
			continue
		}
		edges = append(edges, core.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}
	g := mustGraph(t, []string{"a", "b", "c", "d", "e", "f"}, edges)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.Target("e"), dijkstra.WithStrategy(s))
			require.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)
			assert.Nil(t, res)

			_, err = dijkstra.ShortestPath(g, "a", "e", dijkstra.WithStrategy(s))
			assert.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)
		})
	}
}

func TestDijkstra_IsolatedSource(t *testing.T) {
	g := mustGraph(t, []string{"a", "b"}, nil)
	_, err := dijkstra.ShortestPath(g, "a", "b")
	assert.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)
}

func TestDijkstra_SourceIsTarget(t *testing.T) {
	p, err := dijkstra.ShortestPath(fixture(t), "c", "c")
	require.NoError(t, err)
	assert.Equal(t, "c(0)", p.String())
}

func TestDijkstra_ParallelEdgesAndLoops(t *testing.T) {
	g := mustGraph(t,
		[]string{"a", "b"},
		[]core.EdgeSpec{
			{From: "a", To: "a", Weight: 0},
			{From: "a", To: "b", Weight: 9},
			{From: "b", To: "a", Weight: 3},
			{From: "a", To: "b", Weight: 3},
		},
	)
	for _, s := range strategies {
		p, err := dijkstra.ShortestPath(g, "a", "b", dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, "a(0) → b(3)", p.String())
	}
}

func TestDijkstra_ZeroWeights(t *testing.T) {
	g := mustGraph(t,
		[]string{"a", "b", "c"},
		[]core.EdgeSpec{
			{From: "a", To: "b", Weight: 0},
			{From: "b", To: "c", Weight: 0},
			{From: "a", To: "c", Weight: 1},
		},
	)
	p, err := dijkstra.ShortestPath(g, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "a(0) → b(0) → c(0)", p.String())
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := mustGraph(t,
		[]string{"a", "b", "c"},
		[]core.EdgeSpec{
			{From: "a", To: "b", Weight: math.MaxInt64 - 1},
			{From: "b", To: "c", Weight: math.MaxInt64 - 1},
		},
	)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)

	d, ok := res.Distance("b")
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64-1), d)
	assert.False(t, res.Finalized("c"))
}

// ------------------------------------------------------------------------
// 5. Thresholds.
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Threshold 6 closes b-e and d-f; the optimal route does not use them.
	p, err := dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithInfEdgeThreshold(6))
	require.NoError(t, err)
	assert.Equal(t, "a(0) → c(4) → f(6) → e(10)", p.String())

	// Threshold 5 also closes a-b.
	p, err = dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, "a(0) → c(4) → f(6) → e(10)", p.String())

	// Threshold 4 closes both roads into e.
	_, err = dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithInfEdgeThreshold(4))
	assert.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("a"), dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "c", "b"}, res.Order())

	_, err = dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithMaxDistance(9))
	assert.ErrorIs(t, err, dijkstra.ErrTargetUnreachable)

	p, err := dijkstra.ShortestPath(fixture(t), "a", "e", dijkstra.WithMaxDistance(10))
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Cost())
}

// ------------------------------------------------------------------------
// 6. Result and Path accessors.
// ------------------------------------------------------------------------

func TestResult_PathIsRepeatableAndFresh(t *testing.T) {
	res, err := dijkstra.Dijkstra(fixture(t), dijkstra.Source("a"))
	require.NoError(t, err)

	p1, err := res.Path("e")
	require.NoError(t, err)
	p1[0].ID = "mutated"

	p2, err := res.Path("e")
	require.NoError(t, err)
	assert.Equal(t, "a(0) → c(4) → f(6) → e(10)", p2.String())

	_, err = res.Path("nope")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)

	_, err = res.PathToTarget()
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex, "no target configured")
}

func TestShortestPath_EmptyTarget(t *testing.T) {
	_, err := dijkstra.ShortestPath(fixture(t), "a", "")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
}

func TestPath_Empty(t *testing.T) {
	var p dijkstra.Path
	assert.Equal(t, "", p.String())
	assert.Equal(t, int64(0), p.Cost())
	assert.Empty(t, p.IDs())
}
