package runstats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxmaze/runstats"
)

func durations(entries []runstats.Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Duration
	}
	return out
}

func TestTracker_EmptyQueries(t *testing.T) {
	tr := runstats.New()

	_, ok := tr.Fastest()
	assert.False(t, ok)
	_, ok = tr.Slowest()
	assert.False(t, ok)
	_, ok = tr.OverallStatistics()
	assert.False(t, ok)
	assert.Empty(t, tr.InOrder())
	assert.Empty(t, tr.Leaderboard(5))
	assert.Empty(t, tr.PerAlgorithmSummary())
}

func TestTracker_OrderingAndCollisions(t *testing.T) {
	tr := runstats.New()
	tr.Insert(5.0, "BFS", nil)
	tr.Insert(2.0, "A* (Manhattan)", nil)
	tr.Insert(8.0, "Dijkstra", nil)
	tr.Insert(2.0, "BFS", nil)

	board := tr.Leaderboard(3)
	assert.Equal(t, []float64{2.0, 2.0, 5.0}, durations(board))
	assert.Equal(t, 2, board[0].Frequency, "exact-duration collision aggregates on one node")
	assert.Equal(t, "A* (Manhattan)", board[0].Algorithm, "label of the first run at that duration")

	inorder := tr.InOrder()
	assert.Equal(t, []float64{2.0, 5.0, 8.0}, durations(inorder), "one entry per distinct duration, ascending")
	assert.Equal(t, 2, inorder[0].Frequency)
}

func TestTracker_LeaderboardLimit(t *testing.T) {
	tr := runstats.New()
	for _, d := range []float64{4, 1, 3, 2} {
		tr.Insert(d, "BFS", nil)
	}
	assert.Len(t, tr.Leaderboard(2), 2)
	assert.Len(t, tr.Leaderboard(100), 4, "limit is capped by the recorded runs")
	assert.Empty(t, tr.Leaderboard(0))
	assert.Empty(t, tr.Leaderboard(-1))
	assert.Equal(t, []float64{1, 2}, durations(tr.Leaderboard(2)))
}

func TestTracker_SkewedInsertStillOrders(t *testing.T) {
	// Ascending inserts skew the unbalanced tree into a right spine; the
	// queries stay correct, only their depth degrades.
	tr := runstats.New()
	for d := 1.0; d <= 64; d++ {
		tr.Insert(d, "BFS", nil)
	}
	fastest, ok := tr.Fastest()
	require.True(t, ok)
	assert.Equal(t, 1.0, fastest.Duration)
	slowest, ok := tr.Slowest()
	require.True(t, ok)
	assert.Equal(t, 64.0, slowest.Duration)
	assert.Len(t, tr.InOrder(), 64)
}

func TestTracker_FastestSlowest(t *testing.T) {
	tr := runstats.New()
	tr.Insert(7.5, "BFS", nil)
	tr.Insert(1.25, "Dijkstra", nil)
	tr.Insert(9.75, "BFS", nil)

	fastest, ok := tr.Fastest()
	require.True(t, ok)
	assert.Equal(t, 1.25, fastest.Duration)
	assert.Equal(t, "Dijkstra", fastest.Algorithm)

	slowest, ok := tr.Slowest()
	require.True(t, ok)
	assert.Equal(t, 9.75, slowest.Duration)
}

func TestTracker_PerAlgorithmSummary(t *testing.T) {
	tr := runstats.New()
	tr.Insert(2.0, "BFS", &runstats.Metadata{NodesExplored: 100, PathLength: 10})
	tr.Insert(4.0, "BFS", &runstats.Metadata{NodesExplored: 200, PathLength: 12})
	tr.Insert(3.0, "Dijkstra", nil)

	summary := tr.PerAlgorithmSummary()
	require.Len(t, summary, 2)

	bfs := summary["BFS"]
	assert.Equal(t, 2, bfs.Runs)
	assert.InDelta(t, 3.0, bfs.AvgTime, 1e-12)
	assert.Equal(t, 2.0, bfs.BestTime)
	assert.Equal(t, 4.0, bfs.WorstTime)
	assert.InDelta(t, 150.0, bfs.AvgNodesExplored, 1e-12)
	assert.InDelta(t, 11.0, bfs.AvgPathLength, 1e-12)

	dij := summary["Dijkstra"]
	assert.Equal(t, 1, dij.Runs)
	assert.Zero(t, dij.AvgNodesExplored, "nil metadata contributes nothing")
}

func TestTracker_OverallStatistics(t *testing.T) {
	tr := runstats.New()
	for _, d := range []float64{1, 2, 3, 4} {
		tr.Insert(d, "BFS", nil)
	}
	tr.Insert(5, "Dijkstra", nil)

	overall, ok := tr.OverallStatistics()
	require.True(t, ok)
	assert.Equal(t, 5, overall.TotalRuns)
	assert.InDelta(t, 3.0, overall.MeanDuration, 1e-12)
	assert.InDelta(t, 3.0, overall.MedianDuration, 1e-12)
	// Sample standard deviation of 1..5 is sqrt(2.5).
	assert.InDelta(t, math.Sqrt(2.5), overall.StdevDuration, 1e-12)
	assert.Equal(t, 1.0, overall.MinDuration)
	assert.Equal(t, 5.0, overall.MaxDuration)
	assert.Equal(t, 2, overall.AlgorithmsUsed)
}

func TestTracker_OverallMedianEven(t *testing.T) {
	tr := runstats.New()
	for _, d := range []float64{8, 1, 5, 3} {
		tr.Insert(d, "BFS", nil)
	}
	overall, ok := tr.OverallStatistics()
	require.True(t, ok)
	assert.InDelta(t, 4.0, overall.MedianDuration, 1e-12, "median of {1,3,5,8}")
}

func TestTracker_SingleRunStdevZero(t *testing.T) {
	tr := runstats.New()
	tr.Insert(3.5, "BFS", nil)
	overall, ok := tr.OverallStatistics()
	require.True(t, ok)
	assert.Zero(t, overall.StdevDuration)
	assert.Equal(t, 3.5, overall.MedianDuration)
}

func TestTracker_RunsArrivalOrder(t *testing.T) {
	tr := runstats.New()
	tr.Insert(5, "BFS", nil)
	tr.Insert(2, "Dijkstra", &runstats.Metadata{PathLength: 3})

	runs := tr.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, 5.0, runs[0].Duration)
	assert.Equal(t, "Dijkstra", runs[1].Algorithm)
	require.NotNil(t, runs[1].Metadata)
	assert.Equal(t, 3, runs[1].Metadata.PathLength)
}

func TestTracker_Clear(t *testing.T) {
	tr := runstats.New()
	tr.Insert(1, "BFS", nil)
	tr.Insert(2, "BFS", nil)
	tr.Clear()

	_, ok := tr.Fastest()
	assert.False(t, ok)
	assert.Empty(t, tr.Runs())
	assert.Empty(t, tr.InOrder())
	_, ok = tr.OverallStatistics()
	assert.False(t, ok)

	// A cleared tracker accepts fresh inserts.
	tr.Insert(9, "Dijkstra", nil)
	fastest, ok := tr.Fastest()
	require.True(t, ok)
	assert.Equal(t, 9.0, fastest.Duration)
}
