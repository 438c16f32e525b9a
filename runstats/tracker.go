// Package runstats: Tracker implementation (BST inserts, ordered walks,
// aggregate summaries).
package runstats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Tracker owns the duration-keyed binary search tree, the append-only run
// sequence, and the per-algorithm running aggregates. It is exclusively
// owned by one logical caller at a time, like the rest of the core.
//
// The tree is a plain BST by design: durations arriving in sorted order
// skew it and queries degrade toward O(n). That is an accepted
// characteristic of the structure, preserved rather than silently upgraded
// to a balanced tree.
type Tracker struct {
	root        *node
	runs        []RunRecord
	byAlgorithm map[string]*aggregate
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{byAlgorithm: make(map[string]*aggregate)}
}

// Insert records one completed run: the duration lands in the BST (exact
// collisions aggregate on the existing node) and the per-algorithm running
// tallies are updated. meta may be nil.
// Complexity: O(tree depth).
func (t *Tracker) Insert(duration float64, algorithm string, meta *Metadata) {
	t.root = insert(t.root, duration, algorithm, meta)

	agg, ok := t.byAlgorithm[algorithm]
	if !ok {
		agg = &aggregate{bestTime: math.Inf(1)}
		t.byAlgorithm[algorithm] = agg
	}
	agg.runs++
	agg.totalTime += duration
	agg.bestTime = math.Min(agg.bestTime, duration)
	agg.worstTime = math.Max(agg.worstTime, duration)
	if meta != nil {
		agg.totalNodesExplored += meta.NodesExplored
		agg.totalPathLength += meta.PathLength
	}

	t.runs = append(t.runs, RunRecord{Duration: duration, Algorithm: algorithm, Metadata: meta})
}

// InOrder enumerates the distinct recorded durations in ascending order,
// one Entry per BST node.
// Complexity: O(n).
func (t *Tracker) InOrder() []Entry {
	entries := make([]Entry, 0, len(t.runs))
	inOrder(t.root, &entries)
	return entries
}

// Leaderboard returns the limit smallest-duration runs in ascending order.
// A node with frequency k contributes up to k consecutive entries, each
// reporting the node's frequency. The walk is an in-order traversal cut
// off as soon as limit entries are emitted, not a full sort.
// Complexity: O(depth + limit).
func (t *Tracker) Leaderboard(limit int) []Entry {
	if limit <= 0 {
		return nil
	}
	entries := make([]Entry, 0, limit)

	// Iterative in-order walk with an explicit stack so the traversal can
	// stop mid-tree once the limit is reached.
	stack := make([]*node, 0, 16)
	current := t.root
	for (current != nil || len(stack) > 0) && len(entries) < limit {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < n.count && len(entries) < limit; i++ {
			entries = append(entries, Entry{Duration: n.duration, Algorithm: n.algorithm, Frequency: n.count})
		}
		current = n.right
	}
	return entries
}

// Fastest returns the smallest-duration entry. ok is false when no runs
// have been recorded.
// Complexity: O(depth), not O(1).
func (t *Tracker) Fastest() (Entry, bool) {
	n := leftmost(t.root)
	if n == nil {
		return Entry{}, false
	}
	return Entry{Duration: n.duration, Algorithm: n.algorithm, Frequency: n.count}, true
}

// Slowest returns the largest-duration entry. ok is false when no runs
// have been recorded.
// Complexity: O(depth), not O(1).
func (t *Tracker) Slowest() (Entry, bool) {
	n := rightmost(t.root)
	if n == nil {
		return Entry{}, false
	}
	return Entry{Duration: n.duration, Algorithm: n.algorithm, Frequency: n.count}, true
}

// PerAlgorithmSummary derives average/best/worst duration and average
// exploration figures from the running aggregates, one Summary per
// algorithm label. Divisions only happen for labels with a nonzero run
// count, which is every label present in the map.
// Complexity: O(algorithms).
func (t *Tracker) PerAlgorithmSummary() map[string]Summary {
	out := make(map[string]Summary, len(t.byAlgorithm))
	for label, agg := range t.byAlgorithm {
		if agg.runs == 0 {
			continue
		}
		runs := float64(agg.runs)
		out[label] = Summary{
			Runs:             agg.runs,
			AvgTime:          agg.totalTime / runs,
			BestTime:         agg.bestTime,
			WorstTime:        agg.worstTime,
			AvgNodesExplored: float64(agg.totalNodesExplored) / runs,
			AvgPathLength:    float64(agg.totalPathLength) / runs,
		}
	}
	return out
}

// OverallStatistics summarizes every recorded run. ok is false on an empty
// tracker, never a crash. The standard deviation is the sample variant and
// zero when only one run exists.
// Complexity: O(n log n) for the median sort.
func (t *Tracker) OverallStatistics() (Overall, bool) {
	if len(t.runs) == 0 {
		return Overall{}, false
	}
	durations := make([]float64, len(t.runs))
	for i, r := range t.runs {
		durations[i] = r.Duration
	}
	sort.Float64s(durations)

	stdev := 0.0
	if len(durations) > 1 {
		stdev = stat.StdDev(durations, nil)
	}

	return Overall{
		TotalRuns:      len(durations),
		MeanDuration:   stat.Mean(durations, nil),
		MedianDuration: median(durations),
		StdevDuration:  stdev,
		MinDuration:    durations[0],
		MaxDuration:    durations[len(durations)-1],
		AlgorithmsUsed: len(t.byAlgorithm),
	}, true
}

// median returns the classic even/odd median of a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Runs returns the append-only run sequence in arrival order. The caller
// must not mutate the returned slice.
func (t *Tracker) Runs() []RunRecord {
	return t.runs
}

// Clear discards the tree, the run sequence, and all aggregates, returning
// the Tracker to its empty initial state.
func (t *Tracker) Clear() {
	t.root = nil
	t.runs = nil
	t.byAlgorithm = make(map[string]*aggregate)
}
