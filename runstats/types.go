// Package runstats defines the record, entry, and summary types used by
// the duration-ordered run tracker.
package runstats

// Metadata carries the per-run exploration details attached to a recorded
// duration. Immutable once inserted.
type Metadata struct {
	NodesExplored int
	PathLength    int
	VisitedCount  int
}

// RunRecord is one completed search run: duration in milliseconds, the
// algorithm label, and optional metadata. Records are appended in arrival
// order and never mutated.
type RunRecord struct {
	Duration  float64
	Algorithm string
	Metadata  *Metadata
}

// Entry is one element of an ordered enumeration: a duration, the label of
// the first run recorded at that exact duration, and how many runs share
// it.
type Entry struct {
	Duration  float64
	Algorithm string
	Frequency int
}

// Summary aggregates the runs of a single algorithm.
type Summary struct {
	Runs             int
	AvgTime          float64
	BestTime         float64
	WorstTime        float64
	AvgNodesExplored float64
	AvgPathLength    float64
}

// Overall aggregates every recorded run regardless of algorithm.
// StdevDuration is the sample standard deviation, defined as zero when
// only one run exists.
type Overall struct {
	TotalRuns      int
	MeanDuration   float64
	MedianDuration float64
	StdevDuration  float64
	MinDuration    float64
	MaxDuration    float64
	AlgorithmsUsed int
}

// aggregate is the running per-algorithm tally updated on every Insert.
type aggregate struct {
	runs               int
	totalTime          float64
	totalNodesExplored int
	totalPathLength    int
	bestTime           float64
	worstTime          float64
}
