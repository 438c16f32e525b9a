// Package runstats ranks search runs by duration and summarizes them.
//
// What:
//
//   - Tracker owns a binary search tree keyed strictly by run duration,
//     an append-only run sequence, and per-algorithm running aggregates.
//   - Exact duration collisions are aggregated on the existing node
//     (frequency counter plus metadata list), never treated as errors.
//   - Queries: ascending in-order enumeration, an early-terminating
//     leaderboard walk, leftmost/rightmost fastest/slowest lookups,
//     per-algorithm summaries, and overall statistics (mean, median,
//     sample standard deviation via gonum/stat, min, max).
//
// Why a plain BST:
//
//   - The tree deliberately does not self-balance. Sorted-duration insert
//     sequences skew it and query cost degrades toward O(n); that skew is
//     an observed characteristic of the structure, kept as-is rather than
//     silently upgraded to a balanced tree.
//
// Empty-state behavior:
//
//   - Fastest, Slowest, and OverallStatistics return ok == false on an
//     empty Tracker; no query ever panics.
//
// Concurrency:
//
//   - A Tracker is single-owner, like the grid: synchronize externally if
//     multiple goroutines must record runs.
package runstats
