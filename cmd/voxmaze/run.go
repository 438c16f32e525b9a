package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxmaze/grid"
	"github.com/katalvlaran/voxmaze/mazegen"
	"github.com/katalvlaran/voxmaze/runstats"
	"github.com/katalvlaran/voxmaze/search"
)

var (
	flagWidth  int    // X extent of the maze
	flagHeight int    // Y extent of the maze
	flagDepth  int    // Z extent of the maze
	flagGen    string // generation algorithm selector
	flagSeed   int64  // RNG seed; 0 picks a time-based seed
	flagRuns   int    // number of generate-and-solve rounds
	flagStart  string // start coordinate "x,y,z"
	flagGoal   string // goal coordinate "x,y,z"; empty means far corner
	flagAlgos  string // comma-separated search algorithm names
	flagTop    int    // leaderboard size
)

var rootCmd = &cobra.Command{
	Use:   "voxmaze",
	Short: "Generate a 3D maze and compare pathfinding algorithms on it",
	Long: `Generates a perfect 3D maze (recursive backtracking or randomized
Kruskal) and solves it with the selected search algorithms, reporting
duration, path length, and nodes explored per run plus an aggregate
leaderboard ranked by duration.

Examples:
  voxmaze                                  # 10x10x10, all algorithms
  voxmaze --width 5 --height 5 --depth 5   # smaller cube
  voxmaze --gen kruskal --seed 42          # reproducible Kruskal maze
  voxmaze --algos bfs,dijkstra --runs 3    # repeated comparison
  voxmaze --start 0,0,0 --goal 9,9,9       # explicit endpoints`,
	SilenceUsage: true,
	RunE:         runComparison,
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 10, "maze width (X extent)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 10, "maze height (Y extent)")
	rootCmd.Flags().IntVar(&flagDepth, "depth", 10, "maze depth (Z extent)")
	rootCmd.Flags().StringVar(&flagGen, "gen", "recursive_backtracking", "generation algorithm: recursive_backtracking|kruskal")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.Flags().IntVar(&flagRuns, "runs", 1, "number of generate-and-solve rounds")
	rootCmd.Flags().StringVar(&flagStart, "start", "0,0,0", "start coordinate x,y,z")
	rootCmd.Flags().StringVar(&flagGoal, "goal", "", "goal coordinate x,y,z (default: far corner)")
	rootCmd.Flags().StringVar(&flagAlgos, "algos", "astar_manhattan,astar_euclidean,bfs,dijkstra,bidirectional", "comma-separated search algorithms")
	rootCmd.Flags().IntVar(&flagTop, "top", 10, "leaderboard size")
}

// parseCoord parses "x,y,z" into a grid.Coord.
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return grid.Coord{}, fmt.Errorf("coordinate %q: want x,y,z", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		vals[i] = v
	}
	return grid.Coord{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// validateCoord rejects out-of-range components at the boundary, before
// the core is invoked.
func validateCoord(name string, c grid.Coord, w, h, d int) error {
	if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h || c.Z < 0 || c.Z >= d {
		return fmt.Errorf("%s %v outside %dx%dx%d grid", name, c, w, h, d)
	}
	return nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	genAlgo, err := mazegen.ParseAlgorithm(flagGen)
	if err != nil {
		return err
	}

	var algos []search.Algorithm
	for _, name := range strings.Split(flagAlgos, ",") {
		a, err := search.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		algos = append(algos, a)
	}

	start, err := parseCoord(flagStart)
	if err != nil {
		return err
	}
	goalSpec := flagGoal
	if goalSpec == "" {
		goalSpec = fmt.Sprintf("%d,%d,%d", flagWidth-1, flagHeight-1, flagDepth-1)
	}
	goal, err := parseCoord(goalSpec)
	if err != nil {
		return err
	}
	if err := validateCoord("start", start, flagWidth, flagHeight, flagDepth); err != nil {
		return err
	}
	if err := validateCoord("goal", goal, flagWidth, flagHeight, flagDepth); err != nil {
		return err
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	tracker := runstats.New()
	out := cmd.OutOrStdout()

	for run := 0; run < flagRuns; run++ {
		if flagRuns > 1 {
			fmt.Fprintf(out, "\n--- round %d/%d ---\n", run+1, flagRuns)
		}

		g, err := grid.New(flagWidth, flagHeight, flagDepth)
		if err != nil {
			return err
		}
		if err := mazegen.Generate(g,
			mazegen.WithAlgorithm(genAlgo),
			mazegen.WithSeed(baseSeed+int64(run)),
		); err != nil {
			return err
		}

		stats := g.Stats()
		fmt.Fprintf(out, "maze %s via %s: %d cells, %d walls, %d openings\n",
			stats.Dimensions, stats.Generator, stats.Cells, stats.Walls, stats.Openings)

		for _, algo := range algos {
			began := time.Now()
			res, err := search.Solve(g, start, goal, algo)
			if err != nil {
				return err
			}
			durationMS := float64(time.Since(began)) / float64(time.Millisecond)

			if !res.Found() {
				fmt.Fprintf(out, "%-18s  no path (%d nodes explored)\n", algo, res.NodesExplored)
				continue
			}
			tracker.Insert(durationMS, algo.String(), &runstats.Metadata{
				NodesExplored: res.NodesExplored,
				PathLength:    res.PathLength(),
				VisitedCount:  res.VisitedCount,
			})
			fmt.Fprintf(out, "%-18s  %8.3f ms  path %4d  explored %5d\n",
				algo, durationMS, res.PathLength(), res.NodesExplored)
		}
	}

	printComparison(out, tracker)
	printLeaderboard(out, tracker, flagTop)
	printOverall(out, tracker)

	return nil
}

// printComparison prints the per-algorithm summary table sorted by average
// duration, fastest first.
func printComparison(out io.Writer, tracker *runstats.Tracker) {
	summary := tracker.PerAlgorithmSummary()
	if len(summary) == 0 {
		fmt.Fprintln(out, "\nno successful runs to compare")
		return
	}
	labels := make([]string, 0, len(summary))
	for label := range summary {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return summary[labels[i]].AvgTime < summary[labels[j]].AvgTime
	})

	fmt.Fprintf(out, "\n%-20s %6s %12s %12s %12s %12s\n",
		"algorithm", "runs", "avg ms", "best ms", "worst ms", "avg nodes")
	for _, label := range labels {
		s := summary[label]
		fmt.Fprintf(out, "%-20s %6d %12.3f %12.3f %12.3f %12.1f\n",
			label, s.Runs, s.AvgTime, s.BestTime, s.WorstTime, s.AvgNodesExplored)
	}
}

// printLeaderboard prints the top fastest runs in ascending duration.
func printLeaderboard(out io.Writer, tracker *runstats.Tracker, top int) {
	board := tracker.Leaderboard(top)
	if len(board) == 0 {
		return
	}
	fmt.Fprintf(out, "\nleaderboard (fastest %d)\n", len(board))
	for i, e := range board {
		fmt.Fprintf(out, "#%-3d %10.3f ms  %-20s x%d\n", i+1, e.Duration, e.Algorithm, e.Frequency)
	}
}

// printOverall prints the cross-run statistics block.
func printOverall(out io.Writer, tracker *runstats.Tracker) {
	overall, ok := tracker.OverallStatistics()
	if !ok {
		return
	}
	fmt.Fprintf(out, "\noverall: %d runs, %d algorithms | mean %.3f ms, median %.3f ms, stdev %.3f ms, min %.3f ms, max %.3f ms\n",
		overall.TotalRuns, overall.AlgorithmsUsed,
		overall.MeanDuration, overall.MedianDuration, overall.StdevDuration,
		overall.MinDuration, overall.MaxDuration)
}
