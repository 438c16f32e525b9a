// Command voxmaze generates a 3D maze and races the search algorithms
// through it, printing per-run timings and an aggregate leaderboard.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
