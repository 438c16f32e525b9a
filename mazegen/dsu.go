package mazegen

// dsu is a disjoint-set union over the flattened coordinate space of one
// grid. It exists only for the duration of a Kruskal run and is discarded
// when generation completes.
type dsu struct {
	parent []int
	rank   []int
	sets   int
}

// newDSU initializes n singleton sets labeled 0..n-1.
// Complexity: O(n).
func newDSU(n int) *dsu {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
	}
	return &dsu{parent: parent, rank: rank, sets: n}
}

// find returns the root of the set containing i. Iterative, with
// grandparent path compression to avoid deep walks on later calls.
// Complexity: amortized near O(1).
func (u *dsu) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

// union merges the sets containing i and j by rank. Returns false when the
// two are already in the same set; the caller must then skip the edge,
// which is what keeps the carved graph cycle-free.
// Complexity: amortized near O(1).
func (u *dsu) union(i, j int) bool {
	rootI, rootJ := u.find(i), u.find(j)
	if rootI == rootJ {
		return false
	}
	switch {
	case u.rank[rootI] < u.rank[rootJ]:
		u.parent[rootI] = rootJ
	case u.rank[rootI] > u.rank[rootJ]:
		u.parent[rootJ] = rootI
	default:
		u.parent[rootI] = rootJ
		u.rank[rootJ]++
	}
	u.sets--
	return true
}

// connected reports whether i and j share a set.
func (u *dsu) connected(i, j int) bool {
	return u.find(i) == u.find(j)
}
