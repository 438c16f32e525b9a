package runstats

// node is one vertex of the duration-keyed binary search tree. Exact
// floating-point duration collisions land on an existing node: the
// frequency counter grows and the metadata list is appended, no duplicate
// node is created. Nodes are only ever bulk-cleared, never deleted
// individually.
type node struct {
	duration  float64
	algorithm string // label of the first run at this exact duration
	count     int
	runs      []Metadata
	left      *node
	right     *node
}

// insert places (duration, algorithm, meta) into the subtree rooted at n
// and returns the new subtree root. Iterative descent; the tree is
// deliberately unbalanced, so recursion depth would track tree depth and
// degrade on sorted input.
// Complexity: O(depth).
func insert(root *node, duration float64, algorithm string, meta *Metadata) *node {
	fresh := &node{duration: duration, algorithm: algorithm, count: 1}
	if meta != nil {
		fresh.runs = append(fresh.runs, *meta)
	}
	if root == nil {
		return fresh
	}
	current := root
	for {
		switch {
		case duration < current.duration:
			if current.left == nil {
				current.left = fresh
				return root
			}
			current = current.left
		case duration > current.duration:
			if current.right == nil {
				current.right = fresh
				return root
			}
			current = current.right
		default:
			// Exact collision: aggregate, do not error.
			current.count++
			if meta != nil {
				current.runs = append(current.runs, *meta)
			}
			return root
		}
	}
}

// inOrder walks left-subtree, node, right-subtree, emitting one Entry per
// distinct duration in ascending order.
// Complexity: O(n).
func inOrder(n *node, out *[]Entry) {
	if n == nil {
		return
	}
	inOrder(n.left, out)
	*out = append(*out, Entry{Duration: n.duration, Algorithm: n.algorithm, Frequency: n.count})
	inOrder(n.right, out)
}

// leftmost returns the minimum-duration node of the subtree, nil for an
// empty subtree.
// Complexity: O(depth).
func leftmost(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the maximum-duration node of the subtree.
// Complexity: O(depth).
func rightmost(n *node) *node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
