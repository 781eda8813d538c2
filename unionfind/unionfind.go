// Package unionfind provides the disjoint-set forest that tracks super-vertices
// during edge contraction.
//
// The forest lives in two flat arrays (parent and rank) indexed by original
// vertex, so contracting an edge never rewrites the edge list: endpoints are
// resolved lazily through Find. Find uses iterative path halving; Union links
// by rank. Both run in amortized α(n) time.
//
// A UnionFind is NOT safe for concurrent use. Each contraction trial owns one.
package unionfind

// UnionFind is a disjoint-set forest over the elements 0..n-1.
type UnionFind struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a forest of n singleton sets.
// Complexity: O(n) time and space.
func New(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	u.Reset()

	return u
}

// Reset restores n singleton sets without reallocating.
func (u *UnionFind) Reset() {
	for i := range u.parent {
		u.parent[i] = i
		u.rank[i] = 0
	}
	u.sets = len(u.parent)
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Sets returns the number of disjoint sets (live super-vertices).
func (u *UnionFind) Sets() int { return u.sets }

// Find returns the representative of the set containing x.
func (u *UnionFind) Find(x int) int {
	for u.parent[x] != x {
		// Path halving: point x at its grandparent.
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Same reports whether x and y are in the same set.
func (u *UnionFind) Same(x, y int) bool { return u.Find(x) == u.Find(y) }

// Union merges the sets of x and y. It returns false when they were already
// merged, i.e. when the edge (x,y) has become a self-loop.
func (u *UnionFind) Union(x, y int) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
	default:
		u.parent[ry] = rx
		u.rank[rx]++
	}
	u.sets--

	return true
}

// Labels assigns each set a dense label in 0..Sets()-1, numbered in order of the
// smallest element of each set, and returns the label of every element.
//
// Complexity: O(n·α(n)) time, O(n) space.
func (u *UnionFind) Labels() []int {
	n := len(u.parent)
	labels := make([]int, n)
	byRoot := make([]int, n)
	for i := range byRoot {
		byRoot[i] = -1
	}
	next := 0
	for x := 0; x < n; x++ {
		r := u.Find(x)
		if byRoot[r] < 0 {
			byRoot[r] = next
			next++
		}
		labels[x] = byRoot[r]
	}

	return labels
}

// Groups returns the members of every set, grouped by Labels order.
func (u *UnionFind) Groups() [][]int {
	labels := u.Labels()
	groups := make([][]int, u.sets)
	for x, l := range labels {
		groups[l] = append(groups[l], x)
	}

	return groups
}
