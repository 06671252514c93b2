package DSU

import (
	Go_Algos "github.com/g-m-twostay/go-algos"
	"github.com/g-m-twostay/go-algos/Sets"
)

// DSU is a disjoint set union over the vertices [0, n): merge two
// groups, ask for a group's leader or size, all in amortized
// O(alpha(n)) through union by size and path compression.
// parentOrSize[v] is the parent of v when non-negative; when negative
// v is its group's leader and the value is minus the group size.
type DSU struct {
	parentOrSize []int
}

var _ Sets.Partition = (*DSU)(nil)

// New DSU of n singleton groups.
func New(n int) *DSU {
	if n < 0 {
		panic(Go_Algos.RangeError{Left: 0, Right: n, N: 0})
	}
	u := DSU{parentOrSize: make([]int, n)}
	for i := range u.parentOrSize {
		u.parentOrSize[i] = -1
	}
	return &u
}

// Len returns the number of vertices.
func (u *DSU) Len() int {
	return len(u.parentOrSize)
}

// Merge the groups containing a and b, attaching the smaller under
// the larger. Returns the leader of the merged group; if a and b were
// already together, the existing leader. Panics with RangeError on an
// out of range vertex.
// Time: amortized O(alpha(n))
func (u *DSU) Merge(a, b int) int {
	x, y := u.Leader(a), u.Leader(b)
	if x == y {
		return x
	}
	if -u.parentOrSize[x] < -u.parentOrSize[y] {
		x, y = y, x
	}
	u.parentOrSize[x] += u.parentOrSize[y]
	u.parentOrSize[y] = x
	return x
}

// Same reports whether a and b are in the same group.
// Time: amortized O(alpha(n))
func (u *DSU) Same(a, b int) bool {
	return u.Leader(a) == u.Leader(b)
}

// Leader returns the representative vertex of a's group. The walk
// compresses the path by pointing every visited vertex at its
// grandparent.
// Time: amortized O(alpha(n))
func (u *DSU) Leader(a int) int {
	if a < 0 || a >= len(u.parentOrSize) {
		panic(Go_Algos.RangeError{Left: a, Right: a + 1, N: len(u.parentOrSize)})
	}
	for u.parentOrSize[a] >= 0 {
		p := u.parentOrSize[a]
		if u.parentOrSize[p] < 0 {
			return p
		}
		u.parentOrSize[a] = u.parentOrSize[p]
		a = u.parentOrSize[p]
	}
	return a
}

// Size of a's group.
// Time: amortized O(alpha(n))
func (u *DSU) Size(a int) int {
	return -u.parentOrSize[u.Leader(a)]
}

// Groups lists every group as a slice of its members in ascending
// order; groups appear in order of their leader's index.
// Time: O(n)
func (u *DSU) Groups() [][]int {
	n := len(u.parentOrSize)
	leaders := make([]int, n)
	counts := make([]int, n)
	for i := range leaders {
		leaders[i] = u.Leader(i)
		counts[leaders[i]]++
	}
	buckets := make([][]int, n)
	for i, l := range leaders {
		if buckets[l] == nil {
			buckets[l] = make([]int, 0, counts[l])
		}
		buckets[l] = append(buckets[l], i)
	}
	result := make([][]int, 0, n)
	for _, g := range buckets {
		if g != nil {
			result = append(result, g)
		}
	}
	return result
}
