package Sets

// Partition of the integers [0, n) into disjoint groups.
type Partition interface {
	// Merge the groups containing a and b; returns the leader of the
	// merged group.
	Merge(a, b int) int
	// Same reports whether a and b are in the same group.
	Same(a, b int) bool
	// Leader returns the representative of a's group.
	Leader(a int) int
	// Size of a's group.
	Size(a int) int
	// Groups lists every group as a slice of its members.
	Groups() [][]int
}
