package Go_Algos

import "fmt"

// RangeError is the panic value for indexes or intervals outside the
// logical bounds of a structure. For a single index p it holds
// Left=p, Right=p+1.
type RangeError struct {
	Left, Right, N int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) out of bounds for length %d", e.Left, e.Right, e.N)
}

// SearchError is the panic value for a binary search predicate that
// rejects the identity element.
type SearchError struct{}

func (e SearchError) Error() string {
	return "search predicate must hold for the identity element"
}
