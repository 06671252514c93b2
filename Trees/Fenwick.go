package Trees

import (
	Go_Algos "github.com/g-m-twostay/go-algos"
	"golang.org/x/exp/constraints"
)

// Numeric covers the element types a Fenwick can accumulate.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Fenwick is a binary indexed tree over + on a numeric type: point
// add, prefix sum, both O(log n). data[i] holds the sum of the
// (i & -i)-sized block ending at position i (1-indexed).
// Unlike SegTree it fixes the operation to addition, which makes
// subtraction available and halves the memory.
type Fenwick[T Numeric] struct {
	n    int
	data []T
}

// NewFenwick returns a Fenwick of n zeroes.
func NewFenwick[T Numeric](n int) *Fenwick[T] {
	if n < 0 {
		panic(Go_Algos.RangeError{Left: 0, Right: n, N: 0})
	}
	return &Fenwick[T]{n: n, data: make([]T, n)}
}

// FenwickFrom returns a Fenwick initialized to the contents of vs.
// Time: O(n log n)
func FenwickFrom[T Numeric](vs []T) *Fenwick[T] {
	u := NewFenwick[T](len(vs))
	for i, v := range vs {
		u.Add(i, v)
	}
	return u
}

// Len returns the number of logical elements.
func (u *Fenwick[T]) Len() int {
	return u.n
}

// Add adds x to the element at position p. Panics with RangeError
// unless 0<=p<Len().
// Time: O(log n)
func (u *Fenwick[T]) Add(p int, x T) {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	for p++; p <= u.n; p += p & -p {
		u.data[p-1] += x
	}
}

// Sum returns the sum over [l, r). Panics with RangeError unless
// 0<=l<=r<=Len().
// Time: O(log n)
func (u *Fenwick[T]) Sum(l, r int) T {
	if l < 0 || l > r || r > u.n {
		panic(Go_Algos.RangeError{Left: l, Right: r, N: u.n})
	}
	return u.sum(r) - u.sum(l)
}

// Values returns a copy of the current logical sequence.
// Time: O(n log n)
func (u *Fenwick[T]) Values() []T {
	vs := make([]T, u.n)
	for i := range vs {
		vs[i] = u.Sum(i, i+1)
	}
	return vs
}

func (u *Fenwick[T]) sum(r int) T {
	var s T
	for ; r > 0; r -= r & -r {
		s += u.data[r-1]
	}
	return s
}
