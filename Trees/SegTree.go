package Trees

import (
	Go_Algos "github.com/g-m-twostay/go-algos"
)

// SegTree is a segment tree over a monoid: a value type T together
// with an associative operation op and its identity e. It supports
// point assignment, range products over half open intervals, and
// binary searches on prefix/suffix products, all in O(log n).
// T is the type of values it will hold; op and e are bound at
// construction and never change afterwards.
// The monoid laws (associativity of op, e being a two sided identity)
// are never verified; supplying a non monoid silently produces wrong
// results. op need not be commutative: all products fold the elements
// strictly left to right.
// The n logical elements live in the leaves of a complete binary tree
// of size=2^CeilPow2(n) leaves stored as a flat array d of length
// 2*size, with d[1] as the root and node k's children at 2k and 2k+1.
// Leaves past n and unused internal slack hold e, so every internal
// node always equals op of its two children.
// A SegTree isn't safe for concurrent mutation; reads may run
// concurrently with each other but not with Set.
type SegTree[T any] struct {
	op        func(T, T) T
	e         T
	n         int // logical length
	size, log int // size=1<<log, the leaf count of the complete tree
	d         []T
}

// NewSegTree returns a SegTree of n elements all initialized to e.
// Time: O(n)
func NewSegTree[T any](op func(T, T) T, e T, n int) *SegTree[T] {
	if n < 0 {
		panic(Go_Algos.RangeError{Left: 0, Right: n, N: 0})
	}
	u := SegTree[T]{op: op, e: e, n: n, log: Go_Algos.CeilPow2(n)}
	u.size = 1 << u.log
	u.d = make([]T, 2*u.size)
	for i := range u.d {
		u.d[i] = e
	}
	return &u
}

// SegTreeFrom returns a SegTree initialized to the contents of vs.
// vs is copied; the caller keeps ownership of the slice.
// Builds every internal node bottom-up in decreasing index order, so
// each node's children are finalized before the node itself.
// Time: O(n)
func SegTreeFrom[T any](op func(T, T) T, e T, vs []T) *SegTree[T] {
	u := NewSegTree(op, e, len(vs))
	copy(u.d[u.size:], vs)
	for i := u.size - 1; i >= 1; i-- {
		u.update(i)
	}
	return u
}

// Len returns the number of logical elements.
func (u *SegTree[T]) Len() int {
	return u.n
}

// Set assigns x to position p and recomputes every ancestor, nearest
// first. Panics with RangeError unless 0<=p<Len().
// Time: O(log n)
func (u *SegTree[T]) Set(p int, x T) {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	p += u.size
	u.d[p] = x
	for i := 1; i <= u.log; i++ {
		u.update(p >> i)
	}
}

// Get returns the element at position p. Panics with RangeError
// unless 0<=p<Len().
// Time: O(1)
func (u *SegTree[T]) Get(p int) T {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	return u.d[p+u.size]
}

// Prod returns op folded left to right over the interval [l, r);
// returns e when l==r. Panics with RangeError unless 0<=l<=r<=Len().
// Two partial accumulators are kept: sml grows rightward from l, smr
// grows leftward from r, and folding d[right] on the left of smr
// preserves operand order for non commutative op.
// Time: O(log n)
func (u *SegTree[T]) Prod(l, r int) T {
	if l < 0 || l > r || r > u.n {
		panic(Go_Algos.RangeError{Left: l, Right: r, N: u.n})
	}
	sml, smr := u.e, u.e
	l += u.size
	r += u.size
	for l < r {
		if l&1 == 1 {
			sml = u.op(sml, u.d[l])
			l++
		}
		if r&1 == 1 {
			r--
			smr = u.op(u.d[r], smr)
		}
		l >>= 1
		r >>= 1
	}
	return u.op(sml, smr)
}

// AllProd returns op folded over all elements, i.e. Prod(0, Len()).
// Time: O(1)
func (u *SegTree[T]) AllProd() T {
	return u.d[1]
}

// MaxRight binary searches rightward from l. It requires g(e)==true
// (panics with SearchError otherwise) and g monotonic: once
// g(Prod(l, x)) turns false it must stay false for every larger x.
// Returns the largest r such that g(Prod(l, r)) holds, or Len() if g
// holds through the end. The result for a non monotonic g is
// undefined. Panics with RangeError unless 0<=l<=Len().
// Time: O(log n)
func (u *SegTree[T]) MaxRight(l int, g func(T) bool) int {
	if l < 0 || l > u.n {
		panic(Go_Algos.RangeError{Left: l, Right: u.n, N: u.n})
	}
	if !g(u.e) {
		panic(Go_Algos.SearchError{})
	}
	if l == u.n {
		return u.n
	}
	l += u.size
	sm := u.e
	for {
		for l&1 == 0 {
			l >>= 1
		}
		if !g(u.op(sm, u.d[l])) {
			// the boundary is inside this subtree; descend to the leaf
			for l < u.size {
				l = 2 * l
				if g(u.op(sm, u.d[l])) {
					sm = u.op(sm, u.d[l])
					l++
				}
			}
			return l - u.size
		}
		sm = u.op(sm, u.d[l])
		l++
		if l&-l == l {
			break
		}
	}
	return u.n
}

// MinLeft is the mirror of MaxRight: it searches leftward from r and
// returns the smallest l such that g(Prod(l, r)) holds, or 0. Same
// contract: g(e) must hold and g must be monotonic over growing left
// extensions. Panics with RangeError unless 0<=r<=Len().
// Time: O(log n)
func (u *SegTree[T]) MinLeft(r int, g func(T) bool) int {
	if r < 0 || r > u.n {
		panic(Go_Algos.RangeError{Left: 0, Right: r, N: u.n})
	}
	if !g(u.e) {
		panic(Go_Algos.SearchError{})
	}
	if r == 0 {
		return 0
	}
	r += u.size
	sm := u.e
	for {
		r--
		for r > 1 && r&1 == 1 {
			r >>= 1
		}
		if !g(u.op(u.d[r], sm)) {
			for r < u.size {
				r = 2*r + 1
				if g(u.op(u.d[r], sm)) {
					sm = u.op(u.d[r], sm)
					r--
				}
			}
			return r + 1 - u.size
		}
		sm = u.op(u.d[r], sm)
		if r&-r == r {
			break
		}
	}
	return 0
}

// Values returns a copy of the current logical sequence.
// Time: O(n)
func (u *SegTree[T]) Values() []T {
	vs := make([]T, u.n)
	copy(vs, u.d[u.size:u.size+u.n])
	return vs
}

func (u *SegTree[T]) update(k int) {
	u.d[k] = u.op(u.d[2*k], u.d[2*k+1])
}
