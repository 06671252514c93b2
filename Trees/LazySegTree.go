package Trees

import (
	Go_Algos "github.com/g-m-twostay/go-algos"
)

// LazySegTree extends SegTree with range updates through a second
// algebraic structure: a set F of mappings over T, applied by
// mapping(f, x), combined by composition(f, g) (apply g first, then
// f), with identity mapping id. A pending mapping at an internal node
// has already been applied to the node's own stored product but not
// yet to its children; push moves it one level down. All laws
// (mapping(id,x)==x, mapping(composition(f,g),x)==
// mapping(f,mapping(g,x)), plus the monoid laws of op) are caller
// contracts and never checked.
// Reads mutate the lazy array as a side effect of pushing, so no
// method of a LazySegTree may run concurrently with any other.
type LazySegTree[T, F any] struct {
	op          func(T, T) T
	e           T
	mapping     func(F, T) T
	composition func(F, F) F
	id          F
	n           int
	size, log   int
	d           []T
	lz          []F // lz[k] is pending for node k's children; leaves have no slot
}

// NewLazySegTree returns a LazySegTree of n elements all initialized
// to e.
// Time: O(n)
func NewLazySegTree[T, F any](op func(T, T) T, e T, mapping func(F, T) T, composition func(F, F) F, id F, n int) *LazySegTree[T, F] {
	if n < 0 {
		panic(Go_Algos.RangeError{Left: 0, Right: n, N: 0})
	}
	u := LazySegTree[T, F]{op: op, e: e, mapping: mapping, composition: composition, id: id, n: n, log: Go_Algos.CeilPow2(n)}
	u.size = 1 << u.log
	u.d = make([]T, 2*u.size)
	for i := range u.d {
		u.d[i] = e
	}
	u.lz = make([]F, u.size)
	for i := range u.lz {
		u.lz[i] = id
	}
	return &u
}

// LazySegTreeFrom returns a LazySegTree initialized to the contents
// of vs. vs is copied; the caller keeps ownership of the slice.
// Time: O(n)
func LazySegTreeFrom[T, F any](op func(T, T) T, e T, mapping func(F, T) T, composition func(F, F) F, id F, vs []T) *LazySegTree[T, F] {
	u := NewLazySegTree(op, e, mapping, composition, id, len(vs))
	copy(u.d[u.size:], vs)
	for i := u.size - 1; i >= 1; i-- {
		u.update(i)
	}
	return u
}

// Len returns the number of logical elements.
func (u *LazySegTree[T, F]) Len() int {
	return u.n
}

// Set assigns x to position p. Every ancestor's pending mapping is
// pushed root first beforehand, then the path is recomputed bottom
// up. Panics with RangeError unless 0<=p<Len().
// Time: O(log n)
func (u *LazySegTree[T, F]) Set(p int, x T) {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	p += u.size
	for i := u.log; i >= 1; i-- {
		u.push(p >> i)
	}
	u.d[p] = x
	for i := 1; i <= u.log; i++ {
		u.update(p >> i)
	}
}

// Get returns the element at position p, pushing all ancestors root
// first so the leaf reflects every pending mapping. Panics with
// RangeError unless 0<=p<Len().
// Time: O(log n)
func (u *LazySegTree[T, F]) Get(p int) T {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	p += u.size
	for i := u.log; i >= 1; i-- {
		u.push(p >> i)
	}
	return u.d[p]
}

// Prod returns op folded left to right over [l, r); e when l==r.
// Only the boundary ancestors whose intervals straddle l or r are
// pushed (coarse to fine); fully aligned levels already hold correct
// products. Panics with RangeError unless 0<=l<=r<=Len().
// Time: O(log n)
func (u *LazySegTree[T, F]) Prod(l, r int) T {
	if l < 0 || l > r || r > u.n {
		panic(Go_Algos.RangeError{Left: l, Right: r, N: u.n})
	}
	if l == r {
		return u.e
	}
	l += u.size
	r += u.size
	for i := u.log; i >= 1; i-- {
		if (l>>i)<<i != l {
			u.push(l >> i)
		}
		if (r>>i)<<i != r {
			u.push((r - 1) >> i)
		}
	}
	sml, smr := u.e, u.e
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

// AllProd returns op folded over all elements. The root never has a
// pending mapping applied to itself, so this needs no pushes.
// Time: O(1)
func (u *LazySegTree[T, F]) AllProd() T {
	return u.d[1]
}

// Apply maps the single element at p through f. Panics with
// RangeError unless 0<=p<Len().
// Time: O(log n)
func (u *LazySegTree[T, F]) Apply(p int, f F) {
	if p < 0 || p >= u.n {
		panic(Go_Algos.RangeError{Left: p, Right: p + 1, N: u.n})
	}
	p += u.size
	for i := u.log; i >= 1; i-- {
		u.push(p >> i)
	}
	u.d[p] = u.mapping(f, u.d[p])
	for i := 1; i <= u.log; i++ {
		u.update(p >> i)
	}
}

// ApplyRange maps every element of [l, r) through f; a no-op when
// l==r. The boundary ancestors are pushed top down exactly as in
// Prod, f is then applied to every maximal node fully covered by
// [l, r) with the same doubling traversal, and finally both boundary
// paths are recomputed bottom up. Panics with RangeError unless
// 0<=l<=r<=Len().
// Time: O(log n)
func (u *LazySegTree[T, F]) ApplyRange(l, r int, f F) {
	if l < 0 || l > r || r > u.n {
		panic(Go_Algos.RangeError{Left: l, Right: r, N: u.n})
	}
	if l == r {
		return
	}
	l += u.size
	r += u.size
	for i := u.log; i >= 1; i-- {
		if (l>>i)<<i != l {
			u.push(l >> i)
		}
		if (r>>i)<<i != r {
			u.push((r - 1) >> i)
		}
	}
	for l2, r2 := l, r; l2 < r2; {
		if l2&1 == 1 {
			u.allApply(l2, f)
			l2++
		}
		if r2&1 == 1 {
			r2--
			u.allApply(r2, f)
		}
		l2 >>= 1
		r2 >>= 1
	}
	for i := 1; i <= u.log; i++ {
		if (l>>i)<<i != l {
			u.update(l >> i)
		}
		if (r>>i)<<i != r {
			u.update((r - 1) >> i)
		}
	}
}

// MaxRight is SegTree.MaxRight with the same contract; every node
// read or descended into is pushed first so the accumulated product
// reflects pending mappings.
// Time: O(log n)
func (u *LazySegTree[T, F]) MaxRight(l int, g func(T) bool) int {
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
	for i := u.log; i >= 1; i-- {
		u.push(l >> i)
	}
	sm := u.e
	for {
		for l&1 == 0 {
			l >>= 1
		}
		if !g(u.op(sm, u.d[l])) {
			for l < u.size {
				u.push(l)
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

// MinLeft is SegTree.MinLeft with the same contract and the same
// push discipline as MaxRight.
// Time: O(log n)
func (u *LazySegTree[T, F]) MinLeft(r int, g func(T) bool) int {
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
	for i := u.log; i >= 1; i-- {
		u.push((r - 1) >> i)
	}
	sm := u.e
	for {
		r--
		for r > 1 && r&1 == 1 {
			r >>= 1
		}
		if !g(u.op(u.d[r], sm)) {
			for r < u.size {
				u.push(r)
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

// Values returns a copy of the current logical sequence, reflecting
// every pending mapping.
// Time: O(n log n)
func (u *LazySegTree[T, F]) Values() []T {
	vs := make([]T, u.n)
	for i := range vs {
		vs[i] = u.Get(i)
	}
	return vs
}

// update, allApply and push are the only places where the tree
// invariants are momentarily broken; every public method restores
// them before returning.

func (u *LazySegTree[T, F]) update(k int) {
	u.d[k] = u.op(u.d[2*k], u.d[2*k+1])
}

// allApply maps node k's product through f and, if k is internal,
// records f in its lazy slot for later propagation.
func (u *LazySegTree[T, F]) allApply(k int, f F) {
	u.d[k] = u.mapping(f, u.d[k])
	if k < u.size {
		u.lz[k] = u.composition(f, u.lz[k])
	}
}

// push hands node k's pending mapping to both children and resets it
// to id.
func (u *LazySegTree[T, F]) push(k int) {
	u.allApply(2*k, u.lz[k])
	u.allApply(2*k+1, u.lz[k])
	u.lz[k] = u.id
}
