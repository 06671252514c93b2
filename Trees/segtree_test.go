package Trees

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	Go_Algos "github.com/g-m-twostay/go-algos"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tN        = 64
	tOps      = 4000
	tValRange = 1000
)

func addInt(a, b int) int { return a + b }
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

const intInf = int(^uint(0) >> 1)

func expectRangePanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if _, ok := recover().(Go_Algos.RangeError); !ok {
			t.Errorf("expected RangeError panic")
		}
	}()
	f()
}

func TestSegTree_Sum(t *testing.T) {
	tree := SegTreeFrom(addInt, 0, []int{5, 3, 7, 9, 6})
	if a := tree.Prod(1, 4); a != 19 {
		t.Errorf("prod(1,4) is %d, want 19", a)
	}
	tree.Set(1, 1)
	if a := tree.Prod(1, 4); a != 17 {
		t.Errorf("prod(1,4) is %d, want 17", a)
	}
	if a := tree.AllProd(); a != 28 {
		t.Errorf("all prod is %d, want 28", a)
	}
	if a := tree.Get(1); a != 1 {
		t.Errorf("get(1) is %d, want 1", a)
	}
	if !slices.Equal(tree.Values(), []int{5, 1, 7, 9, 6}) {
		t.Errorf("wrong values %v", tree.Values())
	}
}

func TestSegTree_Min(t *testing.T) {
	tree := SegTreeFrom(minInt, intInf, []int{5, 3, 7, 9, 6})
	if a := tree.Prod(1, 4); a != 3 {
		t.Errorf("prod(1,4) is %d, want 3", a)
	}
	if a := tree.MaxRight(2, func(x int) bool { return x >= 7 }); a != 4 {
		t.Errorf("max right is %d, want 4", a)
	}
	if a := tree.MinLeft(4, func(x int) bool { return x >= 7 }); a != 2 {
		t.Errorf("min left is %d, want 2", a)
	}
}

func TestSegTree_Random(t *testing.T) {
	content := make([]int, tN)
	for i := range content {
		content[i] = rg.Intn(tValRange)
	}
	tree := SegTreeFrom(addInt, 0, content)
	for range tOps {
		if rg.Intn(2) == 0 {
			p, x := rg.Intn(tN), rg.Intn(tValRange)
			tree.Set(p, x)
			content[p] = x
		}
		l := rg.Intn(tN + 1)
		r := l + rg.Intn(tN+1-l)
		want := 0
		for _, v := range content[l:r] {
			want += v
		}
		if a := tree.Prod(l, r); a != want {
			t.Fatalf("prod(%d,%d) is %d, want %d", l, r, a, want)
		}
		if a := tree.Prod(l, r); a != tree.Prod(l, r) {
			t.Fatalf("prod(%d,%d) not idempotent", l, r)
		}
	}
	for i, v := range content {
		if a := tree.Get(i); a != v {
			t.Errorf("get(%d) is %d, want %d", i, a, v)
		}
	}
	if a := tree.AllProd(); a != tree.Prod(0, tN) {
		t.Errorf("all prod %d != prod(0,n) %d", a, tree.Prod(0, tN))
	}
	for i := range tN + 1 {
		if a := tree.Prod(i, i); a != 0 {
			t.Errorf("prod(%d,%d) is %d, want 0", i, i, a)
		}
	}
}

// concatenation is associative but not commutative, so this checks
// that products keep strict left to right operand order.
func TestSegTree_Concat(t *testing.T) {
	content := make([]string, 41)
	for i := range content {
		content[i] = string(rune('a' + i%26))
	}
	tree := SegTreeFrom(func(a, b string) string { return a + b }, "", content)
	for l := 0; l <= len(content); l++ {
		for r := l; r <= len(content); r++ {
			if a := tree.Prod(l, r); a != strings.Join(content[l:r], "") {
				t.Fatalf("prod(%d,%d) is %q", l, r, a)
			}
		}
	}
}

func TestSegTree_MaxRightMinLeft(t *testing.T) {
	content := make([]int, tN)
	for i := range content {
		content[i] = rg.Intn(tValRange)
	}
	tree := SegTreeFrom(addInt, 0, content)
	for range 200 {
		bound := rg.Intn(tValRange * tN / 4)
		g := func(x int) bool { return x <= bound }
		l := rg.Intn(tN + 1)
		want, sm := l, 0
		for want < tN && sm+content[want] <= bound {
			sm += content[want]
			want++
		}
		if a := tree.MaxRight(l, g); a != want {
			t.Fatalf("max right(%d) is %d, want %d", l, a, want)
		}
		r := rg.Intn(tN + 1)
		want, sm = r, 0
		for want > 0 && sm+content[want-1] <= bound {
			sm += content[want-1]
			want--
		}
		if a := tree.MinLeft(r, g); a != want {
			t.Fatalf("min left(%d) is %d, want %d", r, a, want)
		}
	}
}

func TestSegTree_Empty(t *testing.T) {
	tree := NewSegTree(addInt, 0, 0)
	if a := tree.Prod(0, 0); a != 0 {
		t.Errorf("prod(0,0) is %d, want 0", a)
	}
	if a := tree.AllProd(); a != 0 {
		t.Errorf("all prod is %d, want 0", a)
	}
	if a := tree.MaxRight(0, func(int) bool { return true }); a != 0 {
		t.Errorf("max right is %d, want 0", a)
	}
	if a := tree.MinLeft(0, func(int) bool { return true }); a != 0 {
		t.Errorf("min left is %d, want 0", a)
	}
	expectRangePanic(t, func() { tree.Get(0) })
	expectRangePanic(t, func() { tree.Set(0, 1) })
}

func TestSegTree_Contract(t *testing.T) {
	tree := NewSegTree(addInt, 0, 8)
	expectRangePanic(t, func() { tree.Get(-1) })
	expectRangePanic(t, func() { tree.Get(8) })
	expectRangePanic(t, func() { tree.Set(8, 1) })
	expectRangePanic(t, func() { tree.Prod(3, 2) })
	expectRangePanic(t, func() { tree.Prod(0, 9) })
	expectRangePanic(t, func() { tree.MaxRight(9, func(int) bool { return true }) })
	defer func() {
		if _, ok := recover().(Go_Algos.SearchError); !ok {
			t.Errorf("expected SearchError panic")
		}
	}()
	tree.MaxRight(0, func(int) bool { return false })
}
