package Trees

import (
	"testing"
)

func TestFenwick_Basic(t *testing.T) {
	tree := NewFenwick[int](5)
	tree.Add(1, 3)
	tree.Add(3, 5)
	if a := tree.Sum(1, 4); a != 8 {
		t.Errorf("sum(1,4) is %d, want 8", a)
	}
	if a := tree.Sum(0, 5); a != 8 {
		t.Errorf("sum(0,5) is %d, want 8", a)
	}
	tree.Add(1, -4)
	if a := tree.Sum(0, 2); a != -1 {
		t.Errorf("sum(0,2) is %d, want -1", a)
	}
}

func TestFenwick_Random(t *testing.T) {
	content := make([]int, tN)
	tree := NewFenwick[int](tN)
	for range tOps {
		if rg.Intn(2) == 0 {
			p, x := rg.Intn(tN), rg.Intn(tValRange)-tValRange/2
			tree.Add(p, x)
			content[p] += x
		}
		l := rg.Intn(tN + 1)
		r := l + rg.Intn(tN+1-l)
		want := 0
		for _, v := range content[l:r] {
			want += v
		}
		if a := tree.Sum(l, r); a != want {
			t.Fatalf("sum(%d,%d) is %d, want %d", l, r, a, want)
		}
	}
}

func TestFenwick_From(t *testing.T) {
	content := make([]float64, tN)
	for i := range content {
		content[i] = float64(rg.Intn(tValRange)) / 4
	}
	tree := FenwickFrom(content)
	vs := tree.Values()
	for i, v := range content {
		if vs[i] != v {
			t.Errorf("value %d is %f, want %f", i, vs[i], v)
		}
	}
}

func TestFenwick_Contract(t *testing.T) {
	tree := NewFenwick[int](0)
	if a := tree.Sum(0, 0); a != 0 {
		t.Errorf("sum(0,0) is %d, want 0", a)
	}
	expectRangePanic(t, func() { tree.Add(0, 1) })
	tree = NewFenwick[int](4)
	expectRangePanic(t, func() { tree.Add(-1, 1) })
	expectRangePanic(t, func() { tree.Add(4, 1) })
	expectRangePanic(t, func() { tree.Sum(2, 1) })
	expectRangePanic(t, func() { tree.Sum(0, 5) })
}
