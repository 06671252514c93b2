package Strings

import (
	"cmp"
	"slices"

	Go_Algos "github.com/g-m-twostay/go-algos"
)

// SA-IS operates on int sequences over the alphabet [0, upper]; small
// inputs fall back to plain sorting or prefix doubling, which beat
// the induced sort below these sizes.
const (
	thresholdNaive    = 10
	thresholdDoubling = 40
)

func saNaive(s []int) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(x, y int) int {
		for x < len(s) && y < len(s) {
			if s[x] != s[y] {
				return s[x] - s[y]
			}
			x++
			y++
		}
		if x == len(s) {
			return -1
		}
		return 1
	})
	return sa
}

func saDoubling(s []int) []int {
	n := len(s)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	rnk := slices.Clone(s)
	tmp := make([]int, n)
	for k := 1; k < n; k *= 2 {
		cmpK := func(x, y int) int {
			if rnk[x] != rnk[y] {
				return rnk[x] - rnk[y]
			}
			rx, ry := -1, -1
			if x+k < n {
				rx = rnk[x+k]
			}
			if y+k < n {
				ry = rnk[y+k]
			}
			return rx - ry
		}
		slices.SortFunc(sa, cmpK)
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if cmpK(sa[i-1], sa[i]) != 0 {
				tmp[sa[i]]++
			}
		}
		tmp, rnk = rnk, tmp
	}
	return sa
}

// saIS computes the suffix array by induced sorting: classify each
// position as S or L type, induce an order from the LMS substrings,
// and recurse on the reduced LMS sequence when ranks collide.
//
// Reference:
// G. Nong, S. Zhang, and W. H. Chan,
// Two Efficient Algorithms for Linear Time Suffix Array Construction
func saIS(s []int, upper int) []int {
	n := len(s)
	switch n {
	case 0:
		return []int{}
	case 1:
		return []int{0}
	case 2:
		if s[0] < s[1] {
			return []int{0, 1}
		}
		return []int{1, 0}
	}
	if n < thresholdNaive {
		return saNaive(s)
	}
	if n < thresholdDoubling {
		return saDoubling(s)
	}

	sa := make([]int, n)
	ls := Go_Algos.NewBitArray(n) // set = S type, i.e. suffix i sorts before suffix i+1
	for i := n - 2; i >= 0; i-- {
		if s[i] == s[i+1] {
			if ls.Get(i + 1) {
				ls.Set(i)
			}
		} else if s[i] < s[i+1] {
			ls.Set(i)
		}
	}
	// bucket boundaries: sumS[c] is where the S run of character c
	// starts, sumL[c] where the L run starts.
	sumL := make([]int, upper+2)
	sumS := make([]int, upper+2)
	for i := 0; i < n; i++ {
		if !ls.Get(i) {
			sumS[s[i]]++
		} else {
			sumL[s[i]+1]++
		}
	}
	for i := 0; i <= upper; i++ {
		sumS[i] += sumL[i]
		if i < upper {
			sumL[i+1] += sumS[i]
		}
	}

	buf := make([]int, upper+2)
	induce := func(lms []int) {
		for i := range sa {
			sa[i] = -1
		}
		copy(buf, sumS)
		for _, d := range lms {
			if d == n {
				continue
			}
			sa[buf[s[d]]] = d
			buf[s[d]]++
		}
		copy(buf, sumL)
		sa[buf[s[n-1]]] = n - 1
		buf[s[n-1]]++
		for i := 0; i < n; i++ {
			if v := sa[i]; v >= 1 && !ls.Get(v-1) {
				sa[buf[s[v-1]]] = v - 1
				buf[s[v-1]]++
			}
		}
		copy(buf, sumL)
		for i := n - 1; i >= 0; i-- {
			if v := sa[i]; v >= 1 && ls.Get(v-1) {
				buf[s[v-1]+1]--
				sa[buf[s[v-1]+1]] = v - 1
			}
		}
	}

	lmsMap := make([]int, n+1)
	for i := range lmsMap {
		lmsMap[i] = -1
	}
	m := 0
	for i := 1; i < n; i++ {
		if !ls.Get(i-1) && ls.Get(i) {
			lmsMap[i] = m
			m++
		}
	}
	lms := make([]int, 0, m)
	for i := 1; i < n; i++ {
		if !ls.Get(i-1) && ls.Get(i) {
			lms = append(lms, i)
		}
	}
	induce(lms)

	if m > 0 {
		sortedLMS := make([]int, 0, m)
		for _, v := range sa {
			if lmsMap[v] != -1 {
				sortedLMS = append(sortedLMS, v)
			}
		}
		recS := make([]int, m)
		recUpper := 0
		recS[lmsMap[sortedLMS[0]]] = 0
		for i := 1; i < m; i++ {
			l, r := sortedLMS[i-1], sortedLMS[i]
			endL, endR := n, n
			if lmsMap[l]+1 < m {
				endL = lms[lmsMap[l]+1]
			}
			if lmsMap[r]+1 < m {
				endR = lms[lmsMap[r]+1]
			}
			same := endL-l == endR-r
			if same {
				for l < endL {
					if s[l] != s[r] {
						break
					}
					l++
					r++
				}
				if l == n || s[l] != s[r] {
					same = false
				}
			}
			if !same {
				recUpper++
			}
			recS[lmsMap[sortedLMS[i]]] = recUpper
		}
		recSA := saIS(recS, recUpper)
		for i := 0; i < m; i++ {
			sortedLMS[i] = lms[recSA[i]]
		}
		induce(sortedLMS)
	}
	return sa
}

// SuffixArray returns the suffix array of s: the start indexes of all
// suffixes of s in lexicographic order, comparing bytes.
// Time: O(n)
func SuffixArray(s string) []int {
	s2 := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		s2[i] = int(s[i])
	}
	return saIS(s2, 255)
}

// SuffixArrayInts is SuffixArray over an int sequence whose elements
// all lie in [0, upper]. Panics with RangeError on an element
// outside, or when upper<0.
// Time: O(n + upper)
func SuffixArrayInts(s []int, upper int) []int {
	if upper < 0 {
		panic(Go_Algos.RangeError{Left: 0, Right: upper + 1, N: 0})
	}
	for _, d := range s {
		if d < 0 || d > upper {
			panic(Go_Algos.RangeError{Left: d, Right: d + 1, N: upper + 1})
		}
	}
	return saIS(s, upper)
}

// SuffixArrayAny is SuffixArray over arbitrary ints; the sequence is
// rank compressed before induced sorting.
// Time: O(n log n)
func SuffixArrayAny(s []int) []int {
	n := len(s)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(x, y int) int { return cmp.Compare(s[x], s[y]) })
	s2 := make([]int, n)
	now := 0
	for i, id := range idx {
		if i > 0 && s[idx[i-1]] != s[id] {
			now++
		}
		s2[id] = now
	}
	return saIS(s2, now)
}

// LCPArray returns, for each i, the length of the longest common
// prefix of the suffixes starting at sa[i] and sa[i+1]. s must be non
// empty (panics with RangeError otherwise) and sa its suffix array.
// Time: O(n)
func LCPArray(s string, sa []int) []int {
	s2 := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		s2[i] = int(s[i])
	}
	return LCPArrayInts(s2, sa)
}

// LCPArrayInts is LCPArray over an int sequence. Kasai's algorithm:
// walking positions in text order lets each height drop by at most
// one from its predecessor.
// Time: O(n)
func LCPArrayInts(s, sa []int) []int {
	n := len(s)
	if n < 1 {
		panic(Go_Algos.RangeError{Left: 0, Right: 1, N: 0})
	}
	rnk := make([]int, n)
	for i, v := range sa {
		rnk[v] = i
	}
	lcp := make([]int, n-1)
	h := 0
	for i := 0; i < n; i++ {
		if h > 0 {
			h--
		}
		if rnk[i] == 0 {
			continue
		}
		j := sa[rnk[i]-1]
		for j+h < n && i+h < n && s[j+h] == s[i+h] {
			h++
		}
		lcp[rnk[i]-1] = h
	}
	return lcp
}
