package Strings

// ZAlgorithm returns, for each i, the length of the longest common
// prefix of s and s[i:], comparing bytes. z[0] is len(s).
// Time: O(n)
func ZAlgorithm(s string) []int {
	s2 := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		s2[i] = int(s[i])
	}
	return ZAlgorithmInts(s2)
}

// ZAlgorithmInts is ZAlgorithm over an int sequence. j tracks the
// match whose window [j, j+z[j]) extends furthest right.
// Time: O(n)
func ZAlgorithmInts(s []int) []int {
	n := len(s)
	if n == 0 {
		return []int{}
	}
	z := make([]int, n)
	j := 0
	for i := 1; i < n; i++ {
		if j+z[j] > i {
			z[i] = min(j+z[j]-i, z[i-j])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if j+z[j] < i+z[i] {
			j = i
		}
	}
	z[0] = n
	return z
}
