package Ints

import (
	"fmt"
	"math/bits"
)

// DomainError is the panic value for arguments outside a function's
// domain.
type DomainError struct {
	msg string
}

func (e DomainError) Error() string {
	return e.msg
}

// mulMod returns a*b%m without overflow through the full 128 bit
// product. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

func powMod(x, n, m uint64) uint64 {
	r := uint64(1 % m)
	for x %= m; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = mulMod(r, x, m)
		}
		x = mulMod(x, x, m)
	}
	return r
}

// PowMod returns x^n mod m. Panics with DomainError unless n>=0 and
// m>=1.
// Time: O(log n)
func PowMod(x, n, m int64) int64 {
	if n < 0 || m < 1 {
		panic(DomainError{fmt.Sprintf("pow mod needs n>=0, m>=1; got n=%d, m=%d", n, m)})
	}
	if m == 1 {
		return 0
	}
	x %= m
	if x < 0 {
		x += m
	}
	return int64(powMod(uint64(x), uint64(n), uint64(m)))
}

// IsPrime reports whether n is prime, via deterministic Miller-Rabin
// with the witness set {2, 7, 61}, which is exact for every n below
// 4759123141 (in particular all 32 bit inputs).
//
// Reference:
// M. Forisek and J. Jancina,
// Fast Primality Testing for Integers That Fit into a Machine Word
//
// Time: O(log n)
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 || n == 7 || n == 61 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	m := uint64(n)
	d := m - 1
	for d%2 == 0 {
		d /= 2
	}
	for _, a := range [3]uint64{2, 7, 61} {
		t := d
		y := powMod(a, t, m)
		for t != m-1 && y != 1 && y != m-1 {
			y = mulMod(y, y, m)
			t <<= 1
		}
		if y != m-1 && t%2 == 0 {
			return false
		}
	}
	return true
}

// InvGCD returns (g, x) with g=gcd(a, b) and x in [0, b/g) such that
// a*x = g (mod b). Panics with DomainError unless b>=1.
func InvGCD(a, b int64) (int64, int64) {
	if b < 1 {
		panic(DomainError{fmt.Sprintf("inv gcd needs b>=1; got b=%d", b)})
	}
	a %= b
	if a < 0 {
		a += b
	}
	if a == 0 {
		return b, 0
	}

	// Invariants through the loop:
	// [1] s - m0*a = 0 (mod b)
	// [2] t - m1*a = 0 (mod b)
	// [3] s*|m1| + t*|m0| <= b
	s, t := b, a
	var m0, m1 int64 = 0, 1
	for t != 0 {
		u := s / t
		s -= t * u
		m0 -= m1 * u
		s, t = t, s
		m0, m1 = m1, m0
	}
	// by [3]: |m0| <= b/g
	if m0 < 0 {
		m0 += b / s
	}
	return s, m0
}

// InvMod returns the y in [0, m) with a*y = 1 (mod m). Panics with
// DomainError unless m>=1 and gcd(a, m)=1.
// Time: O(log m)
func InvMod(a, m int64) int64 {
	g, x := InvGCD(a, m)
	if g != 1 {
		panic(DomainError{fmt.Sprintf("%d is not invertible mod %d (gcd %d)", a, m, g)})
	}
	return x
}

// PrimitiveRoot returns the smallest primitive root modulo m, except
// for the hard coded NTT moduli where the conventional root is
// returned directly. m must be prime; this is not checked and a
// composite m loops or returns garbage.
func PrimitiveRoot(m int64) int64 {
	switch m {
	case 2:
		return 1
	case 167772161, 469762049, 998244353:
		return 3
	case 754974721:
		return 11
	}
	var divs [20]int64
	divs[0] = 2
	cnt := 1
	x := (m - 1) / 2
	for x%2 == 0 {
		x /= 2
	}
	for i := int64(3); i*i <= x; i += 2 {
		if x%i == 0 {
			divs[cnt] = i
			cnt++
			for x%i == 0 {
				x /= i
			}
		}
	}
	if x > 1 {
		divs[cnt] = x
		cnt++
	}
	for g := int64(2); ; g++ {
		ok := true
		for _, d := range divs[:cnt] {
			if PowMod(g, (m-1)/d, m) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
}
