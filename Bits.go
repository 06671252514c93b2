package Go_Algos

import (
	"math/bits"
)

// CeilPow2 returns the smallest non-negative x such that 2^x >= n.
// Returns 0 for n<=1.
func CeilPow2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// BSF returns the index of the lowest set bit of n. The result is
// meaningless for n==0; callers must not pass 0.
func BSF(n uint64) int {
	return bits.TrailingZeros64(n)
}

// NewBitArray creates a BitArray holding at least n bits, all cleared.
func NewBitArray(n int) BitArray {
	return BitArray{bits: make([]uint, (n+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length array of bits packed into uints.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}
