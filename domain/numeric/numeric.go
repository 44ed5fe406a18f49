package numeric

import "encoding/binary"

const (
	// DJB2Seed is the initial accumulator of the djb2 hash.
	DJB2Seed uint64 = 5381

	// DJB2Multiplier is applied to the accumulator before each byte is added.
	DJB2Multiplier uint64 = 33
)

// HashDJB2 returns the djb2 hash of b: acc = acc*33 + byte, starting from 5381.
// Both operations wrap modulo 2^64. Not suitable for anything security related.
func HashDJB2(b []byte) uint64 {
	acc := DJB2Seed
	for _, c := range b {
		acc = acc*DJB2Multiplier + uint64(c)
	}
	return acc
}

// HashDJB2String is HashDJB2 over the bytes of s.
func HashDJB2String(s string) uint64 {
	acc := DJB2Seed
	for i := 0; i < len(s); i++ {
		acc = acc*DJB2Multiplier + uint64(s[i])
	}
	return acc
}

// Fibonacci returns the n-th Fibonacci number modulo 2^64.
// It runs in O(n) time with two accumulators.
func Fibonacci(n uint32) uint64 {
	if n <= 1 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	// n-1 steps, i.e. indices 2..n. Counting up to n with i <= n would
	// never terminate for n == MaxUint32.
	for i := uint32(1); i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// Sum adds values with plain int64 addition. A sum that leaves the int64
// range wraps (two's complement), it is not reported.
func Sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// SumLittleEndian sums b read as consecutive little-endian int64 values,
// the layout of an int64 array in WASM linear memory. Trailing bytes that do
// not fill a whole element are ignored.
func SumLittleEndian(b []byte) int64 {
	var total int64
	for len(b) >= 8 {
		total += int64(binary.LittleEndian.Uint64(b))
		b = b[8:]
	}
	return total
}
