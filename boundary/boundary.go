package boundary

import (
	"unsafe"

	"github.com/numffi/numffi/go/domain/numeric"
	"github.com/numffi/numffi/go/internal/abi"
)

// Sentinel is returned in place of an error when input is rejected.
const Sentinel = 0

// HashDJB2 hashes the NUL-terminated byte string at input.
// A nil input returns Sentinel; an empty string returns numeric.DJB2Seed.
func HashDJB2(input unsafe.Pointer) uint64 {
	view, ok := abi.CStringView(input)
	if !ok {
		return Sentinel
	}
	return numeric.HashDJB2(view)
}

// Fibonacci returns the n-th Fibonacci number modulo 2^64. Every n is valid.
func Fibonacci(n uint32) uint64 {
	return numeric.Fibonacci(n)
}

// SumArray sums length int64 values starting at arr. A nil arr or a zero
// length returns Sentinel without touching memory. The length is trusted.
func SumArray(arr unsafe.Pointer, length uint64) int64 {
	view, ok := abi.Int64View(arr, length)
	if !ok {
		return Sentinel
	}
	return numeric.Sum(view)
}
