//go:build wasip1

// Command numffi-wasm builds the numffi function set as a WASI reactor:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o numffi.wasm ./cmd/numffi-wasm
//
// The module exports hash_djb2, fibonacci and soma_array. Pointer arguments
// are offsets into the module's own linear memory; offset 0 is null.
package main

import (
	"unsafe"

	"github.com/numffi/numffi/go/boundary"
)

func main() {}

//go:wasmexport hash_djb2
func hashDJB2(input uint32) uint64 {
	return boundary.HashDJB2(addr(input))
}

//go:wasmexport fibonacci
func fibonacci(n uint32) uint64 {
	return boundary.Fibonacci(n)
}

//go:wasmexport soma_array
func somaArray(arr uint32, length uint64) int64 {
	return boundary.SumArray(addr(arr), length)
}

// addr converts a linear-memory offset into a pointer, keeping 0 as nil.
func addr(offset uint32) unsafe.Pointer {
	if offset == 0 {
		return nil
	}
	// WASM linear memory: uint32 offset -> pointer conversion is safe and necessary
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	return unsafe.Pointer(uintptr(offset))
}
