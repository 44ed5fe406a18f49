// Command libnumffi builds the numffi C shared library:
//
//	go build -buildmode=c-shared -o libnumffi.so ./cmd/libnumffi
//
// The build also emits libnumffi.h with the prototypes of the exported
// symbols, equivalent to boundary.CDef:
//
//	uint64_t hash_djb2(const char *input);
//	uint64_t fibonacci(uint32_t n);
//	int64_t soma_array(const int64_t *arr, size_t len);
//
// The library never allocates memory for the caller and never keeps a
// reference to caller memory after a call returns.
package main

// #include <stddef.h>
// #include <stdint.h>
import "C"

import (
	"unsafe"

	"github.com/numffi/numffi/go/boundary"
)

func main() {}

//export hash_djb2
func hash_djb2(input *C.char) C.uint64_t { //nolint:revive // exported C symbol name
	return C.uint64_t(boundary.HashDJB2(unsafe.Pointer(input)))
}

//export fibonacci
func fibonacci(n C.uint32_t) C.uint64_t {
	return C.uint64_t(boundary.Fibonacci(uint32(n)))
}

//export soma_array
func soma_array(arr *C.int64_t, length C.size_t) C.int64_t { //nolint:revive // exported C symbol name
	return C.int64_t(boundary.SumArray(unsafe.Pointer(arr), uint64(length)))
}
