package main

// #include <stddef.h>
// #include <stdint.h>
import "C"

import "unsafe"

// The helpers below go through the C-typed exports exactly as a foreign
// caller would. Test files cannot use cgo, so they call these instead.

func callHashDJB2(buf []byte) uint64 {
	if buf == nil {
		return uint64(hash_djb2(nil))
	}
	return uint64(hash_djb2((*C.char)(unsafe.Pointer(&buf[0]))))
}

func callFibonacci(n uint32) uint64 {
	return uint64(fibonacci(C.uint32_t(n)))
}

func callSomaArray(values []int64, length uint64) int64 {
	if values == nil {
		return int64(soma_array(nil, C.size_t(length)))
	}
	return int64(soma_array((*C.int64_t)(unsafe.Pointer(&values[0])), C.size_t(length)))
}
