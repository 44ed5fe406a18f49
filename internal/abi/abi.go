// Package abi converts raw addresses handed over by a foreign caller into
// bounded Go views. Every conversion checks for null (and zero length where a
// length exists) before any memory is touched.
//
// Views returned here alias caller-owned memory. They are valid only for the
// duration of the exported call that created them and must never be stored.
package abi

import (
	"bytes"
	"math"
	"unsafe"
)

// MaxInt64Elements is the largest element count Int64View accepts. Anything
// bigger cannot describe a real allocation and would make unsafe.Slice panic.
const MaxInt64Elements = math.MaxInt / 8

// CStringView returns the bytes before the first NUL at p, without copying.
// ok is false only when p is nil. An immediate terminator yields an empty,
// non-nil view.
//
// The caller guarantees that a terminator exists; there is no way to check it.
func CStringView(p unsafe.Pointer) (view []byte, ok bool) {
	if p == nil {
		return nil, false
	}

	n := 0
	//nolint:gosec // G103: reading caller memory up to its terminator is the contract
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	//nolint:gosec // G103: n bytes before the terminator were just read
	return unsafe.Slice((*byte)(p), n), true
}

// Int64View returns a view over n contiguous int64 values at p, without
// copying. ok is false, and no view is formed, when p is nil, n is zero or n
// is larger than MaxInt64Elements.
//
// The caller guarantees that n accurately bounds the allocation.
func Int64View(p unsafe.Pointer, n uint64) (view []int64, ok bool) {
	if p == nil || n == 0 || n > MaxInt64Elements {
		return nil, false
	}
	//nolint:gosec // G103: caller-declared array view
	return unsafe.Slice((*int64)(p), n), true
}

// TerminatedPrefix returns the bytes of b before its first NUL. ok is false
// when no NUL occurs within the first limit bytes of b (limit <= 0 means no
// limit). Used where the addressable memory is known, e.g. WASM linear memory.
func TerminatedPrefix(b []byte, limit int) (prefix []byte, ok bool) {
	if limit > 0 && len(b) > limit+1 {
		b = b[:limit+1]
	}
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return nil, false
	}
	return b[:i], true
}
