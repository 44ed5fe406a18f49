// Package testutil provides shared fixtures for tests that run WASM guests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"
)

// GuestMemorySize is the linear memory size of ImportingGuest (one page).
const GuestMemorySize = 65536

// ImportingGuest is a minimal WASM module equivalent to:
//
//	(module
//	  (import "numffi" "hash_djb2" (func $h (param i32) (result i64)))
//	  (import "numffi" "fibonacci" (func $f (param i32) (result i64)))
//	  (import "numffi" "soma_array" (func $s (param i32 i64) (result i64)))
//	  (memory (export "memory") 1)
//	  (func (export "hash_djb2") (param i32) (result i64) local.get 0 call $h)
//	  (func (export "fibonacci") (param i32) (result i64) local.get 0 call $f)
//	  (func (export "soma_array") (param i32 i64) (result i64)
//	    local.get 0 local.get 1 call $s))
//
// Calling its exports forwards to the numffi host module with the guest's own
// memory as the caller memory.
var ImportingGuest = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version

	// type section: (i32)->i64, (i32,i64)->i64
	0x01, 0x0c, 0x02,
	0x60, 0x01, 0x7f, 0x01, 0x7e,
	0x60, 0x02, 0x7f, 0x7e, 0x01, 0x7e,

	// import section
	0x02, 0x3b, 0x03,
	0x06, 'n', 'u', 'm', 'f', 'f', 'i', 0x09, 'h', 'a', 's', 'h', '_', 'd', 'j', 'b', '2', 0x00, 0x00,
	0x06, 'n', 'u', 'm', 'f', 'f', 'i', 0x09, 'f', 'i', 'b', 'o', 'n', 'a', 'c', 'c', 'i', 0x00, 0x00,
	0x06, 'n', 'u', 'm', 'f', 'f', 'i', 0x0a, 's', 'o', 'm', 'a', '_', 'a', 'r', 'r', 'a', 'y', 0x00, 0x01,

	// function section: three local functions
	0x03, 0x04, 0x03, 0x00, 0x00, 0x01,

	// memory section: one memory, min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,

	// export section
	0x07, 0x2f, 0x04,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x09, 'h', 'a', 's', 'h', '_', 'd', 'j', 'b', '2', 0x00, 0x03,
	0x09, 'f', 'i', 'b', 'o', 'n', 'a', 'c', 'c', 'i', 0x00, 0x04,
	0x0a, 's', 'o', 'm', 'a', '_', 'a', 'r', 'r', 'a', 'y', 0x00, 0x05,

	// code section
	0x0a, 0x18, 0x03,
	0x06, 0x00, 0x20, 0x00, 0x10, 0x00, 0x0b,
	0x06, 0x00, 0x20, 0x00, 0x10, 0x01, 0x0b,
	0x08, 0x00, 0x20, 0x00, 0x20, 0x01, 0x10, 0x02, 0x0b,
}

// WriteCString writes s followed by a NUL terminator at offset.
func WriteCString(t *testing.T, mem api.Memory, offset uint32, s string) {
	t.Helper()
	require.True(t, mem.Write(offset, append([]byte(s), 0)), "write string at %d", offset)
}

// WriteInt64s writes values as little-endian int64 at offset.
func WriteInt64s(t *testing.T, mem api.Memory, offset uint32, values ...int64) {
	t.Helper()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	require.True(t, mem.Write(offset, buf), "write array at %d", offset)
}

// DebugLogger returns a logger that records debug-level text output into buf.
func DebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
