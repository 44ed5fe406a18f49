// Package wazero exposes the numffi function set to WebAssembly guests as
// host functions of a wazero runtime.
//
// Guests import hash_djb2, fibonacci and soma_array from a host module
// (default name "numffi"). Pointer arguments are 32-bit offsets into the
// calling guest's linear memory, with offset 0 standing for null.
//
// Unlike the native library, the adapter knows how large guest memory is, so
// it also rejects strings whose terminator lies outside memory (or past the
// configured maximum length) and arrays that do not fit in memory. Every
// rejection yields the sentinel 0; nothing is reported to the guest.
//
// # Basic Usage
//
//	runtime := wazero.NewRuntime(ctx)
//	err := numffiwazero.RegisterWithRuntime(ctx, runtime,
//	    numffiwazero.WithModuleName("numffi"),
//	    numffiwazero.WithMaxStringLen(64*1024),
//	)
//
// A guest then declares, in WAT:
//
//	(import "numffi" "hash_djb2" (func (param i32) (result i64)))
//	(import "numffi" "fibonacci" (func (param i32) (result i64)))
//	(import "numffi" "soma_array" (func (param i32 i64) (result i64)))
package wazero
