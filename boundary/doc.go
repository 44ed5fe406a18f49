// Package boundary implements the numffi function set with Go primitive
// types, ready to be wrapped by a transport (cgo exports, WASM exports, or
// wazero host functions).
//
// Each function accepts untrusted input from a foreign caller. Pointer
// arguments are checked for null, and array lengths for zero, before any view
// of caller memory is formed; every other input is accepted as given. Failures
// are reported only through the sentinel return value 0, since no error
// channel survives a C call.
//
// The functions are pure and reentrant: they keep no state, allocate nothing,
// and never retain caller memory after returning.
package boundary
