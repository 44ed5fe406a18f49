// Package numeric holds the arithmetic kernels behind the exported boundary
// functions. The kernels work on ordinary Go values and know nothing about
// raw pointers; validating and viewing foreign memory is the caller's job
// (see the boundary package).
//
// Every kernel is pure: no allocation, no shared state, no I/O.
package numeric
