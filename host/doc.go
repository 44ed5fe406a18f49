// Package host runs WebAssembly modules that expose the numffi function set.
//
// It wraps the wazero runtime, provides the numffi host module so guests can
// import the functions, and offers typed calls into a guest's own
// hash_djb2, fibonacci and soma_array exports. Pointer arguments are offsets
// into the guest's linear memory; the caller writes inputs there first
// through Instance.Memory, since the functions never allocate.
package host
