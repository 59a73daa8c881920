// Package bindings hosts the thin cgo layer that links the Go API to the
// native libcfd engine. All cgo lives here behind build tags so that the rest
// of the repository compiles without cgo; the stub build returns ErrNotBuilt
// from every entry point.
//
// Memory discipline: every temporary C buffer is owned by a doubleBuf whose
// free() runs via defer on every exit path. Returned Go slices are always
// copies and never alias native memory.
//
// The native library keeps a process-wide last-error slot that is overwritten
// by each failing call. Functions in this package capture the diagnostic
// string immediately after a failing call and fold it into the returned
// NativeError; they never defer the read past another native call.
package bindings
