// Package cfd exposes a Go API for the native libcfd simulation engine:
// grid construction, solver discovery, backend availability, boundary
// condition kernels, derived-field statistics, and simulation runs.
//
// All operations go through a Library handle obtained from Open. The native
// registry and last-error slot are process-wide; the Library serializes
// native calls so a failing call on one goroutine cannot overwrite another
// goroutine's diagnostic before it is read.
//
// Field arguments are flat row-major slices of length nx*ny. Slices returned
// by the package are always copies and never alias native memory.
package cfd
