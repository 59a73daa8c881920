//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../libcfd/include -I/usr/local/include
#include <stdlib.h>
#include "cfd/solver_interface.h"
#include "cfd/cpu_features.h"
#include "cfd/cfd_error.h"
*/
import "C"

import (
	"unsafe"
)

// BackendAvailable reports whether a solver backend is compiled in and
// runtime-capable (for CUDA this includes device presence). Unknown tags
// report false rather than an error.
func BackendAvailable(tag int) bool {
	return C.backend_is_available(C.int(tag)) != 0
}

// BackendName returns the canonical backend name; ok is false for unknown
// tags.
func BackendName(tag int) (string, bool) {
	cname := C.backend_get_name(C.int(tag))
	if cname == nil {
		return "", false
	}
	return C.GoString(cname), true
}

// SolversForBackend lists solver names implemented for a backend. The native
// protocol is two-phase: a count query with a null output table, then a fill
// query into a table of exactly that many slots. If the registry changed in
// between, the fill result is clamped to the allocated table, never overrun.
func SolversForBackend(tag int) ([]string, error) {
	count := int(C.solver_registry_list_by_backend(C.int(tag), nil, 0))
	if count <= 0 {
		return []string{}, nil
	}

	table := C.malloc(C.size_t(count) * C.size_t(unsafe.Sizeof(uintptr(0))))
	if table == nil {
		return nil, &NativeError{Status: StatusNoMem, Message: "failed to allocate solver name table"}
	}
	defer C.free(table)

	filled := int(C.solver_registry_list_by_backend(C.int(tag), (**C.char)(table), C.int(count)))
	if filled < 0 {
		return nil, nativeErr(filled)
	}
	if filled > count {
		filled = count
	}

	names := unsafe.Slice((**C.char)(table), count)
	out := make([]string, filled)
	for i := 0; i < filled; i++ {
		out[i] = C.GoString(names[i])
	}
	return out, nil
}

// SIMDArch returns the detected SIMD architecture tag.
func SIMDArch() int {
	return int(C.cfd_get_simd_arch())
}

// SIMDName returns the detected SIMD architecture name.
func SIMDName() string {
	return C.GoString(C.cfd_get_simd_name())
}

// HasAVX2 reports AVX2 support on the running CPU.
func HasAVX2() bool {
	return C.cfd_has_avx2() != 0
}

// HasNEON reports NEON support on the running CPU.
func HasNEON() bool {
	return C.cfd_has_neon() != 0
}
