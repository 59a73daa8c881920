//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"
)

// doubleBuf owns a temporary C double array for the duration of one native
// call. Call sites acquire it, defer free(), and copy in/out; there is no
// other way to leak it on an error path.
type doubleBuf struct {
	ptr *C.double
	n   int
}

func newDoubleBuf(n int) (*doubleBuf, error) {
	if n == 0 {
		return &doubleBuf{}, nil
	}
	p := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.double(0))))
	if p == nil {
		return nil, &NativeError{Status: StatusNoMem, Message: "failed to allocate native buffer"}
	}
	return &doubleBuf{ptr: (*C.double)(p), n: n}, nil
}

// newDoubleBufFrom allocates and fills a buffer from src in one step.
func newDoubleBufFrom(src []float64) (*doubleBuf, error) {
	b, err := newDoubleBuf(len(src))
	if err != nil {
		return nil, err
	}
	b.copyIn(src)
	return b, nil
}

func (b *doubleBuf) copyIn(src []float64) {
	if b.ptr == nil || len(src) == 0 {
		return
	}
	dst := unsafe.Slice((*float64)(unsafe.Pointer(b.ptr)), b.n)
	copy(dst, src)
}

func (b *doubleBuf) copyOut(dst []float64) {
	if b.ptr == nil || len(dst) == 0 {
		return
	}
	src := unsafe.Slice((*float64)(unsafe.Pointer(b.ptr)), b.n)
	copy(dst, src)
}

func (b *doubleBuf) free() {
	if b.ptr != nil {
		C.free(unsafe.Pointer(b.ptr))
		b.ptr = nil
	}
}

// copyDoubles snapshots a native double array into a fresh Go slice. The
// native array remains owned by the caller and may be freed immediately.
func copyDoubles(src *C.double, n int) []float64 {
	if src == nil || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	copy(out, unsafe.Slice((*float64)(unsafe.Pointer(src)), n))
	return out
}
