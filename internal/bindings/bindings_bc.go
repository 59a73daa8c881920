//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../libcfd/include -I/usr/local/include
#include <stdlib.h>
#include "cfd/boundary_conditions.h"
#include "cfd/cfd_error.h"
*/
import "C"

// BCGetBackend returns the currently selected BC compute backend tag.
func BCGetBackend() int {
	return int(C.bc_get_backend())
}

// BCGetBackendName returns the human-readable name of the current backend.
func BCGetBackendName() string {
	return C.GoString(C.bc_get_backend_name())
}

// BCSetBackend selects a BC compute backend; false when unavailable.
func BCSetBackend(tag int) bool {
	return C.bc_set_backend(C.int(tag)) != 0
}

// BCBackendAvailable reports compile-time and runtime availability of a BC
// backend tag. Unknown tags report false.
func BCBackendAvailable(tag int) bool {
	return C.bc_backend_available(C.int(tag)) != 0
}

// BCApplyScalar applies a generic scalar boundary condition in place.
func BCApplyScalar(field []float64, nx, ny, bcType int) error {
	buf, err := newDoubleBufFrom(field)
	if err != nil {
		return err
	}
	defer buf.free()

	if rc := C.bc_apply_scalar(buf.ptr, C.size_t(nx), C.size_t(ny), C.int(bcType)); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	buf.copyOut(field)
	return nil
}

// BCApplyVelocity applies a generic velocity boundary condition in place.
// Both buffers are allocated before the kernel runs so a failure cannot leave
// the pair half-updated.
func BCApplyVelocity(u, v []float64, nx, ny, bcType int) error {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return err
	}
	defer vbuf.free()

	if rc := C.bc_apply_velocity(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny), C.int(bcType)); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	ubuf.copyOut(u)
	vbuf.copyOut(v)
	return nil
}

// BCApplyDirichlet fixes one scalar value per edge.
func BCApplyDirichlet(field []float64, nx, ny int, left, right, bottom, top float64) error {
	buf, err := newDoubleBufFrom(field)
	if err != nil {
		return err
	}
	defer buf.free()

	rc := C.bc_apply_dirichlet(buf.ptr, C.size_t(nx), C.size_t(ny),
		C.double(left), C.double(right), C.double(bottom), C.double(top))
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	buf.copyOut(field)
	return nil
}

// BCApplyNoSlip zeroes velocity at all four walls.
func BCApplyNoSlip(u, v []float64, nx, ny int) error {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return err
	}
	defer vbuf.free()

	if rc := C.bc_apply_noslip(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny)); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	ubuf.copyOut(u)
	vbuf.copyOut(v)
	return nil
}

// BCApplyInletUniform sets a fixed velocity along one edge.
func BCApplyInletUniform(u, v []float64, nx, ny int, u0, v0 float64, edge int) error {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return err
	}
	defer vbuf.free()

	rc := C.bc_apply_inlet_uniform(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny),
		C.double(u0), C.double(v0), C.int(edge))
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	ubuf.copyOut(u)
	vbuf.copyOut(v)
	return nil
}

// BCApplyInletParabolic sets a parabolic profile peaking at maxVel at the
// edge midpoint, zero at the corners.
func BCApplyInletParabolic(u, v []float64, nx, ny int, maxVel float64, edge int) error {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return err
	}
	defer vbuf.free()

	rc := C.bc_apply_inlet_parabolic(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny),
		C.double(maxVel), C.int(edge))
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	ubuf.copyOut(u)
	vbuf.copyOut(v)
	return nil
}

// BCApplyOutletScalar copies the adjacent interior value to the boundary.
func BCApplyOutletScalar(field []float64, nx, ny, edge int) error {
	buf, err := newDoubleBufFrom(field)
	if err != nil {
		return err
	}
	defer buf.free()

	if rc := C.bc_apply_outlet_scalar(buf.ptr, C.size_t(nx), C.size_t(ny), C.int(edge)); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	buf.copyOut(field)
	return nil
}

// BCApplyOutletVelocity is the velocity-pair variant of BCApplyOutletScalar.
func BCApplyOutletVelocity(u, v []float64, nx, ny, edge int) error {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return err
	}
	defer vbuf.free()

	if rc := C.bc_apply_outlet_velocity(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny), C.int(edge)); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	ubuf.copyOut(u)
	vbuf.copyOut(v)
	return nil
}
