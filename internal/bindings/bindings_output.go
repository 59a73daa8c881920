//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../libcfd/include -I/usr/local/include
#include <stdlib.h>
#include "cfd/solver_interface.h"
#include "cfd/derived_fields.h"
#include "cfd/vtk_output.h"
#include "cfd/csv_output.h"
#include "cfd/cfd_error.h"
*/
import "C"

import (
	"unsafe"
)

// ComputeFieldStats runs the native aggregate routine over data.
func ComputeFieldStats(data []float64) (FieldStats, error) {
	buf, err := newDoubleBufFrom(data)
	if err != nil {
		return FieldStats{}, err
	}
	defer buf.free()

	var cmin, cmax, cavg, csum C.double
	rc := C.calculate_field_stats(buf.ptr, C.size_t(len(data)), &cmin, &cmax, &cavg, &csum)
	if rc != C.CFD_SUCCESS {
		return FieldStats{}, nativeErr(int(rc))
	}
	return FieldStats{
		Min: float64(cmin),
		Max: float64(cmax),
		Avg: float64(cavg),
		Sum: float64(csum),
	}, nil
}

// ComputeVelocityMagnitude returns sqrt(u^2+v^2) per cell as a fresh slice.
// Both input buffers are allocated before the kernel runs.
func ComputeVelocityMagnitude(u, v []float64, nx, ny int) ([]float64, error) {
	ubuf, err := newDoubleBufFrom(u)
	if err != nil {
		return nil, err
	}
	defer ubuf.free()
	vbuf, err := newDoubleBufFrom(v)
	if err != nil {
		return nil, err
	}
	defer vbuf.free()

	out := C.compute_velocity_magnitude(ubuf.ptr, vbuf.ptr, C.size_t(nx), C.size_t(ny))
	if out == nil {
		return nil, lastErr()
	}
	result := copyDoubles(out, nx*ny)
	C.free(unsafe.Pointer(out))
	return result, nil
}

// WriteVTKScalar writes a named scalar field as legacy-format VTK.
func WriteVTKScalar(file, fieldName string, data []float64, nx, ny int,
	xmin, xmax, ymin, ymax float64) error {

	buf, err := newDoubleBufFrom(data)
	if err != nil {
		return err
	}
	defer buf.free()

	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	cname := C.CString(fieldName)
	defer C.free(unsafe.Pointer(cname))

	rc := C.write_vtk_output(cfile, cname, buf.ptr, C.size_t(nx), C.size_t(ny),
		C.double(xmin), C.double(xmax), C.double(ymin), C.double(ymax))
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	return nil
}

// WriteVTKVector writes a named (u,v) vector field as legacy-format VTK.
func WriteVTKVector(file, fieldName string, u, v []float64, nx, ny int,
	xmin, xmax, ymin, ymax float64) error {

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

	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	cname := C.CString(fieldName)
	defer C.free(unsafe.Pointer(cname))

	rc := C.write_vtk_vector_output(cfile, cname, ubuf.ptr, vbuf.ptr,
		C.size_t(nx), C.size_t(ny),
		C.double(xmin), C.double(xmax), C.double(ymin), C.double(ymax))
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	return nil
}

// WriteCSVTimeseries appends (or creates) one timestep row per cell to a CSV
// file via the native writer. The transient flow field is built natively and
// destroyed before return.
func WriteCSVTimeseries(file string, step int, time float64, u, v, p []float64,
	nx, ny int, dt float64, iterations int, createNew bool) error {

	field := C.flow_field_create(C.size_t(nx), C.size_t(ny))
	if field == nil {
		return lastErr()
	}
	defer C.flow_field_destroy(field)

	size := nx * ny
	fu := unsafe.Slice((*float64)(unsafe.Pointer(field.u)), size)
	fv := unsafe.Slice((*float64)(unsafe.Pointer(field.v)), size)
	fp := unsafe.Slice((*float64)(unsafe.Pointer(field.p)), size)
	copy(fu, u)
	copy(fv, v)
	copy(fp, p)

	params := C.solver_params_default()
	params.dt = C.double(dt)
	stats := C.solver_stats_default()
	stats.iterations = C.int(iterations)

	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))

	creating := C.int(0)
	if createNew {
		creating = 1
	}
	rc := C.write_csv_timeseries(cfile, C.int(step), C.double(time), field,
		&params, &stats, C.size_t(nx), C.size_t(ny), creating)
	if rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	return nil
}
