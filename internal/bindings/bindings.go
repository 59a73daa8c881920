//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../libcfd/include -I/usr/local/include -Wno-deprecated-declarations
#cgo LDFLAGS: -L${SRCDIR}/../../libcfd/lib -L/usr/local/lib -L/usr/local/lib64 -lcfd -lm
#cgo linux LDFLAGS: -ldl
#include <stdlib.h>
#include <string.h>
#include "cfd/grid.h"
#include "cfd/solver_interface.h"
#include "cfd/simulation_api.h"
#include "cfd/vtk_output.h"
#include "cfd/cfd_error.h"
*/
import "C"

import (
	"unsafe"
)

// maxSolvers bounds the registry listing, matching the fixed-size name table
// used by simulation_list_solvers in the C API.
const maxSolvers = 32

// Built reports whether the native libcfd bindings are linked in.
func Built() bool { return true }

// Init creates the process-wide solver registry and registers the default
// solvers. The native call is idempotent.
func Init() error {
	if rc := C.solver_registry_init(); rc != C.CFD_SUCCESS {
		return nativeErr(int(rc))
	}
	return nil
}

// LastError returns the diagnostic string from the process-wide last-error
// slot, or "" when the slot is clear. Reading does not clear the slot.
func LastError() string {
	return C.GoString(C.cfd_get_last_error())
}

// LastStatus returns the status code stored alongside the last-error slot.
func LastStatus() int {
	return int(C.cfd_get_last_status())
}

// ClearError clears the process-wide last-error slot.
func ClearError() {
	C.cfd_clear_error()
}

// StatusString returns the human-readable description for a status code.
func StatusString(code int) string {
	return C.GoString(C.cfd_error_string(C.int(code)))
}

// nativeErr builds a NativeError for a failed call, capturing the last-error
// diagnostic immediately so a later native call cannot overwrite it first.
func nativeErr(status int) error {
	msg := C.GoString(C.cfd_get_last_error())
	if msg == "" {
		msg = C.GoString(C.cfd_error_string(C.int(status)))
	}
	return &NativeError{Status: status, Message: msg}
}

// lastErr is nativeErr for calls that signal failure by returning NULL
// instead of a status code; the code is taken from the last-error slot.
func lastErr() error {
	status := int(C.cfd_get_last_status())
	if status == StatusSuccess {
		status = StatusError
	}
	return nativeErr(status)
}

// CreateGridUniform builds a native grid, initializes uniform spacing,
// snapshots the coordinate arrays, and destroys the grid.
func CreateGridUniform(nx, ny int, xmin, xmax, ymin, ymax float64) (GridData, error) {
	return createGrid(nx, ny, xmin, xmax, ymin, ymax, 0, false)
}

// CreateGridStretched is CreateGridUniform with the cosh clustering
// initializer. The stretching math is whatever the native layer produces;
// known-degenerate beta values are surfaced as-is.
func CreateGridStretched(nx, ny int, xmin, xmax, ymin, ymax, beta float64) (GridData, error) {
	return createGrid(nx, ny, xmin, xmax, ymin, ymax, beta, true)
}

func createGrid(nx, ny int, xmin, xmax, ymin, ymax, beta float64, stretched bool) (GridData, error) {
	grid := C.grid_create(C.size_t(nx), C.size_t(ny),
		C.double(xmin), C.double(xmax), C.double(ymin), C.double(ymax))
	if grid == nil {
		return GridData{}, lastErr()
	}
	defer C.grid_destroy(grid)

	if stretched {
		if rc := C.grid_initialize_stretched(grid, C.double(beta)); rc != C.CFD_SUCCESS {
			return GridData{}, nativeErr(int(rc))
		}
	} else {
		if rc := C.grid_initialize_uniform(grid); rc != C.CFD_SUCCESS {
			return GridData{}, nativeErr(int(rc))
		}
	}

	data := GridData{
		NX:   int(grid.nx),
		NY:   int(grid.ny),
		XMin: float64(grid.xmin),
		XMax: float64(grid.xmax),
		YMin: float64(grid.ymin),
		YMax: float64(grid.ymax),
		X:    copyDoubles(grid.x, int(grid.nx)),
		Y:    copyDoubles(grid.y, int(grid.ny)),
	}
	return data, nil
}

// ListSolvers enumerates the names registered in the process-wide registry.
func ListSolvers() ([]string, error) {
	var names [maxSolvers]*C.char
	count := int(C.simulation_list_solvers(&names[0], maxSolvers))
	if count < 0 {
		return nil, nativeErr(count)
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = C.GoString(names[i])
	}
	return out, nil
}

// HasSolver reports whether name is registered.
func HasSolver(name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.simulation_has_solver(cname) != 0
}

// SolverInfo creates a transient solver handle to read its descriptor, then
// destroys it. ok is false when the name is not registered.
func SolverInfo(name string) (SolverDesc, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	solver := C.solver_create(cname)
	if solver == nil {
		return SolverDesc{}, false
	}
	defer C.solver_destroy(solver)

	desc := SolverDesc{
		Name:         C.GoString(solver.name),
		Description:  C.GoString(solver.description),
		Version:      C.GoString(solver.version),
		Capabilities: uint32(solver.capabilities),
	}
	return desc, true
}

// DefaultParams returns the native default solver parameters.
func DefaultParams() Params {
	p := C.solver_params_default()
	return Params{
		Dt:        float64(p.dt),
		CFL:       float64(p.cfl),
		Gamma:     float64(p.gamma),
		Mu:        float64(p.mu),
		K:         float64(p.k),
		MaxIter:   int(p.max_iter),
		Tolerance: float64(p.tolerance),
	}
}

// SetOutputDir sets the base directory for native-side writers.
func SetOutputDir(dir string) {
	cdir := C.CString(dir)
	defer C.free(unsafe.Pointer(cdir))
	C.simulation_set_output_dir(cdir)
}

// RunSimulation drives a native simulation context through steps sequential
// time steps and extracts the velocity-magnitude field, solver identity, and
// accumulated statistics. The context is destroyed on every path. When
// outputFile is non-empty the full field is written after stepping; a write
// failure is reported but the numeric outcome is still returned.
func RunSimulation(nx, ny int, xmin, xmax, ymin, ymax float64, steps int,
	dt, cfl float64, overrideParams bool, solver, outputFile string) (SimOutcome, error) {

	var sim *C.SimulationData
	if solver != "" {
		cname := C.CString(solver)
		sim = C.init_simulation_with_solver(C.size_t(nx), C.size_t(ny),
			C.double(xmin), C.double(xmax), C.double(ymin), C.double(ymax), cname)
		C.free(unsafe.Pointer(cname))
	} else {
		sim = C.init_simulation(C.size_t(nx), C.size_t(ny),
			C.double(xmin), C.double(xmax), C.double(ymin), C.double(ymax))
	}
	if sim == nil {
		return SimOutcome{}, lastErr()
	}
	defer C.free_simulation(sim)

	if overrideParams {
		sim.params.dt = C.double(dt)
		sim.params.cfl = C.double(cfl)
	}

	// A strictly ordered recurrence: each step consumes the previous field.
	for i := 0; i < steps; i++ {
		if rc := C.run_simulation_step(sim); rc != C.CFD_SUCCESS {
			return SimOutcome{}, nativeErr(int(rc))
		}
	}

	var out SimOutcome
	field := sim.field
	size := int(field.nx) * int(field.ny)
	velMag := C.calculate_velocity_magnitude(field, field.nx, field.ny)
	if velMag == nil {
		return SimOutcome{}, lastErr()
	}
	out.VelMag = copyDoubles(velMag, size)
	C.free(unsafe.Pointer(velMag))

	if solverHandle := C.simulation_get_solver(sim); solverHandle != nil {
		out.SolverName = C.GoString(solverHandle.name)
		out.SolverDescription = C.GoString(solverHandle.description)
	}
	if stats := C.simulation_get_stats(sim); stats != nil {
		out.Stats = SimStats{
			Iterations:  int(stats.iterations),
			MaxVelocity: float64(stats.max_velocity),
			MaxPressure: float64(stats.max_pressure),
			ElapsedMS:   float64(stats.elapsed_time_ms),
		}
	}

	if outputFile != "" {
		cfile := C.CString(outputFile)
		rc := C.write_vtk_flow_field(cfile, sim.field,
			sim.grid.nx, sim.grid.ny,
			sim.grid.xmin, sim.grid.xmax, sim.grid.ymin, sim.grid.ymax)
		C.free(unsafe.Pointer(cfile))
		if rc != C.CFD_SUCCESS {
			// Output is best-effort after a successful run: hand back the
			// computed outcome together with the IO error.
			return out, nativeErr(int(rc))
		}
	}
	return out, nil
}
