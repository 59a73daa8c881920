package bindings

import (
	"errors"
	"fmt"
)

// Status codes fixed by the libcfd C ABI.
const (
	StatusSuccess     = 0
	StatusError       = -1
	StatusNoMem       = -2
	StatusInvalid     = -3
	StatusIO          = -4
	StatusUnsupported = -5
	StatusDiverged    = -6
	StatusMaxIter     = -7
)

// Solver capability bits from solver_interface.h.
const (
	CapIncompressible = 1 << 0
	CapCompressible   = 1 << 1
	CapSteadyState    = 1 << 2
	CapTransient      = 1 << 3
	CapSIMD           = 1 << 4
	CapParallel       = 1 << 5
	CapGPU            = 1 << 6
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("cfd/internal/bindings: native bindings not built")
)

// NativeError carries a libcfd status code together with the diagnostic
// string captured from the last-error slot at the moment of failure.
type NativeError struct {
	Status  int
	Message string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s (status=%d)", e.Message, e.Status)
}

// SolverDesc mirrors the introspection fields of a native solver handle.
type SolverDesc struct {
	Name         string
	Description  string
	Version      string
	Capabilities uint32
}

// GridData is the marshalled snapshot of a native grid. The native object is
// destroyed before the snapshot is returned.
type GridData struct {
	NX, NY                 int
	XMin, XMax, YMin, YMax float64
	X, Y                   []float64
}

// Params mirrors the native SolverParams struct.
type Params struct {
	Dt        float64
	CFL       float64
	Gamma     float64
	Mu        float64
	K         float64
	MaxIter   int
	Tolerance float64
}

// SimStats mirrors the native SolverStats struct.
type SimStats struct {
	Iterations  int
	MaxVelocity float64
	MaxPressure float64
	ElapsedMS   float64
}

// SimOutcome bundles everything extracted from a simulation context before it
// is destroyed.
type SimOutcome struct {
	VelMag            []float64
	SolverName        string
	SolverDescription string
	Stats             SimStats
}

// FieldStats holds the aggregates produced by the native statistics routine.
type FieldStats struct {
	Min float64
	Max float64
	Avg float64
	Sum float64
}
