package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// Grid is an immutable snapshot of a native grid. The native object is
// created, initialized, marshalled, and destroyed inside the creating call;
// callers never hold a live native handle.
type Grid struct {
	NX, NY int
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	X      []float64 // nx coordinates, row-major x axis
	Y      []float64 // ny coordinates
	Beta   float64   // stretching parameter, zero for uniform grids
}

// CreateGrid builds a uniform grid snapshot. Dimension and bounds validation
// happens before any native allocation.
func (l *Library) CreateGrid(nx, ny int, xmin, xmax, ymin, ymax float64) (*Grid, error) {
	const op = "CreateGrid"
	if err := validateGridArgs(op, nx, ny, xmin, xmax, ymin, ymax); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}

	data, err := bindings.CreateGridUniform(nx, ny, xmin, xmax, ymin, ymax)
	if err != nil {
		return nil, translate(op, err)
	}
	return gridFromData(data, 0), nil
}

// CreateGridStretched builds a grid with hyperbolic-cosine clustering.
// beta must be positive. The clustering math is the engine's; degenerate
// parameterizations that produce non-monotonic coordinates are surfaced
// as-is rather than corrected here.
func (l *Library) CreateGridStretched(nx, ny int, xmin, xmax, ymin, ymax, beta float64) (*Grid, error) {
	const op = "CreateGridStretched"
	if err := validateGridArgs(op, nx, ny, xmin, xmax, ymin, ymax); err != nil {
		return nil, err
	}
	if beta <= 0 {
		return nil, invalidf(op, "beta must be positive, got %g", beta)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}

	data, err := bindings.CreateGridStretched(nx, ny, xmin, xmax, ymin, ymax, beta)
	if err != nil {
		return nil, translate(op, err)
	}
	return gridFromData(data, beta), nil
}

func validateGridArgs(op string, nx, ny int, xmin, xmax, ymin, ymax float64) error {
	if nx < 2 || ny < 2 {
		return invalidf(op, "grid dimensions must be at least 2x2, got %dx%d", nx, ny)
	}
	if xmax <= xmin {
		return invalidf(op, "xmax (%g) must be greater than xmin (%g)", xmax, xmin)
	}
	if ymax <= ymin {
		return invalidf(op, "ymax (%g) must be greater than ymin (%g)", ymax, ymin)
	}
	return nil
}

func gridFromData(d bindings.GridData, beta float64) *Grid {
	return &Grid{
		NX:   d.NX,
		NY:   d.NY,
		XMin: d.XMin,
		XMax: d.XMax,
		YMin: d.YMin,
		YMax: d.YMax,
		X:    d.X,
		Y:    d.Y,
		Beta: beta,
	}
}
