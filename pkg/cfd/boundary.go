package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// Boundary-condition operations mutate the caller's slices in place. Every
// array length is validated against nx*ny before anything is marshalled, so
// a failed call never leaves a field partially updated.

// checkField validates one flat row-major field against the grid shape.
func checkField(op, name string, data []float64, nx, ny int) error {
	if nx < 2 || ny < 2 {
		return invalidf(op, "grid dimensions must be at least 2x2, got %dx%d", nx, ny)
	}
	if len(data) != nx*ny {
		return invalidf(op, "%s length (%d) must match nx*ny (%d)", name, len(data), nx*ny)
	}
	return nil
}

func checkVelocityPair(op string, u, v []float64, nx, ny int) error {
	if err := checkField(op, "u", u, nx, ny); err != nil {
		return err
	}
	return checkField(op, "v", v, nx, ny)
}

func checkEdge(op string, e Edge) error {
	if !e.valid() {
		return invalidf(op, "invalid edge selector %d", int(e))
	}
	return nil
}

// BCCurrentBackend returns the currently selected BC compute backend.
func (l *Library) BCCurrentBackend() BCBackend {
	if l == nil {
		return BCBackendAuto
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return BCBackendAuto
	}
	return BCBackend(bindings.BCGetBackend())
}

// BCCurrentBackendName returns the engine's name for the selected backend.
func (l *Library) BCCurrentBackendName() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return ""
	}
	return bindings.BCGetBackendName()
}

// BCBackendAvailable reports availability of one BC backend tag.
func (l *Library) BCBackendAvailable(b BCBackend) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return false
	}
	return bindings.BCBackendAvailable(int(b))
}

// SetBCBackend selects the compute backend for subsequent BC applications.
// Requesting an unavailable backend fails with ErrUnsupported before any
// engine state changes.
func (l *Library) SetBCBackend(b BCBackend) error {
	const op = "SetBCBackend"
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	if b != BCBackendAuto && !bindings.BCBackendAvailable(int(b)) {
		return &Error{
			Op:      op,
			Status:  StatusUnsupported,
			Message: "backend " + b.String() + " is not available",
			Err:     ErrUnsupported,
		}
	}
	if !bindings.BCSetBackend(int(b)) {
		return &Error{
			Op:      op,
			Status:  StatusUnsupported,
			Message: "engine rejected backend " + b.String(),
			Err:     ErrUnsupported,
		}
	}
	return nil
}

// ApplyScalarBC applies a boundary condition of the given family to a scalar
// field on all edges.
func (l *Library) ApplyScalarBC(field []float64, nx, ny int, bc BCType) error {
	const op = "ApplyScalarBC"
	if err := checkField(op, "field", field, nx, ny); err != nil {
		return err
	}
	if !bc.valid() {
		return invalidf(op, "invalid boundary condition type %d", int(bc))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyScalar(field, nx, ny, int(bc)))
}

// ApplyVelocityBC applies a boundary condition of the given family to a
// velocity pair on all edges.
func (l *Library) ApplyVelocityBC(u, v []float64, nx, ny int, bc BCType) error {
	const op = "ApplyVelocityBC"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}
	if !bc.valid() {
		return invalidf(op, "invalid boundary condition type %d", int(bc))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyVelocity(u, v, nx, ny, int(bc)))
}

// ApplyDirichlet fixes one scalar value per edge. The bottom and top rows
// take priority over the side columns at the corners.
func (l *Library) ApplyDirichlet(field []float64, nx, ny int, left, right, bottom, top float64) error {
	const op = "ApplyDirichlet"
	if err := checkField(op, "field", field, nx, ny); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyDirichlet(field, nx, ny, left, right, bottom, top))
}

// ApplyNoSlip zeroes the velocity at every cell of all four walls.
func (l *Library) ApplyNoSlip(u, v []float64, nx, ny int) error {
	const op = "ApplyNoSlip"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyNoSlip(u, v, nx, ny))
}

// ApplyInletUniform sets a fixed (u0, v0) velocity along one edge.
func (l *Library) ApplyInletUniform(u, v []float64, nx, ny int, u0, v0 float64, edge Edge) error {
	const op = "ApplyInletUniform"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}
	if err := checkEdge(op, edge); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyInletUniform(u, v, nx, ny, u0, v0, int(edge)))
}

// ApplyInletParabolic sets a parabolic velocity profile along one edge,
// peaking at maxVelocity at the midpoint and zero at the corners.
func (l *Library) ApplyInletParabolic(u, v []float64, nx, ny int, maxVelocity float64, edge Edge) error {
	const op = "ApplyInletParabolic"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}
	if err := checkEdge(op, edge); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyInletParabolic(u, v, nx, ny, maxVelocity, int(edge)))
}

// ApplyOutletScalar copies each adjacent interior value onto the boundary of
// one edge (zero-gradient outlet).
func (l *Library) ApplyOutletScalar(field []float64, nx, ny int, edge Edge) error {
	const op = "ApplyOutletScalar"
	if err := checkField(op, "field", field, nx, ny); err != nil {
		return err
	}
	if err := checkEdge(op, edge); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyOutletScalar(field, nx, ny, int(edge)))
}

// ApplyOutletVelocity is the velocity-pair variant of ApplyOutletScalar.
func (l *Library) ApplyOutletVelocity(u, v []float64, nx, ny int, edge Edge) error {
	const op = "ApplyOutletVelocity"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}
	if err := checkEdge(op, edge); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.BCApplyOutletVelocity(u, v, nx, ny, int(edge)))
}
