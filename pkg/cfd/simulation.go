package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// RunSpec describes one simulation run.
type RunSpec struct {
	NX, NY int
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	Steps  int

	// Dt and CFL override the solver defaults when OverrideParams is set.
	Dt             float64
	CFL            float64
	OverrideParams bool

	// Solver selects a registered solver by name; empty uses the engine
	// default.
	Solver string

	// OutputFile, when non-empty, persists the full field as VTK after
	// stepping. A write failure surfaces as ErrIO without discarding the
	// computed result.
	OutputFile string
}

// Stats holds solver statistics accumulated over a run.
type Stats struct {
	Iterations  int
	MaxVelocity float64
	MaxPressure float64
	ElapsedMS   float64
}

// Result is the structured outcome of a simulation run.
type Result struct {
	VelocityMagnitude []float64
	NX, NY            int
	Steps             int
	SolverName        string
	SolverDescription string
	Stats             Stats
	OutputFile        string
}

// Run drives a native simulation context through spec.Steps strictly
// sequential time steps, then extracts the derived velocity-magnitude field
// and solver statistics. The context is destroyed before return on every
// path. Zero steps is valid and returns the initial field state.
//
// When spec.OutputFile is set and the write fails, Run returns both the
// computed Result and an ErrIO error: output is best-effort after a
// successful run, not transactional with stepping.
func (l *Library) Run(spec RunSpec) (*Result, error) {
	const op = "Run"
	if err := validateGridArgs(op, spec.NX, spec.NY, spec.XMin, spec.XMax, spec.YMin, spec.YMax); err != nil {
		return nil, err
	}
	if spec.Steps < 0 {
		return nil, invalidf(op, "steps must not be negative, got %d", spec.Steps)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}

	if spec.Solver != "" && !bindings.HasSolver(spec.Solver) {
		return nil, &Error{
			Op:      op,
			Message: "unknown solver type: " + spec.Solver,
			Err:     ErrUnknownSolver,
		}
	}

	out, err := bindings.RunSimulation(spec.NX, spec.NY,
		spec.XMin, spec.XMax, spec.YMin, spec.YMax,
		spec.Steps, spec.Dt, spec.CFL, spec.OverrideParams,
		spec.Solver, spec.OutputFile)
	result := resultFromOutcome(out, spec)
	if err != nil {
		if len(out.VelMag) > 0 {
			// Stepping succeeded; only persistence failed.
			return result, translate(op, err)
		}
		return nil, translate(op, err)
	}
	return result, nil
}

// RunSimple runs steps time steps on the unit square with engine-default
// parameters and returns only the velocity-magnitude field.
func (l *Library) RunSimple(nx, ny, steps int) ([]float64, error) {
	res, err := l.Run(RunSpec{
		NX: nx, NY: ny,
		XMin: 0, XMax: 1, YMin: 0, YMax: 1,
		Steps: steps,
	})
	if err != nil {
		return nil, err
	}
	return res.VelocityMagnitude, nil
}

// Simulate runs a simulation on the unit square.
//
// Deprecated: use RunSimple, or Run for full control. Retained for callers
// of the original binding surface; behavior is identical to RunSimple.
func (l *Library) Simulate(nx, ny, steps int) ([]float64, error) {
	return l.RunSimple(nx, ny, steps)
}

func resultFromOutcome(out bindings.SimOutcome, spec RunSpec) *Result {
	r := &Result{
		VelocityMagnitude: out.VelMag,
		NX:                spec.NX,
		NY:                spec.NY,
		Steps:             spec.Steps,
		SolverName:        out.SolverName,
		SolverDescription: out.SolverDescription,
		Stats: Stats{
			Iterations:  out.Stats.Iterations,
			MaxVelocity: out.Stats.MaxVelocity,
			MaxPressure: out.Stats.MaxPressure,
			ElapsedMS:   out.Stats.ElapsedMS,
		},
	}
	if spec.OutputFile != "" {
		r.OutputFile = spec.OutputFile
	}
	return r
}
