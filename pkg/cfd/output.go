package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// SetOutputDir sets the base directory for native-side writers. Relative
// output paths in later write calls resolve under it.
func (l *Library) SetOutputDir(dir string) error {
	const op = "SetOutputDir"
	if dir == "" {
		return invalidf(op, "output directory must not be empty")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	bindings.SetOutputDir(dir)
	return nil
}

// WriteVTKScalar writes a named scalar field to file in legacy VTK format.
func (l *Library) WriteVTKScalar(file, fieldName string, data []float64, nx, ny int,
	xmin, xmax, ymin, ymax float64) error {

	const op = "WriteVTKScalar"
	if file == "" {
		return invalidf(op, "output file must not be empty")
	}
	if err := checkField(op, "data", data, nx, ny); err != nil {
		return err
	}
	if xmax <= xmin || ymax <= ymin {
		return invalidf(op, "domain bounds must satisfy xmax > xmin and ymax > ymin")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.WriteVTKScalar(file, fieldName, data, nx, ny,
		xmin, xmax, ymin, ymax))
}

// WriteVTKVector writes a named (u, v) vector field to file in legacy VTK
// format.
func (l *Library) WriteVTKVector(file, fieldName string, u, v []float64, nx, ny int,
	xmin, xmax, ymin, ymax float64) error {

	const op = "WriteVTKVector"
	if file == "" {
		return invalidf(op, "output file must not be empty")
	}
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return err
	}
	if xmax <= xmin || ymax <= ymin {
		return invalidf(op, "domain bounds must satisfy xmax > xmin and ymax > ymin")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.WriteVTKVector(file, fieldName, u, v, nx, ny,
		xmin, xmax, ymin, ymax))
}

// TimeseriesRow is one timestep record for the CSV writer.
type TimeseriesRow struct {
	Step       int
	Time       float64
	U, V, P    []float64
	Dt         float64
	Iterations int
}

// WriteCSVTimeseries appends one timestep record to a CSV file, creating the
// file with a header row when createNew is true.
func (l *Library) WriteCSVTimeseries(file string, row TimeseriesRow, nx, ny int, createNew bool) error {
	const op = "WriteCSVTimeseries"
	if file == "" {
		return invalidf(op, "output file must not be empty")
	}
	if err := checkVelocityPair(op, row.U, row.V, nx, ny); err != nil {
		return err
	}
	if err := checkField(op, "p", row.P, nx, ny); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return err
	}
	return translate(op, bindings.WriteCSVTimeseries(file, row.Step, row.Time,
		row.U, row.V, row.P, nx, ny, row.Dt, row.Iterations, createNew))
}

// WriteVTK writes a scalar field to file.
//
// Deprecated: use WriteVTKScalar. Retained for callers of the original
// binding surface; the field is written under the name "field".
func (l *Library) WriteVTK(file string, data []float64, nx, ny int,
	xmin, xmax, ymin, ymax float64) error {
	return l.WriteVTKScalar(file, "field", data, nx, ny, xmin, xmax, ymin, ymax)
}
