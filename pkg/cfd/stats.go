package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// FieldStats are the aggregate statistics of one scalar field.
type FieldStats struct {
	Min float64
	Max float64
	Avg float64
	Sum float64
}

// FlowStatistics collects per-field aggregates for a full flow state.
type FlowStatistics struct {
	U                 FieldStats
	V                 FieldStats
	P                 FieldStats
	VelocityMagnitude FieldStats
}

// ComputeFieldStats returns min, max, average and sum over a scalar field.
// An empty field is rejected; the aggregates would be undefined.
func (l *Library) ComputeFieldStats(data []float64) (FieldStats, error) {
	const op = "ComputeFieldStats"
	if len(data) == 0 {
		return FieldStats{}, invalidf(op, "field must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return FieldStats{}, err
	}
	s, err := bindings.ComputeFieldStats(data)
	if err != nil {
		return FieldStats{}, translate(op, err)
	}
	return FieldStats(s), nil
}

// VelocityMagnitude computes sqrt(u^2+v^2) per cell into a fresh slice. The
// inputs are not modified.
func (l *Library) VelocityMagnitude(u, v []float64, nx, ny int) ([]float64, error) {
	const op = "VelocityMagnitude"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}
	mag, err := bindings.ComputeVelocityMagnitude(u, v, nx, ny)
	if err != nil {
		return nil, translate(op, err)
	}
	return mag, nil
}

// ComputeFlowStatistics derives the velocity magnitude from (u, v) and
// aggregates all four fields in one call.
func (l *Library) ComputeFlowStatistics(u, v, p []float64, nx, ny int) (*FlowStatistics, error) {
	const op = "ComputeFlowStatistics"
	if err := checkVelocityPair(op, u, v, nx, ny); err != nil {
		return nil, err
	}
	if err := checkField(op, "p", p, nx, ny); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}

	mag, err := bindings.ComputeVelocityMagnitude(u, v, nx, ny)
	if err != nil {
		return nil, translate(op, err)
	}
	out := &FlowStatistics{}
	for _, f := range []struct {
		data []float64
		dst  *FieldStats
	}{
		{u, &out.U},
		{v, &out.V},
		{p, &out.P},
		{mag, &out.VelocityMagnitude},
	} {
		s, err := bindings.ComputeFieldStats(f.data)
		if err != nil {
			return nil, translate(op, err)
		}
		*f.dst = FieldStats(s)
	}
	return out, nil
}
