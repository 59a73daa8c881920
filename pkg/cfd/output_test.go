package cfd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteVTKScalarValidation(t *testing.T) {
	l := &Library{opened: true}
	data := make([]float64, 16)

	assert.ErrorIs(t, l.WriteVTKScalar("", "p", data, 4, 4, 0, 1, 0, 1), ErrInvalid,
		"empty file")
	assert.ErrorIs(t, l.WriteVTKScalar("out.vtk", "p", data[:9], 4, 4, 0, 1, 0, 1), ErrInvalid,
		"length mismatch")
	assert.ErrorIs(t, l.WriteVTKScalar("out.vtk", "p", data, 4, 4, 1, 0, 0, 1), ErrInvalid,
		"inverted x bounds")
	assert.ErrorIs(t, l.WriteVTKScalar("out.vtk", "p", data, 4, 4, 0, 1, 1, 1), ErrInvalid,
		"degenerate y bounds")
}

func TestWriteVTKVectorValidation(t *testing.T) {
	l := &Library{opened: true}
	u := make([]float64, 16)

	assert.ErrorIs(t, l.WriteVTKVector("out.vtk", "vel", u, make([]float64, 4), 4, 4, 0, 1, 0, 1),
		ErrInvalid)
}

func TestWriteCSVTimeseriesValidation(t *testing.T) {
	l := &Library{opened: true}
	row := TimeseriesRow{
		U: make([]float64, 16),
		V: make([]float64, 16),
		P: make([]float64, 12),
	}
	assert.ErrorIs(t, l.WriteCSVTimeseries("ts.csv", row, 4, 4, true), ErrInvalid)

	row.P = make([]float64, 16)
	assert.ErrorIs(t, l.WriteCSVTimeseries("", row, 4, 4, true), ErrInvalid)
}

func TestSetOutputDirValidation(t *testing.T) {
	l := &Library{opened: true}
	assert.ErrorIs(t, l.SetOutputDir(""), ErrInvalid)
}

func TestDeprecatedWriteVTKDelegates(t *testing.T) {
	// The legacy entry point shares WriteVTKScalar's validation.
	l := &Library{opened: true}
	assert.ErrorIs(t, l.WriteVTK("out.vtk", make([]float64, 9), 4, 4, 0, 1, 0, 1), ErrInvalid)
}
