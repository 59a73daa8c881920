package cfd

import (
	"errors"
	"testing"
)

func TestComputeFieldStatsRejectsEmptyField(t *testing.T) {
	l := &Library{opened: true}
	_, err := l.ComputeFieldStats(nil)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("ComputeFieldStats(nil) = %v, want ErrInvalid", err)
	}
	_, err = l.ComputeFieldStats([]float64{})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("ComputeFieldStats(empty) = %v, want ErrInvalid", err)
	}
}

func TestVelocityMagnitudeValidation(t *testing.T) {
	l := &Library{opened: true}
	u := make([]float64, 16)

	if _, err := l.VelocityMagnitude(u, make([]float64, 8), 4, 4); !errors.Is(err, ErrInvalid) {
		t.Fatalf("mismatched v: got %v, want ErrInvalid", err)
	}
	if _, err := l.VelocityMagnitude(u, u, 1, 16); !errors.Is(err, ErrInvalid) {
		t.Fatalf("degenerate grid: got %v, want ErrInvalid", err)
	}
}

func TestComputeFlowStatisticsValidation(t *testing.T) {
	l := &Library{opened: true}
	u := make([]float64, 16)
	v := make([]float64, 16)

	if _, err := l.ComputeFlowStatistics(u, v, make([]float64, 9), 4, 4); !errors.Is(err, ErrInvalid) {
		t.Fatalf("mismatched p: got %v, want ErrInvalid", err)
	}
}
