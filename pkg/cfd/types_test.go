package cfd

import "testing"

func TestBackendTagValues(t *testing.T) {
	// The tag values are part of the C ABI and must never drift.
	tests := []struct {
		b    Backend
		tag  int
		name string
	}{
		{BackendScalar, 0, "scalar"},
		{BackendSIMD, 1, "simd"},
		{BackendOMP, 2, "omp"},
		{BackendCUDA, 3, "cuda"},
	}
	for _, tt := range tests {
		if int(tt.b) != tt.tag {
			t.Errorf("%s tag = %d, want %d", tt.name, int(tt.b), tt.tag)
		}
		if tt.b.String() != tt.name {
			t.Errorf("Backend(%d).String() = %q, want %q", tt.tag, tt.b.String(), tt.name)
		}
	}
	if Backend(7).String() != "unknown" {
		t.Errorf("out-of-range backend String() = %q", Backend(7).String())
	}
}

func TestBCBackendNames(t *testing.T) {
	tests := []struct {
		b    BCBackend
		name string
	}{
		{BCBackendAuto, "auto"},
		{BCBackendScalar, "scalar"},
		{BCBackendOMP, "omp"},
		{BCBackendSIMD, "simd"},
		{BCBackendCUDA, "cuda"},
	}
	for _, tt := range tests {
		if tt.b.String() != tt.name {
			t.Errorf("BCBackend(%d).String() = %q, want %q", int(tt.b), tt.b.String(), tt.name)
		}
	}
}

func TestBCTypeValid(t *testing.T) {
	for bc := BCPeriodic; bc <= BCOutlet; bc++ {
		if !bc.valid() {
			t.Errorf("BCType(%d) should be valid", int(bc))
		}
		if bc.String() == "unknown" {
			t.Errorf("BCType(%d) has no name", int(bc))
		}
	}
	if BCType(-1).valid() || BCType(6).valid() {
		t.Error("out-of-range BCType reported valid")
	}
}

func TestEdgeValid(t *testing.T) {
	names := map[Edge]string{
		EdgeLeft:   "left",
		EdgeRight:  "right",
		EdgeBottom: "bottom",
		EdgeTop:    "top",
	}
	for e, want := range names {
		if !e.valid() {
			t.Errorf("Edge(%d) should be valid", int(e))
		}
		if e.String() != want {
			t.Errorf("Edge(%d).String() = %q, want %q", int(e), e.String(), want)
		}
	}
	if Edge(-1).valid() || Edge(4).valid() {
		t.Error("out-of-range Edge reported valid")
	}
}

func TestSIMDArchNames(t *testing.T) {
	tests := []struct {
		a    SIMDArch
		name string
	}{
		{SIMDNone, "none"},
		{SIMDAVX2, "avx2"},
		{SIMDNEON, "neon"},
	}
	for _, tt := range tests {
		if tt.a.String() != tt.name {
			t.Errorf("SIMDArch(%d).String() = %q, want %q", int(tt.a), tt.a.String(), tt.name)
		}
	}
}
