package cfd

// BCType identifies a boundary-condition family.
type BCType int

const (
	BCPeriodic BCType = iota
	BCNeumann
	BCDirichlet
	BCNoSlip
	BCInlet
	BCOutlet
)

func (t BCType) String() string {
	switch t {
	case BCPeriodic:
		return "periodic"
	case BCNeumann:
		return "neumann"
	case BCDirichlet:
		return "dirichlet"
	case BCNoSlip:
		return "noslip"
	case BCInlet:
		return "inlet"
	case BCOutlet:
		return "outlet"
	default:
		return "unknown"
	}
}

func (t BCType) valid() bool {
	return t >= BCPeriodic && t <= BCOutlet
}

// Edge selects one boundary of the rectangular domain.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

func (e Edge) valid() bool {
	return e >= EdgeLeft && e <= EdgeTop
}

// Backend identifies a solver compute backend. The tag values match the C
// enum and must not be reordered.
type Backend int

const (
	BackendScalar Backend = 0
	BackendSIMD   Backend = 1
	BackendOMP    Backend = 2
	BackendCUDA   Backend = 3
)

// backendProbeOrder fixes the deterministic iteration order used by
// AvailableBackends.
var backendProbeOrder = [...]Backend{BackendScalar, BackendSIMD, BackendOMP, BackendCUDA}

func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendSIMD:
		return "simd"
	case BackendOMP:
		return "omp"
	case BackendCUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// BCBackend identifies a boundary-condition compute backend. Auto lets the
// engine pick the fastest available one.
type BCBackend int

const (
	BCBackendAuto BCBackend = iota
	BCBackendScalar
	BCBackendOMP
	BCBackendSIMD
	BCBackendCUDA
)

func (b BCBackend) String() string {
	switch b {
	case BCBackendAuto:
		return "auto"
	case BCBackendScalar:
		return "scalar"
	case BCBackendOMP:
		return "omp"
	case BCBackendSIMD:
		return "simd"
	case BCBackendCUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// SIMDArch identifies the SIMD instruction set detected at engine build or
// run time.
type SIMDArch int

const (
	SIMDNone SIMDArch = 0
	SIMDAVX2 SIMDArch = 1
	SIMDNEON SIMDArch = 2
)

func (a SIMDArch) String() string {
	switch a {
	case SIMDNone:
		return "none"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// OutputType selects what the native writers emit.
type OutputType int

const (
	OutputPressure OutputType = iota
	OutputVelocity
	OutputVelocityMagnitude
	OutputFullField
	OutputCSVTimeseries
	OutputCSVCenterline
	OutputCSVStatistics
)
