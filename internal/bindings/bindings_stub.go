//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds and Windows. The package compiles
// everywhere; every native entry point reports ErrNotBuilt.

// Built reports whether the native libcfd bindings are linked in.
func Built() bool { return false }

func Init() error { return ErrNotBuilt }

func LastError() string { return "" }

func LastStatus() int { return StatusSuccess }

func ClearError() {}

func StatusString(int) string { return "native bindings not built" }

func CreateGridUniform(int, int, float64, float64, float64, float64) (GridData, error) {
	return GridData{}, ErrNotBuilt
}

func CreateGridStretched(int, int, float64, float64, float64, float64, float64) (GridData, error) {
	return GridData{}, ErrNotBuilt
}

func ListSolvers() ([]string, error) { return nil, ErrNotBuilt }

func HasSolver(string) bool { return false }

func SolverInfo(string) (SolverDesc, bool) { return SolverDesc{}, false }

func DefaultParams() Params { return Params{} }

func SetOutputDir(string) {}

func RunSimulation(int, int, float64, float64, float64, float64, int,
	float64, float64, bool, string, string) (SimOutcome, error) {
	return SimOutcome{}, ErrNotBuilt
}

func BackendAvailable(int) bool { return false }

func BackendName(int) (string, bool) { return "", false }

func SolversForBackend(int) ([]string, error) { return nil, ErrNotBuilt }

func SIMDArch() int { return 0 }

func SIMDName() string { return "none" }

func HasAVX2() bool { return false }

func HasNEON() bool { return false }

func BCGetBackend() int { return 0 }

func BCGetBackendName() string { return "" }

func BCSetBackend(int) bool { return false }

func BCBackendAvailable(int) bool { return false }

func BCApplyScalar([]float64, int, int, int) error { return ErrNotBuilt }

func BCApplyVelocity([]float64, []float64, int, int, int) error { return ErrNotBuilt }

func BCApplyDirichlet([]float64, int, int, float64, float64, float64, float64) error {
	return ErrNotBuilt
}

func BCApplyNoSlip([]float64, []float64, int, int) error { return ErrNotBuilt }

func BCApplyInletUniform([]float64, []float64, int, int, float64, float64, int) error {
	return ErrNotBuilt
}

func BCApplyInletParabolic([]float64, []float64, int, int, float64, int) error {
	return ErrNotBuilt
}

func BCApplyOutletScalar([]float64, int, int, int) error { return ErrNotBuilt }

func BCApplyOutletVelocity([]float64, []float64, int, int, int) error { return ErrNotBuilt }

func ComputeFieldStats([]float64) (FieldStats, error) { return FieldStats{}, ErrNotBuilt }

func ComputeVelocityMagnitude([]float64, []float64, int, int) ([]float64, error) {
	return nil, ErrNotBuilt
}

func WriteVTKScalar(string, string, []float64, int, int, float64, float64, float64, float64) error {
	return ErrNotBuilt
}

func WriteVTKVector(string, string, []float64, []float64, int, int, float64, float64, float64, float64) error {
	return ErrNotBuilt
}

func WriteCSVTimeseries(string, int, float64, []float64, []float64, []float64,
	int, int, float64, int, bool) error {
	return ErrNotBuilt
}
