//go:build cgo && !windows

package cfd_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
)

func openLib(t *testing.T) *cfd.Library {
	t.Helper()
	lib, err := cfd.Open(cfd.Config{})
	if err != nil {
		if errors.Is(err, cfd.ErrNotBuilt) {
			t.Skip("native engine not linked into this binary")
		}
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestRegistryNative(t *testing.T) {
	lib := openLib(t)

	names, err := lib.ListSolvers()
	if err != nil {
		t.Fatalf("ListSolvers: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("registry is empty after Open")
	}

	for _, name := range names {
		if !lib.HasSolver(name) {
			t.Errorf("HasSolver(%q) = false for a listed solver", name)
		}
		info, err := lib.GetSolverInfo(name)
		if err != nil {
			t.Fatalf("GetSolverInfo(%q): %v", name, err)
		}
		if info.Name != name {
			t.Errorf("info.Name = %q, want %q", info.Name, name)
		}
		if info.Description == "" || info.Version == "" {
			t.Errorf("solver %q missing description or version", name)
		}
	}

	if lib.HasSolver("no_such_solver") {
		t.Error("HasSolver reported an unregistered name")
	}
	_, err = lib.GetSolverInfo("no_such_solver")
	if !errors.Is(err, cfd.ErrUnknownSolver) {
		t.Fatalf("GetSolverInfo(unknown) = %v, want ErrUnknownSolver", err)
	}
	if !strings.Contains(err.Error(), "no_such_solver") {
		t.Errorf("error should name the missing solver: %v", err)
	}
}

func TestSolverConstantsNative(t *testing.T) {
	lib := openLib(t)

	names, err := lib.ListSolvers()
	if err != nil {
		t.Fatalf("ListSolvers: %v", err)
	}
	consts := lib.SolverConstants()
	for _, name := range names {
		want := "SOLVER_" + strings.ToUpper(name)
		if len(want) > 63 {
			continue // over-long names are skipped by design
		}
		if consts[want] != name {
			t.Errorf("constant %q missing or wrong: %q", want, consts[want])
		}
	}
}

func TestDefaultParamsNative(t *testing.T) {
	lib := openLib(t)

	p, err := lib.DefaultParams()
	if err != nil {
		t.Fatalf("DefaultParams: %v", err)
	}
	if p.Dt <= 0 {
		t.Errorf("default dt = %g, want > 0", p.Dt)
	}
	if p.CFL <= 0 || p.CFL > 1 {
		t.Errorf("default cfl = %g, want (0,1]", p.CFL)
	}
	if p.MaxIter <= 0 {
		t.Errorf("default max_iter = %d, want > 0", p.MaxIter)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("engine defaults fail validation: %v", err)
	}
}

func TestBackendsNative(t *testing.T) {
	lib := openLib(t)

	if !lib.BackendAvailable(cfd.BackendScalar) {
		t.Fatal("scalar backend must always be available")
	}
	available := lib.AvailableBackends()
	if len(available) == 0 || available[0] != "scalar" {
		t.Fatalf("AvailableBackends = %v, want scalar first", available)
	}

	name, ok := lib.BackendName(cfd.BackendScalar)
	if !ok || name != "scalar" {
		t.Errorf("BackendName(scalar) = %q, %v", name, ok)
	}
	if _, ok := lib.BackendName(cfd.Backend(99)); ok {
		t.Error("BackendName accepted an unknown tag")
	}

	solvers, err := lib.SolversForBackend(cfd.BackendScalar)
	if err != nil {
		t.Fatalf("SolversForBackend(scalar): %v", err)
	}
	if len(solvers) == 0 {
		t.Error("no solvers implemented for the scalar backend")
	}
	for _, s := range solvers {
		if !lib.HasSolver(s) {
			t.Errorf("backend-listed solver %q is not registered", s)
		}
	}

	// Unknown tags yield an empty list, not an error.
	solvers, err = lib.SolversForBackend(cfd.Backend(99))
	if err != nil {
		t.Fatalf("SolversForBackend(unknown): %v", err)
	}
	if len(solvers) != 0 {
		t.Errorf("unknown backend lists solvers: %v", solvers)
	}
}

func TestSIMDDetectionNative(t *testing.T) {
	lib := openLib(t)

	arch := lib.SIMDArch()
	switch arch {
	case cfd.SIMDNone, cfd.SIMDAVX2, cfd.SIMDNEON:
	default:
		t.Fatalf("unexpected SIMD arch %d", arch)
	}
	if lib.HasSIMD() != (arch != cfd.SIMDNone) {
		t.Error("HasSIMD disagrees with SIMDArch")
	}
	if lib.HasAVX2() && lib.HasNEON() {
		t.Error("AVX2 and NEON cannot both be present")
	}
	if name := lib.SIMDName(); name == "" {
		t.Error("SIMDName returned empty")
	}
}

func TestBCBackendsNative(t *testing.T) {
	lib := openLib(t)

	if !lib.BCBackendAvailable(cfd.BCBackendScalar) {
		t.Fatal("scalar BC backend must always be available")
	}
	if err := lib.SetBCBackend(cfd.BCBackendScalar); err != nil {
		t.Fatalf("SetBCBackend(scalar): %v", err)
	}
	if got := lib.BCCurrentBackend(); got != cfd.BCBackendScalar {
		t.Errorf("BCCurrentBackend = %v after selecting scalar", got)
	}
	if name := lib.BCCurrentBackendName(); name == "" {
		t.Error("BCCurrentBackendName returned empty")
	}

	if !lib.BCBackendAvailable(cfd.BCBackendCUDA) {
		err := lib.SetBCBackend(cfd.BCBackendCUDA)
		if !errors.Is(err, cfd.ErrUnsupported) {
			t.Fatalf("selecting unavailable backend = %v, want ErrUnsupported", err)
		}
	}
}

func TestGridNative(t *testing.T) {
	lib := openLib(t)

	const nx, ny = 11, 21
	g, err := lib.CreateGrid(nx, ny, 0, 1, -1, 1)
	if err != nil {
		t.Fatalf("CreateGrid: %v", err)
	}
	if len(g.X) != nx || len(g.Y) != ny {
		t.Fatalf("coordinate lengths = %d, %d, want %d, %d", len(g.X), len(g.Y), nx, ny)
	}
	if g.X[0] != 0 || math.Abs(g.X[nx-1]-1) > 1e-12 {
		t.Errorf("x range = [%g, %g], want [0, 1]", g.X[0], g.X[nx-1])
	}
	if g.Y[0] != -1 || math.Abs(g.Y[ny-1]-1) > 1e-12 {
		t.Errorf("y range = [%g, %g], want [-1, 1]", g.Y[0], g.Y[ny-1])
	}

	// Uniform spacing.
	dx := g.X[1] - g.X[0]
	for i := 1; i < nx-1; i++ {
		if math.Abs((g.X[i+1]-g.X[i])-dx) > 1e-12 {
			t.Fatalf("non-uniform spacing at i=%d", i)
		}
	}
}

func TestGridStretchedNative(t *testing.T) {
	t.Skip("engine stretching formula produces non-monotonic coordinates for moderate beta; re-enable after the upstream fix")

	lib := openLib(t)
	g, err := lib.CreateGridStretched(16, 16, 0, 1, 0, 1, 2.0)
	if err != nil {
		t.Fatalf("CreateGridStretched: %v", err)
	}
	for i := 1; i < len(g.X); i++ {
		if g.X[i] <= g.X[i-1] {
			t.Fatalf("x not strictly increasing at i=%d", i)
		}
	}
}

func TestBoundaryConditionsNative(t *testing.T) {
	lib := openLib(t)
	const nx, ny = 6, 5

	field := make([]float64, nx*ny)
	for i := range field {
		field[i] = 7.5
	}
	if err := lib.ApplyDirichlet(field, nx, ny, 1, 2, 3, 4); err != nil {
		t.Fatalf("ApplyDirichlet: %v", err)
	}
	// Interior untouched, bottom and top rows set.
	if field[nx+2] != 7.5 {
		t.Errorf("interior cell modified: %g", field[nx+2])
	}
	if field[2] != 3 {
		t.Errorf("bottom row = %g, want 3", field[2])
	}
	if field[(ny-1)*nx+2] != 4 {
		t.Errorf("top row = %g, want 4", field[(ny-1)*nx+2])
	}

	u := make([]float64, nx*ny)
	v := make([]float64, nx*ny)
	for i := range u {
		u[i], v[i] = 1, -1
	}
	if err := lib.ApplyNoSlip(u, v, nx, ny); err != nil {
		t.Fatalf("ApplyNoSlip: %v", err)
	}
	for i := 0; i < nx; i++ {
		if u[i] != 0 || v[i] != 0 {
			t.Fatalf("bottom wall not zeroed at %d", i)
		}
		top := (ny-1)*nx + i
		if u[top] != 0 || v[top] != 0 {
			t.Fatalf("top wall not zeroed at %d", i)
		}
	}
	for j := 0; j < ny; j++ {
		if u[j*nx] != 0 || u[j*nx+nx-1] != 0 {
			t.Fatalf("side wall not zeroed at row %d", j)
		}
	}
	if u[nx+2] != 1 || v[nx+2] != -1 {
		t.Error("interior velocity modified by no-slip")
	}
}

func TestInletOutletNative(t *testing.T) {
	lib := openLib(t)
	const nx, ny = 5, 5

	u := make([]float64, nx*ny)
	v := make([]float64, nx*ny)
	if err := lib.ApplyInletUniform(u, v, nx, ny, 2.5, 0.5, cfd.EdgeLeft); err != nil {
		t.Fatalf("ApplyInletUniform: %v", err)
	}
	for j := 0; j < ny; j++ {
		if u[j*nx] != 2.5 || v[j*nx] != 0.5 {
			t.Fatalf("left column row %d = (%g, %g)", j, u[j*nx], v[j*nx])
		}
	}

	field := make([]float64, nx*ny)
	for i := range field {
		field[i] = float64(i)
	}
	if err := lib.ApplyOutletScalar(field, nx, ny, cfd.EdgeRight); err != nil {
		t.Fatalf("ApplyOutletScalar: %v", err)
	}
	for j := 0; j < ny; j++ {
		boundary := j*nx + nx - 1
		if field[boundary] != field[boundary-1] {
			t.Fatalf("zero-gradient outlet violated at row %d", j)
		}
	}
}

func TestFieldStatsNative(t *testing.T) {
	lib := openLib(t)

	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	s, err := lib.ComputeFieldStats(data)
	if err != nil {
		t.Fatalf("ComputeFieldStats: %v", err)
	}
	if s.Min != floats.Min(data) || s.Max != floats.Max(data) {
		t.Errorf("min/max = %g/%g, want %g/%g", s.Min, s.Max, floats.Min(data), floats.Max(data))
	}
	sum := floats.Sum(data)
	if math.Abs(s.Sum-sum) > 1e-12 {
		t.Errorf("sum = %g, want %g", s.Sum, sum)
	}
	if math.Abs(s.Avg-sum/float64(len(data))) > 1e-12 {
		t.Errorf("avg = %g, want %g", s.Avg, sum/float64(len(data)))
	}
}

func TestVelocityMagnitudeNative(t *testing.T) {
	lib := openLib(t)
	const nx, ny = 2, 2

	u := []float64{3, 0, 1, 0}
	v := []float64{4, 0, 1, 2}
	mag, err := lib.VelocityMagnitude(u, v, nx, ny)
	if err != nil {
		t.Fatalf("VelocityMagnitude: %v", err)
	}
	want := []float64{5, 0, math.Sqrt2, 2}
	if len(mag) != len(want) {
		t.Fatalf("length = %d, want %d", len(mag), len(want))
	}
	for i := range want {
		if math.Abs(mag[i]-want[i]) > 1e-12 {
			t.Errorf("mag[%d] = %g, want %g", i, mag[i], want[i])
		}
	}
	// Inputs must be untouched.
	if u[0] != 3 || v[0] != 4 {
		t.Error("inputs modified")
	}
}

func TestRunSimulationNative(t *testing.T) {
	lib := openLib(t)

	res, err := lib.Run(cfd.RunSpec{
		NX: 16, NY: 16,
		XMin: 0, XMax: 1, YMin: 0, YMax: 1,
		Steps: 5,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.VelocityMagnitude) != 16*16 {
		t.Fatalf("field length = %d, want %d", len(res.VelocityMagnitude), 16*16)
	}
	for i, m := range res.VelocityMagnitude {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			t.Fatalf("velocity magnitude [%d] = %g", i, m)
		}
	}
	if res.SolverName == "" {
		t.Error("result missing solver name")
	}

	// Zero steps returns the initial state.
	res0, err := lib.Run(cfd.RunSpec{NX: 8, NY: 8, XMax: 1, YMax: 1, Steps: 0})
	if err != nil {
		t.Fatalf("zero-step Run: %v", err)
	}
	if len(res0.VelocityMagnitude) != 64 {
		t.Fatalf("zero-step field length = %d", len(res0.VelocityMagnitude))
	}

	_, err = lib.Run(cfd.RunSpec{NX: 8, NY: 8, XMax: 1, YMax: 1, Steps: 1, Solver: "no_such_solver"})
	if !errors.Is(err, cfd.ErrUnknownSolver) {
		t.Fatalf("unknown solver = %v, want ErrUnknownSolver", err)
	}
}

func TestWriteVTKNative(t *testing.T) {
	lib := openLib(t)
	dir := t.TempDir()

	const nx, ny = 4, 4
	data := make([]float64, nx*ny)
	for i := range data {
		data[i] = float64(i)
	}
	file := filepath.Join(dir, "pressure.vtk")
	if err := lib.WriteVTKScalar(file, "pressure", data, nx, ny, 0, 1, 0, 1); err != nil {
		t.Fatalf("WriteVTKScalar: %v", err)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	u := make([]float64, nx*ny)
	v := make([]float64, nx*ny)
	vfile := filepath.Join(dir, "velocity.vtk")
	if err := lib.WriteVTKVector(vfile, "velocity", u, v, nx, ny, 0, 1, 0, 1); err != nil {
		t.Fatalf("WriteVTKVector: %v", err)
	}
	if _, err := os.Stat(vfile); err != nil {
		t.Fatalf("vector output missing: %v", err)
	}
}

func TestLastErrorSlotNative(t *testing.T) {
	lib := openLib(t)

	cfd.ClearError()
	if msg := cfd.LastError(); msg != "" {
		t.Fatalf("slot not clear after ClearError: %q", msg)
	}

	// Provoke a native failure and read the diagnostic back.
	_, err := lib.GetSolverInfo("no_such_solver")
	if err == nil {
		t.Fatal("expected failure for unknown solver")
	}
	if cfd.StatusString(cfd.StatusNoMem) == "" {
		t.Error("StatusString returned empty for a known code")
	}

	cfd.ClearError()
	if cfd.LastStatus() != cfd.StatusSuccess {
		t.Errorf("LastStatus = %d after clear", cfd.LastStatus())
	}
}
