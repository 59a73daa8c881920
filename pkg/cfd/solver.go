package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// SolverInfo describes one registered solver.
type SolverInfo struct {
	Name         string
	Description  string
	Version      string
	Capabilities []string
}

// capabilityBits fixes the decode order of the closed capability set.
// Unknown bits in the native bitset are ignored.
var capabilityBits = []struct {
	bit  uint32
	name string
}{
	{bindings.CapIncompressible, "incompressible"},
	{bindings.CapCompressible, "compressible"},
	{bindings.CapSteadyState, "steady_state"},
	{bindings.CapTransient, "transient"},
	{bindings.CapSIMD, "simd"},
	{bindings.CapParallel, "parallel"},
	{bindings.CapGPU, "gpu"},
}

// ListSolvers enumerates the names registered in the process-wide registry.
// The list is non-empty after a successful Open.
func (l *Library) ListSolvers() ([]string, error) {
	const op = "ListSolvers"
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}
	names, err := bindings.ListSolvers()
	if err != nil {
		return nil, translate(op, err)
	}
	return names, nil
}

// HasSolver reports whether name is registered.
func (l *Library) HasSolver(name string) bool {
	if l == nil || name == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return false
	}
	return bindings.HasSolver(name)
}

// GetSolverInfo returns the descriptor for a registered solver. An unknown
// or empty name returns ErrUnknownSolver. The transient native solver handle
// created for introspection is destroyed before return.
func (l *Library) GetSolverInfo(name string) (*SolverInfo, error) {
	const op = "GetSolverInfo"
	if name == "" {
		return nil, invalidf(op, "solver name must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}

	desc, ok := bindings.SolverInfo(name)
	if !ok {
		return nil, &Error{
			Op:      op,
			Message: "unknown solver type: " + name,
			Err:     ErrUnknownSolver,
		}
	}
	return &SolverInfo{
		Name:         desc.Name,
		Description:  desc.Description,
		Version:      desc.Version,
		Capabilities: decodeCapabilities(desc.Capabilities),
	}, nil
}

func decodeCapabilities(bits uint32) []string {
	caps := make([]string, 0, len(capabilityBits))
	for _, c := range capabilityBits {
		if bits&c.bit != 0 {
			caps = append(caps, c.name)
		}
	}
	return caps
}
