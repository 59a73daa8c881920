package cfd

import (
	"github.com/cfdlib/cfd-go/internal/bindings"
)

// BackendAvailable reports whether a solver backend is compiled in and
// runtime-capable. A CUDA build without a device reports false. Unknown tags
// report false rather than an error.
func (l *Library) BackendAvailable(b Backend) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return false
	}
	return bindings.BackendAvailable(int(b))
}

// BackendName returns the canonical name for a backend tag; ok is false for
// unknown tags.
func (l *Library) BackendName(b Backend) (name string, ok bool) {
	if l == nil {
		return "", false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return "", false
	}
	return bindings.BackendName(int(b))
}

// SolversForBackend lists the solver names implemented for a backend. The
// two-phase native count/fill protocol is hidden behind this one call.
// Unknown tags yield an empty list.
func (l *Library) SolversForBackend(b Backend) ([]string, error) {
	const op = "SolversForBackend"
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensure(op); err != nil {
		return nil, err
	}
	names, err := bindings.SolversForBackend(int(b))
	if err != nil {
		return nil, translate(op, err)
	}
	return names, nil
}

// AvailableBackends returns the names of every available backend, probing
// the closed backend set in the fixed order scalar, simd, omp, cuda. The
// scalar backend is always present.
func (l *Library) AvailableBackends() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return nil
	}
	out := make([]string, 0, len(backendProbeOrder))
	for _, b := range backendProbeOrder {
		if bindings.BackendAvailable(int(b)) {
			out = append(out, b.String())
		}
	}
	return out
}

// SIMDArch returns the SIMD instruction set the engine detected on the
// running CPU.
func (l *Library) SIMDArch() SIMDArch {
	if l == nil {
		return SIMDNone
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return SIMDNone
	}
	return SIMDArch(bindings.SIMDArch())
}

// SIMDName returns the engine's name for the detected SIMD architecture.
func (l *Library) SIMDName() string {
	if l == nil {
		return SIMDNone.String()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return SIMDNone.String()
	}
	return bindings.SIMDName()
}

// HasAVX2 reports AVX2 support on the running CPU.
func (l *Library) HasAVX2() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opened && bindings.HasAVX2()
}

// HasNEON reports NEON support on the running CPU.
func (l *Library) HasNEON() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opened && bindings.HasNEON()
}

// HasSIMD reports whether any SIMD instruction set was detected.
func (l *Library) HasSIMD() bool {
	return l.SIMDArch() != SIMDNone
}
