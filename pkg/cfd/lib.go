package cfd

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cfdlib/cfd-go/internal/bindings"
	"github.com/cfdlib/cfd-go/pkg/cfd/logging"
)

// solverConstPrefix and maxConstantLen bound the synthesized SOLVER_*
// constant names. Names whose constant would exceed the limit are skipped
// with a warning; silent truncation could produce colliding constants.
const (
	solverConstPrefix = "SOLVER_"
	maxConstantLen    = 63
)

// Library is the handle to the process-wide native engine state: the solver
// registry and the last-error slot. Open initializes the registry exactly
// once per Library; queries and operations go through Library methods, which
// serialize native calls so a failing call on one goroutine cannot overwrite
// another's diagnostic before it is read.
type Library struct {
	mu     sync.Mutex
	log    logging.Logger
	consts map[string]string
	opened bool
}

// Open initializes the native solver registry and returns a Library handle.
// Returns ErrNotBuilt when the binary lacks the native bindings.
func Open(cfg Config) (*Library, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	if !bindings.Built() {
		return nil, &Error{Op: "Open", Err: ErrNotBuilt}
	}
	if err := bindings.Init(); err != nil {
		return nil, translate("Open", err)
	}
	if cfg.OutputDir != "" {
		bindings.SetOutputDir(cfg.OutputDir)
	}

	l := &Library{log: log, opened: true}
	names, err := bindings.ListSolvers()
	if err != nil {
		return nil, translate("Open", err)
	}
	l.consts = synthesizeConstants(names, log)
	return l, nil
}

// Close releases the Library handle. The native registry itself lives for
// the process lifetime; Close only invalidates this handle. Calling Close
// twice returns ErrClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.opened {
		return ErrClosed
	}
	l.opened = false
	return nil
}

// SolverConstants returns the synthesized constant-name to solver-name
// mapping, e.g. "SOLVER_EXPLICIT_EULER" -> "explicit_euler".
func (l *Library) SolverConstants() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]string, len(l.consts))
	for k, v := range l.consts {
		out[k] = v
	}
	return out
}

// ensure returns ErrClosed when the handle is unusable. Callers hold l.mu.
func (l *Library) ensure(op string) error {
	if l == nil || !l.opened {
		return &Error{Op: op, Err: ErrClosed}
	}
	return nil
}

// synthesizeConstants uppercases and prefixes each registered solver name.
// A name producing an over-long constant is skipped, never truncated.
func synthesizeConstants(names []string, log logging.Logger) map[string]string {
	consts := make(map[string]string, len(names))
	for _, name := range names {
		constName := solverConstPrefix + strings.ToUpper(name)
		if len(constName) > maxConstantLen {
			log.Warn("skipping solver constant: name too long",
				zap.String("solver", name),
				zap.Int("limit", maxConstantLen))
			continue
		}
		consts[constName] = name
	}
	return consts
}
