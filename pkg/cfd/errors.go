package cfd

import (
	"errors"
	"fmt"

	"github.com/cfdlib/cfd-go/internal/bindings"
)

// Status is a libcfd status code. The enumeration is closed and fixed by the
// C ABI; unknown codes translate to the generic ErrCFD kind.
type Status int

const (
	StatusSuccess     Status = bindings.StatusSuccess
	StatusError       Status = bindings.StatusError
	StatusNoMem       Status = bindings.StatusNoMem
	StatusInvalid     Status = bindings.StatusInvalid
	StatusIO          Status = bindings.StatusIO
	StatusUnsupported Status = bindings.StatusUnsupported
	StatusDiverged    Status = bindings.StatusDiverged
	StatusMaxIter     Status = bindings.StatusMaxIter
)

var (
	// ErrCFD is the generic error kind; every other kind wraps a more
	// specific condition.
	ErrCFD = errors.New("cfd: native error")

	// ErrNoMem indicates a native allocation failure.
	ErrNoMem = errors.New("cfd: out of memory")

	// ErrInvalid indicates an invalid argument, detected either by this
	// layer's validation (before any native call) or by the engine.
	ErrInvalid = errors.New("cfd: invalid argument")

	// ErrIO indicates a persistence failure in one of the file writers.
	ErrIO = errors.New("cfd: i/o failure")

	// ErrUnsupported indicates a requested backend or operation that is not
	// compiled in or not runtime-capable.
	ErrUnsupported = errors.New("cfd: unsupported operation")

	// ErrDiverged indicates solver-reported numerical divergence.
	ErrDiverged = errors.New("cfd: solver diverged")

	// ErrMaxIter indicates the solver hit its iteration limit without
	// converging.
	ErrMaxIter = errors.New("cfd: maximum iterations exceeded")

	// ErrUnknownSolver indicates a solver name absent from the registry.
	ErrUnknownSolver = errors.New("cfd: unknown solver")

	// ErrClosed indicates use of a Library after Close.
	ErrClosed = errors.New("cfd: library closed")

	// ErrNotBuilt indicates the binary was built without the native
	// bindings (no cgo, or an unsupported platform).
	ErrNotBuilt = bindings.ErrNotBuilt
)

// Error wraps an error kind with the failing operation, the native status
// code, and the diagnostic captured from the engine's last-error slot at the
// moment of failure.
type Error struct {
	Op      string // operation that failed
	Status  Status // native status code, StatusSuccess for pure-Go failures
	Message string // native diagnostic or validation detail, may be empty
	Err     error  // sentinel kind, for errors.Is
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cfd.%s: %v: %s", e.Op, e.Err, e.Message)
	}
	return fmt.Sprintf("cfd.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// kindFor maps a status code to its sentinel kind. Unknown codes map to the
// generic kind; translation itself cannot fail.
func kindFor(status Status) error {
	switch status {
	case StatusNoMem:
		return ErrNoMem
	case StatusInvalid:
		return ErrInvalid
	case StatusIO:
		return ErrIO
	case StatusUnsupported:
		return ErrUnsupported
	case StatusDiverged:
		return ErrDiverged
	case StatusMaxIter:
		return ErrMaxIter
	default:
		return ErrCFD
	}
}

// translate converts an internal bindings error into the public taxonomy.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var ne *bindings.NativeError
	if errors.As(err, &ne) {
		return &Error{
			Op:      op,
			Status:  Status(ne.Status),
			Message: ne.Message,
			Err:     kindFor(Status(ne.Status)),
		}
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		return &Error{Op: op, Err: ErrNotBuilt}
	}
	return &Error{Op: op, Err: err}
}

// invalidf builds a validation error raised before any native call.
func invalidf(op, format string, args ...interface{}) error {
	return &Error{
		Op:      op,
		Status:  StatusInvalid,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrInvalid,
	}
}

// LastError returns the engine's process-wide diagnostic string, or "" when
// the slot is clear. Reading does not clear the slot; the slot is overwritten
// by each failing native call.
func LastError() string {
	return bindings.LastError()
}

// LastStatus returns the status code stored alongside the last-error slot.
func LastStatus() Status {
	return Status(bindings.LastStatus())
}

// ClearError clears the engine's last-error slot.
func ClearError() {
	bindings.ClearError()
}

// StatusString returns the engine's human-readable description for a status
// code.
func StatusString(code Status) string {
	return bindings.StatusString(int(code))
}
