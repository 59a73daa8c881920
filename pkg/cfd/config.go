package cfd

import "github.com/cfdlib/cfd-go/pkg/cfd/logging"

// Config expresses the knobs applied when opening the native library.
type Config struct {
	// OutputDir is the base directory for engine-side file writers. Empty
	// leaves the engine default in place.
	OutputDir string

	// Logger receives wrapper diagnostics such as skipped solver constant
	// names. Nil binds to a no-op logger.
	Logger logging.Logger
}
