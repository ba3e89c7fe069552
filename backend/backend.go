package backend

import (
	"errors"

	"github.com/gogpu/cairo/ffi"
)

// Backend names.
const (
	// BackendSoftware is the in-process library in package software.
	BackendSoftware = "software"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a library instance. Each call returns an independent
// library with its own handle table.
type Factory func() ffi.Library
