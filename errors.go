package cairo

import (
	"errors"
	"fmt"

	"github.com/gogpu/cairo/ffi"
)

// Errors.
var (
	// ErrInvalidHandle is returned when the foreign null sentinel is passed
	// where a handle was expected.
	ErrInvalidHandle = errors.New("cairo: invalid handle: null")

	// ErrClosed is returned by operations on a surface or pattern after Close.
	ErrClosed = errors.New("cairo: use of closed object")
)

// StatusError reports a non-success status from the foreign library.
// Status carries the library's code verbatim, so callers can branch on
// specific conditions:
//
//	if cairo.IsStatus(err, ffi.StatusSurfaceFinished) { ... }
type StatusError struct {
	Status ffi.Status

	// Err is the local failure behind the status, if any; for example the
	// *StreamError of a writer that failed while the library was streaming.
	Err error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return "cairo: " + e.Status.String() + ": " + e.Err.Error()
	}
	return "cairo: " + e.Status.String()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Is matches another *StatusError with the same status.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Status == e.Status
}

// IsStatus reports whether err carries the given foreign status.
func IsStatus(err error, status ffi.Status) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// checkStatus converts a foreign status into an error.
func checkStatus(status ffi.Status) error {
	if status == ffi.StatusSuccess {
		return nil
	}
	return &StatusError{Status: status}
}

// StreamError is a failure of a local reader or writer while the foreign
// library was streaming through it. It surfaces as the Err of a
// *StatusError with StatusReadError or StatusWriteError.
type StreamError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *StreamError) Error() string {
	return "cairo: stream " + e.Op + ": " + e.Err.Error()
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// UnsupportedVersionError reports a version or level value the library has
// no string representation for.
type UnsupportedVersionError struct {
	Kind  string // "PDF version", "PS level", "SVG version"
	Value int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("cairo: unsupported %s %d", e.Kind, e.Value)
}

// BufferSizeError reports a caller-supplied pixel buffer that is too small
// for the requested image.
type BufferSizeError struct {
	Got  int
	Need int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("cairo: got a %d bytes buffer, needs at least %d", e.Got, e.Need)
}

// FeatureError reports an operation the loaded library is too old for.
type FeatureError struct {
	Feature string
	Need    string // version constraint
	Have    string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("cairo: %s needs library %s, have %s", e.Feature, e.Need, e.Have)
}
