package cairo

import (
	"fmt"
	"sync/atomic"

	"github.com/Masterminds/semver/v3"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/backend/software"
	"github.com/gogpu/cairo/ffi"
)

// Version constraints of features introduced after the baseline library.
const (
	needCreateForRectangle = ">= 1.10.0"
	needSimilarImage       = ">= 1.12.0"
	needSupportsMimeType   = ">= 1.12.0"
)

type libraryRef struct {
	lib ffi.Library
}

// libPtr stores the library used by constructors.
var libPtr atomic.Pointer[libraryRef]

func init() {
	libPtr.Store(&libraryRef{lib: software.New()})
}

// SetLibrary selects the foreign library used by constructors from now on.
// Existing surfaces and patterns keep using the library that created them.
// Pass nil to restore the default in-process software library.
func SetLibrary(lib ffi.Library) {
	if lib == nil {
		lib = software.New()
	}
	libPtr.Store(&libraryRef{lib: lib})
}

// UseBackend selects a library from the backend registry by name. It
// wraps backend.ErrBackendNotAvailable if nothing is registered under name.
func UseBackend(name string) error {
	lib := backend.Get(name)
	if lib == nil {
		return fmt.Errorf("cairo: use backend %q: %w", name, backend.ErrBackendNotAvailable)
	}
	SetLibrary(lib)
	return nil
}

// CurrentLibrary returns the library used by constructors.
func CurrentLibrary() ffi.Library {
	return libPtr.Load().lib
}

// requireVersion fails with *FeatureError unless the library version
// satisfies constraint.
func requireVersion(lib ffi.Library, feature, constraint string) error {
	have := lib.VersionString()
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return err
	}
	v, err := semver.NewVersion(have)
	if err != nil || !c.Check(v) {
		return &FeatureError{Feature: feature, Need: constraint, Have: have}
	}
	return nil
}
