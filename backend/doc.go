// Package backend keeps a registry of ffi.Library implementations.
//
// Implementations register a factory under a name from an init function,
// so importing the implementing package is enough to make it available:
//
//	import _ "github.com/gogpu/cairo/backend/software"
//
// # Backend Selection
//
// Use Default to get the preferred available library, or Get to request
// one by name:
//
//	lib := backend.Default()
//
//	lib := backend.Get("software")
//	if lib == nil {
//		log.Fatal(backend.ErrBackendNotAvailable)
//	}
//
// The cairo package uses the software library unless told otherwise;
// cairo.UseBackend switches it to a registered one.
//
// # Available Backends
//
// - "software": pure-Go library, always available
package backend
