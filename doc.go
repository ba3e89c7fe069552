// Package cairo wraps handles to foreign, reference-counted graphics
// objects, surfaces and patterns, in Go values with managed lifetimes.
//
// # Overview
//
// Every surface and pattern owns exactly one reference to its foreign
// object. Close releases it; a value dropped without Close is released by
// the garbage collector. Operations check the foreign status afterwards
// and report failures as *StatusError carrying the status code verbatim:
//
//	img, err := cairo.NewImageSurface(ffi.FormatARGB32, 64, 64)
//	if err != nil {
//	    return err
//	}
//	defer img.Close()
//
//	if err := img.Finish(); err != nil { ... }
//	if err := img.MarkDirty(); cairo.IsStatus(err, ffi.StatusSurfaceFinished) { ... }
//
// # Variants
//
// Handles returned by foreign queries are adopted as the variant matching
// their runtime type tag: [ImageSurface], [PDFSurface], [PSSurface],
// [SVGSurface], [RecordingSurface], [SolidPattern], [SurfacePattern],
// [LinearGradient] and [RadialGradient]. Type tags this package does not
// know adopt as [BaseSurface] or [BasePattern].
//
// # Streams
//
// PNG input and PDF, PostScript, SVG and PNG output go through any
// io.Reader or io.Writer. Reader and writer failures surface as the Err of
// the resulting *StatusError, a *StreamError. A reader must supply every
// byte the library asks for; running out early is a read error.
//
// # Libraries
//
// The foreign library is an [ffi.Library]. The default is the in-process
// library of package backend/software; [SetLibrary] selects another one,
// and [UseBackend] picks one registered with package backend by name.
package cairo

// Version is the version of this package.
const Version = "0.1.0"
