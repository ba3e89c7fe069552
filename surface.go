package cairo

import (
	"bytes"
	"io"
	"os"

	"github.com/gogpu/cairo/ffi"
)

// Surface is any surface variant.
type Surface interface {
	// Raw returns the foreign handle. It stays valid while the surface is
	// open.
	Raw() ffi.Surface

	Type() ffi.SurfaceType
	Content() ffi.Content

	// Status reports the foreign status as an error.
	Status() error

	Flush() error
	Finish() error

	// Close releases the surface's reference. It is safe to call more than
	// once.
	Close() error

	base() *BaseSurface
}

// surfaceTargetKey is the user-data slot holding the objects a surface
// reads from or writes to.
var surfaceTargetKey = new(ffi.UserDataKey)

// BaseSurface is the part shared by all surfaces. Surfaces of types without
// a dedicated variant are adopted as *BaseSurface.
type BaseSurface struct {
	lib    ffi.Library
	h      *handle[ffi.Surface]
	stream *streamBridge
}

func newBaseSurface(lib ffi.Library, raw ffi.Surface) (BaseSurface, error) {
	h, err := newHandle[ffi.Surface](surfaceRefs{lib: lib}, raw)
	if err != nil {
		return BaseSurface{}, err
	}
	return BaseSurface{lib: lib, h: h}, nil
}

// newStreamSurface constructs a surface writing through w and keeps the
// write adapter alive for as long as the library holds it. A nil w means
// the surface produces no output.
func newStreamSurface(lib ffi.Library, w io.Writer, create func(ffi.WriteFunc) ffi.Surface) (BaseSurface, error) {
	bridge := newStreamBridge(nil, w)
	write := bridge.writeFunc()
	b, err := newBaseSurface(lib, create(write))
	if err != nil {
		return BaseSurface{}, withStream(err, bridge)
	}
	b.stream = bridge
	if write != nil {
		if err := b.keepTarget(bridge, write); err != nil {
			// The document emitted on release must not reach w.
			bridge.detach()
			b.Close()
			return BaseSurface{}, err
		}
	}
	return b, nil
}

func (s *BaseSurface) base() *BaseSurface { return s }

// Raw returns the foreign handle.
func (s *BaseSurface) Raw() ffi.Surface { return s.h.raw() }

// Type returns the type tag of the surface.
func (s *BaseSurface) Type() ffi.SurfaceType {
	var t ffi.SurfaceType
	_ = s.h.use(func(raw ffi.Surface) { t = s.lib.SurfaceGetType(raw) })
	return t
}

// Content returns whether the surface holds color, alpha, or both.
func (s *BaseSurface) Content() ffi.Content {
	var c ffi.Content
	_ = s.h.use(func(raw ffi.Surface) { c = s.lib.SurfaceGetContent(raw) })
	return c
}

// Status returns nil if the surface is usable, otherwise a *StatusError
// with the foreign status.
func (s *BaseSurface) Status() error {
	return withStream(s.h.check(), s.stream)
}

// Close releases the surface. Data the library still references, such as
// a pixel buffer or a writer, is released once the library drops its last
// reference.
func (s *BaseSurface) Close() error {
	s.h.close()
	return nil
}

// mutate runs fn and checks the status afterwards.
func (s *BaseSurface) mutate(fn func(raw ffi.Surface)) error {
	if err := s.h.use(fn); err != nil {
		return err
	}
	return s.Status()
}

// keepTarget attaches objects to the surface so they live as long as the
// foreign surface does.
func (s *BaseSurface) keepTarget(objects ...any) error {
	k := newKeepAlive(objects...)
	data, destroy := k.closure()
	var status ffi.Status
	if err := s.h.use(func(raw ffi.Surface) {
		status = s.lib.SurfaceSetUserData(raw, surfaceTargetKey, data, destroy)
	}); err != nil {
		return err
	}
	if err := checkStatus(status); err != nil {
		return err
	}
	keepAlives.save(k)
	return nil
}

// similar adopts a surface derived from s.
func (s *BaseSurface) similar(create func(raw ffi.Surface) ffi.Surface) (Surface, error) {
	var raw ffi.Surface
	if err := s.h.use(func(r ffi.Surface) { raw = create(r) }); err != nil {
		return nil, err
	}
	return surfaceFromRaw(s.lib, raw, false)
}

// CreateSimilar creates a surface compatible with s, of the given content
// and size in device units.
func (s *BaseSurface) CreateSimilar(content ffi.Content, width, height int) (Surface, error) {
	return s.similar(func(raw ffi.Surface) ffi.Surface {
		return s.lib.SurfaceCreateSimilar(raw, content, width, height)
	})
}

// CreateSimilarImage creates an image surface suited for uploading to s.
func (s *BaseSurface) CreateSimilarImage(format ffi.Format, width, height int) (Surface, error) {
	if err := requireVersion(s.lib, "CreateSimilarImage", needSimilarImage); err != nil {
		return nil, err
	}
	return s.similar(func(raw ffi.Surface) ffi.Surface {
		return s.lib.SurfaceCreateSimilarImage(raw, format, width, height)
	})
}

// CreateForRectangle creates a surface drawing into a rectangle of s.
func (s *BaseSurface) CreateForRectangle(x, y, width, height float64) (Surface, error) {
	if err := requireVersion(s.lib, "CreateForRectangle", needCreateForRectangle); err != nil {
		return nil, err
	}
	return s.similar(func(raw ffi.Surface) ffi.Surface {
		return s.lib.SurfaceCreateForRectangle(raw, x, y, width, height)
	})
}

// SetDeviceOffset sets the offset added to device coordinates.
func (s *BaseSurface) SetDeviceOffset(x, y float64) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceSetDeviceOffset(raw, x, y) })
}

// DeviceOffset returns the offset set by SetDeviceOffset.
func (s *BaseSurface) DeviceOffset() (x, y float64) {
	_ = s.h.use(func(raw ffi.Surface) { x, y = s.lib.SurfaceGetDeviceOffset(raw) })
	return x, y
}

// SetFallbackResolution sets the resolution, in pixels per inch, of
// rasterized fallbacks in vector output.
func (s *BaseSurface) SetFallbackResolution(xPPI, yPPI float64) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceSetFallbackResolution(raw, xPPI, yPPI) })
}

// FallbackResolution returns the resolution set by SetFallbackResolution.
func (s *BaseSurface) FallbackResolution() (xPPI, yPPI float64) {
	_ = s.h.use(func(raw ffi.Surface) { xPPI, yPPI = s.lib.SurfaceGetFallbackResolution(raw) })
	return xPPI, yPPI
}

// SetMimeData attaches an alternate representation of the surface's
// content, such as "image/jpeg" bytes. data is copied. A nil data removes
// the representation.
func (s *BaseSurface) SetMimeData(mimeType string, data []byte) error {
	if data == nil {
		var status ffi.Status
		if err := s.h.use(func(raw ffi.Surface) {
			status = s.lib.SurfaceSetMimeData(raw, mimeType, nil, nil, 0)
		}); err != nil {
			return err
		}
		return checkStatus(status)
	}
	buf := bytes.Clone(data)
	k := newKeepAlive(buf)
	closure, destroy := k.closure()
	var status ffi.Status
	if err := s.h.use(func(raw ffi.Surface) {
		status = s.lib.SurfaceSetMimeData(raw, mimeType, buf, destroy, closure)
	}); err != nil {
		return err
	}
	if err := checkStatus(status); err != nil {
		return err
	}
	keepAlives.save(k)
	return nil
}

// MimeData returns a copy of the representation attached for mimeType, or
// nil.
func (s *BaseSurface) MimeData(mimeType string) []byte {
	var data []byte
	_ = s.h.use(func(raw ffi.Surface) { data = bytes.Clone(s.lib.SurfaceGetMimeData(raw, mimeType)) })
	return data
}

// SupportsMimeType reports whether the surface makes use of mime data of
// the given type.
func (s *BaseSurface) SupportsMimeType(mimeType string) (bool, error) {
	if err := requireVersion(s.lib, "SupportsMimeType", needSupportsMimeType); err != nil {
		return false, err
	}
	var ok bool
	if err := s.h.use(func(raw ffi.Surface) { ok = s.lib.SurfaceSupportsMimeType(raw, mimeType) }); err != nil {
		return false, err
	}
	return ok, nil
}

// HasShowTextGlyphs reports whether the surface makes use of the text and
// cluster data of show-text-glyphs drawing. Surfaces that do not still
// render the glyphs.
func (s *BaseSurface) HasShowTextGlyphs() bool {
	var ok bool
	_ = s.h.use(func(raw ffi.Surface) { ok = s.lib.SurfaceHasShowTextGlyphs(raw) })
	return ok
}

// MarkDirty tells the library the surface memory was changed directly.
func (s *BaseSurface) MarkDirty() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceMarkDirty(raw) })
}

// MarkDirtyRectangle is MarkDirty for a region in device units.
func (s *BaseSurface) MarkDirtyRectangle(x, y, width, height int) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceMarkDirtyRectangle(raw, x, y, width, height) })
}

// ShowPage emits the current page and starts a new one.
func (s *BaseSurface) ShowPage() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceShowPage(raw) })
}

// CopyPage emits the current page and keeps its content for the next one.
func (s *BaseSurface) CopyPage() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceCopyPage(raw) })
}

// Flush completes pending drawing.
func (s *BaseSurface) Flush() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceFlush(raw) })
}

// Finish completes all output and detaches the surface from external
// resources. Any further mutation fails with StatusSurfaceFinished.
func (s *BaseSurface) Finish() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SurfaceFinish(raw) })
}

// WriteToPNG encodes the surface as PNG into w.
func (s *BaseSurface) WriteToPNG(w io.Writer) error {
	bridge := newStreamBridge(nil, w)
	var status ffi.Status
	if err := s.h.use(func(raw ffi.Surface) {
		status = s.lib.SurfaceWriteToPNGStream(raw, bridge.writeFunc(), 0)
	}); err != nil {
		return err
	}
	return withStream(checkStatus(status), bridge)
}

// WriteToPNGFile encodes the surface as PNG into the named file.
func (s *BaseSurface) WriteToPNGFile(name string) error {
	var status ffi.Status
	if err := s.h.use(func(raw ffi.Surface) { status = s.lib.SurfaceWriteToPNG(raw, name) }); err != nil {
		return err
	}
	if err := checkStatus(status); err != nil {
		return &os.PathError{Op: "write png", Path: name, Err: err}
	}
	return nil
}
