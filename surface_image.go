package cairo

import (
	"io"
	"os"

	"github.com/gogpu/cairo/ffi"
)

// ImageSurface is a surface rendering into memory.
type ImageSurface struct {
	BaseSurface
}

// FormatStrideForWidth returns the row size, in bytes, the library uses for
// an image of the given format and width, or -1 if either is invalid.
func FormatStrideForWidth(format ffi.Format, width int) int {
	return CurrentLibrary().FormatStrideForWidth(format, width)
}

// NewImageSurface creates an image surface whose pixels the library
// allocates and initializes to zero.
func NewImageSurface(format ffi.Format, width, height int) (*ImageSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.ImageSurfaceCreate(format, width, height))
	if err != nil {
		return nil, err
	}
	return &ImageSurface{BaseSurface: b}, nil
}

// NewImageSurfaceForData creates an image surface rendering into data. The
// library writes to data until the surface is finished or destroyed, so the
// caller must not reuse it before then. A stride of 0 or less selects
// FormatStrideForWidth.
func NewImageSurfaceForData(data []byte, format ffi.Format, width, height, stride int) (*ImageSurface, error) {
	lib := CurrentLibrary()
	if stride <= 0 {
		stride = lib.FormatStrideForWidth(format, width)
	}
	if need := stride * height; stride > 0 && height > 0 && len(data) < need {
		return nil, &BufferSizeError{Got: len(data), Need: need}
	}
	b, err := newBaseSurface(lib, lib.ImageSurfaceCreateForData(data, format, width, height, stride))
	if err != nil {
		return nil, err
	}
	if err := b.keepTarget(data); err != nil {
		b.Close()
		return nil, err
	}
	return &ImageSurface{BaseSurface: b}, nil
}

// NewImageSurfaceFromPNG decodes a PNG image read from r. The reader must
// provide the whole image; running out of input is a read error.
func NewImageSurfaceFromPNG(r io.Reader) (*ImageSurface, error) {
	lib := CurrentLibrary()
	bridge := newStreamBridge(r, nil)
	b, err := newBaseSurface(lib, lib.ImageSurfaceCreateFromPNGStream(bridge.readFunc(), 0))
	if err != nil {
		return nil, withStream(err, bridge)
	}
	return &ImageSurface{BaseSurface: b}, nil
}

// NewImageSurfaceFromPNGFile decodes the named PNG file.
func NewImageSurfaceFromPNGFile(name string) (*ImageSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.ImageSurfaceCreateFromPNG(name))
	if err != nil {
		return nil, &os.PathError{Op: "read png", Path: name, Err: err}
	}
	return &ImageSurface{BaseSurface: b}, nil
}

// Data returns the pixel memory of the surface. It aliases the library's
// buffer: call Flush before reading and MarkDirty after writing.
func (s *ImageSurface) Data() []byte {
	var data []byte
	_ = s.h.use(func(raw ffi.Surface) { data = s.lib.ImageSurfaceGetData(raw) })
	return data
}

// Format returns the pixel format.
func (s *ImageSurface) Format() ffi.Format {
	f := ffi.FormatInvalid
	_ = s.h.use(func(raw ffi.Surface) { f = s.lib.ImageSurfaceGetFormat(raw) })
	return f
}

// Width returns the width in pixels.
func (s *ImageSurface) Width() int {
	var n int
	_ = s.h.use(func(raw ffi.Surface) { n = s.lib.ImageSurfaceGetWidth(raw) })
	return n
}

// Height returns the height in pixels.
func (s *ImageSurface) Height() int {
	var n int
	_ = s.h.use(func(raw ffi.Surface) { n = s.lib.ImageSurfaceGetHeight(raw) })
	return n
}

// Stride returns the row size in bytes.
func (s *ImageSurface) Stride() int {
	var n int
	_ = s.h.use(func(raw ffi.Surface) { n = s.lib.ImageSurfaceGetStride(raw) })
	return n
}
