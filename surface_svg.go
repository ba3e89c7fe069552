package cairo

import (
	"io"

	"github.com/gogpu/cairo/ffi"
)

// SVGSurface is a surface producing an SVG document.
type SVGSurface struct {
	BaseSurface
}

// NewSVGSurface creates an SVG surface of the given size, in points,
// writing to w. A nil w discards the output.
func NewSVGSurface(w io.Writer, widthPt, heightPt float64) (*SVGSurface, error) {
	lib := CurrentLibrary()
	b, err := newStreamSurface(lib, w, func(write ffi.WriteFunc) ffi.Surface {
		return lib.SVGSurfaceCreateForStream(write, 0, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &SVGSurface{BaseSurface: b}, nil
}

// NewSVGSurfaceFile is NewSVGSurface writing to the named file.
func NewSVGSurfaceFile(name string, widthPt, heightPt float64) (*SVGSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.SVGSurfaceCreate(name, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &SVGSurface{BaseSurface: b}, nil
}

// RestrictToVersion limits the output to features of version.
func (s *SVGSurface) RestrictToVersion(version ffi.SVGVersion) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.SVGSurfaceRestrictToVersion(raw, version) })
}

// SVGVersions lists the versions accepted by RestrictToVersion.
func SVGVersions() []ffi.SVGVersion {
	return CurrentLibrary().SVGGetVersions()
}

// SVGVersionString returns the name of version, like "SVG 1.1".
func SVGVersionString(version ffi.SVGVersion) (string, error) {
	s, ok := CurrentLibrary().SVGVersionToString(version)
	if !ok {
		return "", &UnsupportedVersionError{Kind: "SVG version", Value: int(version)}
	}
	return s, nil
}
