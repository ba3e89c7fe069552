package cairo

import (
	"io"

	"github.com/gogpu/cairo/ffi"
)

// PDFSurface is a multi-page surface producing a PDF document.
type PDFSurface struct {
	BaseSurface
}

// NewPDFSurface creates a PDF surface of the given page size, in points,
// writing the document to w. The document is written as the surface is
// finished, which closing its last reference also does. A nil w discards
// the output.
func NewPDFSurface(w io.Writer, widthPt, heightPt float64) (*PDFSurface, error) {
	lib := CurrentLibrary()
	b, err := newStreamSurface(lib, w, func(write ffi.WriteFunc) ffi.Surface {
		return lib.PDFSurfaceCreateForStream(write, 0, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &PDFSurface{BaseSurface: b}, nil
}

// NewPDFSurfaceFile is NewPDFSurface writing to the named file.
func NewPDFSurfaceFile(name string, widthPt, heightPt float64) (*PDFSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.PDFSurfaceCreate(name, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &PDFSurface{BaseSurface: b}, nil
}

// SetSize changes the size of the pages that follow.
func (s *PDFSurface) SetSize(widthPt, heightPt float64) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PDFSurfaceSetSize(raw, widthPt, heightPt) })
}

// RestrictToVersion limits the output to features of version.
func (s *PDFSurface) RestrictToVersion(version ffi.PDFVersion) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PDFSurfaceRestrictToVersion(raw, version) })
}

// PDFVersions lists the versions accepted by RestrictToVersion.
func PDFVersions() []ffi.PDFVersion {
	return CurrentLibrary().PDFGetVersions()
}

// PDFVersionString returns the name of version, like "PDF 1.4".
func PDFVersionString(version ffi.PDFVersion) (string, error) {
	s, ok := CurrentLibrary().PDFVersionToString(version)
	if !ok {
		return "", &UnsupportedVersionError{Kind: "PDF version", Value: int(version)}
	}
	return s, nil
}
