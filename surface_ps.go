package cairo

import (
	"io"

	"github.com/gogpu/cairo/ffi"
)

// PSSurface is a multi-page surface producing PostScript.
type PSSurface struct {
	BaseSurface
}

// NewPSSurface creates a PostScript surface of the given page size, in
// points, writing to w. A nil w discards the output.
func NewPSSurface(w io.Writer, widthPt, heightPt float64) (*PSSurface, error) {
	lib := CurrentLibrary()
	b, err := newStreamSurface(lib, w, func(write ffi.WriteFunc) ffi.Surface {
		return lib.PSSurfaceCreateForStream(write, 0, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &PSSurface{BaseSurface: b}, nil
}

// NewPSSurfaceFile is NewPSSurface writing to the named file.
func NewPSSurfaceFile(name string, widthPt, heightPt float64) (*PSSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.PSSurfaceCreate(name, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &PSSurface{BaseSurface: b}, nil
}

// DSCComment emits a DSC comment, such as "%%Title: report", into the
// current section: the header, the setup section after DSCBeginSetup, or
// the page setup after DSCBeginPageSetup.
func (s *PSSurface) DSCComment(comment string) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceDSCComment(raw, comment) })
}

// DSCBeginSetup directs the following comments to the setup section.
func (s *PSSurface) DSCBeginSetup() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceDSCBeginSetup(raw) })
}

// DSCBeginPageSetup directs the following comments to the setup of the
// current page.
func (s *PSSurface) DSCBeginPageSetup() error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceDSCBeginPageSetup(raw) })
}

// SetEPS selects Encapsulated PostScript output.
func (s *PSSurface) SetEPS(eps bool) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceSetEPS(raw, eps) })
}

// EPS reports whether the output is Encapsulated PostScript.
func (s *PSSurface) EPS() bool {
	var eps bool
	_ = s.h.use(func(raw ffi.Surface) { eps = s.lib.PSSurfaceGetEPS(raw) })
	return eps
}

// SetSize changes the size of the pages that follow.
func (s *PSSurface) SetSize(widthPt, heightPt float64) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceSetSize(raw, widthPt, heightPt) })
}

// RestrictToLevel limits the output to a PostScript language level.
func (s *PSSurface) RestrictToLevel(level ffi.PSLevel) error {
	return s.mutate(func(raw ffi.Surface) { s.lib.PSSurfaceRestrictToLevel(raw, level) })
}

// PSLevels lists the levels accepted by RestrictToLevel.
func PSLevels() []ffi.PSLevel {
	return CurrentLibrary().PSGetLevels()
}

// PSLevelString returns the name of level, like "PS Level 2".
func PSLevelString(level ffi.PSLevel) (string, error) {
	s, ok := CurrentLibrary().PSLevelToString(level)
	if !ok {
		return "", &UnsupportedVersionError{Kind: "PS level", Value: int(level)}
	}
	return s, nil
}
