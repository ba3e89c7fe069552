// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ffi

import "strconv"

// SurfaceType is the runtime type tag of a surface.
type SurfaceType int

// Surface type tags, numbered as in cairo_surface_type_t.
const (
	SurfaceTypeImage SurfaceType = iota
	SurfaceTypePDF
	SurfaceTypePS
	SurfaceTypeXlib
	SurfaceTypeXCB
	SurfaceTypeGlitz
	SurfaceTypeQuartz
	SurfaceTypeWin32
	SurfaceTypeBeOS
	SurfaceTypeDirectFB
	SurfaceTypeSVG
	SurfaceTypeOS2
	SurfaceTypeWin32Printing
	SurfaceTypeQuartzImage
	SurfaceTypeScript
	SurfaceTypeQt
	SurfaceTypeRecording
	SurfaceTypeVG
	SurfaceTypeGL
	SurfaceTypeDRM
	SurfaceTypeTee
	SurfaceTypeXML
	SurfaceTypeSkia
	SurfaceTypeSubsurface
	SurfaceTypeCOGL
)

var surfaceTypeNames = map[SurfaceType]string{
	SurfaceTypeImage:      "IMAGE",
	SurfaceTypePDF:        "PDF",
	SurfaceTypePS:         "PS",
	SurfaceTypeSVG:        "SVG",
	SurfaceTypeRecording:  "RECORDING",
	SurfaceTypeSubsurface: "SUBSURFACE",
	SurfaceTypeScript:     "SCRIPT",
	SurfaceTypeTee:        "TEE",
	SurfaceTypeXML:        "XML",
}

func (t SurfaceType) String() string {
	if name, ok := surfaceTypeNames[t]; ok {
		return name
	}
	return "SURFACE_TYPE(" + strconv.Itoa(int(t)) + ")"
}

// PatternType is the runtime type tag of a pattern.
type PatternType int

// Pattern type tags, numbered as in cairo_pattern_type_t.
const (
	PatternTypeSolid PatternType = iota
	PatternTypeSurface
	PatternTypeLinear
	PatternTypeRadial
	PatternTypeMesh
	PatternTypeRasterSource
)

func (t PatternType) String() string {
	switch t {
	case PatternTypeSolid:
		return "SOLID"
	case PatternTypeSurface:
		return "SURFACE"
	case PatternTypeLinear:
		return "LINEAR"
	case PatternTypeRadial:
		return "RADIAL"
	case PatternTypeMesh:
		return "MESH"
	case PatternTypeRasterSource:
		return "RASTER_SOURCE"
	}
	return "PATTERN_TYPE(" + strconv.Itoa(int(t)) + ")"
}

// Format is the pixel format of an image surface.
type Format int

// Pixel formats, numbered as in cairo_format_t.
const (
	FormatInvalid  Format = -1
	FormatARGB32   Format = 0
	FormatRGB24    Format = 1
	FormatA8       Format = 2
	FormatA1       Format = 3
	FormatRGB16565 Format = 4
	FormatRGB30    Format = 5
)

// BitsPerPixel returns the storage size of one pixel, or 0 for formats
// without a fixed layout.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatARGB32, FormatRGB24, FormatRGB30:
		return 32
	case FormatRGB16565:
		return 16
	case FormatA8:
		return 8
	case FormatA1:
		return 1
	}
	return 0
}

// Content describes whether a surface holds color, alpha, or both.
type Content int

// Content values, as in cairo_content_t.
const (
	ContentColor      Content = 0x1000
	ContentAlpha      Content = 0x2000
	ContentColorAlpha Content = 0x3000
)

// Extend selects how a pattern is drawn outside its natural area.
type Extend int

// Extend modes.
const (
	ExtendNone Extend = iota
	ExtendRepeat
	ExtendReflect
	ExtendPad
)

// Filter selects the resampling filter used when drawing a pattern.
type Filter int

// Filters.
const (
	FilterFast Filter = iota
	FilterGood
	FilterBest
	FilterNearest
	FilterBilinear
	FilterGaussian
)

// PDFVersion restricts the features used in PDF output.
type PDFVersion int

// PDF versions.
const (
	PDFVersion14 PDFVersion = iota
	PDFVersion15
	PDFVersion16
	PDFVersion17
)

// PSLevel restricts the language level of PostScript output.
type PSLevel int

// PostScript language levels.
const (
	PSLevel2 PSLevel = iota
	PSLevel3
)

// SVGVersion restricts the features used in SVG output.
type SVGVersion int

// SVG versions.
const (
	SVGVersion11 SVGVersion = iota
	SVGVersion12
)

// Rectangle is an axis-aligned rectangle in user or device units.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Matrix is an affine transformation:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return Matrix{XX: 1, YY: 1}
}
