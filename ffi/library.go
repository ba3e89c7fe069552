// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ffi

// Library is the set of entry points the foreign graphics library exposes.
//
// Entry points mirror the cairo C API one to one. Getters on an object in
// an error state return zero values; the object's status tells why.
type Library interface {
	SurfaceLibrary
	ImageLibrary
	PDFLibrary
	PSLibrary
	SVGLibrary
	RecordingLibrary
	PatternLibrary

	// Version returns the encoded library version (major*10000 +
	// minor*100 + micro).
	Version() int

	// VersionString returns the library version as "major.minor.micro".
	VersionString() string
}

// SurfaceLibrary holds the entry points shared by every surface type.
type SurfaceLibrary interface {
	SurfaceReference(s Surface) Surface
	SurfaceDestroy(s Surface)
	SurfaceStatus(s Surface) Status
	SurfaceGetType(s Surface) SurfaceType
	SurfaceGetContent(s Surface) Content
	SurfaceSetUserData(s Surface, key *UserDataKey, data Closure, destroy DestroyFunc) Status

	SurfaceCreateSimilar(s Surface, content Content, width, height int) Surface
	SurfaceCreateSimilarImage(s Surface, format Format, width, height int) Surface
	SurfaceCreateForRectangle(s Surface, x, y, width, height float64) Surface

	SurfaceSetDeviceOffset(s Surface, x, y float64)
	SurfaceGetDeviceOffset(s Surface) (x, y float64)
	SurfaceSetFallbackResolution(s Surface, xPPI, yPPI float64)
	SurfaceGetFallbackResolution(s Surface) (xPPI, yPPI float64)

	SurfaceSetMimeData(s Surface, mimeType string, data []byte, destroy DestroyFunc, closure Closure) Status
	SurfaceGetMimeData(s Surface, mimeType string) []byte
	SurfaceSupportsMimeType(s Surface, mimeType string) bool

	// SurfaceHasShowTextGlyphs reports whether the surface uses the text
	// and cluster data of show-text-glyphs operations.
	SurfaceHasShowTextGlyphs(s Surface) bool

	SurfaceMarkDirty(s Surface)
	SurfaceMarkDirtyRectangle(s Surface, x, y, width, height int)
	SurfaceShowPage(s Surface)
	SurfaceCopyPage(s Surface)
	SurfaceFlush(s Surface)
	SurfaceFinish(s Surface)

	SurfaceWriteToPNG(s Surface, filename string) Status
	SurfaceWriteToPNGStream(s Surface, write WriteFunc, closure Closure) Status
}

// ImageLibrary holds the image surface entry points.
type ImageLibrary interface {
	FormatStrideForWidth(format Format, width int) int
	ImageSurfaceCreate(format Format, width, height int) Surface
	ImageSurfaceCreateForData(data []byte, format Format, width, height, stride int) Surface
	ImageSurfaceCreateFromPNG(filename string) Surface
	ImageSurfaceCreateFromPNGStream(read ReadFunc, closure Closure) Surface
	ImageSurfaceGetData(s Surface) []byte
	ImageSurfaceGetFormat(s Surface) Format
	ImageSurfaceGetWidth(s Surface) int
	ImageSurfaceGetHeight(s Surface) int
	ImageSurfaceGetStride(s Surface) int
}

// PDFLibrary holds the PDF surface entry points.
type PDFLibrary interface {
	PDFSurfaceCreate(filename string, widthPt, heightPt float64) Surface
	PDFSurfaceCreateForStream(write WriteFunc, closure Closure, widthPt, heightPt float64) Surface
	PDFSurfaceSetSize(s Surface, widthPt, heightPt float64)
	PDFSurfaceRestrictToVersion(s Surface, version PDFVersion)
	PDFGetVersions() []PDFVersion
	PDFVersionToString(version PDFVersion) (string, bool)
}

// PSLibrary holds the PostScript surface entry points.
type PSLibrary interface {
	PSSurfaceCreate(filename string, widthPt, heightPt float64) Surface
	PSSurfaceCreateForStream(write WriteFunc, closure Closure, widthPt, heightPt float64) Surface
	PSSurfaceDSCComment(s Surface, comment string)
	PSSurfaceDSCBeginSetup(s Surface)
	PSSurfaceDSCBeginPageSetup(s Surface)
	PSSurfaceSetEPS(s Surface, eps bool)
	PSSurfaceGetEPS(s Surface) bool
	PSSurfaceSetSize(s Surface, widthPt, heightPt float64)
	PSSurfaceRestrictToLevel(s Surface, level PSLevel)
	PSGetLevels() []PSLevel
	PSLevelToString(level PSLevel) (string, bool)
}

// SVGLibrary holds the SVG surface entry points.
type SVGLibrary interface {
	SVGSurfaceCreate(filename string, widthPt, heightPt float64) Surface
	SVGSurfaceCreateForStream(write WriteFunc, closure Closure, widthPt, heightPt float64) Surface
	SVGSurfaceRestrictToVersion(s Surface, version SVGVersion)
	SVGGetVersions() []SVGVersion
	SVGVersionToString(version SVGVersion) (string, bool)
}

// RecordingLibrary holds the recording surface entry points.
type RecordingLibrary interface {
	// RecordingSurfaceCreate records into an unbounded surface when extents
	// is nil.
	RecordingSurfaceCreate(content Content, extents *Rectangle) Surface
	RecordingSurfaceGetExtents(s Surface) (Rectangle, bool)
	RecordingSurfaceInkExtents(s Surface) Rectangle
}

// PatternLibrary holds the pattern entry points.
type PatternLibrary interface {
	PatternReference(p Pattern) Pattern
	PatternDestroy(p Pattern)
	PatternStatus(p Pattern) Status
	PatternGetType(p Pattern) PatternType

	PatternSetExtend(p Pattern, extend Extend)
	PatternGetExtend(p Pattern) Extend
	PatternSetFilter(p Pattern, filter Filter)
	PatternGetFilter(p Pattern) Filter
	PatternSetMatrix(p Pattern, m Matrix)
	PatternGetMatrix(p Pattern) Matrix

	PatternCreateRGBA(r, g, b, a float64) Pattern
	PatternGetRGBA(p Pattern) (r, g, b, a float64, status Status)

	PatternCreateForSurface(s Surface) Pattern
	PatternGetSurface(p Pattern) (Surface, Status)

	PatternCreateLinear(x0, y0, x1, y1 float64) Pattern
	PatternGetLinearPoints(p Pattern) (x0, y0, x1, y1 float64, status Status)
	PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1 float64) Pattern
	PatternGetRadialCircles(p Pattern) (cx0, cy0, r0, cx1, cy1, r1 float64, status Status)

	PatternAddColorStopRGB(p Pattern, offset, r, g, b float64)
	PatternAddColorStopRGBA(p Pattern, offset, r, g, b, a float64)
	PatternGetColorStopCount(p Pattern) (int, Status)
	PatternGetColorStopRGBA(p Pattern, index int) (offset, r, g, b, a float64, status Status)
}
