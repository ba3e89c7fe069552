// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/cairo/ffi"
)

// producer identifies the library in generated documents.
const producer = "gogpu cairo software backend"

// maxDSCComment is the longest DSC comment PostScript allows on one line.
const maxDSCComment = 255

var pdfVersions = map[ffi.PDFVersion]string{
	ffi.PDFVersion14: "PDF 1.4",
	ffi.PDFVersion15: "PDF 1.5",
	ffi.PDFVersion16: "PDF 1.6",
	ffi.PDFVersion17: "PDF 1.7",
}

var psLevels = map[ffi.PSLevel]string{
	ffi.PSLevel2: "PS Level 2",
	ffi.PSLevel3: "PS Level 3",
}

var svgVersions = map[ffi.SVGVersion]string{
	ffi.SVGVersion11: "SVG 1.1",
	ffi.SVGVersion12: "SVG 1.2",
}

// dscSection is where the next PostScript DSC comment goes.
type dscSection int

const (
	dscHeader dscSection = iota
	dscSetup
	dscPageSetup
)

type page struct {
	width, height float64
	comments      []string
}

// document is the state of a PDF, PostScript or SVG surface.
type document struct {
	kind ffi.SurfaceType
	sink sink

	width, height float64
	pages         []page
	current       page

	pdfVersion ffi.PDFVersion
	psLevel    ffi.PSLevel
	svgVersion ffi.SVGVersion
	eps        bool

	section dscSection
	header  []string
	setup   []string
}

func (d *document) showPage() {
	d.current.width, d.current.height = d.width, d.height
	d.pages = append(d.pages, d.current)
	d.current = page{}
	if d.section == dscPageSetup {
		d.section = dscSetup
	}
}

// render produces the finished document. A document nobody called
// ShowPage on still gets one page.
func (d *document) render() ([]byte, ffi.Status) {
	if len(d.pages) == 0 {
		d.showPage()
	}
	switch d.kind {
	case ffi.SurfaceTypePDF:
		return d.renderPDF(), ffi.StatusSuccess
	case ffi.SurfaceTypePS:
		return d.renderPS(), ffi.StatusSuccess
	case ffi.SurfaceTypeSVG:
		return d.renderSVG(), ffi.StatusSuccess
	}
	return nil, ffi.StatusSurfaceTypeMismatch
}

func (d *document) renderPDF() []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	version := pdfVersions[d.pdfVersion][len("PDF "):]
	fmt.Fprintf(&buf, "%%PDF-%s\n%%\xb5\xed\xae\xfb\n", version)

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := make([]byte, 0, len(d.pages)*8)
	for i := range d.pages {
		kids = fmt.Appendf(kids, "%d 0 R ", 4+2*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids, len(d.pages)))
	obj(fmt.Sprintf("<< /Producer (%s) >>", producer))
	for i, p := range d.pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 %s %s ] /Contents %d 0 R >>",
			num(p.width), num(p.height), 5+2*i))
		obj("<< /Length 0 >>\nstream\n\nendstream")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 3 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)
	return buf.Bytes()
}

func (d *document) renderPS() []byte {
	var buf bytes.Buffer
	if d.eps {
		buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	} else {
		buf.WriteString("%!PS-Adobe-3.0\n")
	}
	level := 2
	if d.psLevel == ffi.PSLevel3 {
		level = 3
	}
	fmt.Fprintf(&buf, "%%%%Creator: %s\n", producer)
	fmt.Fprintf(&buf, "%%%%LanguageLevel: %d\n", level)
	fmt.Fprintf(&buf, "%%%%Pages: %d\n", len(d.pages))

	var w, h float64
	for _, p := range d.pages {
		w, h = max(w, p.width), max(h, p.height)
	}
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", int(w+0.5), int(h+0.5))
	for _, c := range d.header {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	buf.WriteString("%%EndComments\n%%BeginProlog\n%%EndProlog\n%%BeginSetup\n")
	for _, c := range d.setup {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	buf.WriteString("%%EndSetup\n")

	for i, p := range d.pages {
		fmt.Fprintf(&buf, "%%%%Page: %d %d\n%%%%BeginPageSetup\n", i+1, i+1)
		fmt.Fprintf(&buf, "%%%%PageBoundingBox: 0 0 %d %d\n", int(p.width+0.5), int(p.height+0.5))
		for _, c := range p.comments {
			buf.WriteString(c)
			buf.WriteByte('\n')
		}
		buf.WriteString("%%EndPageSetup\nshowpage\n")
	}
	buf.WriteString("%%Trailer\n%%EOF\n")
	return buf.Bytes()
}

func (d *document) renderSVG() []byte {
	var buf bytes.Buffer
	version := svgVersions[d.svgVersion][len("SVG "):]
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" width=\"%spt\" height=\"%spt\" viewBox=\"0 0 %s %s\" version=\"%s\">\n",
		num(d.width), num(d.height), num(d.width), num(d.height), version)
	for i := range d.pages {
		fmt.Fprintf(&buf, "<g id=\"page%d\"/>\n", i+1)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (l *Library) createDocument(kind ffi.SurfaceType, dst sink, widthPt, heightPt float64) ffi.Surface {
	if widthPt < 0 || heightPt < 0 {
		return l.errorSurface(kind, ffi.StatusInvalidSize)
	}
	s := newSurface(kind, ffi.ContentColorAlpha)
	s.doc = &document{
		kind:       kind,
		sink:       dst,
		width:      widthPt,
		height:     heightPt,
		pdfVersion: ffi.PDFVersion17,
		psLevel:    ffi.PSLevel3,
		svgVersion: ffi.SVGVersion11,
	}
	return l.createSurface(s)
}

// docMutate runs fn on the document of a surface of the given kind. Other
// surface types record StatusSurfaceTypeMismatch.
func (l *Library) docMutate(h ffi.Surface, kind ffi.SurfaceType, fn func(o *object, d *document)) {
	l.mutate(h, func(o *object, s *surface) {
		if s.doc == nil || s.doc.kind != kind {
			o.setError(ffi.StatusSurfaceTypeMismatch)
			return
		}
		fn(o, s.doc)
	})
}

// PDFSurfaceCreate implements ffi.Library.
func (l *Library) PDFSurfaceCreate(filename string, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypePDF, sink{filename: filename}, widthPt, heightPt)
}

// PDFSurfaceCreateForStream implements ffi.Library. A nil write function
// discards the output.
func (l *Library) PDFSurfaceCreateForStream(write ffi.WriteFunc, closure ffi.Closure, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypePDF, sink{write: write, closure: closure}, widthPt, heightPt)
}

// PDFSurfaceSetSize implements ffi.Library. The size applies from the
// current page on.
func (l *Library) PDFSurfaceSetSize(h ffi.Surface, widthPt, heightPt float64) {
	l.docMutate(h, ffi.SurfaceTypePDF, func(_ *object, d *document) {
		d.width, d.height = widthPt, heightPt
	})
}

// PDFSurfaceRestrictToVersion implements ffi.Library. Unknown versions are
// ignored.
func (l *Library) PDFSurfaceRestrictToVersion(h ffi.Surface, version ffi.PDFVersion) {
	l.docMutate(h, ffi.SurfaceTypePDF, func(_ *object, d *document) {
		if _, ok := pdfVersions[version]; ok {
			d.pdfVersion = version
		}
	})
}

// PDFGetVersions implements ffi.Library.
func (l *Library) PDFGetVersions() []ffi.PDFVersion {
	return []ffi.PDFVersion{ffi.PDFVersion14, ffi.PDFVersion15, ffi.PDFVersion16, ffi.PDFVersion17}
}

// PDFVersionToString implements ffi.Library.
func (l *Library) PDFVersionToString(version ffi.PDFVersion) (string, bool) {
	s, ok := pdfVersions[version]
	return s, ok
}

// PSSurfaceCreate implements ffi.Library.
func (l *Library) PSSurfaceCreate(filename string, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypePS, sink{filename: filename}, widthPt, heightPt)
}

// PSSurfaceCreateForStream implements ffi.Library.
func (l *Library) PSSurfaceCreateForStream(write ffi.WriteFunc, closure ffi.Closure, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypePS, sink{write: write, closure: closure}, widthPt, heightPt)
}

// PSSurfaceDSCComment implements ffi.Library. Comments must start with '%',
// fit on one line of 255 bytes, and be representable in ISO-8859-1.
func (l *Library) PSSurfaceDSCComment(h ffi.Surface, comment string) {
	l.docMutate(h, ffi.SurfaceTypePS, func(o *object, d *document) {
		if comment == "" || comment[0] != '%' {
			o.setError(ffi.StatusInvalidDSCComment)
			return
		}
		encoded, err := charmap.ISO8859_1.NewEncoder().String(comment)
		if err != nil {
			o.setError(ffi.StatusInvalidString)
			return
		}
		if len(encoded) > maxDSCComment {
			o.setError(ffi.StatusInvalidDSCComment)
			return
		}

		switch d.section {
		case dscHeader:
			d.header = append(d.header, encoded)
		case dscSetup:
			d.setup = append(d.setup, encoded)
		case dscPageSetup:
			d.current.comments = append(d.current.comments, encoded)
		}
	})
}

// PSSurfaceDSCBeginSetup implements ffi.Library.
func (l *Library) PSSurfaceDSCBeginSetup(h ffi.Surface) {
	l.docMutate(h, ffi.SurfaceTypePS, func(_ *object, d *document) {
		if d.section == dscHeader {
			d.section = dscSetup
		}
	})
}

// PSSurfaceDSCBeginPageSetup implements ffi.Library.
func (l *Library) PSSurfaceDSCBeginPageSetup(h ffi.Surface) {
	l.docMutate(h, ffi.SurfaceTypePS, func(_ *object, d *document) {
		d.section = dscPageSetup
	})
}

// PSSurfaceSetEPS implements ffi.Library.
func (l *Library) PSSurfaceSetEPS(h ffi.Surface, eps bool) {
	l.docMutate(h, ffi.SurfaceTypePS, func(_ *object, d *document) {
		d.eps = eps
	})
}

// PSSurfaceGetEPS implements ffi.Library.
func (l *Library) PSSurfaceGetEPS(h ffi.Surface) bool {
	var eps bool
	l.inspect(h, func(_ *object, s *surface) {
		eps = s.doc != nil && s.doc.kind == ffi.SurfaceTypePS && s.doc.eps
	})
	return eps
}

// PSSurfaceSetSize implements ffi.Library.
func (l *Library) PSSurfaceSetSize(h ffi.Surface, widthPt, heightPt float64) {
	l.docMutate(h, ffi.SurfaceTypePS, func(_ *object, d *document) {
		d.width, d.height = widthPt, heightPt
	})
}

// PSSurfaceRestrictToLevel implements ffi.Library.
func (l *Library) PSSurfaceRestrictToLevel(h ffi.Surface, level ffi.PSLevel) {
	l.docMutate(h, ffi.SurfaceTypePS, func(_ *object, d *document) {
		if _, ok := psLevels[level]; ok {
			d.psLevel = level
		}
	})
}

// PSGetLevels implements ffi.Library.
func (l *Library) PSGetLevels() []ffi.PSLevel {
	return []ffi.PSLevel{ffi.PSLevel2, ffi.PSLevel3}
}

// PSLevelToString implements ffi.Library.
func (l *Library) PSLevelToString(level ffi.PSLevel) (string, bool) {
	s, ok := psLevels[level]
	return s, ok
}

// SVGSurfaceCreate implements ffi.Library.
func (l *Library) SVGSurfaceCreate(filename string, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypeSVG, sink{filename: filename}, widthPt, heightPt)
}

// SVGSurfaceCreateForStream implements ffi.Library.
func (l *Library) SVGSurfaceCreateForStream(write ffi.WriteFunc, closure ffi.Closure, widthPt, heightPt float64) ffi.Surface {
	return l.createDocument(ffi.SurfaceTypeSVG, sink{write: write, closure: closure}, widthPt, heightPt)
}

// SVGSurfaceRestrictToVersion implements ffi.Library.
func (l *Library) SVGSurfaceRestrictToVersion(h ffi.Surface, version ffi.SVGVersion) {
	l.docMutate(h, ffi.SurfaceTypeSVG, func(_ *object, d *document) {
		if _, ok := svgVersions[version]; ok {
			d.svgVersion = version
		}
	})
}

// SVGGetVersions implements ffi.Library.
func (l *Library) SVGGetVersions() []ffi.SVGVersion {
	return []ffi.SVGVersion{ffi.SVGVersion11, ffi.SVGVersion12}
}

// SVGVersionToString implements ffi.Library.
func (l *Library) SVGVersionToString(version ffi.SVGVersion) (string, bool) {
	s, ok := svgVersions[version]
	return s, ok
}
