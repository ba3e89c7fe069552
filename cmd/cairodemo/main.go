// Command cairodemo exercises the cairo bindings: it paints an image
// surface, saves it as PNG, and writes the same picture size as PDF,
// PostScript and SVG documents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/cairo"
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/ffi"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 240, "image height")
		output  = flag.String("output", ".", "output directory")
		verbose = flag.Bool("v", false, "log handle and keep-alive events")
		lib     = flag.String("backend", backend.BackendSoftware, "library backend ("+strings.Join(backend.Available(), ", ")+")")
	)
	flag.Parse()

	if *verbose {
		cairo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := cairo.UseBackend(*lib); err != nil {
		log.Fatalf("cairodemo: %v", err)
	}
	log.Printf("Using %s library %s", *lib, cairo.CurrentLibrary().VersionString())

	if err := run(*output, *width, *height); err != nil {
		log.Fatalf("cairodemo: %v", err)
	}
}

func run(dir string, width, height int) error {
	png := filepath.Join(dir, "demo.png")
	if err := writeImage(png, width, height); err != nil {
		return err
	}
	log.Printf("Image saved to %s (%dx%d)", png, width, height)

	w, h := float64(width), float64(height)
	docs := []struct {
		name  string
		write func(string, float64, float64) error
	}{
		{"demo.pdf", writePDF},
		{"demo.ps", writePS},
		{"demo.svg", writeSVG},
	}
	for _, d := range docs {
		name := filepath.Join(dir, d.name)
		if err := d.write(name, w, h); err != nil {
			return err
		}
		log.Printf("Document saved to %s", name)
	}
	return nil
}

// writeImage fills an ARGB32 surface with a horizontal ramp sampled from a
// linear gradient's color stops and saves it as PNG.
func writeImage(name string, width, height int) (err error) {
	img, err := cairo.NewImageSurface(ffi.FormatARGB32, width, height)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, img.Close()) }()

	grad, err := cairo.NewLinearGradient(0, 0, float64(width), 0)
	if err != nil {
		return err
	}
	defer grad.Close()
	for _, stop := range []cairo.ColorStop{
		{Offset: 0, R: 0.1, G: 0.2, B: 0.4, A: 1},
		{Offset: 1, R: 0.9, G: 0.5, B: 0.1, A: 1},
	} {
		if err := grad.AddColorStopRGBA(stop.Offset, stop.R, stop.G, stop.B, stop.A); err != nil {
			return err
		}
	}
	stops, err := grad.ColorStops()
	if err != nil {
		return err
	}

	if err := img.Flush(); err != nil {
		return err
	}
	data, stride := img.Data(), img.Stride()
	for x := range width {
		c := lerp(stops[0], stops[len(stops)-1], float64(x)/float64(max(width-1, 1)))
		for y := range height {
			// ARGB32 is stored as native-endian words: B, G, R, A on little-endian.
			px := data[y*stride+4*x:]
			px[0], px[1], px[2], px[3] = byte(c.B*255), byte(c.G*255), byte(c.R*255), 255
		}
	}
	if err := img.MarkDirty(); err != nil {
		return err
	}

	pattern, err := cairo.NewSurfacePattern(img)
	if err != nil {
		return err
	}
	defer pattern.Close()
	if err := pattern.SetExtend(ffi.ExtendRepeat); err != nil {
		return err
	}

	return img.WriteToPNGFile(name)
}

func lerp(a, b cairo.ColorStop, t float64) cairo.ColorStop {
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return cairo.ColorStop{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func writePDF(name string, w, h float64) (err error) {
	pdf, err := cairo.NewPDFSurfaceFile(name, w, h)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, pdf.Close()) }()

	if err := pdf.RestrictToVersion(ffi.PDFVersion15); err != nil {
		return err
	}
	if err := pdf.ShowPage(); err != nil {
		return err
	}
	if err := pdf.SetSize(h, w); err != nil {
		return err
	}
	return pdf.ShowPage()
}

func writePS(name string, w, h float64) (err error) {
	ps, err := cairo.NewPSSurfaceFile(name, w, h)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, ps.Close()) }()

	if err := ps.DSCComment("%%Title: cairodemo"); err != nil {
		return err
	}
	if err := ps.DSCBeginSetup(); err != nil {
		return err
	}
	if err := ps.DSCComment("%%IncludeFeature: *PageSize Letter"); err != nil {
		return err
	}
	if err := ps.DSCBeginPageSetup(); err != nil {
		return err
	}
	if err := ps.DSCComment("%%IncludeFeature: *PageSize A4"); err != nil {
		return err
	}
	return ps.ShowPage()
}

func writeSVG(name string, w, h float64) (err error) {
	svg, err := cairo.NewSVGSurfaceFile(name, w, h)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, svg.Close()) }()

	if err := svg.RestrictToVersion(ffi.SVGVersion12); err != nil {
		return fmt.Errorf("restrict SVG version: %w", err)
	}
	return svg.Finish()
}
