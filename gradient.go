package cairo

import "github.com/gogpu/cairo/ffi"

// ColorStop is a color at an offset along a gradient.
type ColorStop struct {
	Offset     float64
	R, G, B, A float64
}

// Gradient holds the color stops of linear and radial gradients.
type Gradient struct {
	BasePattern
}

// AddColorStopRGBA adds a translucent color stop at offset in [0, 1].
// Stops at the same offset keep insertion order.
func (g *Gradient) AddColorStopRGBA(offset, r, gr, b, a float64) error {
	return g.mutate(func(raw ffi.Pattern) { g.lib.PatternAddColorStopRGBA(raw, offset, r, gr, b, a) })
}

// AddColorStopRGB adds an opaque color stop.
func (g *Gradient) AddColorStopRGB(offset, r, gr, b float64) error {
	return g.mutate(func(raw ffi.Pattern) { g.lib.PatternAddColorStopRGB(raw, offset, r, gr, b) })
}

// ColorStops returns the color stops sorted by offset.
func (g *Gradient) ColorStops() ([]ColorStop, error) {
	var count int
	if err := g.query(func(raw ffi.Pattern) (status ffi.Status) {
		count, status = g.lib.PatternGetColorStopCount(raw)
		return status
	}); err != nil {
		return nil, err
	}
	stops := make([]ColorStop, count)
	for i := range stops {
		st := &stops[i]
		if err := g.query(func(raw ffi.Pattern) (status ffi.Status) {
			st.Offset, st.R, st.G, st.B, st.A, status = g.lib.PatternGetColorStopRGBA(raw, i)
			return status
		}); err != nil {
			return nil, err
		}
	}
	return stops, nil
}

// LinearGradient blends colors along the line from (x0, y0) to (x1, y1).
type LinearGradient struct {
	Gradient
}

// NewLinearGradient creates a linear gradient without color stops.
func NewLinearGradient(x0, y0, x1, y1 float64) (*LinearGradient, error) {
	lib := CurrentLibrary()
	bp, err := newBasePattern(lib, lib.PatternCreateLinear(x0, y0, x1, y1))
	if err != nil {
		return nil, err
	}
	return &LinearGradient{Gradient{BasePattern: bp}}, nil
}

// LinearPoints returns the end points of the gradient line.
func (g *LinearGradient) LinearPoints() (x0, y0, x1, y1 float64, err error) {
	err = g.query(func(raw ffi.Pattern) (status ffi.Status) {
		x0, y0, x1, y1, status = g.lib.PatternGetLinearPoints(raw)
		return status
	})
	return x0, y0, x1, y1, err
}

// RadialGradient blends colors between two circles.
type RadialGradient struct {
	Gradient
}

// NewRadialGradient creates a radial gradient from the circle (cx0, cy0,
// r0) to the circle (cx1, cy1, r1), without color stops.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) (*RadialGradient, error) {
	lib := CurrentLibrary()
	bp, err := newBasePattern(lib, lib.PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1))
	if err != nil {
		return nil, err
	}
	return &RadialGradient{Gradient{BasePattern: bp}}, nil
}

// RadialCircles returns the start and end circles.
func (g *RadialGradient) RadialCircles() (cx0, cy0, r0, cx1, cy1, r1 float64, err error) {
	err = g.query(func(raw ffi.Pattern) (status ffi.Status) {
		cx0, cy0, r0, cx1, cy1, r1, status = g.lib.PatternGetRadialCircles(raw)
		return status
	})
	return cx0, cy0, r0, cx1, cy1, r1, err
}
