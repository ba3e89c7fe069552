package cairo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/cairo/ffi"
)

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func TestSolidPattern(t *testing.T) {
	lib := useSoftware(t)

	p, err := NewSolidPattern(0.25, 0.5, 2, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if p.Type() != ffi.PatternTypeSolid {
		t.Errorf("Type() = %v, want SOLID", p.Type())
	}
	r, g, b, a, err := p.RGBA()
	if err != nil {
		t.Fatal(err)
	}
	if r != 0.25 || g != 0.5 || b != 1 || a != 0 {
		t.Errorf("RGBA() = %v %v %v %v, want clamped 0.25 0.5 1 0", r, g, b, a)
	}
	p.Close()
	assertNoLeaks(t, lib)
}

func TestPatternExtendFilterMatrix(t *testing.T) {
	lib := useSoftware(t)

	p, err := NewLinearGradient(0, 0, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if p.Extend() != ffi.ExtendPad {
		t.Errorf("default Extend() = %v, want PAD", p.Extend())
	}
	if err := p.SetExtend(ffi.ExtendReflect); err != nil {
		t.Fatal(err)
	}
	if p.Extend() != ffi.ExtendReflect {
		t.Errorf("Extend() = %v, want REFLECT", p.Extend())
	}

	if p.Filter() != ffi.FilterGood {
		t.Errorf("default Filter() = %v, want GOOD", p.Filter())
	}
	if err := p.SetFilter(ffi.FilterNearest); err != nil {
		t.Fatal(err)
	}
	if p.Filter() != ffi.FilterNearest {
		t.Errorf("Filter() = %v, want NEAREST", p.Filter())
	}

	m, err := p.Matrix()
	if err != nil || m != ffi.IdentityMatrix() {
		t.Errorf("default Matrix() = %+v, %v; want identity", m, err)
	}
	want := ffi.Matrix{XX: 2, YX: 0, XY: 0.5, YY: 3, X0: 10, Y0: -4}
	if err := p.SetMatrix(want); err != nil {
		t.Fatal(err)
	}
	if m, _ := p.Matrix(); m != want {
		t.Errorf("Matrix() = %+v, want %+v", m, want)
	}

	if err := p.SetMatrix(ffi.Matrix{}); !IsStatus(err, ffi.StatusInvalidMatrix) {
		t.Errorf("SetMatrix(singular) = %v, want INVALID_MATRIX", err)
	}
	p.Close()
	assertNoLeaks(t, lib)
}

func TestGradients(t *testing.T) {
	lib := useSoftware(t)

	lin, err := NewLinearGradient(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer lin.Close()
	if x0, y0, x1, y1, err := lin.LinearPoints(); err != nil || x0 != 1 || y0 != 2 || x1 != 3 || y1 != 4 {
		t.Errorf("LinearPoints() = %v %v %v %v, %v", x0, y0, x1, y1, err)
	}

	if err := lin.AddColorStopRGB(1, 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := lin.AddColorStopRGBA(0, 1, 0, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := lin.AddColorStopRGB(1, 0, 1, 0); err != nil {
		t.Fatal(err)
	}
	stops, err := lin.ColorStops()
	if err != nil {
		t.Fatal(err)
	}
	want := []ColorStop{
		{Offset: 0, R: 1, A: 0.5},
		{Offset: 1, B: 1, A: 1},
		{Offset: 1, G: 1, A: 1},
	}
	if len(stops) != len(want) {
		t.Fatalf("ColorStops() = %+v, want %+v", stops, want)
	}
	for i := range want {
		if stops[i] != want[i] {
			t.Errorf("stop %d = %+v, want %+v", i, stops[i], want[i])
		}
	}

	rad, err := NewRadialGradient(5, 5, 1, 5, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer rad.Close()
	cx0, cy0, r0, cx1, cy1, r1, err := rad.RadialCircles()
	if err != nil || cx0 != 5 || cy0 != 5 || r0 != 1 || cx1 != 5 || cy1 != 5 || r1 != 10 {
		t.Errorf("RadialCircles() = %v %v %v %v %v %v, %v", cx0, cy0, r0, cx1, cy1, r1, err)
	}
	if stops, err := rad.ColorStops(); err != nil || len(stops) != 0 {
		t.Errorf("ColorStops() of a fresh gradient = %v, %v", stops, err)
	}

	lin.Close()
	rad.Close()
	assertNoLeaks(t, lib)
}

func TestPatternTypeMismatch(t *testing.T) {
	lib := useSoftware(t)

	solid, err := NewSolidPattern(0, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer solid.Close()

	g := &LinearGradient{Gradient{BasePattern: solid.BasePattern}}
	if _, _, _, _, err := g.LinearPoints(); !IsStatus(err, ffi.StatusPatternTypeMismatch) {
		t.Errorf("LinearPoints on a solid pattern = %v, want PATTERN_TYPE_MISMATCH", err)
	}
	if err := g.AddColorStopRGB(0, 1, 1, 1); !IsStatus(err, ffi.StatusPatternTypeMismatch) {
		t.Errorf("AddColorStopRGB on a solid pattern = %v, want PATTERN_TYPE_MISMATCH", err)
	}
	solid.Close()
	assertNoLeaks(t, lib)
}

func TestSurfacePattern(t *testing.T) {
	lib := useSoftware(t)

	img, err := NewImageSurface(ffi.FormatARGB32, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewSurfacePattern(img)
	if err != nil {
		t.Fatal(err)
	}
	if p.Extend() != ffi.ExtendNone {
		t.Errorf("Extend() = %v, want NONE", p.Extend())
	}

	// The pattern keeps the surface alive after the caller closes it.
	img.Close()

	s, err := p.Surface()
	if err != nil {
		t.Fatalf("Surface() = %v", err)
	}
	got, ok := s.(*ImageSurface)
	if !ok {
		t.Fatalf("Surface() = %T, want *ImageSurface", s)
	}
	if got.Width() != 4 {
		t.Errorf("Width() = %d, want 4", got.Width())
	}
	got.Close()

	// Surface() takes its own reference each time.
	again, err := p.Surface()
	if err != nil {
		t.Fatal(err)
	}
	again.Close()

	p.Close()
	assertNoLeaks(t, lib)
}

func TestNewSurfacePatternErrors(t *testing.T) {
	lib := useSoftware(t)

	if _, err := NewSurfacePattern(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("NewSurfacePattern(nil) = %v, want ErrInvalidHandle", err)
	}

	img, err := NewImageSurface(ffi.FormatARGB32, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	img.Close()
	if _, err := NewSurfacePattern(img); !errors.Is(err, ErrClosed) {
		t.Errorf("NewSurfacePattern(closed) = %v, want ErrClosed", err)
	}
	assertNoLeaks(t, lib)
}

func TestPatternUseAfterClose(t *testing.T) {
	useSoftware(t)

	p, err := NewRadialGradient(0, 0, 0, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p.Close()
	if err := p.Status(); !errors.Is(err, ErrClosed) {
		t.Errorf("Status() = %v, want ErrClosed", err)
	}
	if err := p.AddColorStopRGB(0, 0, 0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("AddColorStopRGB() = %v, want ErrClosed", err)
	}
	if _, err := p.ColorStops(); !errors.Is(err, ErrClosed) {
		t.Errorf("ColorStops() = %v, want ErrClosed", err)
	}
}
