// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/cairo/ffi"
)

type colorStop struct {
	offset     float64
	r, g, b, a float64
}

// pattern is the state of a pattern object.
type pattern struct {
	typ    ffi.PatternType
	extend ffi.Extend
	filter ffi.Filter
	matrix f64.Aff3

	r, g, b, a float64

	// surface is referenced by surface patterns until they are destroyed.
	surface ffi.Surface

	points [6]float64 // linear: x0 y0 x1 y1; radial: cx0 cy0 r0 cx1 cy1 r1
	stops  []colorStop
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

func newPattern(typ ffi.PatternType) *pattern {
	p := &pattern{
		typ:    typ,
		extend: ffi.ExtendPad,
		filter: ffi.FilterGood,
		matrix: identity,
	}
	if typ == ffi.PatternTypeSurface {
		p.extend = ffi.ExtendNone
	}
	return p
}

func (l *Library) createPattern(p *pattern) ffi.Pattern {
	return ffi.Pattern(l.insert(&object{pattern: p}))
}

func (l *Library) errorPattern(typ ffi.PatternType, status ffi.Status) ffi.Pattern {
	return ffi.Pattern(l.insert(&object{pattern: newPattern(typ), status: status}))
}

func (l *Library) patternObject(h ffi.Pattern) (*object, *pattern) {
	o := l.lookup(uintptr(h))
	if o == nil || o.pattern == nil {
		return nil, nil
	}
	return o, o.pattern
}

// patternMutate runs fn under the object lock if the pattern is healthy.
func (l *Library) patternMutate(h ffi.Pattern, fn func(o *object, p *pattern)) {
	o, p := l.patternObject(h)
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != ffi.StatusSuccess {
		return
	}
	fn(o, p)
}

// patternQuery runs fn under the object lock and returns its status, or
// the pattern's own status if it is in error.
func (l *Library) patternQuery(h ffi.Pattern, fn func(p *pattern) ffi.Status) ffi.Status {
	o, p := l.patternObject(h)
	if o == nil {
		return ffi.StatusNullPointer
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != ffi.StatusSuccess {
		return o.status
	}
	return fn(p)
}

// PatternReference implements ffi.Library.
func (l *Library) PatternReference(h ffi.Pattern) ffi.Pattern {
	return ffi.Pattern(l.reference(uintptr(h)))
}

// PatternDestroy implements ffi.Library. Dropping the last reference of a
// surface pattern releases its surface.
func (l *Library) PatternDestroy(h ffi.Pattern) {
	o := l.release(uintptr(h), "pattern")
	if o == nil || o.pattern == nil {
		return
	}
	o.mu.Lock()
	s := o.pattern.surface
	o.pattern.surface = ffi.NullSurface
	o.mu.Unlock()

	if s != ffi.NullSurface {
		l.SurfaceDestroy(s)
	}
}

// PatternStatus implements ffi.Library.
func (l *Library) PatternStatus(h ffi.Pattern) ffi.Status {
	o, _ := l.patternObject(h)
	if o == nil {
		return ffi.StatusNullPointer
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// PatternGetType implements ffi.Library.
func (l *Library) PatternGetType(h ffi.Pattern) ffi.PatternType {
	_, p := l.patternObject(h)
	if p == nil {
		return ffi.PatternTypeSolid
	}
	return p.typ
}

// PatternSetExtend implements ffi.Library.
func (l *Library) PatternSetExtend(h ffi.Pattern, extend ffi.Extend) {
	l.patternMutate(h, func(o *object, p *pattern) {
		if extend < ffi.ExtendNone || extend > ffi.ExtendPad {
			o.setError(ffi.StatusInvalidStatus)
			return
		}
		p.extend = extend
	})
}

// PatternGetExtend implements ffi.Library.
func (l *Library) PatternGetExtend(h ffi.Pattern) ffi.Extend {
	var e ffi.Extend
	l.patternQuery(h, func(p *pattern) ffi.Status {
		e = p.extend
		return ffi.StatusSuccess
	})
	return e
}

// PatternSetFilter implements ffi.Library.
func (l *Library) PatternSetFilter(h ffi.Pattern, filter ffi.Filter) {
	l.patternMutate(h, func(o *object, p *pattern) {
		if filter < ffi.FilterFast || filter > ffi.FilterGaussian {
			o.setError(ffi.StatusInvalidStatus)
			return
		}
		p.filter = filter
	})
}

// PatternGetFilter implements ffi.Library.
func (l *Library) PatternGetFilter(h ffi.Pattern) ffi.Filter {
	var f ffi.Filter
	l.patternQuery(h, func(p *pattern) ffi.Status {
		f = p.filter
		return ffi.StatusSuccess
	})
	return f
}

// PatternSetMatrix implements ffi.Library. Non-invertible matrices put the
// pattern in StatusInvalidMatrix.
func (l *Library) PatternSetMatrix(h ffi.Pattern, m ffi.Matrix) {
	l.patternMutate(h, func(o *object, p *pattern) {
		a := f64.Aff3{m.XX, m.XY, m.X0, m.YX, m.YY, m.Y0}
		if !invertible(a) {
			o.setError(ffi.StatusInvalidMatrix)
			return
		}
		p.matrix = a
	})
}

// PatternGetMatrix implements ffi.Library.
func (l *Library) PatternGetMatrix(h ffi.Pattern) ffi.Matrix {
	m := ffi.IdentityMatrix()
	l.patternQuery(h, func(p *pattern) ffi.Status {
		a := p.matrix
		m = ffi.Matrix{XX: a[0], XY: a[1], X0: a[2], YX: a[3], YY: a[4], Y0: a[5]}
		return ffi.StatusSuccess
	})
	return m
}

func invertible(a f64.Aff3) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	det := a[0]*a[4] - a[1]*a[3]
	return det != 0 && !math.IsInf(1/det, 0)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// PatternCreateRGBA implements ffi.Library. Components are clamped to [0, 1].
func (l *Library) PatternCreateRGBA(r, g, b, a float64) ffi.Pattern {
	p := newPattern(ffi.PatternTypeSolid)
	p.r, p.g, p.b, p.a = clamp01(r), clamp01(g), clamp01(b), clamp01(a)
	return l.createPattern(p)
}

// PatternGetRGBA implements ffi.Library.
func (l *Library) PatternGetRGBA(h ffi.Pattern) (r, g, b, a float64, status ffi.Status) {
	status = l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeSolid {
			return ffi.StatusPatternTypeMismatch
		}
		r, g, b, a = p.r, p.g, p.b, p.a
		return ffi.StatusSuccess
	})
	return r, g, b, a, status
}

// PatternCreateForSurface implements ffi.Library. The pattern holds a
// reference to s.
func (l *Library) PatternCreateForSurface(s ffi.Surface) ffi.Pattern {
	if o, _ := l.surfaceObject(s); o == nil {
		return l.errorPattern(ffi.PatternTypeSurface, ffi.StatusNullPointer)
	}
	if status := l.SurfaceStatus(s); status != ffi.StatusSuccess {
		return l.errorPattern(ffi.PatternTypeSurface, status)
	}
	p := newPattern(ffi.PatternTypeSurface)
	p.surface = l.SurfaceReference(s)
	return l.createPattern(p)
}

// PatternGetSurface implements ffi.Library. The returned handle is borrowed:
// no reference is added.
func (l *Library) PatternGetSurface(h ffi.Pattern) (ffi.Surface, ffi.Status) {
	s := ffi.NullSurface
	status := l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeSurface {
			return ffi.StatusPatternTypeMismatch
		}
		s = p.surface
		return ffi.StatusSuccess
	})
	return s, status
}

// PatternCreateLinear implements ffi.Library.
func (l *Library) PatternCreateLinear(x0, y0, x1, y1 float64) ffi.Pattern {
	p := newPattern(ffi.PatternTypeLinear)
	p.points = [6]float64{x0, y0, x1, y1}
	return l.createPattern(p)
}

// PatternGetLinearPoints implements ffi.Library.
func (l *Library) PatternGetLinearPoints(h ffi.Pattern) (x0, y0, x1, y1 float64, status ffi.Status) {
	status = l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeLinear {
			return ffi.StatusPatternTypeMismatch
		}
		x0, y0, x1, y1 = p.points[0], p.points[1], p.points[2], p.points[3]
		return ffi.StatusSuccess
	})
	return x0, y0, x1, y1, status
}

// PatternCreateRadial implements ffi.Library. Negative radii are clamped to 0.
func (l *Library) PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1 float64) ffi.Pattern {
	p := newPattern(ffi.PatternTypeRadial)
	p.points = [6]float64{cx0, cy0, max(r0, 0), cx1, cy1, max(r1, 0)}
	return l.createPattern(p)
}

// PatternGetRadialCircles implements ffi.Library.
func (l *Library) PatternGetRadialCircles(h ffi.Pattern) (cx0, cy0, r0, cx1, cy1, r1 float64, status ffi.Status) {
	status = l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeRadial {
			return ffi.StatusPatternTypeMismatch
		}
		cx0, cy0, r0, cx1, cy1, r1 = p.points[0], p.points[1], p.points[2], p.points[3], p.points[4], p.points[5]
		return ffi.StatusSuccess
	})
	return cx0, cy0, r0, cx1, cy1, r1, status
}

// CreateMesh creates an empty mesh pattern. Mesh patterns are not part of
// ffi.Library; the method exists so callers can exercise pattern kinds a
// binding does not model.
func (l *Library) CreateMesh() ffi.Pattern {
	return l.createPattern(newPattern(ffi.PatternTypeMesh))
}

// PatternAddColorStopRGB implements ffi.Library.
func (l *Library) PatternAddColorStopRGB(h ffi.Pattern, offset, r, g, b float64) {
	l.PatternAddColorStopRGBA(h, offset, r, g, b, 1)
}

// PatternAddColorStopRGBA implements ffi.Library. Stops stay sorted by
// offset; a stop with an offset equal to existing ones goes after them.
// Adding a stop to a non-gradient puts it in StatusPatternTypeMismatch.
func (l *Library) PatternAddColorStopRGBA(h ffi.Pattern, offset, r, g, b, a float64) {
	l.patternMutate(h, func(o *object, p *pattern) {
		if p.typ != ffi.PatternTypeLinear && p.typ != ffi.PatternTypeRadial {
			o.setError(ffi.StatusPatternTypeMismatch)
			return
		}
		stop := colorStop{
			offset: clamp01(offset),
			r:      clamp01(r),
			g:      clamp01(g),
			b:      clamp01(b),
			a:      clamp01(a),
		}
		i := len(p.stops)
		for i > 0 && p.stops[i-1].offset > stop.offset {
			i--
		}
		p.stops = append(p.stops, colorStop{})
		copy(p.stops[i+1:], p.stops[i:])
		p.stops[i] = stop
	})
}

// PatternGetColorStopCount implements ffi.Library.
func (l *Library) PatternGetColorStopCount(h ffi.Pattern) (int, ffi.Status) {
	var n int
	status := l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeLinear && p.typ != ffi.PatternTypeRadial {
			return ffi.StatusPatternTypeMismatch
		}
		n = len(p.stops)
		return ffi.StatusSuccess
	})
	return n, status
}

// PatternGetColorStopRGBA implements ffi.Library.
func (l *Library) PatternGetColorStopRGBA(h ffi.Pattern, index int) (offset, r, g, b, a float64, status ffi.Status) {
	status = l.patternQuery(h, func(p *pattern) ffi.Status {
		if p.typ != ffi.PatternTypeLinear && p.typ != ffi.PatternTypeRadial {
			return ffi.StatusPatternTypeMismatch
		}
		if index < 0 || index >= len(p.stops) {
			return ffi.StatusInvalidIndex
		}
		s := p.stops[index]
		offset, r, g, b, a = s.offset, s.r, s.g, s.b, s.a
		return ffi.StatusSuccess
	})
	return offset, r, g, b, a, status
}
