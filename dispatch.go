package cairo

import "github.com/gogpu/cairo/ffi"

// surfaceTypes maps a surface type tag to its variant. Tags missing here
// adopt as *BaseSurface.
var surfaceTypes = map[ffi.SurfaceType]func(BaseSurface) Surface{
	ffi.SurfaceTypeImage:     func(b BaseSurface) Surface { return &ImageSurface{BaseSurface: b} },
	ffi.SurfaceTypePDF:       func(b BaseSurface) Surface { return &PDFSurface{BaseSurface: b} },
	ffi.SurfaceTypePS:        func(b BaseSurface) Surface { return &PSSurface{BaseSurface: b} },
	ffi.SurfaceTypeSVG:       func(b BaseSurface) Surface { return &SVGSurface{BaseSurface: b} },
	ffi.SurfaceTypeRecording: func(b BaseSurface) Surface { return &RecordingSurface{BaseSurface: b} },
}

// patternTypes maps a pattern type tag to its variant. Tags missing here
// adopt as *BasePattern.
var patternTypes = map[ffi.PatternType]func(BasePattern) Pattern{
	ffi.PatternTypeSolid:   func(b BasePattern) Pattern { return &SolidPattern{BasePattern: b} },
	ffi.PatternTypeSurface: func(b BasePattern) Pattern { return &SurfacePattern{BasePattern: b} },
	ffi.PatternTypeLinear:  func(b BasePattern) Pattern { return &LinearGradient{Gradient{BasePattern: b}} },
	ffi.PatternTypeRadial:  func(b BasePattern) Pattern { return &RadialGradient{Gradient{BasePattern: b}} },
}

func surfaceFromRaw(lib ffi.Library, raw ffi.Surface, incref bool) (Surface, error) {
	h, err := adoptHandle[ffi.Surface](surfaceRefs{lib: lib}, raw, incref)
	if err != nil {
		return nil, err
	}
	base := BaseSurface{lib: lib, h: h}
	if ctor, ok := surfaceTypes[lib.SurfaceGetType(h.raw())]; ok {
		return ctor(base), nil
	}
	return &base, nil
}

func patternFromRaw(lib ffi.Library, raw ffi.Pattern, incref bool) (Pattern, error) {
	h, err := adoptHandle[ffi.Pattern](patternRefs{lib: lib}, raw, incref)
	if err != nil {
		return nil, err
	}
	base := BasePattern{lib: lib, h: h}
	if ctor, ok := patternTypes[lib.PatternGetType(h.raw())]; ok {
		return ctor(base), nil
	}
	return &base, nil
}

// AdoptSurface wraps a raw surface of the current library in the variant
// matching its type. With incref a new reference is taken, for handles the
// caller does not own; otherwise the caller's reference is transferred.
func AdoptSurface(raw ffi.Surface, incref bool) (Surface, error) {
	return surfaceFromRaw(CurrentLibrary(), raw, incref)
}

// AdoptPattern is AdoptSurface for patterns.
func AdoptPattern(raw ffi.Pattern, incref bool) (Pattern, error) {
	return patternFromRaw(CurrentLibrary(), raw, incref)
}
