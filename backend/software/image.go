// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/cairo/ffi"
)

// maxImageSize is the largest width or height of an image surface.
const maxImageSize = 32767

// imageData is the pixel storage of an image surface. Pixels use cairo's
// native-endian layout: ARGB32 and RGB24 are stored B, G, R, A on
// little-endian machines, with ARGB32 premultiplied.
type imageData struct {
	format ffi.Format
	width  int
	height int
	stride int
	data   []byte
}

// FormatStrideForWidth implements ffi.Library. It returns -1 for invalid
// formats and widths.
func (l *Library) FormatStrideForWidth(format ffi.Format, width int) int {
	return strideForWidth(format, width)
}

func strideForWidth(format ffi.Format, width int) int {
	bpp := format.BitsPerPixel()
	if bpp == 0 || width < 0 || width >= (math.MaxInt32-7)/bpp {
		return -1
	}
	return ((bpp*width+7)/8 + 3) &^ 3
}

// ImageSurfaceCreate implements ffi.Library. Pixel memory is owned by the
// library and cleared.
func (l *Library) ImageSurfaceCreate(format ffi.Format, width, height int) ffi.Surface {
	if format.BitsPerPixel() == 0 {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidFormat)
	}
	if !validImageSize(width, height) {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidSize)
	}
	stride := strideForWidth(format, width)
	return l.createImage(&imageData{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	})
}

// ImageSurfaceCreateForData implements ffi.Library. The surface renders
// into data directly and keeps using it until the surface is destroyed.
func (l *Library) ImageSurfaceCreateForData(data []byte, format ffi.Format, width, height, stride int) ffi.Surface {
	if format.BitsPerPixel() == 0 {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidFormat)
	}
	if !validImageSize(width, height) {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidSize)
	}
	if stride%4 != 0 || stride < strideForWidth(format, width) {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidStride)
	}
	if len(data) < stride*height {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusNullPointer)
	}
	return l.createImage(&imageData{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		data:   data,
	})
}

func validImageSize(width, height int) bool {
	return width >= 0 && height >= 0 && width <= maxImageSize && height <= maxImageSize
}

func contentForFormat(f ffi.Format) ffi.Content {
	switch f {
	case ffi.FormatA8, ffi.FormatA1:
		return ffi.ContentAlpha
	case ffi.FormatRGB24, ffi.FormatRGB16565, ffi.FormatRGB30:
		return ffi.ContentColor
	default:
		return ffi.ContentColorAlpha
	}
}

func (l *Library) createImage(img *imageData) ffi.Surface {
	s := newSurface(ffi.SurfaceTypeImage, contentForFormat(img.format))
	s.image = img
	return l.createSurface(s)
}

// ImageSurfaceCreateFromPNG implements ffi.Library.
func (l *Library) ImageSurfaceCreateFromPNG(filename string) ffi.Surface {
	f, err := os.Open(filepath.Clean(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusFileNotFound)
		}
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusReadError)
	}
	defer func() { _ = f.Close() }()

	return l.decodePNG(f, nil)
}

// ImageSurfaceCreateFromPNGStream implements ffi.Library. The read callback
// is invoked synchronously, before this call returns.
func (l *Library) ImageSurfaceCreateFromPNGStream(read ffi.ReadFunc, closure ffi.Closure) ffi.Surface {
	if read == nil {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusNullPointer)
	}
	r := &callbackReader{fn: read, closure: closure, chunk: l.opts.chunkSize}
	return l.decodePNG(r, r)
}

func (l *Library) decodePNG(r io.Reader, cb *callbackReader) ffi.Surface {
	img, err := png.Decode(r)
	if err != nil {
		if cb != nil && cb.status != ffi.StatusSuccess {
			return l.errorSurface(ffi.SurfaceTypeImage, cb.status)
		}
		var fmtErr png.FormatError
		if errors.As(err, &fmtErr) {
			return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusPNGError)
		}
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusReadError)
	}
	return l.createImage(imageFromPNG(img))
}

// imageFromPNG converts a decoded image into surface pixels. Images with an
// alpha channel become ARGB32, opaque images RGB24.
func imageFromPNG(src image.Image) *imageData {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	format := ffi.FormatARGB32
	switch m := src.(type) {
	case *image.Gray, *image.Gray16, *image.RGBA, *image.RGBA64:
		format = ffi.FormatRGB24
	case *image.Paletted:
		if m.Opaque() {
			format = ffi.FormatRGB24
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)

	stride := strideForWidth(format, w)
	data := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := rgba.PixOffset(x, y)
			o := y*stride + x*4
			data[o+0] = rgba.Pix[i+2]
			data[o+1] = rgba.Pix[i+1]
			data[o+2] = rgba.Pix[i+0]
			if format == ffi.FormatRGB24 {
				data[o+3] = 0xff
			} else {
				data[o+3] = rgba.Pix[i+3]
			}
		}
	}
	return &imageData{format: format, width: w, height: h, stride: stride, data: data}
}

// snapshot converts surface pixels into an image suitable for PNG encoding.
// ARGB32 is un-premultiplied.
func (d *imageData) snapshot() (image.Image, ffi.Status) {
	r := image.Rect(0, 0, d.width, d.height)
	switch d.format {
	case ffi.FormatARGB32:
		img := image.NewNRGBA(r)
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				o := y*d.stride + x*4
				a := d.data[o+3]
				img.SetNRGBA(x, y, color.NRGBA{
					R: unpremultiply(d.data[o+2], a),
					G: unpremultiply(d.data[o+1], a),
					B: unpremultiply(d.data[o+0], a),
					A: a,
				})
			}
		}
		return img, ffi.StatusSuccess

	case ffi.FormatRGB24:
		img := image.NewRGBA(r)
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				o := y*d.stride + x*4
				img.SetRGBA(x, y, color.RGBA{R: d.data[o+2], G: d.data[o+1], B: d.data[o+0], A: 0xff})
			}
		}
		return img, ffi.StatusSuccess

	case ffi.FormatRGB16565:
		img := image.NewRGBA(r)
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				o := y*d.stride + x*2
				v := uint16(d.data[o]) | uint16(d.data[o+1])<<8
				img.SetRGBA(x, y, color.RGBA{
					R: expand(uint8(v>>11), 5),
					G: expand(uint8(v>>5&0x3f), 6),
					B: expand(uint8(v&0x1f), 5),
					A: 0xff,
				})
			}
		}
		return img, ffi.StatusSuccess

	case ffi.FormatA8:
		img := image.NewAlpha(r)
		for y := 0; y < d.height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+d.width], d.data[y*d.stride:])
		}
		return img, ffi.StatusSuccess

	case ffi.FormatA1:
		img := image.NewAlpha(r)
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				if d.data[y*d.stride+x/8]&(1<<(x%8)) != 0 {
					img.Pix[y*img.Stride+x] = 0xff
				}
			}
		}
		return img, ffi.StatusSuccess
	}
	return nil, ffi.StatusInvalidFormat
}

func unpremultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*0xff + uint32(a)/2) / uint32(a)
	if v > 0xff {
		v = 0xff
	}
	return uint8(v)
}

// expand widens an n-bit channel to 8 bits.
func expand(v uint8, bits uint) uint8 {
	return v<<(8-bits) | v>>(2*bits-8)
}

// imageSnapshot captures the pixels of a healthy image surface.
func (l *Library) imageSnapshot(h ffi.Surface) (image.Image, ffi.Status) {
	o, s := l.surfaceObject(h)
	if o == nil {
		return nil, ffi.StatusNullPointer
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != ffi.StatusSuccess {
		return nil, o.status
	}
	if s.finished {
		return nil, ffi.StatusSurfaceFinished
	}
	if s.image == nil {
		return nil, ffi.StatusSurfaceTypeMismatch
	}
	return s.image.snapshot()
}

// SurfaceWriteToPNG implements ffi.Library.
func (l *Library) SurfaceWriteToPNG(h ffi.Surface, filename string) ffi.Status {
	img, status := l.imageSnapshot(h)
	if status != ffi.StatusSuccess {
		return status
	}
	f, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return ffi.StatusWriteError
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return ffi.StatusWriteError
	}
	if err := f.Close(); err != nil {
		return ffi.StatusWriteError
	}
	return ffi.StatusSuccess
}

// SurfaceWriteToPNGStream implements ffi.Library. The write callback is
// invoked synchronously, before this call returns.
func (l *Library) SurfaceWriteToPNGStream(h ffi.Surface, write ffi.WriteFunc, closure ffi.Closure) ffi.Status {
	if write == nil {
		return ffi.StatusNullPointer
	}
	img, status := l.imageSnapshot(h)
	if status != ffi.StatusSuccess {
		return status
	}
	w := &callbackWriter{fn: write, closure: closure, chunk: l.opts.chunkSize}
	if err := png.Encode(w, img); err != nil {
		if w.status != ffi.StatusSuccess {
			return w.status
		}
		return ffi.StatusPNGError
	}
	return ffi.StatusSuccess
}

func (l *Library) imageField(h ffi.Surface, fn func(d *imageData)) {
	l.inspect(h, func(_ *object, s *surface) {
		if s.image != nil {
			fn(s.image)
		}
	})
}

// ImageSurfaceGetData implements ffi.Library. The returned slice aliases
// the surface's pixel memory.
func (l *Library) ImageSurfaceGetData(h ffi.Surface) []byte {
	var data []byte
	l.imageField(h, func(d *imageData) { data = d.data[:d.stride*d.height] })
	return data
}

// ImageSurfaceGetFormat implements ffi.Library.
func (l *Library) ImageSurfaceGetFormat(h ffi.Surface) ffi.Format {
	format := ffi.FormatInvalid
	l.imageField(h, func(d *imageData) { format = d.format })
	return format
}

// ImageSurfaceGetWidth implements ffi.Library.
func (l *Library) ImageSurfaceGetWidth(h ffi.Surface) int {
	var v int
	l.imageField(h, func(d *imageData) { v = d.width })
	return v
}

// ImageSurfaceGetHeight implements ffi.Library.
func (l *Library) ImageSurfaceGetHeight(h ffi.Surface) int {
	var v int
	l.imageField(h, func(d *imageData) { v = d.height })
	return v
}

// ImageSurfaceGetStride implements ffi.Library.
func (l *Library) ImageSurfaceGetStride(h ffi.Surface) int {
	var v int
	l.imageField(h, func(d *imageData) { v = d.stride })
	return v
}
