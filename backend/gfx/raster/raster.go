package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
)

// Monochrome is the default palette: 0 = black, 1 = white.
var Monochrome = color.Palette{color.Black, color.White}

// Surface is a drawing surface backed by an RGBA image.
type Surface struct {
	img     *image.RGBA
	palette color.Palette
}

var _ gfx.Surface = &Surface{}

// New creates a surface of w × h pixels, cleared to pixel value 0.
// If palette is nil, Monochrome is used.
func New(w, h int, palette color.Palette) *Surface {
	if palette == nil {
		palette = Monochrome
	}
	s := &Surface{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		palette: palette,
	}
	s.Clear(0)
	return s
}

// NamedPalette creates a palette from SVG color names, e.g. "black", "orange".
// The first name denotes pixel value 0, the second value 1, and so on.
func NamedPalette(names ...string) (color.Palette, error) {
	p := make(color.Palette, len(names))
	for i, name := range names {
		c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, core.Error(core.EINVALID, "unknown color name %q", name)
		}
		p[i] = c
	}
	return p, nil
}

// FillRect fills a rectangle, clipped to the image bounds.
func (s *Surface) FillRect(x, y, w, h int, c gfx.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if w <= 0 || h <= 0 || r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(s.ColorOf(c)), image.Point{}, draw.Src)
}

// Clear fills the whole image with pixel value c.
func (s *Surface) Clear(c gfx.Color) {
	b := s.img.Bounds()
	s.FillRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy(), c)
}

// ColorOf maps a pixel value to a color.
func (s *Surface) ColorOf(c gfx.Color) color.Color {
	if int(c) < len(s.palette) {
		return s.palette[c]
	}
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// Image returns the underlying image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Bounds returns the size of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return core.WrapError(err, core.EIO, "cannot encode PNG")
	}
	return nil
}

// WriteBMP encodes the image as BMP.
func (s *Surface) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, s.img); err != nil {
		return core.WrapError(err, core.EIO, "cannot encode BMP")
	}
	return nil
}

// Save writes the image to a file. The format is chosen by the file
// extension, ".png" or ".bmp".
func (s *Surface) Save(path string) (err error) {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = s.WritePNG
	case ".bmp":
		encode = s.WriteBMP
	default:
		return core.Error(core.EINVALID, "unsupported image format: %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = core.WrapError(cerr, core.EIO, "cannot close %s", path)
		}
	}()
	tracer().Infof("writing %s", path)
	return encode(f)
}
