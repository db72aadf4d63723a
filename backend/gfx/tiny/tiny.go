package tiny

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
)

// Off and On are the colors of a monochrome panel.
var (
	Off = color.RGBA{0, 0, 0, 0xff}
	On  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Surface draws onto a TinyGo display driver.
type Surface struct {
	dev     drivers.Displayer
	palette []color.RGBA
}

var _ gfx.Surface = &Surface{}
var _ gfx.Flusher = &Surface{}

// New wraps a display driver. Pixel values index into palette; if no
// palette is given, 0 switches a pixel off and 1 switches it on.
func New(dev drivers.Displayer, palette ...color.RGBA) *Surface {
	if len(palette) == 0 {
		palette = []color.RGBA{Off, On}
	}
	return &Surface{dev: dev, palette: palette}
}

// FillRect sets all pixels of a rectangle, clipped to the panel size.
func (s *Surface) FillRect(x, y, w, h int, c gfx.Color) {
	dw, dh := s.dev.Size()
	r, ok := gfx.Rect{X: x, Y: y, W: w, H: h}.Clip(int(dw), int(dh))
	if !ok {
		return
	}
	col := s.colorOf(c)
	for py := r.Y; py < r.Y+r.H; py++ {
		for px := r.X; px < r.X+r.W; px++ {
			s.dev.SetPixel(int16(px), int16(py), col)
		}
	}
}

func (s *Surface) colorOf(c gfx.Color) color.RGBA {
	if int(c) < len(s.palette) {
		return s.palette[c]
	}
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// Clear switches all pixels to value c.
func (s *Surface) Clear(c gfx.Color) {
	w, h := s.dev.Size()
	s.FillRect(0, 0, int(w), int(h), c)
}

// Flush transfers the driver's buffer to the panel.
func (s *Surface) Flush() error {
	if err := s.dev.Display(); err != nil {
		return core.WrapError(err, core.EIO, "cannot update display panel")
	}
	return nil
}
