package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/npillmayer/sevenseg/backend/gfx"
)

// Surface draws onto a tcell screen, one cell per pixel.
type Surface struct {
	screen  tcell.Screen
	palette []tcell.Color
}

var _ gfx.Surface = &Surface{}
var _ gfx.Flusher = &Surface{}

// New wraps an initialized screen. Pixel values index into palette; if no
// palette is given, 0 is black and 1 is white.
func New(screen tcell.Screen, palette ...tcell.Color) *Surface {
	if len(palette) == 0 {
		palette = []tcell.Color{tcell.ColorBlack, tcell.ColorWhite}
	}
	return &Surface{screen: screen, palette: palette}
}

// FillRect paints the cells of a rectangle, clipped to the screen size.
func (s *Surface) FillRect(x, y, w, h int, c gfx.Color) {
	cols, rows := s.screen.Size()
	r, ok := gfx.Rect{X: x, Y: y, W: w, H: h}.Clip(cols, rows)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(s.colorOf(c))
	for py := r.Y; py < r.Y+r.H; py++ {
		for px := r.X; px < r.X+r.W; px++ {
			s.screen.SetContent(px, py, ' ', nil, style)
		}
	}
}

func (s *Surface) colorOf(c gfx.Color) tcell.Color {
	if int(c) < len(s.palette) {
		return s.palette[c]
	}
	return tcell.NewHexColor(int32(c & 0xffffff))
}

// Clear paints the whole screen with pixel value c.
func (s *Surface) Clear(c gfx.Color) {
	cols, rows := s.screen.Size()
	s.FillRect(0, 0, cols, rows, c)
}

// Flush makes changes visible.
func (s *Surface) Flush() error {
	s.screen.Show()
	return nil
}

// Screen returns the underlying screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}
