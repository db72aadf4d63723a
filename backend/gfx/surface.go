package gfx

import "fmt"

// Color is a pixel value. For monochrome panels this is 0 or 1, for other
// targets it is either an index into a surface's palette or a 0xRRGGBB value.
type Color uint32

// Surface is a pixel-addressable drawing target.
//
// FillRect fills a rectangle with origin (x, y), width w and height h.
// Implementations clip to their drawable area and silently ignore empty or
// off-screen rectangles.
type Surface interface {
	FillRect(x, y, w, h int, c Color)
}

// Flusher is implemented by surfaces which buffer fills and need an explicit
// transfer to the device.
type Flusher interface {
	Flush() error
}

// Flush flushes s if it is a Flusher and is a no-op otherwise.
func Flush(s Surface) error {
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Rect is a rectangle in pixel coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Empty is true if r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)[%dx%d]", r.X, r.Y, r.W, r.H)
}

// Clip intersects r with a drawable area of width × height pixels, starting
// at (0,0). If nothing remains, ok is false.
func (r Rect) Clip(width, height int) (clipped Rect, ok bool) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, width), min(r.Y+r.H, height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Paint fills r on s with color c.
func Paint(s Surface, r Rect, c Color) {
	s.FillRect(r.X, r.Y, r.W, r.H, c)
}
