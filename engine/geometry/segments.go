package geometry

import "github.com/npillmayer/sevenseg/backend/gfx"

// Segment identifies one of the seven directional strokes of a glyph.
type Segment uint8

// The seven segments, in drawing order.
const (
	Top Segment = iota
	UpperLeft
	UpperRight
	Middle
	LowerLeft
	LowerRight
	Bottom
	SegmentCount int = iota
)

var segmentNames = [...]string{"TOP", "UL", "UR", "MID", "LL", "LR", "BOT"}

func (s Segment) String() string {
	if int(s) >= SegmentCount {
		return "?"
	}
	return segmentNames[s]
}

// SegmentRect returns the rectangle of segment seg for a glyph with origin
// (x0, y0).
func (c Config) SegmentRect(seg Segment, x0, y0 int) gfx.Rect {
	t, vl, hl := c.thickness, c.vlen, c.hlen
	switch seg {
	case Top:
		x, w := c.horizontal(x0)
		return gfx.Rect{X: x, Y: y0, W: w, H: t}
	case UpperLeft:
		y, h := c.vertical(y0)
		return gfx.Rect{X: x0, Y: y, W: t, H: h}
	case UpperRight:
		y, h := c.vertical(y0)
		return gfx.Rect{X: x0 + t + hl, Y: y, W: t, H: h}
	case Middle:
		x, w := c.horizontal(x0)
		return gfx.Rect{X: x, Y: y0 + t + vl, W: w, H: t}
	case LowerLeft:
		y, h := c.vertical(y0 + t + vl)
		return gfx.Rect{X: x0, Y: y, W: t, H: h}
	case LowerRight:
		y, h := c.vertical(y0 + t + vl)
		return gfx.Rect{X: x0 + t + hl, Y: y, W: t, H: h}
	case Bottom:
		x, w := c.horizontal(x0)
		return gfx.Rect{X: x, Y: y0 + t + vl + t + vl, W: w, H: t}
	}
	return gfx.Rect{}
}

// horizontal returns x-position and width of TOP, MID and BOT.
func (c Config) horizontal(x0 int) (x, w int) {
	if c.bold {
		return x0, c.thickness + c.hlen + c.thickness
	}
	return x0 + c.thickness, c.hlen
}

// vertical returns y-position and height of a vertical segment whose
// corner square starts at y0.
func (c Config) vertical(y0 int) (y, h int) {
	if c.bold {
		return y0, c.thickness + c.vlen + c.thickness
	}
	return y0 + c.thickness, c.vlen
}

// --- Auxiliary marks -------------------------------------------------------

// DotRect is the t×t square of a decimal point, sitting on the baseline
// of the bottom segment.
func (c Config) DotRect(x0, y0 int) gfx.Rect {
	t := c.thickness
	return gfx.Rect{X: x0, Y: y0 + c.vlen + c.vlen + t + t, W: t, H: t}
}

// UpperDotRect is the upper square of a colon, level with the middle segment.
func (c Config) UpperDotRect(x0, y0 int) gfx.Rect {
	t := c.thickness
	return gfx.Rect{X: x0, Y: y0 + c.vlen + t, W: t, H: t}
}

// DotAdvance is the advance of a decimal point or colon.
func (c Config) DotAdvance() int {
	return c.thickness + c.spacing
}

// MinusRect is the horizontal bar of '-' and '+'.
func (c Config) MinusRect(x0, y0 int) gfx.Rect {
	return gfx.Rect{X: x0, Y: y0 + c.vlen + c.thickness, W: c.signLen, H: c.thickness}
}

// PlusBarRect is the vertical bar of '+'. Centering uses integer division,
// which may leave the bar one pixel off for some parities of t and SignLen.
func (c Config) PlusBarRect(x0, y0 int) gfx.Rect {
	x := x0 + c.signLen/2 - c.thickness/2
	y := y0 + c.vlen + c.thickness - c.signLen/2 + 1
	return gfx.Rect{X: x, Y: y, W: c.thickness, H: c.signLen}
}

// SignAdvance is the advance of '+' and '-'.
func (c Config) SignAdvance() int {
	return c.signLen + c.spacing
}
