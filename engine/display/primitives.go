package display

import (
	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/engine/geometry"
)

// DrawSegment draws a single segment of a glyph with origin (x, y), using
// the configured color.
func (d *Display) DrawSegment(seg geometry.Segment, x, y int) {
	d.DrawSegmentColored(seg, x, y, d.conf.Color())
}

// DrawSegmentColored draws a single segment of a glyph with origin (x, y)
// in color c. This may be used to clear segments or to highlight them.
func (d *Display) DrawSegmentColored(seg geometry.Segment, x, y int, c gfx.Color) {
	gfx.Paint(d.surface, d.conf.SegmentRect(seg, x, y), c)
}

// DecimalPoint draws a decimal point and returns its advance.
func (d *Display) DecimalPoint(x, y int) int {
	gfx.Paint(d.surface, d.conf.DotRect(x, y), d.conf.Color())
	return d.conf.DotAdvance()
}

// Colon draws a colon and returns its advance, which equals the advance of
// a decimal point.
func (d *Display) Colon(x, y int) int {
	d.DecimalPoint(x, y)
	gfx.Paint(d.surface, d.conf.UpperDotRect(x, y), d.conf.Color())
	return d.conf.DotAdvance()
}

// Minus draws a minus sign and returns its advance.
func (d *Display) Minus(x, y int) int {
	gfx.Paint(d.surface, d.conf.MinusRect(x, y), d.conf.Color())
	return d.conf.SignAdvance()
}

// Plus draws a plus sign and returns its advance, which equals the advance
// of a minus sign.
func (d *Display) Plus(x, y int) int {
	d.Minus(x, y)
	gfx.Paint(d.surface, d.conf.PlusBarRect(x, y), d.conf.Color())
	return d.conf.SignAdvance()
}

// Space draws nothing and returns the advance of a segment glyph.
func (d *Display) Space(x, y int) int {
	return d.conf.GlyphWidth()
}
