package display

import (
	"golang.org/x/text/width"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
	"github.com/npillmayer/sevenseg/engine/geometry"
	"github.com/npillmayer/sevenseg/engine/glyphs"
)

// Display draws segment glyphs onto a surface.
type Display struct {
	surface gfx.Surface
	conf    geometry.Config
	fold    bool // fold full-width forms to narrow ones
	saved   []geometry.Config
}

// New creates a display for a surface. Options are applied in order on top
// of the default geometry (preset "S", spacing 1, color 1).
func New(surface gfx.Surface, opts ...geometry.Options) (*Display, error) {
	if surface == nil {
		return nil, core.Error(core.EMISSING, "display needs a drawing surface")
	}
	d := &Display{
		surface: surface,
		conf:    geometry.Default(),
	}
	for _, o := range opts {
		if err := d.Configure(o); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Configure changes the geometry. Fields not set in opts keep their current
// value. If opts are invalid, the geometry is left unchanged and an error
// with code EINVALID is returned.
func (d *Display) Configure(opts geometry.Options) error {
	conf, err := d.conf.Apply(opts)
	if err != nil {
		return err
	}
	d.conf = conf
	return nil
}

// Begingroup saves the current geometry. A matching call to Endgroup
// restores it, discarding all configuration changes in between. Groups
// may be nested.
func (d *Display) Begingroup() {
	d.saved = append(d.saved, d.conf)
}

// Endgroup restores the geometry saved by the innermost Begingroup.
// Without an open group it does nothing.
func (d *Display) Endgroup() {
	if n := len(d.saved); n > 0 {
		d.conf = d.saved[n-1]
		d.saved = d.saved[:n-1]
		tracer().Debugf("geometry restored to %v", d.conf)
	}
}

// Config returns the current geometry.
func (d *Display) Config() geometry.Config {
	return d.conf
}

// SetSurface replaces the drawing surface.
func (d *Display) SetSurface(surface gfx.Surface) error {
	if surface == nil {
		return core.Error(core.EMISSING, "display needs a drawing surface")
	}
	d.surface = surface
	return nil
}

// Surface returns the drawing surface.
func (d *Display) Surface() gfx.Surface {
	return d.surface
}

// SetWidthFolding switches folding of full-width symbols (e.g. '１', '：')
// to their narrow counterparts on or off. It is off by default.
func (d *Display) SetWidthFolding(on bool) {
	d.fold = on
}

// CharacterWidth returns the advance of segment glyphs.
func (d *Display) CharacterWidth() int {
	return d.conf.GlyphWidth()
}

// CharacterHeight returns the height of glyphs, including spacing.
func (d *Display) CharacterHeight() int {
	return d.conf.GlyphHeight()
}

// Flush transfers buffered drawing to the device, if the surface buffers.
func (d *Display) Flush() error {
	if err := gfx.Flush(d.surface); err != nil {
		return core.WrapError(err, core.EIO, "cannot flush display")
	}
	return nil
}

// --- Layout ----------------------------------------------------------------

// DisplayString draws symbols left to right, starting at (x, y), and returns
// the x-position right after the last glyph.
func (d *Display) DisplayString(x, y int, symbols string) int {
	for _, r := range symbols {
		x += d.DisplayCharacter(x, y, r)
	}
	return x
}

// DisplayCharacter draws a single symbol at (x, y) and returns its advance.
// Unsupported symbols are drawn as '?'.
func (d *Display) DisplayCharacter(x, y int, r rune) int {
	comp := glyphs.Resolve(d.symbol(r))
	return d.DrawComposition(x, y, comp)
}

// Measure returns the total advance of symbols without drawing anything.
func (d *Display) Measure(symbols string) int {
	w := 0
	for _, r := range symbols {
		w += d.advance(glyphs.Resolve(d.symbol(r)))
	}
	return w
}

func (d *Display) symbol(r rune) rune {
	if d.fold {
		if n := width.LookupRune(r).Narrow(); n != 0 {
			return n
		}
	}
	return r
}

// DrawComposition draws a composition at (x, y) and returns its advance.
func (d *Display) DrawComposition(x, y int, comp glyphs.Composition) int {
	switch comp.Mark {
	case glyphs.NoMark:
		comp.Segments.Each(func(seg geometry.Segment) {
			d.DrawSegment(seg, x, y)
		})
		return d.conf.GlyphWidth()
	case glyphs.DecimalPoint:
		return d.DecimalPoint(x, y)
	case glyphs.Colon:
		return d.Colon(x, y)
	case glyphs.Plus:
		return d.Plus(x, y)
	case glyphs.Minus:
		return d.Minus(x, y)
	case glyphs.Space:
		return d.Space(x, y)
	}
	tracer().Errorf("unknown mark %d", comp.Mark)
	return 0
}

func (d *Display) advance(comp glyphs.Composition) int {
	switch comp.Mark {
	case glyphs.DecimalPoint, glyphs.Colon:
		return d.conf.DotAdvance()
	case glyphs.Plus, glyphs.Minus:
		return d.conf.SignAdvance()
	}
	return d.conf.GlyphWidth()
}
