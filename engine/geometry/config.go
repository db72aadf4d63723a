package geometry

import (
	"fmt"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
)

// Config holds the geometry of segment glyphs. The zero value is not usable;
// start from Default and derive new configurations with Apply.
type Config struct {
	thickness int       // t: thickness of every segment
	vlen      int       // vL: length of vertical segments
	hlen      int       // hL: length of horizontal segments
	spacing   int       // gap right of and below a glyph
	bold      bool      // extend segments into corners
	color     gfx.Color // foreground pixel value
	// derived measures, always recomputed together
	glyphW  int
	glyphH  int
	signLen int
}

// Preset is a named set of measures.
// A Spacing of 0 leaves the current spacing untouched.
type Preset struct {
	Thickness, VLen, HLen, Spacing int
}

var presets = map[string]Preset{
	"S": {Thickness: 2, VLen: 4, HLen: 4},               // up to 4 lines on a 128×64 panel
	"M": {Thickness: 3, VLen: 11, HLen: 11},             // up to 2 lines
	"L": {Thickness: 6, VLen: 22, HLen: 22, Spacing: 2}, // a single line
}

// LookupPreset returns the measures of a size preset ("S", "M" or "L").
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Default returns the initial configuration: preset "S", spacing 1,
// normal weight and color 1.
func Default() Config {
	p := presets["S"]
	c := Config{
		thickness: p.Thickness,
		vlen:      p.VLen,
		hlen:      p.HLen,
		spacing:   1,
		color:     1,
	}
	c.derive()
	return c
}

// Options is a partial configuration. Nil fields retain the value of the
// configuration they are applied to. A preset is applied first, explicit
// measures then override the preset's values.
type Options struct {
	Preset    string     // "S", "M", "L" or empty
	VLen      *int       // length of vertical segments
	HLen      *int       // length of horizontal segments
	Thickness *int       // thickness of all segments
	Spacing   *int       // gap between glyphs
	Bold      *bool      // merge segments at corners
	Color     *gfx.Color // foreground pixel value
}

// Int is a helper for setting integer fields of Options.
func Int(n int) *int {
	return &n
}

// Flag is a helper for setting boolean fields of Options.
func Flag(b bool) *bool {
	return &b
}

// Ink is a helper for setting the color field of Options.
func Ink(c gfx.Color) *gfx.Color {
	return &c
}

// IsEmpty is true if opts would not change any configuration.
func (opts Options) IsEmpty() bool {
	return opts.Preset == "" && opts.VLen == nil && opts.HLen == nil && opts.Thickness == nil &&
		opts.Spacing == nil && opts.Bold == nil && opts.Color == nil
}

// Apply returns a copy of c with opts applied and all derived measures
// recomputed. If opts names an unknown preset or a non-positive measure,
// Apply returns c unchanged together with an EINVALID error.
func (c Config) Apply(opts Options) (Config, error) {
	next := c
	if opts.Preset != "" {
		p, ok := LookupPreset(opts.Preset)
		if !ok {
			tracer().Errorf("unknown size preset %q", opts.Preset)
			return c, core.Error(core.EINVALID, "unknown size preset %q", opts.Preset)
		}
		next.thickness, next.vlen, next.hlen = p.Thickness, p.VLen, p.HLen
		if p.Spacing > 0 {
			next.spacing = p.Spacing
		}
	}
	if opts.VLen != nil {
		next.vlen = *opts.VLen
	}
	if opts.HLen != nil {
		next.hlen = *opts.HLen
	}
	if opts.Thickness != nil {
		next.thickness = *opts.Thickness
	}
	if opts.Spacing != nil {
		next.spacing = *opts.Spacing
	}
	if opts.Bold != nil {
		next.bold = *opts.Bold
	}
	if opts.Color != nil {
		next.color = *opts.Color
	}
	if err := next.validate(); err != nil {
		tracer().Errorf(err.Error())
		return c, err
	}
	next.derive()
	tracer().Debugf("geometry now %v", next)
	return next, nil
}

func (c Config) validate() error {
	switch {
	case c.thickness <= 0:
		return core.Error(core.EINVALID, "segment thickness must be positive, is %d", c.thickness)
	case c.vlen <= 0:
		return core.Error(core.EINVALID, "vertical segment length must be positive, is %d", c.vlen)
	case c.hlen <= 0:
		return core.Error(core.EINVALID, "horizontal segment length must be positive, is %d", c.hlen)
	case c.spacing < 0:
		return core.Error(core.EINVALID, "spacing must not be negative, is %d", c.spacing)
	}
	return nil
}

// derive recomputes every derived measure from the input measures.
func (c *Config) derive() {
	t := c.thickness
	c.glyphW = t + c.hlen + t + c.spacing
	c.glyphH = t + c.vlen + t + c.vlen + t + c.spacing
	c.signLen = max(c.vlen, c.hlen)
	if c.signLen < 5 {
		c.signLen = 5
	}
	if c.signLen%2 != 0 {
		c.signLen--
	}
}

// Thickness returns the thickness of segments.
func (c Config) Thickness() int { return c.thickness }

// VLen returns the length of vertical segments.
func (c Config) VLen() int { return c.vlen }

// HLen returns the length of horizontal segments.
func (c Config) HLen() int { return c.hlen }

// Spacing returns the gap right of and below every glyph.
func (c Config) Spacing() int { return c.spacing }

// Bold is true if segments extend into the corners.
func (c Config) Bold() bool { return c.bold }

// Color returns the foreground pixel value.
func (c Config) Color() gfx.Color { return c.color }

// GlyphWidth is the advance of every segment glyph, including spacing.
func (c Config) GlyphWidth() int { return c.glyphW }

// GlyphHeight is the height of a glyph, including spacing.
func (c Config) GlyphHeight() int { return c.glyphH }

// SignLen is the length of the bars of '+' and '-'. It is always even.
func (c Config) SignLen() int { return c.signLen }

func (c Config) String() string {
	weight := "normal"
	if c.bold {
		weight = "bold"
	}
	return fmt.Sprintf("t=%d vL=%d hL=%d spacing=%d %s color=%d [%dx%d sign=%d]",
		c.thickness, c.vlen, c.hlen, c.spacing, weight, c.color, c.glyphW, c.glyphH, c.signLen)
}
