package tiny

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sevenseg/core"
	"github.com/npillmayer/sevenseg/engine/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panel is a 128×64 monochrome panel in memory, like an SSD1306.
type panel struct {
	pixels   [64][128]bool
	sets     int
	displays int
	fail     error
}

func (p *panel) Size() (x, y int16) { return 128, 64 }

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= 128 || y < 0 || y >= 64 {
		panic("pixel outside of panel")
	}
	p.pixels[y][x] = c.R != 0
	p.sets++
}

func (p *panel) Display() error {
	p.displays++
	return p.fail
}

func TestPanelFill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	p := &panel{}
	s := New(p)
	s.FillRect(126, 62, 4, 4, 1) // clipped to 2×2
	assert.Equal(t, 4, p.sets)
	assert.True(t, p.pixels[63][127])
	s.FillRect(200, 0, 4, 4, 1)
	assert.Equal(t, 4, p.sets, "off-panel fill must not set pixels")
	s.Clear(0)
	assert.False(t, p.pixels[63][127])
	assert.Equal(t, 4+128*64, p.sets)
}

func TestPanelDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	p := &panel{}
	disp, err := display.New(New(p))
	require.NoError(t, err)
	x := disp.DisplayString(120, 0, "88") // second glyph runs off the panel
	assert.Equal(t, 120+18, x)
	assert.True(t, p.pixels[0][122], "TOP of first glyph")
	assert.False(t, p.pixels[0][120], "corner stays dark")
	require.NoError(t, disp.Flush())
	assert.Equal(t, 1, p.displays)
	//
	p.fail = errors.New("i2c: nack")
	err = disp.Flush()
	assert.Equal(t, core.EIO, core.Code(err))
}

func TestPanelPalette(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	red := color.RGBA{0xff, 0, 0, 0xff}
	s := New(&panel{}, Off, red)
	assert.Equal(t, red, s.colorOf(1))
	assert.Equal(t, color.RGBA{0x00, 0x80, 0x40, 0xff}, s.colorOf(0x008040))
}
