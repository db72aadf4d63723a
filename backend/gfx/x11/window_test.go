package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/stretchr/testify/assert"
)

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	r := scaled(gfx.Rect{X: 2, Y: 3, W: 4, H: 1}, 5)
	assert.Equal(t, xproto.Rectangle{X: 10, Y: 15, Width: 20, Height: 5}, r)
}

func TestPixelValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	w := &Window{palette: []uint32{0x000000, 0xffffff}}
	assert.Equal(t, uint32(0xffffff), w.pixelOf(1))
	assert.Equal(t, uint32(0x00ff00), w.pixelOf(0xff00ff00))
	w.SetPalette(0x202020, 0xffa500)
	assert.Equal(t, uint32(0xffa500), w.pixelOf(1))
	w.SetPalette()
	assert.Len(t, w.palette, 2)
}

func TestFillOutsideWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.gfx")
	defer teardown()
	//
	// no connection is touched for fills outside of the surface
	w := &Window{width: 10, height: 10, scale: 1}
	w.FillRect(20, 20, 3, 3, 1)
	w.FillRect(0, 0, 0, 3, 1)
}
