package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
)

// Window is a drawing surface in an X11 window. Every surface pixel is drawn
// as a square of Scale × Scale screen pixels.
type Window struct {
	conn    *xgb.Conn
	window  xproto.Window
	gc      xproto.Gcontext
	width   int // in surface pixels
	height  int
	scale   int
	palette []uint32 // pixel value → 0xRRGGBB
	fg      uint32   // current foreground of gc
}

var _ gfx.Surface = &Window{}
var _ gfx.Flusher = &Window{}

// Open connects to the X server named by $DISPLAY and maps a window of
// width × height surface pixels, each magnified by scale.
func Open(width, height, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot connect to X server")
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, core.WrapError(err, core.ECONNECTION, "cannot allocate window")
	}
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		screen.Root,
		0, 0,
		uint16(width*scale), uint16(height*scale),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.BlackPixel,
			xproto.EventMaskExposure | xproto.EventMaskKeyPress,
		},
	).Check()
	if err != nil {
		conn.Close()
		return nil, core.WrapError(err, core.ECONNECTION, "cannot create window")
	}
	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		conn.Close()
		return nil, core.WrapError(err, core.ECONNECTION, "cannot allocate graphics context")
	}
	xproto.CreateGC(conn, gc, xproto.Drawable(wid), xproto.GcForeground, []uint32{screen.WhitePixel})
	xproto.MapWindow(conn, wid)
	tracer().Infof("opened X11 window %dx%d (scale %d)", width, height, scale)
	return &Window{
		conn:    conn,
		window:  wid,
		gc:      gc,
		width:   width,
		height:  height,
		scale:   scale,
		palette: []uint32{0x000000, 0xffffff},
		fg:      screen.WhitePixel,
	}, nil
}

// SetPalette sets the colors (0xRRGGBB) for pixel values 0, 1, ….
// This assumes a TrueColor visual, which is what every current X server
// provides by default.
func (w *Window) SetPalette(colors ...uint32) {
	if len(colors) > 0 {
		w.palette = colors
	}
}

// FillRect fills a rectangle, clipped to the window's surface size.
func (w *Window) FillRect(x, y, width, height int, c gfx.Color) {
	r, ok := gfx.Rect{X: x, Y: y, W: width, H: height}.Clip(w.width, w.height)
	if !ok {
		return
	}
	if pixel := w.pixelOf(c); pixel != w.fg {
		xproto.ChangeGC(w.conn, w.gc, xproto.GcForeground, []uint32{pixel})
		w.fg = pixel
	}
	xproto.PolyFillRectangle(w.conn, xproto.Drawable(w.window), w.gc, []xproto.Rectangle{
		scaled(r, w.scale),
	})
}

func scaled(r gfx.Rect, scale int) xproto.Rectangle {
	return xproto.Rectangle{
		X:      int16(r.X * scale),
		Y:      int16(r.Y * scale),
		Width:  uint16(r.W * scale),
		Height: uint16(r.H * scale),
	}
}

func (w *Window) pixelOf(c gfx.Color) uint32 {
	if int(c) < len(w.palette) {
		return w.palette[c]
	}
	return uint32(c) & 0xffffff
}

// Clear fills the whole window with pixel value c.
func (w *Window) Clear(c gfx.Color) {
	w.FillRect(0, 0, w.width, w.height, c)
}

// Flush waits until the X server has processed all drawing requests.
func (w *Window) Flush() error {
	// a round trip forces the request queue to be processed
	if _, err := xproto.GetInputFocus(w.conn).Reply(); err != nil {
		return core.WrapError(err, core.ECONNECTION, "X server did not answer")
	}
	return nil
}

// NextEvent blocks until the X server sends an event. It reports whether
// the window needs to be redrawn (expose) and whether a key was pressed.
func (w *Window) NextEvent() (expose, key bool, err error) {
	ev, xerr := w.conn.WaitForEvent()
	if ev == nil && xerr == nil {
		return false, false, core.Error(core.ECONNECTION, "connection to X server closed")
	}
	if xerr != nil {
		return false, false, core.WrapError(xerr, core.ECONNECTION, "X error")
	}
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		return e.Count == 0, false, nil
	case xproto.KeyPressEvent:
		return false, true, nil
	}
	return false, false, nil
}

// Close destroys the window and closes the connection.
func (w *Window) Close() {
	xproto.DestroyWindow(w.conn, w.window)
	w.conn.Close()
}
