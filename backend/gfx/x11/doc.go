/*
Package x11 provides a drawing surface in an X11 window.

It talks to the X server through the pure-Go X protocol binding xgb and
fills rectangles server-side with PolyFillRectangle, so nothing has to be
rasterized on the client. Use it to preview glyph geometries on a desktop
at a magnification, before flashing them onto a real panel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package x11

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.gfx")
}
