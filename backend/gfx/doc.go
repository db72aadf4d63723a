/*
Package gfx defines the drawing surface glyphs are rendered onto.

A Surface knows a single operation: filling an axis-aligned rectangle with
a pixel value. Everything in this module draws in terms of this operation,
which makes it easy to adapt to small display controllers, terminal screens,
in-memory images or a window system.

Surfaces are expected to clip rectangles which lie partially or completely
outside of their drawable area. Callers never check bounds themselves.

Sub-packages provide surfaces for concrete targets:

   raster   in-memory image, exportable as PNG or BMP
   tiny     TinyGo display drivers (SSD1306 and friends)
   term     terminal screen, one cell per pixel
   x11      X11 window

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.gfx")
}
