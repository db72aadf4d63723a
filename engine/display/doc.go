/*
Package display renders strings of segment glyphs onto a surface.

A Display combines a drawing surface with a segment geometry. Clients
configure it once (or whenever the desired size changes) and then render
strings at pixel positions:

   disp, err := display.New(surface, geometry.Options{Preset: "M"})
   …
   x := disp.DisplayString(0, 0, "12:45")
   x = disp.DisplayString(x, 0, " AM")

DisplayString returns the x-position right after the last glyph, which
makes it easy to chain output. Unsupported symbols are drawn as '?'.

A Display is not safe for concurrent use. Clients with more than one
goroutine drawing to the same display have to serialize access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.display'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.display")
}
