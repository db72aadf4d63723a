/*
Package raster implements a drawing surface on top of an in-memory image.

Pixel values are mapped to colors by a palette. Values beyond the palette
are taken as 0xRRGGBB. The default palette is monochrome: 0 is black,
1 is white, which mirrors the common OLED panels.

Images may be written as PNG or as BMP, the latter being the format of
choice for many microcontroller image converters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.gfx")
}
