/*
Package geometry computes the rectangles segment glyphs are made of.

A glyph is modelled after a classic seven-segment display:

     bold=false     bold=true
      ──TOP──      ───TOP───
     │       │     │       │
     UL     UR     UL     UR
     │       │     │       │
      ──MID──      ───MID───
     │       │     │       │
     LL     LR     LL     LR
     │       │     │       │
      ──BOT──      ───BOT───

All measures are integer pixels. Segment thickness t, the length of vertical
segments vL and the length of horizontal segments hL determine the glyph box;
spacing is added to the right of and below every glyph. In bold mode segments
are extended into the corner squares, so adjoining segments merge.

Configurations are values. Every change to one of the input measures
produces a new Config with all derived measures recomputed at once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geometry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.geometry'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.geometry")
}
