/*
Package glyphs maps symbols to segment compositions.

Every supported symbol is either composed of a subset of the seven
directional segments (digits, the letters A–F and '?'), or is drawn by
a dedicated mark ('.', ':', '+', '-' and space). Letters are
case-insensitive. Symbols without an entry are rendered as '?'.

The table is built once at package initialization and never changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sevenseg.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.glyphs")
}
