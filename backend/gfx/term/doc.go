/*
Package term renders segment glyphs onto a terminal screen.

Every terminal cell is treated as a single pixel, painted by setting its
background color. This gives a quick preview of glyph geometries without
any display hardware; glyphs of preset "S" fit into a standard 80×24
terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term
