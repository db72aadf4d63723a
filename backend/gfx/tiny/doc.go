/*
Package tiny adapts TinyGo display drivers as drawing surfaces.

Any driver implementing drivers.Displayer (SSD1306, ST7735, ILI9341 and
many more) may be wrapped. Fills are performed pixel by pixel through
SetPixel and become visible after Flush, which calls the driver's Display
method.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tiny
