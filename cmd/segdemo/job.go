package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pterm/pterm"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/backend/gfx/raster"
	"github.com/npillmayer/sevenseg/backend/gfx/term"
	"github.com/npillmayer/sevenseg/backend/gfx/x11"
	"github.com/npillmayer/sevenseg/core"
	"github.com/npillmayer/sevenseg/engine/display"
	"github.com/npillmayer/sevenseg/engine/geometry"
)

// job is a single rendering request.
type job struct {
	text    string
	opts    geometry.Options
	colors  []string // color names for pixel values
	margin  int
	scale   int
	fold    bool
	outfile string
}

func (j *job) run(backend string) error {
	palette, err := raster.NamedPalette(j.colors...)
	if err != nil {
		return err
	}
	switch backend {
	case "png", "bmp":
		return j.toImage(backend, palette)
	case "term":
		return j.toTerminal(palette)
	case "x11":
		return j.toWindow(palette)
	}
	return core.Error(core.EINVALID, "unknown backend %q", backend)
}

// prepare creates a display on surface and returns the size of the canvas
// the text needs.
func (j *job) prepare(surface gfx.Surface) (*display.Display, int, int, error) {
	disp, err := display.New(surface, j.opts)
	if err != nil {
		return nil, 0, 0, err
	}
	disp.SetWidthFolding(j.fold)
	w := disp.Measure(j.text) + 2*j.margin
	h := disp.CharacterHeight() + 2*j.margin
	tracer().Debugf("geometry %v, canvas %dx%d", disp.Config(), w, h)
	return disp, w, h, nil
}

func (j *job) toImage(format string, palette color.Palette) error {
	// measure first, then create a surface of the right size
	disp, w, h, err := j.prepare(gfx.NewRecorder(false))
	if err != nil {
		return err
	}
	img := raster.New(w, h, palette)
	if err := disp.SetSurface(img); err != nil {
		return err
	}
	disp.DisplayString(j.margin, j.margin, j.text)
	out := j.outfile
	if out == "" {
		out = "segdemo." + format
	}
	if err := img.Save(out); err != nil {
		return err
	}
	pterm.Info.Printfln("%d×%d pixel image written to %s", w, h, out)
	return nil
}

func (j *job) toTerminal(palette color.Palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot open terminal")
	}
	if err := screen.Init(); err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot initialize terminal")
	}
	defer screen.Fini()
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		r, g, b, _ := c.RGBA()
		colors[i] = tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	}
	surface := term.New(screen, colors...)
	disp, _, _, err := j.prepare(surface)
	if err != nil {
		return err
	}
	for {
		surface.Clear(0)
		disp.DisplayString(j.margin, j.margin, j.text)
		if err := disp.Flush(); err != nil {
			return err
		}
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}

func (j *job) toWindow(palette color.Palette) error {
	disp, w, h, err := j.prepare(gfx.NewRecorder(false))
	if err != nil {
		return err
	}
	win, err := x11.Open(w, h, j.scale)
	if err != nil {
		return err
	}
	defer win.Close()
	pixels := make([]uint32, len(palette))
	for i, c := range palette {
		r, g, b, _ := c.RGBA()
		pixels[i] = (r>>8)<<16 | (g>>8)<<8 | b>>8
	}
	win.SetPalette(pixels...)
	if err := disp.SetSurface(win); err != nil {
		return err
	}
	pterm.Info.Println("Quit with any key")
	for {
		expose, key, err := win.NextEvent()
		if err != nil {
			return err
		}
		if key {
			return nil
		}
		if expose {
			win.Clear(0)
			disp.DisplayString(j.margin, j.margin, j.text)
			if err := disp.Flush(); err != nil {
				return err
			}
		}
	}
}
