/*
Segdemo renders a string of segment glyphs onto one of the supported surfaces.

Usage:

   segdemo [flags] text…

Glyph geometry is read from a dotenv file (default ".env", keys SEGMENT_PRESET,
SEGMENT_VLEN, SEGMENT_HLEN, SEGMENT_THICKNESS, SEGMENT_SPACING, SEGMENT_BOLD,
SEGMENT_COLOR) and may be overridden by command-line flags.

Backends are "png" and "bmp" (write an image file), "term" (preview in the
terminal) and "x11" (preview in a window).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/sevenseg/core"
	"github.com/npillmayer/sevenseg/engine/geometry"
)

// traceKeys lists the tracers of all packages involved in rendering.
// Surfaces trace with key 'sevenseg.gfx'.
var traceKeys = []string{
	"sevenseg.cli",
	"sevenseg.display",
	"sevenseg.geometry",
	"sevenseg.glyphs",
	"sevenseg.gfx",
}

// traceConf sets all tracers to level.
func traceConf(level string) testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	return conf
}

// tracer traces with key 'sevenseg.cli'
func tracer() tracing.Trace {
	return tracing.Select("sevenseg.cli")
}

func main() {
	initDisplay()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	envfile := flag.String("env", ".env", "Dotenv file with SEGMENT_* settings")
	backend := flag.String("backend", "png", "Output [png|bmp|term|x11]")
	out := flag.String("out", "", "Output file for png/bmp (default segdemo.<backend>)")
	colors := flag.String("palette", "black,white", "Comma-separated color names for pixel values 0, 1, …")
	margin := flag.Int("margin", 2, "Margin around the text, in pixels")
	scale := flag.Int("scale", 4, "Magnification for x11")
	fold := flag.Bool("fold", false, "Fold full-width symbols to narrow ones")
	preset := flag.String("preset", "", "Size preset [S|M|L]")
	vlen := flag.Int("vlen", 0, "Length of vertical segments")
	hlen := flag.Int("hlen", 0, "Length of horizontal segments")
	thickness := flag.Int("thickness", 0, "Thickness of segments")
	spacing := flag.Int("spacing", 0, "Spacing between glyphs")
	bold := flag.Bool("bold", false, "Merge segments at corners")
	color := flag.String("color", "", "Foreground pixel value (decimal, 0x… or #…)")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(traceConf(*tlevel), "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		pterm.Error.Println("Nothing to display; provide some text")
		os.Exit(2)
	}
	opts, err := loadSettings(*envfile)
	if err != nil {
		fail(err, 3)
	}
	// explicitly set flags win over settings from the dotenv file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			opts.Preset = strings.ToUpper(*preset)
		case "vlen":
			opts.VLen = geometry.Int(*vlen)
		case "hlen":
			opts.HLen = geometry.Int(*hlen)
		case "thickness":
			opts.Thickness = geometry.Int(*thickness)
		case "spacing":
			opts.Spacing = geometry.Int(*spacing)
		case "bold":
			opts.Bold = geometry.Flag(*bold)
		case "color":
			c, cerr := geometry.ParseColor(*color)
			if cerr != nil {
				fail(cerr, 3)
			}
			opts.Color = geometry.Ink(c)
		}
	})
	j := &job{
		text:    text,
		opts:    opts,
		colors:  strings.Split(*colors, ","),
		margin:  *margin,
		scale:   *scale,
		fold:    *fold,
		outfile: *out,
	}
	if err := j.run(*backend); err != nil {
		fail(err, 4)
	}
}

// loadSettings reads geometry options from a dotenv file. A missing file
// is fine, as all settings have defaults.
func loadSettings(envfile string) (geometry.Options, error) {
	settings, err := godotenv.Read(envfile)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no settings file %s", envfile)
		return geometry.Options{}, nil
	} else if err != nil {
		return geometry.Options{}, core.WrapError(err, core.EINVALID, "cannot read settings from %s", envfile)
	}
	tracer().Infof("settings read from %s", envfile)
	return geometry.ParseOptions(settings)
}

func fail(err error, code int) {
	tracer().Errorf(err.Error())
	core.UserError(err)
	os.Exit(code)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
