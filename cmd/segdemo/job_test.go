package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sevenseg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.cli")
	defer teardown()
	//
	dir := t.TempDir()
	envfile := filepath.Join(dir, "panel.env")
	content := "# OLED 128x64\nSEGMENT_PRESET=M\nSEGMENT_BOLD=true\nSEGMENT_SPACING=2\n"
	require.NoError(t, os.WriteFile(envfile, []byte(content), 0o644))
	opts, err := loadSettings(envfile)
	require.NoError(t, err)
	assert.Equal(t, "M", opts.Preset)
	require.NotNil(t, opts.Bold)
	assert.True(t, *opts.Bold)
	require.NotNil(t, opts.Spacing)
	assert.Equal(t, 2, *opts.Spacing)
	//
	opts, err = loadSettings(filepath.Join(dir, "missing.env"))
	require.NoError(t, err, "a missing settings file is not an error")
	assert.True(t, opts.IsEmpty())
	//
	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("SEGMENT_VLEN=long\n"), 0o644))
	_, err = loadSettings(bad)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestImageJob(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.cli")
	defer teardown()
	//
	out := filepath.Join(t.TempDir(), "clock.png")
	j := &job{
		text:    "12:34",
		colors:  []string{"black", "white"},
		margin:  2,
		outfile: out,
	}
	require.NoError(t, j.run("png"))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// 4 glyphs of 9 px, a colon of 3 px, a margin of 2 px on each side
	assert.Equal(t, 4*9+3+4, img.Bounds().Dx())
	assert.Equal(t, 15+4, img.Bounds().Dy())
}

func TestJobErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.cli")
	defer teardown()
	//
	j := &job{text: "0", colors: []string{"black", "white"}}
	assert.Equal(t, core.EINVALID, core.Code(j.run("svg")))
	j.colors = []string{"black", "ultraviolet"}
	assert.Equal(t, core.EINVALID, core.Code(j.run("png")))
}

func TestTraceConf(t *testing.T) {
	conf := traceConf("Debug")
	assert.Equal(t, "go", conf["tracing.adapter"])
	for _, key := range []string{"cli", "display", "geometry", "glyphs", "gfx"} {
		assert.Equal(t, "Debug", conf["trace.sevenseg."+key], "tracer %s", key)
	}
}
