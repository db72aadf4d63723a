package display

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
	"github.com/npillmayer/sevenseg/engine/geometry"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type DisplayTestEnviron struct {
	suite.Suite
	rec  *gfx.Recorder
	disp *Display
}

// listen for 'go test' command --> run test methods
func TestDisplayFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sevenseg.display")
	defer teardown()
	suite.Run(t, new(DisplayTestEnviron))
}

// run once, before test suite methods
func (env *DisplayTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("sevenseg.glyphs").SetTraceLevel(tracing.LevelError)
}

// run before every test method, providing a fresh display with
// t=2, vL=4, hL=4, spacing=1 and normal weight
func (env *DisplayTestEnviron) SetupTest() {
	env.rec = gfx.NewRecorder(false)
	disp, err := New(env.rec)
	env.Require().NoError(err)
	env.disp = disp
}

func (env *DisplayTestEnviron) fill(x, y, w, h int) gfx.Fill {
	return gfx.Fill{Rect: gfx.Rect{X: x, Y: y, W: w, H: h}, Color: 1}
}

// --- Tests -----------------------------------------------------------------

func (env *DisplayTestEnviron) TestEmptyString() {
	x := env.disp.DisplayString(17, 0, "")
	env.Equal(17, x)
	env.Equal(0, env.rec.Len(), "empty string must not draw")
}

func (env *DisplayTestEnviron) TestEight() {
	x := env.disp.DisplayString(0, 0, "8")
	env.Equal(9, x)
	env.Equal([]gfx.Fill{
		env.fill(2, 0, 4, 2),  // TOP
		env.fill(0, 2, 2, 4),  // UL
		env.fill(6, 2, 2, 4),  // UR
		env.fill(2, 6, 4, 2),  // MID
		env.fill(0, 8, 2, 4),  // LL
		env.fill(6, 8, 2, 4),  // LR
		env.fill(2, 12, 4, 2), // BOT
	}, env.rec.Fills)
}

func (env *DisplayTestEnviron) TestOne() {
	x := env.disp.DisplayString(0, 0, "1")
	env.Equal(env.disp.CharacterWidth(), x, "advance is independent of symbol")
	env.Equal([]gfx.Fill{
		env.fill(6, 2, 2, 4), // UR
		env.fill(6, 8, 2, 4), // LR
	}, env.rec.Fills)
}

func (env *DisplayTestEnviron) TestAdvanceAccumulates() {
	x := env.disp.DisplayString(5, 3, "12")
	env.Equal(5+9+9, x)
	env.Equal(2+5, env.rec.Len())
	// second glyph starts one advance to the right
	env.Equal(env.fill(5+9+2, 3, 4, 2), env.rec.Fills[2])
	//
	env.rec.Reset()
	x = env.disp.DisplayString(x, 3, "3")
	env.Equal(5+3*9, x, "output may be chained")
	env.Equal(5, env.rec.Len())
}

func (env *DisplayTestEnviron) TestCaseInsensitive() {
	env.disp.DisplayString(4, 4, "a")
	lower := append([]gfx.Fill(nil), env.rec.Fills...)
	env.rec.Reset()
	env.disp.DisplayString(4, 4, "A")
	env.Equal(lower, env.rec.Fills)
	env.Len(lower, 6)
}

func (env *DisplayTestEnviron) TestFallback() {
	xq := env.disp.DisplayString(0, 0, "?")
	question := append([]gfx.Fill(nil), env.rec.Fills...)
	for _, s := range []string{"g", "X", "%", "€", "\t"} {
		env.rec.Reset()
		x := env.disp.DisplayString(0, 0, s)
		env.Equal(xq, x, "symbol %q", s)
		env.Equal(question, env.rec.Fills, "symbol %q must render like '?'", s)
	}
}

func (env *DisplayTestEnviron) TestMarks() {
	// t=2, vL=4, spacing=1, sign=4
	x := env.disp.DisplayString(0, 0, ".")
	env.Equal(3, x)
	env.Equal([]gfx.Fill{env.fill(0, 12, 2, 2)}, env.rec.Fills)
	//
	env.rec.Reset()
	x = env.disp.DisplayString(0, 0, ":")
	env.Equal(3, x)
	env.Equal([]gfx.Fill{env.fill(0, 12, 2, 2), env.fill(0, 6, 2, 2)}, env.rec.Fills)
	//
	env.rec.Reset()
	x = env.disp.DisplayString(0, 0, "-")
	env.Equal(5, x)
	env.Equal([]gfx.Fill{env.fill(0, 6, 4, 2)}, env.rec.Fills)
	//
	env.rec.Reset()
	x = env.disp.DisplayString(0, 0, "+")
	env.Equal(5, x)
	env.Equal([]gfx.Fill{env.fill(0, 6, 4, 2), env.fill(1, 5, 2, 4)}, env.rec.Fills)
	//
	env.rec.Reset()
	x = env.disp.DisplayString(0, 0, " ")
	env.Equal(9, x)
	env.Equal(0, env.rec.Len())
}

func (env *DisplayTestEnviron) TestClockString() {
	s := "-12:34.5"
	x := env.disp.DisplayString(0, 0, s)
	env.Equal(5+9+9+3+9+9+3+9, x)
	env.Equal(x, env.disp.Measure(s), "measuring must agree with drawing")
	env.Equal(1+2+5+2+5+4+1+5, env.rec.Len())
}

func (env *DisplayTestEnviron) TestBoldKeepsAdvance() {
	normal := env.disp.DisplayString(0, 0, "8")
	normalFills := append([]gfx.Fill(nil), env.rec.Fills...)
	env.rec.Reset()
	env.Require().NoError(env.disp.Configure(geometry.Options{Bold: geometry.Flag(true)}))
	bold := env.disp.DisplayString(0, 0, "8")
	env.Equal(normal, bold, "bold must not change the advance")
	env.Require().Len(env.rec.Fills, len(normalFills))
	env.Equal(env.fill(0, 0, 8, 2), env.rec.Fills[0]) // TOP spans corner to corner
	env.Equal(env.fill(0, 0, 2, 8), env.rec.Fills[1]) // UL spans corner to corner
	for i, f := range env.rec.Fills {
		env.Greater(f.W*f.H, normalFills[i].W*normalFills[i].H)
	}
}

func (env *DisplayTestEnviron) TestColors() {
	env.Require().NoError(env.disp.Configure(geometry.Options{Color: geometry.Ink(5)}))
	env.disp.DisplayString(0, 0, "7:")
	for _, f := range env.rec.Fills {
		env.Equal(gfx.Color(5), f.Color)
	}
	env.rec.Reset()
	env.disp.DrawSegmentColored(geometry.Middle, 0, 0, 0)
	env.Equal(gfx.Fill{Rect: gfx.Rect{X: 2, Y: 6, W: 4, H: 2}, Color: 0}, env.rec.Fills[0])
	env.rec.Reset()
	env.disp.DrawSegment(geometry.Middle, 0, 0)
	env.Equal(gfx.Color(5), env.rec.Fills[0].Color, "override is for a single call only")
}

func (env *DisplayTestEnviron) TestReconfigure() {
	env.Require().NoError(env.disp.Configure(geometry.Options{Preset: "L"}))
	env.Equal(6+22+6+2, env.disp.CharacterWidth())
	env.Equal(3*6+2*22+2, env.disp.CharacterHeight())
	x := env.disp.DisplayString(0, 0, "0")
	env.Equal(env.disp.CharacterWidth(), x)
	env.Equal(env.fill(6, 0, 22, 6), env.rec.Fills[0])
	//
	err := env.disp.Configure(geometry.Options{Preset: "XXL"})
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
	env.Equal(36, env.disp.CharacterWidth(), "rejected options leave geometry unchanged")
}

func (env *DisplayTestEnviron) TestWidthFolding() {
	x := env.disp.DisplayString(0, 0, "１")
	question := append([]gfx.Fill(nil), env.rec.Fills...)
	env.Equal(9, x)
	env.Len(question, 4, "full-width digit is unsupported without folding")
	//
	env.disp.SetWidthFolding(true)
	env.rec.Reset()
	x = env.disp.DisplayString(0, 0, "１：")
	env.Equal(9+3, x)
	env.Len(env.rec.Fills, 2+2)
}

func (env *DisplayTestEnviron) TestSurfaceHandling() {
	_, err := New(nil)
	env.Equal(core.EMISSING, core.Code(err))
	env.Equal(core.EMISSING, core.Code(env.disp.SetSurface(nil)))
	//
	other := gfx.NewRecorder(false)
	env.Require().NoError(env.disp.SetSurface(other))
	env.disp.DisplayString(0, 0, "4")
	env.Equal(0, env.rec.Len())
	env.Equal(4, other.Len())
	env.Equal(other, env.disp.Surface())
	env.NoError(env.disp.Flush())
}

func (env *DisplayTestEnviron) TestNewWithOptions() {
	disp, err := New(env.rec, geometry.Options{Preset: "M"}, geometry.Options{Spacing: geometry.Int(4)})
	env.Require().NoError(err)
	env.Equal(3+11+3+4, disp.CharacterWidth())
	_, err = New(env.rec, geometry.Options{Thickness: geometry.Int(0)})
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *DisplayTestEnviron) TestGroups() {
	env.disp.Begingroup()
	env.Require().NoError(env.disp.Configure(geometry.Options{Preset: "M"}))
	env.disp.Begingroup()
	env.Require().NoError(env.disp.Configure(geometry.Options{Bold: geometry.Flag(true)}))
	env.True(env.disp.Config().Bold())
	env.disp.Endgroup()
	env.False(env.disp.Config().Bold())
	env.Equal(3, env.disp.Config().Thickness())
	env.disp.Endgroup()
	env.Equal(9, env.disp.CharacterWidth(), "outermost group restores the defaults")
	env.disp.Endgroup() // unbalanced, ignored
	env.Equal(9, env.disp.CharacterWidth())
}
