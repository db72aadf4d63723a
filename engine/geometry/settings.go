package geometry

import (
	"strconv"
	"strings"

	"github.com/npillmayer/sevenseg/backend/gfx"
	"github.com/npillmayer/sevenseg/core"
)

// Setting keys understood by ParseOptions.
const (
	KeyPreset    = "SEGMENT_PRESET"
	KeyVLen      = "SEGMENT_VLEN"
	KeyHLen      = "SEGMENT_HLEN"
	KeyThickness = "SEGMENT_THICKNESS"
	KeySpacing   = "SEGMENT_SPACING"
	KeyBold      = "SEGMENT_BOLD"
	KeyColor     = "SEGMENT_COLOR"
)

// ParseOptions creates Options from key/value settings, as read from an
// environment or a dotenv file. Unknown keys are ignored. Colors may be
// given in decimal or, prefixed by "0x" or "#", in hex.
func ParseOptions(settings map[string]string) (Options, error) {
	opts := Options{}
	if p, ok := settings[KeyPreset]; ok {
		opts.Preset = strings.ToUpper(strings.TrimSpace(p))
	}
	ints := []struct {
		key string
		dst **int
	}{
		{KeyVLen, &opts.VLen},
		{KeyHLen, &opts.HLen},
		{KeyThickness, &opts.Thickness},
		{KeySpacing, &opts.Spacing},
	}
	for _, i := range ints {
		v, ok := settings[i.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Options{}, core.WrapError(err, core.EINVALID, "setting %s is not a number: %q", i.key, v)
		}
		*i.dst = Int(n)
	}
	if v, ok := settings[KeyBold]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Options{}, core.WrapError(err, core.EINVALID, "setting %s is not a boolean: %q", KeyBold, v)
		}
		opts.Bold = Flag(b)
	}
	if v, ok := settings[KeyColor]; ok {
		c, err := ParseColor(v)
		if err != nil {
			return Options{}, err
		}
		opts.Color = Ink(c)
	}
	tracer().Debugf("parsed %d settings", len(settings))
	return opts, nil
}

// ParseColor parses a pixel value, either decimal ("1") or hex ("0xff8800",
// "#ff8800").
func ParseColor(s string) (gfx.Color, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "#") {
		s, base = s[1:], 16
	} else if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a color value: %q", s)
	}
	return gfx.Color(n), nil
}
