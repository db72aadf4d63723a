package glyphs

import (
	"slices"
	"strings"
	"unicode"

	"github.com/npillmayer/sevenseg/engine/geometry"
)

// Segments is a set of directional segments.
type Segments uint8

// Bits for the seven segments.
const (
	TOP Segments = 1 << geometry.Top
	UL  Segments = 1 << geometry.UpperLeft
	UR  Segments = 1 << geometry.UpperRight
	MID Segments = 1 << geometry.Middle
	LL  Segments = 1 << geometry.LowerLeft
	LR  Segments = 1 << geometry.LowerRight
	BOT Segments = 1 << geometry.Bottom
)

// Has is true if seg is contained in s.
func (s Segments) Has(seg geometry.Segment) bool {
	return s&(1<<seg) != 0
}

// Count returns the number of segments in s.
func (s Segments) Count() int {
	n := 0
	for seg := geometry.Top; int(seg) < geometry.SegmentCount; seg++ {
		if s.Has(seg) {
			n++
		}
	}
	return n
}

// Each calls f for every segment in s, in drawing order.
func (s Segments) Each(f func(geometry.Segment)) {
	for seg := geometry.Top; int(seg) < geometry.SegmentCount; seg++ {
		if s.Has(seg) {
			f(seg)
		}
	}
}

func (s Segments) String() string {
	if s == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	s.Each(func(seg geometry.Segment) {
		if b.Len() > 1 {
			b.WriteByte('|')
		}
		b.WriteString(seg.String())
	})
	b.WriteByte('}')
	return b.String()
}

// Mark is a symbol which is not composed of directional segments.
type Mark uint8

// Marks with dedicated drawing code.
const (
	NoMark Mark = iota
	DecimalPoint
	Colon
	Plus
	Minus
	Space
)

func (m Mark) String() string {
	switch m {
	case DecimalPoint:
		return "decimal-point"
	case Colon:
		return "colon"
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Space:
		return "space"
	}
	return "none"
}

// Composition tells how to draw a symbol: either as a set of segments or as
// a mark. If Mark is NoMark, Segments are drawn.
type Composition struct {
	Segments Segments
	Mark     Mark
}

// IsMark is true if the composition is drawn by a dedicated mark.
func (c Composition) IsMark() bool {
	return c.Mark != NoMark
}

func (c Composition) String() string {
	if c.IsMark() {
		return c.Mark.String()
	}
	return c.Segments.String()
}

// Fallback is the symbol used for anything without a composition.
const Fallback = '?'

var table = buildTable()

func buildTable() map[rune]Composition {
	segs := map[rune]Segments{
		'0': TOP | UL | UR | LL | LR | BOT,
		'1': UR | LR,
		'2': TOP | UR | MID | LL | BOT,
		'3': TOP | UR | MID | LR | BOT,
		'4': UL | UR | MID | LR,
		'5': TOP | UL | MID | LR | BOT,
		'6': TOP | UL | MID | LL | LR | BOT,
		'7': TOP | UR | LR,
		'8': TOP | UL | UR | MID | LL | LR | BOT,
		'9': TOP | UL | UR | MID | LR | BOT,
		'A': TOP | UL | UR | MID | LL | LR,
		'B': UL | MID | LL | LR | BOT,
		'C': TOP | UL | LL | BOT,
		'D': UR | MID | LL | LR | BOT,
		'E': TOP | UL | MID | LL | BOT,
		'F': TOP | UL | MID,
		'?': TOP | UR | MID | LL,
	}
	t := make(map[rune]Composition, 2*len(segs)+5)
	for r, s := range segs {
		t[r] = Composition{Segments: s}
		if unicode.IsUpper(r) {
			t[unicode.ToLower(r)] = Composition{Segments: s}
		}
	}
	t['.'] = Composition{Mark: DecimalPoint}
	t[':'] = Composition{Mark: Colon}
	t['+'] = Composition{Mark: Plus}
	t['-'] = Composition{Mark: Minus}
	t[' '] = Composition{Mark: Space}
	return t
}

// Lookup returns the composition for r. If r has none, ok is false.
func Lookup(r rune) (c Composition, ok bool) {
	c, ok = table[r]
	return
}

// Resolve returns the composition for r, substituting the composition of
// Fallback for unsupported symbols.
func Resolve(r rune) Composition {
	if c, ok := table[r]; ok {
		return c
	}
	tracer().Debugf("no composition for %q, using %q", r, Fallback)
	return table[Fallback]
}

// Supported returns all symbols with a composition of their own, sorted.
func Supported() []rune {
	rs := make([]rune, 0, len(table))
	for r := range table {
		rs = append(rs, r)
	}
	slices.Sort(rs)
	return rs
}
