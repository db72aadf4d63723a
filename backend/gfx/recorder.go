package gfx

// Fill is a single fill operation as seen by a Recorder.
type Fill struct {
	Rect
	Color Color
}

// Recorder is a debugging surface. It does not draw anything, but remembers
// every fill operation in call order.
type Recorder struct {
	Fills []Fill
	trace bool
}

var _ Surface = &Recorder{}

// NewRecorder creates an empty recording surface. If trace is true, every
// fill will be traced at debug level.
func NewRecorder(trace bool) *Recorder {
	return &Recorder{
		Fills: make([]Fill, 0, 16),
		trace: trace,
	}
}

// FillRect records a fill operation.
func (rec *Recorder) FillRect(x, y, w, h int, c Color) {
	f := Fill{Rect: Rect{X: x, Y: y, W: w, H: h}, Color: c}
	if rec.trace {
		tracer().Debugf("fill %v with color %d", f.Rect, c)
	}
	rec.Fills = append(rec.Fills, f)
}

// Len returns the number of recorded fills.
func (rec *Recorder) Len() int {
	return len(rec.Fills)
}

// Reset forgets all recorded fills.
func (rec *Recorder) Reset() {
	rec.Fills = rec.Fills[:0]
}

// Covers is true if any recorded fill covers pixel (x, y).
func (rec *Recorder) Covers(x, y int) bool {
	for _, f := range rec.Fills {
		if x >= f.X && x < f.X+f.W && y >= f.Y && y < f.Y+f.H {
			return true
		}
	}
	return false
}
