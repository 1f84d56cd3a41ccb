package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/katalvlaran/sortviz/sorting"
)

const (
	// DefaultWidth is the widest bar, in cells, when no width is configured
	// and none can be detected.
	DefaultWidth = 60

	barGlyph  = "█"
	clearSeq  = "\033[H\033[2J"
	markGlyph = " ◀"
)

// Option configures a Terminal.
type Option func(*Terminal)

// WithWidth caps the widest bar at w cells. w <= 0 keeps DefaultWidth.
func WithWidth(w int) Option {
	return func(t *Terminal) {
		if w > 0 {
			t.width = w
		}
	}
}

// WithDelay pauses d after every frame.
func WithDelay(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.delay = d
		}
	}
}

// WithColor enables or disables ANSI colors for highlighted bars.
func WithColor(on bool) Option {
	return func(t *Terminal) {
		t.color = on
	}
}

// WithClear clears the screen before every frame instead of appending.
func WithClear(on bool) Option {
	return func(t *Terminal) {
		t.clear = on
	}
}

// WithSleep replaces time.Sleep, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(t *Terminal) {
		if fn != nil {
			t.sleep = fn
		}
	}
}

// Terminal draws Bars as horizontal rows, one frame per operation, and
// marks the two rows the operation touched.
type Terminal struct {
	w      io.Writer
	bars   *Bars
	width  int
	delay  time.Duration
	color  bool
	clear  bool
	sleep  func(time.Duration)
	hot    *color.Color
	frames int
	err    error
}

// NewTerminal returns a renderer for values writing to w.
func NewTerminal(w io.Writer, values []int, opts ...Option) *Terminal {
	t := &Terminal{
		w:     w,
		bars:  NewBars(values),
		width: DefaultWidth,
		sleep: time.Sleep,
		hot:   color.New(color.FgRed, color.Bold),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.color {
		t.hot.EnableColor()
	} else {
		t.hot.DisableColor()
	}
	return t
}

// Bars exposes the renderer's current state.
func (t *Terminal) Bars() *Bars { return t.bars }

// Frames returns the number of frames drawn so far.
func (t *Terminal) Frames() int { return t.frames }

// Err returns the first apply or write error. Once set, later operations
// are ignored.
func (t *Terminal) Err() error { return t.err }

// Draw writes the current state with a title line; rows in hot are marked.
func (t *Terminal) Draw(title string, hot ...int) error {
	if t.err != nil {
		return t.err
	}
	var sb strings.Builder
	if t.clear {
		sb.WriteString(clearSeq)
	}
	sb.WriteString(title)
	sb.WriteByte('\n')

	marked := make(map[int]bool, len(hot))
	for _, i := range hot {
		marked[i] = true
	}
	peak := t.bars.peak()
	for i, h := range t.bars.heights {
		bar := strings.Repeat(barGlyph, cells(h, peak, t.width))
		if marked[i] {
			fmt.Fprintf(&sb, "%3d │%s %d%s\n", i, t.hot.Sprint(bar), h, markGlyph)
		} else {
			fmt.Fprintf(&sb, "%3d │%s %d\n", i, bar, h)
		}
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		t.err = err
		return err
	}
	t.frames++
	if t.delay > 0 {
		t.sleep(t.delay)
	}
	return nil
}

// Emitter returns a sorting.Emitter that applies each operation and draws
// a frame highlighting its two positions.
func (t *Terminal) Emitter() sorting.Emitter {
	step := 0
	return func(op sorting.Operation) {
		if t.err != nil {
			return
		}
		if err := t.bars.Apply(op); err != nil {
			t.err = err
			return
		}
		step++
		_ = t.Draw(fmt.Sprintf("step %d: %v", step, op), op.A, op.B)
	}
}

// cells scales magnitude h to at most width cells relative to the largest
// magnitude peak. Non-positive magnitudes get no cells; positive ones get
// between one and width cells. Scaling is done in float64 so that
// magnitudes near math.MaxInt cannot overflow.
func cells(h, peak, width int) int {
	if h <= 0 || peak <= 0 {
		return 0
	}
	if peak <= width {
		return h
	}
	c := int(float64(h) / float64(peak) * float64(width))
	switch {
	case c < 1:
		return 1
	case c > width:
		return width
	}
	return c
}

// Width returns the column count of f when it is a terminal, minus room for
// the index and value columns, or fallback otherwise.
func Width(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 16 {
		return fallback
	}
	return cols - 16
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
