package termframe

import "os"

// Frame is a fixed-size grid of slots with change-tracked rendering.
// current holds what the caller has written, back what was last actually
// rendered; Print emits only the difference. Both grids are flat row-major
// slices of identical size for the frame's whole lifetime.
//
// A Frame performs no locking: writes and prints belong on one goroutine,
// callers wanting concurrent producers must serialize access themselves.
type Frame struct {
	width   int
	height  int
	current []Slot
	back    []Slot
	r       Renderer
}

// New creates a frame rendering to stdout with the run strategy.
// A dimension <= 0 means "use the current terminal size" for that axis.
// Resolved dimensions exceeding the terminal are a fatal configuration
// error: the process terminates after restoring the terminal.
func New(width, height int) *Frame {
	return NewWithRenderer(width, height, NewRunRenderer(os.Stdout))
}

// NewWithRenderer creates a frame drawing on an explicit renderer
func NewWithRenderer(width, height int, r Renderer) *Frame {
	cols, rows, err := r.Size()
	if err != nil {
		fatalf("frame: cannot determine terminal size: %v", err)
		return nil
	}
	if width <= 0 {
		width = cols
	}
	if height <= 0 {
		height = rows
	}
	if width > cols || height > rows {
		fatalf("frame: requested %dx%d exceeds terminal %dx%d", width, height, cols, rows)
		return nil
	}

	f := &Frame{
		width:   width,
		height:  height,
		current: make([]Slot, width*height),
		back:    make([]Slot, width*height),
		r:       r,
	}
	fillDefault(f.current)
	fillDefault(f.back)
	return f
}

// Width returns the frame width in columns, fixed at construction
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in rows, fixed at construction
func (f *Frame) Height() int { return f.height }

// SlotAt returns the current (unrendered) slot at the given cell.
// Bounds are not checked; out-of-range coordinates are the caller's bug.
func (f *Frame) SlotAt(col, row int) Slot {
	return f.current[row*f.width+col]
}

// Write folds the argument sequence into the current grid starting at
// (col, row). Color tags set the colors for subsequent Text content, Slot
// values are placed as-is, Text expands rune by rune. Reaching the right
// edge or a '\n' wraps to the call's original column on the next row;
// content past the bottom row is discarded. An out-of-bounds start is a
// warned no-op. A call with only color tags restyles the single slot at
// (col, row) without touching its character.
func (f *Frame) Write(col, row int, args ...WriteArg) {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		warnf("write at (%d,%d) outside %dx%d frame ignored", col, row, f.width, f.height)
		return
	}

	fg := Fg(ColorDefault)
	bg := Bg(ColorDefault)
	fgSet, bgSet := false, false
	x, y := col, row
	content := false

	place := func(s Slot) {
		if y < f.height {
			f.current[y*f.width+x] = s
		}
		x++
		if x >= f.width {
			x = col
			y++
		}
	}

	for _, arg := range args {
		switch a := arg.(type) {
		case Foreground:
			fg, fgSet = a, true
		case Background:
			bg, bgSet = a, true
		case Slot:
			place(a)
			content = true
		case Text:
			for _, r := range string(a) {
				if r == '\n' {
					x = col
					y++
					continue
				}
				place(Slot{Char: r, Fg: fg, Bg: bg})
			}
			content = true
		}
	}

	if !content {
		// Color-only call: restyle the target slot in place
		idx := row*f.width + col
		if fgSet {
			f.current[idx].Fg = fg
		}
		if bgSet {
			f.current[idx].Bg = bg
		}
		return
	}

	if len(args) > 0 {
		switch args[len(args)-1].(type) {
		case Foreground, Background:
			warnf("write at (%d,%d): trailing color argument has no effect", col, row)
		}
	}
}

// Print renders every cell of current that differs from back, then brings
// back up to date. Output is flushed before returning. A terminal that has
// shrunk below the frame's dimensions is fatal: the geometry being drawn
// to no longer exists.
func (f *Frame) Print() {
	cols, rows, err := f.r.Size()
	if err != nil {
		fatalf("print: cannot determine terminal size: %v", err)
		return
	}
	if cols < f.width || rows < f.height {
		fatalf("print: terminal shrunk to %dx%d below frame %dx%d", cols, rows, f.width, f.height)
		return
	}

	for y := 0; y < f.height; y++ {
		start := y * f.width
		f.r.RenderRow(y, f.current[start:start+f.width], f.back[start:start+f.width])
	}
	if err := f.r.Flush(); err != nil {
		warnf("print: flush: %v", err)
	}
}

// Clear resets every cell of current to the default slot. The back buffer
// is untouched, so the next Print redraws exactly the cells that were
// non-blank before the clear.
func (f *Frame) Clear() {
	fillDefault(f.current)
}

// Flush resets the back buffer to the default slot, forcing the next Print
// to redraw every non-default cell of current. Use after something outside
// the frame repainted the terminal.
func (f *Frame) Flush() {
	fillDefault(f.back)
}

func fillDefault(slots []Slot) {
	d := DefaultSlot()
	for i := range slots {
		slots[i] = d
	}
}
