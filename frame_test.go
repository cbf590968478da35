package termframe

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// recordedCell is one cell emission captured by recordingRenderer
type recordedCell struct {
	row, col int
	slot     Slot
}

// recordingRenderer is a cell-exact instrumented sink: it emits exactly
// the cells whose slot changed, so tests can count re-emissions precisely.
type recordingRenderer struct {
	cols, rows int
	cells      []recordedCell
	flushes    int
}

func (r *recordingRenderer) Size() (int, int, error) {
	return r.cols, r.rows, nil
}

func (r *recordingRenderer) RenderRow(row int, cur, back []Slot) {
	for i := range cur {
		if cur[i] != back[i] {
			r.cells = append(r.cells, recordedCell{row: row, col: i, slot: cur[i]})
			back[i] = cur[i]
		}
	}
}

func (r *recordingRenderer) Flush() error {
	r.flushes++
	return nil
}

func (r *recordingRenderer) reset() {
	r.cells = nil
}

func newTestFrame(t *testing.T, w, h int) (*Frame, *recordingRenderer) {
	t.Helper()
	rr := &recordingRenderer{cols: 40, rows: 20}
	f := NewWithRenderer(w, h, rr)
	if f == nil {
		t.Fatal("NewWithRenderer returned nil")
	}
	return f, rr
}

// interceptFatal replaces fatalf with a panicking stub for the test
func interceptFatal(t *testing.T) *string {
	t.Helper()
	var msg string
	prev := fatalf
	fatalf = func(format string, args ...any) {
		msg = format
		panic("fatal")
	}
	t.Cleanup(func() { fatalf = prev })
	return &msg
}

// captureWarnings redirects the warning log into a buffer for the test
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWarnOutput(&buf)
	t.Cleanup(func() { SetWarnOutput(os.Stderr) })
	return &buf
}

func TestNewFrameDefaults(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)

	if f.Width() != 10 {
		t.Errorf("Expected width 10, got %d", f.Width())
	}
	if f.Height() != 5 {
		t.Errorf("Expected height 5, got %d", f.Height())
	}

	want := DefaultSlot()
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if got := f.SlotAt(x, y); got != want {
				t.Fatalf("Expected default slot at (%d,%d), got %+v", x, y, got)
			}
		}
	}
}

func TestSentinelSizeAutoDetects(t *testing.T) {
	rr := &recordingRenderer{cols: 40, rows: 20}

	f := NewWithRenderer(0, 0, rr)
	if f.Width() != 40 || f.Height() != 20 {
		t.Errorf("Expected auto-detected 40x20, got %dx%d", f.Width(), f.Height())
	}

	f = NewWithRenderer(10, -1, rr)
	if f.Width() != 10 || f.Height() != 20 {
		t.Errorf("Expected 10x20, got %dx%d", f.Width(), f.Height())
	}
}

func TestOversizeFrameIsFatal(t *testing.T) {
	msg := interceptFatal(t)
	rr := &recordingRenderer{cols: 40, rows: 20}

	defer func() {
		if recover() == nil {
			t.Fatal("Expected fatal for frame larger than terminal")
		}
		if !strings.Contains(*msg, "exceeds") {
			t.Errorf("Expected geometry message, got %q", *msg)
		}
	}()
	NewWithRenderer(41, 20, rr)
}

func TestShrunkTerminalIsFatalOnPrint(t *testing.T) {
	interceptFatal(t)
	f, rr := newTestFrame(t, 40, 20)

	rr.rows = 19 // Terminal shrank after construction

	defer func() {
		if recover() == nil {
			t.Fatal("Expected fatal when terminal shrinks below frame")
		}
	}()
	f.Print()
}

func TestWriteReadBackRoundTrip(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)

	f.Write(3, 2, Fg(ColorRed), Bg(ColorBlue), Text("x"))

	want := Slot{Char: 'x', Fg: Fg(ColorRed), Bg: Bg(ColorBlue)}
	if got := f.SlotAt(3, 2); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestWriteWrapsAtOriginalColumn(t *testing.T) {
	f, _ := newTestFrame(t, 8, 5)

	// Start two columns from the right edge: "ab" fits, then each following
	// pair wraps back to the starting column, not column 0
	f.Write(6, 1, Text("abcdef"))

	expect := map[[2]int]rune{
		{6, 1}: 'a', {7, 1}: 'b',
		{6, 2}: 'c', {7, 2}: 'd',
		{6, 3}: 'e', {7, 3}: 'f',
	}
	for pos, r := range expect {
		if got := f.SlotAt(pos[0], pos[1]); got.Char != r {
			t.Errorf("Expected %q at (%d,%d), got %q", r, pos[0], pos[1], got.Char)
		}
	}
	if got := f.SlotAt(0, 2); got.Char != ' ' {
		t.Errorf("Wrap must return to the original column, found %q at (0,2)", got.Char)
	}
}

func TestNewlineForcesWrap(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)

	f.Write(2, 0, Text("ab\ncd"))

	if got := f.SlotAt(2, 0); got.Char != 'a' {
		t.Errorf("Expected 'a' at (2,0), got %q", got.Char)
	}
	if got := f.SlotAt(3, 0); got.Char != 'b' {
		t.Errorf("Expected 'b' at (3,0), got %q", got.Char)
	}
	if got := f.SlotAt(2, 1); got.Char != 'c' {
		t.Errorf("Expected 'c' at (2,1) after newline, got %q", got.Char)
	}
	if got := f.SlotAt(3, 1); got.Char != 'd' {
		t.Errorf("Expected 'd' at (3,1), got %q", got.Char)
	}
	if got := f.SlotAt(4, 0); got.Char != ' ' {
		t.Errorf("Expected nothing after newline on row 0, got %q", got.Char)
	}
}

func TestWritePastBottomIsDiscarded(t *testing.T) {
	f, _ := newTestFrame(t, 4, 2)

	f.Write(0, 1, Text("abcdefgh")) // Second half falls off the grid

	if got := f.SlotAt(3, 1); got.Char != 'd' {
		t.Errorf("Expected 'd' at (3,1), got %q", got.Char)
	}
	// Row 0 untouched
	for x := 0; x < 4; x++ {
		if got := f.SlotAt(x, 0); got.Char != ' ' {
			t.Errorf("Row 0 must stay blank, found %q at (%d,0)", got.Char, x)
		}
	}
}

func TestOutOfBoundsWriteWarnsAndIgnores(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)
	warnings := captureWarnings(t)

	cases := [][2]int{{10, 0}, {0, 5}, {-1, 0}, {0, -1}}
	for _, c := range cases {
		f.Write(c[0], c[1], Text("x"))
	}

	got := strings.Count(warnings.String(), "ignored")
	if got != len(cases) {
		t.Errorf("Expected %d warnings, got %d: %q", len(cases), got, warnings.String())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if f.SlotAt(x, y) != DefaultSlot() {
				t.Fatalf("Out-of-bounds write mutated cell (%d,%d)", x, y)
			}
		}
	}
}

func TestColorOnlyWriteRestylesSlot(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)

	f.Write(4, 2, Text("z"))
	f.Write(4, 2, Fg(ColorGreen))

	got := f.SlotAt(4, 2)
	if got.Char != 'z' {
		t.Errorf("Restyle must not touch the character, got %q", got.Char)
	}
	if got.Fg != Fg(ColorGreen) {
		t.Errorf("Expected green foreground, got %v", got.Fg)
	}
	if got.Bg != Bg(ColorDefault) {
		t.Errorf("Background must stay default, got %v", got.Bg)
	}

	f.Write(4, 2, Bg(ColorYellow))
	got = f.SlotAt(4, 2)
	if got.Fg != Fg(ColorGreen) || got.Bg != Bg(ColorYellow) {
		t.Errorf("Expected green on yellow, got %v on %v", got.Fg, got.Bg)
	}
}

func TestTrailingColorArgumentWarns(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)
	warnings := captureWarnings(t)

	f.Write(0, 0, Text("a"), Fg(ColorRed))

	if !strings.Contains(warnings.String(), "trailing color") {
		t.Errorf("Expected trailing color warning, got %q", warnings.String())
	}
	// The tag came after the content: the cell keeps default colors
	if got := f.SlotAt(0, 0); got.Fg != Fg(ColorDefault) {
		t.Errorf("Trailing color must not restyle content, got %v", got.Fg)
	}
}

func TestColorOnlyWriteDoesNotWarn(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)
	warnings := captureWarnings(t)

	f.Write(0, 0, Fg(ColorRed), Bg(ColorBlue))

	if warnings.Len() != 0 {
		t.Errorf("Restyle call must not warn, got %q", warnings.String())
	}
}

func TestSlotLiteralPlacement(t *testing.T) {
	f, _ := newTestFrame(t, 10, 5)

	lit := Slot{Char: '#', Fg: Fg(ColorCyan), Bg: Bg(ColorMagenta)}
	f.Write(1, 1, lit, Text("a"))

	if got := f.SlotAt(1, 1); got != lit {
		t.Errorf("Expected literal slot %+v, got %+v", lit, got)
	}
	// Text after the literal continues at the next cell with its own colors
	if got := f.SlotAt(2, 1); got.Char != 'a' || got.Fg != Fg(ColorDefault) {
		t.Errorf("Expected default-styled 'a' at (2,1), got %+v", got)
	}
}

func TestPrintEmitsOnlyChangedCells(t *testing.T) {
	f, rr := newTestFrame(t, 10, 5)

	f.Write(3, 2, Text("hi"))
	f.Print()

	if len(rr.cells) != 2 {
		t.Fatalf("Expected 2 emitted cells, got %d", len(rr.cells))
	}
	if rr.cells[0] != (recordedCell{row: 2, col: 3, slot: Slot{Char: 'h', Fg: Fg(ColorDefault), Bg: Bg(ColorDefault)}}) {
		t.Errorf("Unexpected first cell %+v", rr.cells[0])
	}
	if rr.flushes != 1 {
		t.Errorf("Expected output flushed once, got %d", rr.flushes)
	}

	// Nothing changed: second print emits nothing
	rr.reset()
	f.Print()
	if len(rr.cells) != 0 {
		t.Errorf("Expected no emissions on unchanged print, got %d", len(rr.cells))
	}

	// One changed cell emits exactly one cell
	rr.reset()
	f.Write(3, 2, Fg(ColorRed), Text("h"))
	f.Print()
	if len(rr.cells) != 1 {
		t.Errorf("Expected 1 emitted cell, got %d", len(rr.cells))
	}
}

func TestClearThenPrintRedrawsPreviouslySetCells(t *testing.T) {
	f, rr := newTestFrame(t, 10, 5)

	f.Write(0, 0, Text("ab"))
	f.Write(5, 3, Text("c"))
	f.Print()
	rr.reset()

	f.Clear()
	f.Print()

	if len(rr.cells) != 3 {
		t.Fatalf("Expected exactly the 3 previously set cells, got %d", len(rr.cells))
	}
	for _, c := range rr.cells {
		if c.slot != DefaultSlot() {
			t.Errorf("Clear must redraw blanks, got %+v", c)
		}
	}

	rr.reset()
	f.Print()
	if len(rr.cells) != 0 {
		t.Errorf("Expected nothing after settled clear, got %d", len(rr.cells))
	}
}

func TestFlushThenPrintRedrawsNonDefaultCells(t *testing.T) {
	f, rr := newTestFrame(t, 10, 5)

	f.Write(2, 1, Text("xy"))
	f.Print()
	rr.reset()

	f.Flush()
	f.Print()

	if len(rr.cells) != 2 {
		t.Fatalf("Expected the 2 non-default cells redrawn, got %d", len(rr.cells))
	}
	if rr.cells[0].slot.Char != 'x' || rr.cells[1].slot.Char != 'y' {
		t.Errorf("Expected 'x','y' redrawn, got %+v", rr.cells)
	}
}

func TestWriteMixedColorsAndText(t *testing.T) {
	f, _ := newTestFrame(t, 20, 5)

	f.Write(0, 0,
		Fg(ColorRed), Text("r"),
		Fg(ColorGreen), Bg(ColorBlack), Text("g"),
		Text("g2"))

	if got := f.SlotAt(0, 0); got.Fg != Fg(ColorRed) || got.Bg != Bg(ColorDefault) {
		t.Errorf("Expected red on default, got %+v", got)
	}
	if got := f.SlotAt(1, 0); got.Fg != Fg(ColorGreen) || got.Bg != Bg(ColorBlack) {
		t.Errorf("Expected green on black, got %+v", got)
	}
	// Colors persist across subsequent Text args in the same call
	if got := f.SlotAt(3, 0); got.Char != '2' || got.Fg != Fg(ColorGreen) {
		t.Errorf("Expected green '2', got %+v", got)
	}
}
