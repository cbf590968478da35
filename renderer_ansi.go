package termframe

import (
	"bufio"
	"io"
)

// ansiOut is the output state shared by both ANSI render strategies:
// a buffered writer plus the style last emitted, so runs of equally
// styled cells produce a single SGR sequence.
type ansiOut struct {
	w *bufio.Writer

	lastFg     Foreground
	lastBg     Background
	styleValid bool
}

func newAnsiOut(w io.Writer) ansiOut {
	return ansiOut{w: bufio.NewWriterSize(w, 32768)}
}

// writeSlot emits one cell at the current cursor position, preceded by a
// style sequence when the colors differ from the previous emission.
// Format: ESC[0;<fg>;<bg>m followed by the character.
func (o *ansiOut) writeSlot(s Slot) {
	if !o.styleValid || s.Fg != o.lastFg || s.Bg != o.lastBg {
		o.w.Write(csiStyle0)
		writeInt(o.w, s.Fg.sgr())
		o.w.WriteByte(';')
		writeInt(o.w, s.Bg.sgr())
		o.w.WriteByte('m')
		o.lastFg = s.Fg
		o.lastBg = s.Bg
		o.styleValid = true
	}

	r := s.Char
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		o.w.WriteByte(byte(r))
	} else {
		o.w.WriteRune(r)
	}
}

// Flush resets attributes and drains the buffer to the terminal
func (o *ansiOut) Flush() error {
	if o.styleValid {
		o.w.Write(csiSGR0)
		o.styleValid = false
	}
	return o.w.Flush()
}

// Size implements Renderer via the platform backend
func (o *ansiOut) Size() (int, int, error) {
	return std.size()
}
