package termframe

import "io"

// runRenderer emits one escape-coded run per changed row: a single cursor
// move to the first differing column, then every cell through the last
// differing column. Unchanged cells inside the span are re-emitted; the
// redundant writes buy fewer cursor-move sequences, which is the better
// trade on high-latency terminals.
type runRenderer struct {
	ansiOut
}

// NewRunRenderer returns the run-based render strategy writing to w
func NewRunRenderer(w io.Writer) Renderer {
	return &runRenderer{ansiOut: newAnsiOut(w)}
}

func (r *runRenderer) RenderRow(row int, cur, back []Slot) {
	first, last := -1, -1
	for i := range cur {
		if cur[i] != back[i] {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return
	}

	writeCursorPos(r.w, first, row)
	for i := first; i <= last; i++ {
		r.writeSlot(cur[i])
		back[i] = cur[i]
	}
}
