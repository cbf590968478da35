package termframe

import "io"

// cellRenderer addresses each dirty region individually: a cursor move to
// the first cell of every contiguous group of differing cells, then only
// those cells. Unchanged cells are never re-emitted, at the cost of more
// cursor-move sequences than the run strategy.
type cellRenderer struct {
	ansiOut
}

// NewCellRenderer returns the cell-addressed render strategy writing to w
func NewCellRenderer(w io.Writer) Renderer {
	return &cellRenderer{ansiOut: newAnsiOut(w)}
}

func (r *cellRenderer) RenderRow(row int, cur, back []Slot) {
	for i := 0; i < len(cur); {
		if cur[i] == back[i] {
			i++
			continue
		}

		// Position cursor once for this dirty region
		writeCursorPos(r.w, i, row)
		for i < len(cur) && cur[i] != back[i] {
			r.writeSlot(cur[i])
			back[i] = cur[i]
			i++
		}
	}
}
