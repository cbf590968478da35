package termframe

// Renderer is the terminal surface a Frame draws on. A Frame depends only
// on this interface; the concrete strategy (escape-coded runs or
// cell-addressed writes) is the renderer's choice, as long as cells whose
// slot did not change since the last render are left alone.
type Renderer interface {
	// Size returns the current terminal dimensions in cells
	Size() (cols, rows int, err error)

	// RenderRow emits the changed portion of one row. cur and back are the
	// row's current and last-rendered slots; the renderer must copy every
	// cell it emits into back as it goes, so the diff stays correct even if
	// rendering is interrupted.
	RenderRow(row int, cur, back []Slot)

	// Flush forces all pending output to the terminal device
	Flush() error
}
