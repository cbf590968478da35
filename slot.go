package termframe

// Slot is the full visual state of one terminal cell
type Slot struct {
	Char rune
	Fg   Foreground
	Bg   Background
}

// DefaultSlot returns a blank slot: space with default colors.
// Frames are filled with it at construction and by Clear/Flush.
func DefaultSlot() Slot {
	return Slot{Char: ' ', Fg: Fg(ColorDefault), Bg: Bg(ColorDefault)}
}
