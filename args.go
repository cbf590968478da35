package termframe

// WriteArg is one element of a Frame.Write argument sequence. The sequence
// is folded left to right: Foreground/Background set the colors used for
// subsequent Text content, Slot places a pre-styled cell, Text expands
// character by character with the current colors.
//
// The interface is sealed; the only implementations are Foreground,
// Background, Slot and Text.
type WriteArg interface {
	writeArg()
}

// Text is plain character content for Frame.Write
type Text string

func (Foreground) writeArg() {}
func (Background) writeArg() {}
func (Slot) writeArg()       {}
func (Text) writeArg()       {}
