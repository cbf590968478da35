package termframe

import (
	"fmt"
	"io"
	"os"
)

// Console ties the process-wide pieces together: a raw-mode keyboard
// session and one main frame on the alternate screen. Open and Close are
// the only entry points an application needs; everything between is
// Frame.Write/Print and Keyboard.ReadKey.
type Console struct {
	frame *Frame
	kb    *Keyboard
	out   *os.File

	closed bool
}

// Open switches the terminal to raw mode, enters the alternate screen with
// the cursor hidden and auto-wrap off, and builds the main frame.
// Dimensions <= 0 auto-detect from the terminal. An optional renderer
// overrides the default run strategy on stdout.
//
// Callers should pair Open with a deferred Close so the terminal is
// restored on every exit path, and use EmergencyRestore from panic
// handlers that bypass the defer.
func Open(width, height int, renderer ...Renderer) (*Console, error) {
	kb, err := OpenKeyboard()
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	out := os.Stdout
	out.Write(csiAltScreenEnter)
	out.Write(csiCursorHide)
	out.Write(csiAutoWrapOff)
	out.Write(csiClear)

	var r Renderer
	if len(renderer) > 0 {
		r = renderer[0]
	} else {
		r = NewRunRenderer(out)
	}

	// New terminates via fatalf on bad geometry, which restores the
	// terminal first; nothing to unwind here.
	f := NewWithRenderer(width, height, r)

	return &Console{frame: f, kb: kb, out: out}, nil
}

// Frame returns the console's main frame
func (c *Console) Frame() *Frame { return c.frame }

// Keyboard returns the console's input session
func (c *Console) Keyboard() *Keyboard { return c.kb }

// Close leaves the alternate screen and restores the keyboard mode
// captured at Open. Safe to call multiple times.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.out.Write(csiSGR0)
	c.out.Write(csiCursorShow)
	c.out.Write(csiAutoWrapOn)
	c.out.Write(csiAltScreenExit)

	return c.kb.Close()
}

// EmergencyRestore attempts to put the terminal back into a sane state.
// Call from panic recovery when Close cannot run normally.
func EmergencyRestore(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAutoWrapOn)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset of
	// the input mode, errors ignored in crash context
	resetTerminalMode()
}
