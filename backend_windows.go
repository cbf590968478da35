//go:build windows

package termframe

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// windowsBackend drives the Windows console in VT mode: input and output
// console modes are switched so the same ANSI sequences and escape-coded
// key input work as on unix.
type windowsBackend struct {
	in  *os.File
	out *os.File

	inHandle  windows.Handle
	outHandle windows.Handle

	oldInMode  uint32
	oldOutMode uint32
	captured   bool
}

func newBackend() backend {
	return &windowsBackend{
		in:        os.Stdin,
		out:       os.Stdout,
		inHandle:  windows.Handle(os.Stdin.Fd()),
		outHandle: windows.Handle(os.Stdout.Fd()),
	}
}

func (b *windowsBackend) rawOpen() error {
	var inMode, outMode uint32
	if err := windows.GetConsoleMode(b.inHandle, &inMode); err != nil {
		return fmt.Errorf("stdin is not a console: %w", err)
	}
	if err := windows.GetConsoleMode(b.outHandle, &outMode); err != nil {
		return fmt.Errorf("stdout is not a console: %w", err)
	}
	b.oldInMode = inMode
	b.oldOutMode = outMode
	b.captured = true

	raw := inMode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_MOUSE_INPUT)
	raw |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(b.inHandle, raw); err != nil {
		return err
	}

	vtOut := outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.DISABLE_NEWLINE_AUTO_RETURN
	if err := windows.SetConsoleMode(b.outHandle, vtOut); err != nil {
		// Older consoles reject DISABLE_NEWLINE_AUTO_RETURN; retry without
		vtOut = outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
		if err := windows.SetConsoleMode(b.outHandle, vtOut); err != nil {
			windows.SetConsoleMode(b.inHandle, b.oldInMode)
			return fmt.Errorf("console has no VT support: %w", err)
		}
	}
	return nil
}

func (b *windowsBackend) rawRestore() error {
	if !b.captured {
		return fmt.Errorf("console mode was never captured")
	}
	b.captured = false
	inErr := windows.SetConsoleMode(b.inHandle, b.oldInMode)
	outErr := windows.SetConsoleMode(b.outHandle, b.oldOutMode)
	if inErr != nil {
		return inErr
	}
	return outErr
}

func (b *windowsBackend) size() (int, int, error) {
	return term.GetSize(int(b.out.Fd()))
}

func (b *windowsBackend) read(timeoutMs int) ([]byte, error) {
	wait := uint32(windows.INFINITE)
	if timeoutMs >= 0 {
		wait = uint32(timeoutMs)
	}

	ev, err := windows.WaitForSingleObject(b.inHandle, wait)
	if err != nil {
		return nil, err
	}
	if ev == uint32(windows.WAIT_TIMEOUT) {
		return nil, nil
	}

	buf := make([]byte, 256)
	rn, err := b.in.Read(buf)
	if err != nil {
		return nil, err
	}
	if rn == 0 {
		return nil, io.EOF
	}
	return buf[:rn], nil
}

// resetTerminalMode is a no-op on Windows; rawRestore covers crash paths
// that still hold the captured modes
func resetTerminalMode() {}
