package termframe

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"
)

// KeyEvent is one decoded key-down event
type KeyEvent struct {
	Key  Key
	Rune rune // Valid when Key is KeyRune
	Mod  Modifier

	// Count is the key-down repeat count. VT input streams carry no repeat
	// information, so it is always 1 here; it exists so callers need no
	// platform knowledge.
	Count int
}

// escapeTimeoutMs is how long to wait after a lone ESC byte before
// treating it as the Escape key rather than the start of a sequence
const escapeTimeoutMs = 50

// keyboardActive enforces the one-session-per-process rule
var keyboardActive atomic.Bool

// Keyboard is an open raw-mode input session. It holds the terminal
// settings captured at open time; Close restores them exactly. At most one
// session may be open per process.
type Keyboard struct {
	b      backend
	buf    []byte
	closed bool
}

// OpenKeyboard captures the terminal's input settings and switches to raw
// mode. Fails if a session is already open or stdin is not a terminal.
func OpenKeyboard() (*Keyboard, error) {
	if !keyboardActive.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("keyboard: session already open in this process")
	}
	if err := std.rawOpen(); err != nil {
		keyboardActive.Store(false)
		return nil, fmt.Errorf("keyboard: %w", err)
	}
	return &Keyboard{b: std, buf: make([]byte, 0, 256)}, nil
}

// Close restores the settings captured by OpenKeyboard. Closing an already
// closed session is an error, never a silent success.
func (k *Keyboard) Close() error {
	if k.closed {
		return fmt.Errorf("keyboard: session already closed")
	}
	k.closed = true
	err := k.b.rawRestore()
	keyboardActive.Store(false)
	if err != nil {
		return fmt.Errorf("keyboard: restore: %w", err)
	}
	return nil
}

// ReadKey blocks until the next key event is available and returns it.
// There is no timeout or cancellation; the call parks the goroutine until
// input arrives.
func (k *Keyboard) ReadKey() (KeyEvent, error) {
	if k.closed {
		return KeyEvent{}, fmt.Errorf("keyboard: read from closed session")
	}

	for {
		if len(k.buf) > 0 {
			if ev, n, ok := decodeEvent(k.buf); ok {
				k.consume(n)
				return ev, nil
			}
		}

		// A partial sequence is pending: read with a short timeout so a
		// lone ESC can be told apart from a sequence still in flight
		timeout := -1
		if len(k.buf) > 0 {
			timeout = escapeTimeoutMs
		}

		data, err := k.b.read(timeout)
		if err != nil {
			return KeyEvent{}, fmt.Errorf("keyboard: read: %w", err)
		}
		if data == nil {
			// Timeout with the partial still incomplete
			if len(k.buf) == 1 && k.buf[0] == 0x1b {
				k.consume(1)
				return KeyEvent{Key: KeyEscape, Count: 1}, nil
			}
			// Stalled garbage, drop it rather than wedging the stream
			k.buf = k.buf[:0]
			return KeyEvent{Key: KeyUnknown, Count: 1}, nil
		}
		k.buf = append(k.buf, data...)
	}
}

// consume drops n parsed bytes from the front of the assembly buffer
func (k *Keyboard) consume(n int) {
	if n >= len(k.buf) {
		k.buf = k.buf[:0]
		return
	}
	copy(k.buf, k.buf[n:])
	k.buf = k.buf[:len(k.buf)-n]
}

// decodeEvent decodes the first key event in data, returning the event,
// the bytes consumed and whether a complete event was present. Pure
// function so the decode tables are testable without a terminal.
func decodeEvent(data []byte) (KeyEvent, int, bool) {
	if len(data) == 0 {
		return KeyEvent{}, 0, false
	}

	b := data[0]

	// Escape sequence (or lone ESC, resolved by the caller's timeout)
	if b == 0x1b {
		return decodeEscape(data)
	}

	// Fast path: printable ASCII
	if b >= 0x20 && b < 0x7f {
		return printableEvent(rune(b), ModNone), 1, true
	}

	// DEL
	if b == 0x7f {
		return KeyEvent{Key: KeyBackspace, Count: 1}, 1, true
	}

	// Control characters
	if b < 0x20 {
		return controlEvent(b), 1, true
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return KeyEvent{}, 0, false
	}
	r, size := utf8.DecodeRune(data)
	return KeyEvent{Key: KeyRune, Rune: r, Count: 1}, size, true
}

// printableEvent builds a KeyRune event, inferring Shift from case
func printableEvent(r rune, mod Modifier) KeyEvent {
	if r >= 'A' && r <= 'Z' {
		mod |= ModShift
	}
	return KeyEvent{Key: KeyRune, Rune: r, Mod: mod, Count: 1}
}

// decodeEscape decodes an ESC-prefixed chunk
func decodeEscape(data []byte) (KeyEvent, int, bool) {
	// Need at least 2 bytes to determine sequence type
	if len(data) < 2 {
		return KeyEvent{}, 0, false
	}

	switch {
	case data[1] == 0x1b:
		// ESC ESC -> Alt+Escape
		return KeyEvent{Key: KeyEscape, Mod: ModAlt, Count: 1}, 2, true
	case data[1] == '[':
		return decodeCSI(data)
	case data[1] == 'O':
		return decodeSS3(data)
	case data[1] < 0x20:
		// Alt+Control character
		ev := controlEvent(data[1])
		ev.Mod |= ModAlt
		return ev, 2, true
	case data[1] < 0x7f:
		// Alt+printable
		return printableEvent(rune(data[1]), ModAlt), 2, true
	}
	return KeyEvent{Key: KeyUnknown, Count: 1}, 2, true
}

// decodeCSI decodes a CSI sequence without allocation
func decodeCSI(data []byte) (KeyEvent, int, bool) {
	if len(data) < 3 {
		return KeyEvent{}, 0, false
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed sequence, surface as unknown
			return KeyEvent{Key: KeyUnknown, Count: 1}, end + 1, true
		}
		end++
	}

	lastByte := data[end-1]
	if !((lastByte >= 'A' && lastByte <= 'Z') || (lastByte >= 'a' && lastByte <= 'z') || lastByte == '~') {
		if end >= 16 {
			// Unterminated within the scan window, drop as unknown
			return KeyEvent{Key: KeyUnknown, Count: 1}, end, true
		}
		return KeyEvent{}, 0, false // Incomplete, wait for more data
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return KeyEvent{Key: key, Mod: mod, Count: 1}, end, true
	}

	// Valid CSI syntax but unmapped: report the unknown fallback
	return KeyEvent{Key: KeyUnknown, Count: 1}, end, true
}

// decodeSS3 decodes an SS3 sequence (ESC O x)
func decodeSS3(data []byte) (KeyEvent, int, bool) {
	if len(data) < 3 {
		return KeyEvent{}, 0, false
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return KeyEvent{Key: key, Mod: mod, Count: 1}, 3, true
	}
	return KeyEvent{Key: KeyUnknown, Count: 1}, 3, true
}

// controlEvent maps control characters to keys
func controlEvent(b byte) KeyEvent {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyEvent{Key: KeyCtrlSpace, Mod: ModCtrl, Count: 1}
	case 0x08: // Ctrl+H or Backspace
		return KeyEvent{Key: KeyBackspace, Count: 1}
	case 0x09:
		return KeyEvent{Key: KeyTab, Count: 1}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return KeyEvent{Key: KeyEnter, Count: 1}
	case 0x1b: // ESC (shouldn't reach here normally)
		return KeyEvent{Key: KeyEscape, Count: 1}
	case 0x1c:
		return KeyEvent{Key: KeyCtrlBackslash, Mod: ModCtrl, Count: 1}
	case 0x1d:
		return KeyEvent{Key: KeyCtrlBracketRight, Mod: ModCtrl, Count: 1}
	case 0x1e:
		return KeyEvent{Key: KeyCtrlCaret, Mod: ModCtrl, Count: 1}
	case 0x1f:
		return KeyEvent{Key: KeyCtrlUnderscore, Mod: ModCtrl, Count: 1}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyCtrlA + Key(b-0x01), Mod: ModCtrl, Count: 1}
	}
	return KeyEvent{Key: KeyUnknown, Count: 1}
}
