package termframe

// backend abstracts the platform-specific terminal plumbing: raw-mode
// switching, window-size queries and raw input reads. One implementation
// per platform, selected at build time.
type backend interface {
	// rawOpen captures the terminal's current input settings and switches
	// to raw (unbuffered, no-echo) mode
	rawOpen() error

	// rawRestore puts back exactly the settings captured by rawOpen
	rawRestore() error

	// size returns the terminal dimensions in cells
	size() (cols, rows int, err error)

	// read blocks until input bytes are available or timeoutMs elapses.
	// timeoutMs < 0 blocks indefinitely. A nil slice with nil error means
	// the timeout expired.
	read(timeoutMs int) ([]byte, error)
}

// std is the process-wide backend for the controlling terminal, shared by
// frame size checks and the keyboard session
var std backend = newBackend()
