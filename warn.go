package termframe

import (
	"io"
	"log"
	"os"
)

// warnLog receives non-fatal usage warnings (out-of-bounds writes, trailing
// color arguments). Defaults to stderr; raw-mode applications should aim it
// at a file via SetWarnOutput, since stderr shares the screen.
var warnLog = log.New(os.Stderr, "termframe: ", log.LstdFlags)

// SetWarnOutput redirects usage warnings to w
func SetWarnOutput(w io.Writer) {
	warnLog.SetOutput(w)
}

func warnf(format string, args ...any) {
	warnLog.Printf(format, args...)
}

// fatalf handles the unrecoverable class of errors: geometry that no longer
// exists (frame larger than terminal, terminal shrunk below frame). The
// terminal is restored before the process terminates. Package variable so
// tests can intercept.
var fatalf = func(format string, args ...any) {
	EmergencyRestore(os.Stdout)
	log.Fatalf("termframe: "+format, args...)
}
