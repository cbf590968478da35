// @focus: #sys { term }
// Package termframe provides a double-buffered character frame for
// xterm-compatible terminals.
//
// Features:
//   - Fixed-size grid of styled slots (rune + foreground + background)
//   - Change-tracked rendering: only cells that differ from the last
//     print are re-emitted
//   - Two render strategies: per-row escape-coded runs and cell-addressed
//     writes, behind a single Renderer interface
//   - Raw-mode keyboard session with escape-sequence key decoding
//   - Clean terminal restoration on close and crash paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs, and Windows consoles
// with VT processing enabled.
package termframe
