// Package vt100 implements the VT100/ANSI terminal emulator core: an
// escape-sequence parser coupled with a character-cell screen model. It
// consumes a byte stream from a host program and drives an abstract
// Display back-end, emitting short response strings back to the host for
// device-query sequences.
//
// The core is strictly single-threaded and synchronous: a call to Put,
// PutString, PutBuffer or Printf completes every consequent draw call and
// response emission before it returns. Callers sharing a *Terminal across
// goroutines must serialize access themselves.
package vt100

import "fmt"

// DefaultScrollback intentionally does not exist: this core keeps no
// scrollback history, matching the teacher's HistoryScreen being out of
// scope (see DESIGN.md).

// Terminal is the VT100 core: parser state, screen model (cursor, saved
// cursor, scroll region, colors, mode flags, screen metrics) and the
// command-executor actions that mutate it, all in one cooperating unit
// (spec.md §2). One instance lives for the terminal's whole lifetime.
type Terminal struct {
	display   Display
	responses ResponseSink

	cursor      position
	savedCursor position

	scrollStartRow int
	scrollEndRow   int

	frontColor RGB565
	backColor  RGB565

	modes modeFlags

	charWidth    int
	charHeight   int
	screenWidth  int
	screenHeight int
	colCount     int
	rowCount     int

	state       parserState
	returnState parserState
	args        argAccumulator
}

// NewTerminal constructs a Terminal bound to display and responses for its
// whole lifetime, and runs an initial Reset (spec.md §3 "Lifecycle").
// Either argument may be nil; with a nil display Reset has no metrics to
// read and falls back to a 1x1-pixel glyph on a 1-column, 1-row screen, and
// a nil responses sink silently drops device-query replies.
func NewTerminal(display Display, responses ResponseSink) *Terminal {
	t := &Terminal{
		display:   display,
		responses: responses,
	}
	t.Reset()
	return t
}

// Reset reinitializes the Terminal to its construction-time state. It is
// invoked by NewTerminal and by the "ESC c" command (spec.md §4.1).
func (t *Terminal) Reset() {
	if t.display != nil {
		t.charWidth, t.charHeight, t.screenWidth, t.screenHeight = t.display.Metrics()
	}
	if t.charWidth <= 0 {
		t.charWidth = 1
	}
	if t.charHeight <= 0 {
		t.charHeight = 1
	}
	t.colCount = t.screenWidth / t.charWidth
	t.rowCount = t.screenHeight / t.charHeight
	if t.colCount <= 0 {
		t.colCount = 1
	}
	if t.rowCount <= 0 {
		t.rowCount = 1
	}

	t.frontColor = ColorWhite
	t.backColor = ColorBlack

	t.cursor = position{}
	t.savedCursor = position{}

	t.args.reset()

	t.state = stateIdle
	t.returnState = stateIdle

	t.resetScroll()

	t.modes = modeFlags{}

	if t.display != nil {
		t.display.SetColors(t.frontColor, t.backColor)
	}
}

func (t *Terminal) resetScroll() {
	t.scrollStartRow = 0
	t.scrollEndRow = t.rowCount - 1
}

// Width reports the terminal's column count.
func (t *Terminal) Width() int { return t.colCount }

// Height reports the terminal's row count.
func (t *Terminal) Height() int { return t.rowCount }

// Put injects the byte c into the parser count times (spec.md §4.6).
func (t *Terminal) Put(c byte, count int) {
	for ; count > 0; count-- {
		t.feed(c)
	}
}

// PutString injects each byte of s in order (spec.md §4.6).
func (t *Terminal) PutString(s string) {
	for i := 0; i < len(s); i++ {
		t.feed(s[i])
	}
}

// PutBuffer injects the first n bytes of s in order and returns n
// (spec.md §4.6).
func (t *Terminal) PutBuffer(s []byte, n int) int {
	if n > len(s) {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		t.feed(s[i])
	}
	return n
}

// printfBufferSize matches the original implementation's 256-byte staging
// buffer; formatted output beyond this is truncated (spec.md §4.6).
const printfBufferSize = 256

// Printf formats into a fixed-size staging buffer and feeds the result via
// PutBuffer. Truncation at printfBufferSize-1 bytes is acceptable, matching
// the original's "truncation at 255 + NUL" contract.
func (t *Terminal) Printf(format string, args ...interface{}) int {
	s := fmt.Sprintf(format, args...)
	if len(s) > printfBufferSize-1 {
		s = s[:printfBufferSize-1]
	}
	return t.PutBuffer([]byte(s), len(s))
}
