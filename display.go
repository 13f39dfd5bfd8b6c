package vt100

// Display is the drawing capability the embedder must provide (spec.md §6).
// The core calls these synchronously and in the exact order bytes are
// consumed; it never buffers or reorders draw calls.
type Display interface {
	// DrawChar draws a single glyph at pixel (x, y) using the display's
	// current colors.
	DrawChar(x, y int, c byte)

	// DrawString draws a run of glyphs starting at pixel (x, y) using the
	// display's current colors.
	DrawString(x, y int, s string)

	// SetColors sets the display's current foreground/background colors.
	// The core calls this immediately before a DrawChar, DrawString or
	// FillRect that depends on it.
	SetColors(front, back RGB565)

	// FillRect fills the axis-aligned pixel rectangle [x, x+w) x [y, y+h)
	// with c.
	FillRect(x, y, w, h int, c RGB565)

	// Scroll moves the pixel rows [top, bottom] by delta pixels. Positive
	// delta scrolls the band upward (content moves toward lower y);
	// negative scrolls it downward.
	Scroll(top, bottom, delta int)

	// Metrics reports the back-end's fixed glyph cell size and overall
	// screen size in pixels. The core caches these at construction and at
	// reset; it never queries mid-stream.
	Metrics() (charWidth, charHeight, screenWidth, screenHeight int)
}

// ResponseSink is the host-response transport (spec.md §6). SendResponse
// receives a null-terminated byte string; the core is the only writer and
// calls it synchronously from within a Put/PutString/PutBuffer call.
type ResponseSink interface {
	SendResponse(b []byte)
}

// sendResponse appends the NUL terminator the original implementation's
// sendResponse() API expects and forwards to the configured sink. A nil
// sink silently drops the response, matching "no internal queues" (spec.md §5).
func (t *Terminal) sendResponse(text string) {
	if t.responses == nil {
		return
	}
	b := make([]byte, len(text)+1)
	copy(b, text)
	t.responses.SendResponse(b)
}
