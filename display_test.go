package vt100

import "fmt"

// recordingDisplay is a test double that logs every call it receives,
// mirroring the teacher's MockScreen (internal/gopyte/mock_screen.go).
type recordingDisplay struct {
	calls []string

	charWidth, charHeight   int
	screenWidth, screenHeight int

	front, back RGB565
}

func newRecordingDisplay(cols, rows, charWidth, charHeight int) *recordingDisplay {
	return &recordingDisplay{
		charWidth:    charWidth,
		charHeight:   charHeight,
		screenWidth:  cols * charWidth,
		screenHeight: rows * charHeight,
	}
}

func (d *recordingDisplay) log(format string, args ...interface{}) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *recordingDisplay) DrawChar(x, y int, c byte) {
	d.log("DrawChar(%d,%d,%q)", x, y, c)
}

func (d *recordingDisplay) DrawString(x, y int, s string) {
	d.log("DrawString(%d,%d,%q)", x, y, s)
}

func (d *recordingDisplay) SetColors(front, back RGB565) {
	d.front, d.back = front, back
	d.log("SetColors(%04x,%04x)", uint16(front), uint16(back))
}

func (d *recordingDisplay) FillRect(x, y, w, h int, c RGB565) {
	d.log("FillRect(%d,%d,%d,%d,%04x)", x, y, w, h, uint16(c))
}

func (d *recordingDisplay) Scroll(top, bottom, delta int) {
	d.log("Scroll(%d,%d,%d)", top, bottom, delta)
}

func (d *recordingDisplay) Metrics() (charWidth, charHeight, screenWidth, screenHeight int) {
	return d.charWidth, d.charHeight, d.screenWidth, d.screenHeight
}

// recordingSink logs response bytes sent to the host.
type recordingSink struct {
	responses [][]byte
}

func (s *recordingSink) SendResponse(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	s.responses = append(s.responses, cp)
}

func (s *recordingSink) lastString() string {
	if len(s.responses) == 0 {
		return ""
	}
	b := s.responses[len(s.responses)-1]
	// strip the trailing NUL terminator sendResponse adds.
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}
