// Package textdisplay is a vt100.Display that repaints a cell buffer to a
// plain terminal using ANSI cursor-home plus erase-to-end-of-line, the same
// "redraw the whole buffer from the model" shape as
// cli/terminal_display.go's performRedrawDirect, without the fyne canvas
// and scrollback history that function also manages — cmd/fyneterm owns
// that windowed rendering path instead (see DESIGN.md).
package textdisplay

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"vt100term"
)

// Display keeps one character cell per pixel: Metrics reports a 1x1 glyph
// cell, so the core's pixel coordinates already are cell coordinates.
type Display struct {
	mu          sync.Mutex
	cols, rows  int
	cells       [][]byte
	front, back vt100.RGB565
	out         io.Writer
}

// New constructs a Display of cols x rows cells that writes repaints to out.
func New(cols, rows int, out io.Writer) *Display {
	d := &Display{cols: cols, rows: rows, out: out, front: vt100.ColorWhite, back: vt100.ColorBlack}
	d.cells = make([][]byte, rows)
	for r := range d.cells {
		d.cells[r] = bytes.Repeat([]byte{' '}, cols)
	}
	return d
}

func (d *Display) Metrics() (charWidth, charHeight, screenWidth, screenHeight int) {
	return 1, 1, d.cols, d.rows
}

func (d *Display) SetColors(front, back vt100.RGB565) {
	d.mu.Lock()
	d.front, d.back = front, back
	d.mu.Unlock()
}

func (d *Display) DrawChar(x, y int, c byte) {
	d.mu.Lock()
	if y >= 0 && y < len(d.cells) && x >= 0 && x < len(d.cells[y]) {
		d.cells[y][x] = c
	}
	d.mu.Unlock()
	d.repaint()
}

func (d *Display) DrawString(x, y int, s string) {
	d.mu.Lock()
	for i := 0; i < len(s) && y >= 0 && y < len(d.cells); i++ {
		col := x + i
		if col >= 0 && col < len(d.cells[y]) {
			d.cells[y][col] = s[i]
		}
	}
	d.mu.Unlock()
	d.repaint()
}

func (d *Display) FillRect(x, y, w, h int, c vt100.RGB565) {
	d.mu.Lock()
	for row := y; row < y+h && row >= 0 && row < len(d.cells); row++ {
		for col := x; col < x+w && col >= 0 && col < len(d.cells[row]); col++ {
			d.cells[row][col] = ' '
		}
	}
	d.mu.Unlock()
	d.repaint()
}

func (d *Display) Scroll(top, bottom, delta int) {
	d.mu.Lock()
	if top < 0 || bottom >= len(d.cells) || top > bottom {
		d.mu.Unlock()
		return
	}
	band := d.cells[top : bottom+1]
	shifted := make([][]byte, len(band))
	for i := range band {
		src := i + delta
		if src >= 0 && src < len(band) {
			shifted[i] = band[src]
		} else {
			shifted[i] = bytes.Repeat([]byte{' '}, d.cols)
		}
	}
	copy(band, shifted)
	d.mu.Unlock()
	d.repaint()
}

// Resize grows or shrinks the cell buffer in place, discarding content that
// falls outside the new bounds.
func (d *Display) Resize(cols, rows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = bytes.Repeat([]byte{' '}, cols)
		if r < len(d.cells) {
			copy(cells[r], d.cells[r])
		}
	}
	d.cols, d.rows, d.cells = cols, rows, cells
}

func (d *Display) repaint() {
	d.mu.Lock()
	defer d.mu.Unlock()
	var buf bytes.Buffer
	buf.WriteString("\x1b[H")
	for _, row := range d.cells {
		buf.Write(row)
		buf.WriteString("\x1b[K\r\n")
	}
	fmt.Fprint(d.out, buf.String())
}
