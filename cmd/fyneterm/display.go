// Command fyneterm is a windowed vt100.Display backed by fyne's
// widget.TextGrid, the same cell-per-rune grid the teacher's
// cli/terminal_widget.go and cli/terminal_display.go paint into, trimmed to
// direct cell writes — no scrollback, history view, or text selection,
// which belonged to the teacher's gopyte-backed WideCharScreen rather than
// to the Display contract this module defines (see DESIGN.md).
package main

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2/widget"

	"vt100term"
)

// cellWidth and cellHeight are the fixed glyph-cell pixel size this demo
// assumes for widget.TextGrid's monospace font; the core only needs the
// ratio to turn its pixel coordinates back into grid coordinates.
const (
	cellWidth  = 8
	cellHeight = 16
)

// gridDisplay implements vt100.Display over a widget.TextGrid.
type gridDisplay struct {
	mu          sync.Mutex
	grid        *widget.TextGrid
	cols, rows  int
	front, back vt100.RGB565
}

func newGridDisplay(grid *widget.TextGrid, cols, rows int) *gridDisplay {
	d := &gridDisplay{grid: grid, cols: cols, rows: rows, front: vt100.ColorWhite, back: vt100.ColorBlack}
	d.resizeRows()
	return d
}

func (d *gridDisplay) Metrics() (charWidth, charHeight, screenWidth, screenHeight int) {
	return cellWidth, cellHeight, d.cols * cellWidth, d.rows * cellHeight
}

func (d *gridDisplay) resizeRows() {
	rows := make([]widget.TextGridRow, d.rows)
	for r := range rows {
		rows[r].Cells = make([]widget.TextGridCell, d.cols)
		for c := range rows[r].Cells {
			rows[r].Cells[c].Rune = ' '
		}
	}
	d.grid.Rows = rows
}

// Resize changes the grid's column/row count, discarding cells outside the
// new bounds, mirroring the teacher's textGrid.Resize call sites.
func (d *gridDisplay) Resize(cols, rows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	old := d.grid.Rows
	d.cols, d.rows = cols, rows
	d.resizeRows()
	for r := 0; r < len(old) && r < len(d.grid.Rows); r++ {
		copy(d.grid.Rows[r].Cells, old[r].Cells)
	}
	d.grid.Refresh()
}

func (d *gridDisplay) SetColors(front, back vt100.RGB565) {
	d.mu.Lock()
	d.front, d.back = front, back
	d.mu.Unlock()
}

func (d *gridDisplay) cellAt(x, y int) (row, col int, ok bool) {
	col, row = x/cellWidth, y/cellHeight
	if row < 0 || row >= len(d.grid.Rows) || col < 0 || col >= d.cols {
		return 0, 0, false
	}
	return row, col, true
}

func (d *gridDisplay) styleFor(front, back vt100.RGB565) *widget.CustomTextGridStyle {
	return &widget.CustomTextGridStyle{FGColor: rgbToNRGBA(front), BGColor: rgbToNRGBA(back)}
}

func (d *gridDisplay) DrawChar(x, y int, c byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	row, col, ok := d.cellAt(x, y)
	if !ok {
		return
	}
	d.grid.Rows[row].Cells[col] = widget.TextGridCell{Rune: rune(c), Style: d.styleFor(d.front, d.back)}
	d.grid.Refresh()
}

func (d *gridDisplay) DrawString(x, y int, s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	row, col, ok := d.cellAt(x, y)
	if !ok {
		return
	}
	style := d.styleFor(d.front, d.back)
	for i, r := range s {
		if col+i >= d.cols {
			break
		}
		d.grid.Rows[row].Cells[col+i] = widget.TextGridCell{Rune: r, Style: style}
	}
	d.grid.Refresh()
}

func (d *gridDisplay) FillRect(x, y, w, h int, c vt100.RGB565) {
	d.mu.Lock()
	defer d.mu.Unlock()
	startRow, startCol, ok := d.cellAt(x, y)
	if !ok {
		return
	}
	style := d.styleFor(d.front, c)
	colSpan := w / cellWidth
	rowSpan := h / cellHeight
	for r := startRow; r < startRow+rowSpan && r < len(d.grid.Rows); r++ {
		for cIdx := startCol; cIdx < startCol+colSpan && cIdx < d.cols; cIdx++ {
			d.grid.Rows[r].Cells[cIdx] = widget.TextGridCell{Rune: ' ', Style: style}
		}
	}
	d.grid.Refresh()
}

func (d *gridDisplay) Scroll(top, bottom, delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	topRow, bottomRow := top/cellHeight, bottom/cellHeight
	rowDelta := delta / cellHeight
	if topRow < 0 || bottomRow >= len(d.grid.Rows) || topRow > bottomRow || rowDelta == 0 {
		return
	}
	band := d.grid.Rows[topRow : bottomRow+1]
	shifted := make([]widget.TextGridRow, len(band))
	for i := range band {
		src := i + rowDelta
		if src >= 0 && src < len(band) {
			shifted[i] = band[src]
		} else {
			blank := make([]widget.TextGridCell, d.cols)
			for c := range blank {
				blank[c].Rune = ' '
			}
			shifted[i] = widget.TextGridRow{Cells: blank}
		}
	}
	copy(band, shifted)
	d.grid.Refresh()
}

func rgbToNRGBA(c vt100.RGB565) color.Color {
	r := uint8((c >> 11 & 0x1F) << 3)
	g := uint8((c >> 5 & 0x3F) << 2)
	b := uint8((c & 0x1F) << 3)
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
