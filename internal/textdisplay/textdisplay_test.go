package textdisplay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"vt100term"
)

func TestMetricsReportsOneCellPerPixel(t *testing.T) {
	d := New(10, 3, &bytes.Buffer{})
	cw, ch, sw, sh := d.Metrics()
	assert.Equal(t, 1, cw)
	assert.Equal(t, 1, ch)
	assert.Equal(t, 10, sw)
	assert.Equal(t, 3, sh)
}

func TestDrawCharWritesCellAndRepaints(t *testing.T) {
	var out bytes.Buffer
	d := New(5, 2, &out)
	d.DrawChar(2, 0, 'x')
	assert.Equal(t, byte('x'), d.cells[0][2])
	assert.Contains(t, out.String(), "x")
}

func TestFillRectBlanksRegion(t *testing.T) {
	d := New(5, 2, &bytes.Buffer{})
	d.DrawString(0, 0, "hello")
	d.FillRect(1, 0, 3, 1, vt100.ColorBlack)
	assert.Equal(t, []byte("h   o"), d.cells[0])
}

func TestScrollShiftsRowsWithinBand(t *testing.T) {
	d := New(4, 3, &bytes.Buffer{})
	d.DrawString(0, 0, "aaaa")
	d.DrawString(0, 1, "bbbb")
	d.DrawString(0, 2, "cccc")

	d.Scroll(0, 2, 1)

	assert.Equal(t, []byte("bbbb"), d.cells[0])
	assert.Equal(t, []byte("cccc"), d.cells[1])
	assert.Equal(t, []byte("    "), d.cells[2])
}

func TestResizePreservesExistingContent(t *testing.T) {
	d := New(3, 2, &bytes.Buffer{})
	d.DrawString(0, 0, "ab ")
	d.Resize(5, 3)
	assert.Equal(t, 5, d.cols)
	assert.Equal(t, 3, d.rows)
	assert.Equal(t, byte('a'), d.cells[0][0])
	assert.Equal(t, byte('b'), d.cells[0][1])
}

func TestOutOfBoundsDrawCharIsIgnored(t *testing.T) {
	d := New(2, 2, &bytes.Buffer{})
	assert.NotPanics(t, func() {
		d.DrawChar(99, 99, 'x')
	})
}
