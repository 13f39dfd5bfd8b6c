package vt100

// dispatchCSI executes the CSI command letter (spec.md §4.4). It is called
// once the terminating, non-digit, non-';' character of an "ESC [ ... "
// sequence has been seen. If the sequence carried digits, the argument
// accumulator has already had its final terminate() applied; if it carried
// none, count is 0 and every argument reads as its default.
func (t *Terminal) dispatchCSI(letter byte) {
	switch letter {
	case 'A':
		t.cursorUp(int(t.args.get(0, 1)))
	case 'B':
		t.cursorDown(int(t.args.get(0, 1)))
	case 'C':
		t.cursorRight(int(t.args.get(0, 1)))
	case 'D':
		t.cursorLeft(int(t.args.get(0, 1)))
	case 'H', 'f':
		t.cursorPosition()
	case 'J':
		t.eraseInDisplay(int(t.args.get(0, 0)))
	case 'K':
		t.eraseInLine(int(t.args.get(0, 0)))
	case 'L', 'M':
		// insert/delete lines: accepted, no-op (spec.md §9 open question).
	case 'P':
		t.deleteCharacters(int(t.args.get(0, 1)))
	case '@':
		// insert characters: no-op.
	case 'c':
		t.sendResponse(deviceAttributesResponse)
	case 's':
		t.savedCursor = t.cursor
	case 'u':
		t.cursor = t.savedCursor
	case 'm':
		t.selectGraphicRendition()
	case 'r':
		t.setScrollRegion()
	case '?':
		t.state = stateEscQuestion
	case 'h', 'l', 'g', 'x', 'i', 'y', '=':
		// mode set/reset, tab/self-test/print/misc: no-op in CSI.
	default:
		// unknown command letter: idle, screen unchanged.
	}
}

func (t *Terminal) cursorUp(n int) {
	t.cursor.row -= n
	if t.cursor.row < t.scrollStartRow {
		t.cursor.row = t.scrollStartRow
	}
}

func (t *Terminal) cursorDown(n int) {
	t.cursor.row += n
	if t.cursor.row > t.scrollEndRow {
		t.cursor.row = t.scrollEndRow
	}
}

func (t *Terminal) cursorRight(n int) {
	t.cursor.col += n
	if t.cursor.col > t.colCount {
		t.cursor.col = t.colCount
	}
}

func (t *Terminal) cursorLeft(n int) {
	t.cursor.col -= n
	if t.cursor.col < 0 {
		t.cursor.col = 0
	}
}

// cursorPosition implements "H"/"f" absolute move, including the
// args[1]-as-column-default quirk preserved verbatim from spec.md §4.4 and
// §9: with a single argument, the column default reads the accumulator's
// second slot, which is zero-valued (never written), not uninitialized
// memory as in the original C implementation.
func (t *Terminal) cursorPosition() {
	row := int(t.args.get(0, 0))
	if row > 0 {
		row--
	}
	col := int(t.args.get(1, 0))
	if col > 0 {
		col--
	}

	if t.modes.originMode {
		row += t.scrollStartRow
		if row > t.scrollEndRow {
			row = t.scrollEndRow
		}
	}

	if col >= t.colCount {
		col = t.colCount - 1
	}
	if row >= t.rowCount {
		row = t.rowCount - 1
	}
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}

	t.cursor.col = col
	t.cursor.row = row
}

// eraseInDisplay implements "J" (spec.md §4.4).
func (t *Terminal) eraseInDisplay(how int) {
	switch how {
	case 1:
		t.clearRows(0, t.cursor.row)
	case 2:
		t.clearRows(0, t.rowCount-1)
		t.resetScroll()
	default:
		t.clearRows(t.cursor.row, t.rowCount-1)
	}
}

// eraseInLine implements "K" (spec.md §4.4).
func (t *Terminal) eraseInLine(how int) {
	x, y := t.cursorPixel()
	if t.display == nil {
		return
	}
	switch how {
	case 1:
		t.display.FillRect(0, y, x+t.charWidth, t.charHeight, t.backColor)
	case 2:
		t.display.FillRect(0, y, t.screenWidth, t.charHeight, t.backColor)
	default:
		t.display.FillRect(x, y, t.screenWidth-x, t.charHeight, t.backColor)
	}
}

// deleteCharacters implements "P": move left n, then write n spaces. This
// does not shift the tail of the line — preserved imprecision from
// spec.md §4.4 and §9.
func (t *Terminal) deleteCharacters(n int) {
	t.move(-n, 0)
	for i := 0; i < n; i++ {
		t.writeChar(' ')
	}
}

// selectGraphicRendition implements "m" / SGR (spec.md §4.4): with no
// arguments, reset to default colors; otherwise consume the accumulated
// arguments back-to-front, applying palette lookups for 30-37 / 40-47 and
// resetting on 0.
func (t *Terminal) selectGraphicRendition() {
	if t.args.count == 0 {
		t.resetColors()
		return
	}
	for i := t.args.count - 1; i >= 0; i-- {
		n := int(t.args.get(i, 0))
		switch {
		case n == 0:
			t.resetColors()
		case n >= 30 && n < 38:
			t.frontColor = palette[n-30]
			t.setColors()
		case n >= 40 && n < 48:
			t.backColor = palette[n-40]
			t.setColors()
		}
	}
}

func (t *Terminal) resetColors() {
	t.frontColor = ColorWhite
	t.backColor = ColorBlack
	t.setColors()
}

// setScrollRegion implements "r" (spec.md §4.4).
func (t *Terminal) setScrollRegion() {
	if t.args.count == 2 {
		start := t.args.get(0, 0)
		end := t.args.get(1, 0)
		if start < end {
			t.scrollStartRow = int(start) - 1
			t.scrollEndRow = int(end) - 1
			if t.scrollStartRow < 0 {
				t.scrollStartRow = 0
			}
			if t.scrollEndRow > t.rowCount-1 {
				t.scrollEndRow = t.rowCount - 1
			}
			if t.scrollStartRow > t.scrollEndRow {
				t.resetScroll()
			}
			return
		}
	}
	t.resetScroll()
}
