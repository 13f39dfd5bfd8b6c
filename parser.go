package vt100

// feed is the parser's single entry point: one character in, zero or more
// draw/response side effects out (spec.md §4.1). Every Put/PutString/
// PutBuffer call above loops over feed once per byte.
//
// feed only ever receives character bytes, so the "non-EV_CHAR resets to
// idle" rule from spec.md never triggers here; it is implemented in
// FeedEvent for embedders who drive the state machine with Event values
// (see event.go).
func (t *Terminal) feed(c byte) {
	t.dispatch(t.state, c)
}

// dispatch routes c to the handler for state st. It is also used by the
// commandArg state to re-apply a just-consumed terminator to the state it
// returns to, exactly as the original vt100.cpp re-invokes
// "term->state(term, ev, arg)" after switching state (spec.md §4.1
// "re-dispatch the same character").
func (t *Terminal) dispatch(st parserState, c byte) {
	switch st {
	case stateIdle:
		t.stateIdle(c)
	case stateEscape:
		t.stateEscape(c)
	case stateEscSqBracket:
		t.stateEscSqBracket(c)
	case stateEscQuestion:
		t.stateEscQuestion(c)
	case stateEscHash:
		t.stateEscHash(c)
	case stateEscLeftBr:
		t.stateEscLeftBr(c)
	case stateEscRightBr:
		t.stateEscRightBr(c)
	case stateCommandArg:
		t.stateCommandArg(c)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// stateIdle implements spec.md §4.1 "State: idle".
func (t *Terminal) stateIdle(c byte) {
	if c >= printableLo && c <= printableHi {
		t.writeChar(c)
		return
	}

	switch c {
	case ctrlENQ:
		t.sendResponse(enquiryResponse)
	case ctrlBS:
		// Clamped at 0 (spec.md §4.1) — unlike the generic move() helper,
		// backspace never wraps to the previous line.
		if t.cursor.col > 0 {
			t.cursor.col--
		}
	case ctrlHT:
		t.tab()
	case ctrlLF:
		t.move(0, 1)
		t.cursor.col = 0
	case ctrlCR:
		t.cursor.col = 0
	case ctrlBELL:
		// no visible effect
	case ctrlESC:
		t.state = stateEscape
	case ctrlDEL:
		t.writeChar(' ')
		t.move(-1, 0)
	default:
		t.writeDebug(c)
	}
}

// tab emits spaces until the column is a multiple of 4 (spec.md §4.1 "HT").
func (t *Terminal) tab() {
	const tabStop = 4
	n := tabStop - (t.cursor.col % tabStop)
	for ; n > 0; n-- {
		t.writeChar(' ')
	}
}

// stateEscape implements spec.md §4.1 "State: escape".
func (t *Terminal) stateEscape(c byte) {
	switch c {
	case '[':
		t.args.reset()
		t.state = stateEscSqBracket
	case '(':
		t.args.reset()
		t.state = stateEscLeftBr
	case ')':
		t.args.reset()
		t.state = stateEscRightBr
	case '#':
		t.args.reset()
		t.state = stateEscHash
	case 'P':
		// DCS stub: consume exactly one more character, silently. Reuses
		// escLeftBr rather than a ninth state — both states are "accept one
		// character and return to idle, no semantic effect" (spec.md §4.1
		// keeps the enumeration at 8 variants).
		t.state = stateEscLeftBr
	case 'D':
		t.move(0, 1)
		t.state = stateIdle
	case 'M':
		t.move(0, -1)
		t.state = stateIdle
	case 'E':
		t.move(0, 1)
		t.cursor.col = 0
		t.state = stateIdle
	case '7', 's':
		t.savedCursor = t.cursor
		t.state = stateIdle
	case '8', 'u':
		t.cursor = t.savedCursor
		t.state = stateIdle
	case '=', '>':
		// keypad mode switch, no observable effect.
		t.state = stateIdle
	case 'Z':
		t.sendResponse(deviceAttributesResponse)
		t.state = stateIdle
	case 'c':
		t.Reset()
	case 'H', 'N', 'O', '<':
		t.state = stateIdle
	case ctrlESC:
		// remain in escape
	default:
		t.state = stateIdle
	}
}

// stateEscSqBracket implements spec.md §4.1 "State: escSqBracket".
func (t *Terminal) stateEscSqBracket(c byte) {
	switch {
	case isDigit(c):
		t.returnState = stateEscSqBracket
		t.args.addDigit(c)
		t.state = stateCommandArg
	case c == ';':
		// stays in the current state; only commandArg advances count.
	case c == '?':
		t.state = stateEscQuestion
	default:
		// If we arrived here straight from idle (no digits at all), count
		// is still 0. If we arrived here re-dispatched from commandArg,
		// terminate() has already run there — it must not run twice.
		t.dispatchCSI(c)
		t.state = stateIdle
	}
}

// stateEscQuestion implements spec.md §4.1 "State: escQuestion".
func (t *Terminal) stateEscQuestion(c byte) {
	switch {
	case isDigit(c):
		t.returnState = stateEscQuestion
		t.args.addDigit(c)
		t.state = stateCommandArg
	case c == ';':
		// stays in the current state.
	default:
		if c == 'h' || c == 'l' {
			t.dispatchDecMode(c)
		}
		t.state = stateIdle
	}
}

// stateEscHash implements spec.md §4.1 "State: escLeftBr / escRightBr /
// escHash" for the "#" branch. "ESC # 8" fills the screen with 'E'
// (DECALN self-test), a supplement documented in SPEC_FULL.md §11; every
// other character is a pure no-op stub.
func (t *Terminal) stateEscHash(c byte) {
	if c == '8' {
		t.alignmentDisplay()
	}
	t.state = stateIdle
}

// alignmentDisplay fills every visible cell with 'E', preserving cursor
// position (spec.md §11 supplement, original "self test" comment).
func (t *Terminal) alignmentDisplay() {
	if t.display == nil {
		return
	}
	saved := t.cursor
	t.setColors()
	for row := 0; row < t.rowCount; row++ {
		for col := 0; col < t.colCount; col++ {
			t.display.DrawChar(col*t.charWidth, row*t.charHeight, 'E')
		}
	}
	t.cursor = saved
}

// stateEscLeftBr / stateEscRightBr are character-set designation stubs:
// accept one character and return to idle, no semantic effect.
func (t *Terminal) stateEscLeftBr(c byte)  { t.state = stateIdle }
func (t *Terminal) stateEscRightBr(c byte) { t.state = stateIdle }

// stateCommandArg implements spec.md §4.1 "State: commandArg".
func (t *Terminal) stateCommandArg(c byte) {
	switch {
	case isDigit(c):
		t.args.addDigit(c)
	case c == ';':
		t.args.separate()
	default:
		t.args.terminate()
		next := t.returnState
		t.returnState = stateIdle
		t.state = next
		t.dispatch(next, c)
	}
}
