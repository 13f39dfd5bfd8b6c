package vt100

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEraseInLineVariants(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.cursor = position{col: 10, row: 2}

	display.calls = nil
	term.PutString("\x1B[K")
	assert.Contains(t, display.calls, "FillRect(60,26,420,13,0000)")

	display.calls = nil
	term.PutString("\x1B[1K")
	assert.Contains(t, display.calls, "FillRect(0,26,66,13,0000)")

	display.calls = nil
	term.PutString("\x1B[2K")
	assert.Contains(t, display.calls, "FillRect(0,26,480,13,0000)")
}

func TestEraseInDisplayFromCursorDown(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.cursor = position{col: 0, row: 20}
	display.calls = nil
	term.PutString("\x1B[J")

	fillCount := 0
	for _, c := range display.calls {
		if len(c) >= 8 && c[:8] == "FillRect" {
			fillCount++
		}
	}
	assert.Equal(t, 4, fillCount) // rows 20,21,22,23
}

func TestEraseInDisplayFromTop(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.cursor = position{col: 0, row: 3}
	display.calls = nil
	term.PutString("\x1B[1J")

	fillCount := 0
	for _, c := range display.calls {
		if len(c) >= 8 && c[:8] == "FillRect" {
			fillCount++
		}
	}
	assert.Equal(t, 4, fillCount) // rows 0,1,2,3
}

func TestInsertDeleteLinesAreNoOps(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	before := term.cursor
	display.calls = nil
	term.PutString("\x1B[3L\x1B[3M")
	assert.Empty(t, display.calls)
	assert.Equal(t, before, term.cursor)
}

func TestInsertCharacterIsNoOp(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	display.calls = nil
	term.PutString("\x1B[5@")
	assert.Empty(t, display.calls)
}

func TestDeleteCharactersDoesNotShiftTail(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.PutString("abc")
	term.cursor = position{col: 3, row: 0}
	display.calls = nil

	term.PutString("\x1B[2P")

	// Moves left 2 then writes 2 spaces; does not touch 'a' at column 0.
	assert.Contains(t, display.calls, "DrawChar(6,0,' ')")
	assert.Contains(t, display.calls, "DrawChar(12,0,' ')")
	assert.Equal(t, position{col: 3, row: 0}, term.cursor)
}

func TestSGRResetWithNoArguments(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[31;44m")
	assert.NotEqual(t, ColorWhite, term.frontColor)
	term.PutString("\x1B[m")
	assert.Equal(t, ColorWhite, term.frontColor)
	assert.Equal(t, ColorBlack, term.backColor)
}

func TestSGRZeroResetsAmongOtherArgs(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[31;0;44m")
	// processed back-to-front: 44 (bg blue) applied, then 0 resets both,
	// then 31 (fg red) applied on top of the reset.
	assert.Equal(t, palette[1], term.frontColor)
	assert.Equal(t, ColorBlack, term.backColor)
}

func TestCursorRightAllowsSentinelColumn(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[9999C")
	assert.Equal(t, term.colCount, term.cursor.col)
}

func TestDeviceAttributesQueryViaCSI(t *testing.T) {
	term, _, sink := newTestTerminal(t)
	term.PutString("\x1B[c")
	assert.Equal(t, deviceAttributesResponse, sink.lastString())
}
