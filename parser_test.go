package vt100

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSequenceAbortsToIdleOnUnknownChar(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B\x01") // ESC followed by an unhandled byte
	assert.Equal(t, stateIdle, term.state)
}

func TestEscapeStaysOnRepeatedEsc(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B\x1B\x1B")
	assert.Equal(t, stateEscape, term.state)
	term.PutString("[H")
	assert.Equal(t, stateIdle, term.state)
}

func TestArgumentAccumulatorSaturatesAtFour(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[1;2;3;4;5;6m")
	// Must not panic and must leave a legal state.
	assert.Equal(t, stateIdle, term.state)
	assert.Equal(t, maxArgs, term.args.count)
}

func TestCharsetDesignationStubsReturnToIdle(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B(B")
	assert.Equal(t, stateIdle, term.state)
	term.PutString("\x1B)0")
	assert.Equal(t, stateIdle, term.state)
}

func TestDCSStubConsumesExactlyOneCharacter(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.PutString("\x1BPq") // ESC P, then one consumed char 'q'
	assert.Equal(t, stateIdle, term.state)
	display.calls = nil
	term.Put('Z', 1)
	assert.Contains(t, display.calls, "DrawChar(0,0,'Z')")
}

func TestAlignmentDisplayFillsScreenWithE(t *testing.T) {
	term, display, _ := newTestTerminal(t)
	term.cursor = position{col: 3, row: 3}
	term.PutString("\x1B#8")

	count := 0
	for _, c := range display.calls {
		if c == "DrawChar(0,0,'E')" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, position{col: 3, row: 3}, term.cursor)
}

func TestEscHashOtherCharIsNoOp(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B#3")
	assert.Equal(t, stateIdle, term.state)
}

func TestDecModeOriginAndWrap(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[?6h")
	assert.True(t, term.modes.originMode)
	term.PutString("\x1B[?6l")
	assert.False(t, term.modes.originMode)

	term.PutString("\x1B[?7h")
	assert.True(t, term.modes.cursorWrap)
	term.PutString("\x1B[?7l")
	assert.False(t, term.modes.cursorWrap)
}

func TestDecModeUnaffectingNumbersAreNoOps(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	before := term.modes
	term.PutString("\x1B[?1h\x1B[?2l\x1B[?9h")
	assert.Equal(t, before, term.modes)
}

func TestSemicolonBeforeAnyDigitDoesNotAdvanceCount(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B[;H")
	assert.Equal(t, 0, term.args.count)
	assert.Equal(t, position{}, term.cursor)
}

func TestReDispatchAppliesTerminatorToOriginalCommandState(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	// A DEC-mode sequence with a numeric argument must terminate through
	// commandArg and be re-applied to escQuestion, not escSqBracket.
	term.PutString("\x1B[?7h")
	assert.True(t, term.modes.cursorWrap)
	assert.Equal(t, stateIdle, term.state)
}

func TestKeypadModeSwitchIsNoOp(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.PutString("\x1B=\x1B>")
	assert.Equal(t, stateIdle, term.state)
}
