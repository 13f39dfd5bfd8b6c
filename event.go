package vt100

// EventKind distinguishes the character event from any other event an
// embedder's event loop might inject (spec.md §4.1 "Event").
type EventKind int

const (
	// EventChar carries a raw input byte. Put, PutString, PutBuffer and
	// Printf feed bytes to the parser directly, which is equivalent to
	// feeding EventChar events.
	EventChar EventKind = iota
	// EventOther stands in for any non-character event (focus changes,
	// resize notifications, etc.) an embedder's own event loop may want to
	// route through the same state machine purely to force it back to a
	// known state.
	EventOther
)

// Event is the unit FeedEvent consumes. Byte stream callers never
// construct one — Put/PutString/PutBuffer/Printf hand each byte straight
// to the parser — but an embedder driving the state machine from its own
// event loop can call FeedEvent directly.
type Event struct {
	Kind EventKind
	Char byte
}

// FeedEvent applies ev to the parser. A non-EventChar event unconditionally
// resets the machine to idle without emitting output, regardless of which
// state it was in (spec.md §4.1, §5 "Cancellation/timeouts"). This is
// defensive behavior: it keeps the terminal from wedging in a half-parsed
// escape sequence if the embedder's transport drops or reorders bytes.
func (t *Terminal) FeedEvent(ev Event) {
	if ev.Kind != EventChar {
		t.state = stateIdle
		return
	}
	t.feed(ev.Char)
}
