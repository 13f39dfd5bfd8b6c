package vt100

// dispatchDecMode implements spec.md §4.5: only args[0] is inspected, and
// letter is either 'h' (set) or 'l' (reset).
func (t *Terminal) dispatchDecMode(letter byte) {
	set := letter == 'h'
	switch t.args.get(0, 0) {
	case 6:
		t.modes.originMode = set
	case 7:
		t.modes.cursorWrap = set
	case 1, 2, 3, 4, 5, 8, 9:
		// accepted, no observable effect.
	default:
		// unrecognized mode: ignored.
	}
}
