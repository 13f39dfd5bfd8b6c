package main

import "fyne.io/fyne/v2"

// keyEscapes maps the named keys a vt100 host expects an escape sequence
// for, the same table cli/terminal_events.go's TypedKey switches on, minus
// its history-mode/cache-invalidation side effects, which belonged to the
// teacher's scrollback screen rather than this module's core.
var keyEscapes = map[fyne.KeyName]string{
	fyne.KeyPageUp:   "\x1b[5~",
	fyne.KeyPageDown: "\x1b[6~",
	fyne.KeyBackspace: "\x7f",
	fyne.KeyReturn:   "\r",
	fyne.KeyTab:      "\t",
	fyne.KeyDelete:   "\x1b[3~",
	fyne.KeyUp:       "\x1b[A",
	fyne.KeyDown:     "\x1b[B",
	fyne.KeyLeft:     "\x1b[D",
	fyne.KeyRight:    "\x1b[C",
	fyne.KeyHome:     "\x1b[H",
	fyne.KeyEnd:      "\x1b[F",
	fyne.KeyEscape:   "\x1b",
	fyne.KeyF1:       "\x1b[11~",
	fyne.KeyF2:       "\x1b[12~",
	fyne.KeyF3:       "\x1b[13~",
	fyne.KeyF4:       "\x1b[14~",
	fyne.KeyF5:       "\x1b[15~",
	fyne.KeyF6:       "\x1b[17~",
	fyne.KeyF7:       "\x1b[18~",
	fyne.KeyF8:       "\x1b[19~",
	fyne.KeyF9:       "\x1b[20~",
	fyne.KeyF10:      "\x1b[21~",
	fyne.KeyF11:      "\x1b[23~",
	fyne.KeyF12:      "\x1b[24~",
}
