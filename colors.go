package vt100

// RGB565 is a 16-bit packed color, the native pixel format assumed by the
// display back-end (spec.md §3 "Colors").
type RGB565 uint16

// Default front/back colors (spec.md §3).
const (
	ColorWhite RGB565 = 0xFFFF
	ColorBlack RGB565 = 0x0000
)

// palette is the fixed 8-entry ANSI color table, indexed 0..7
// (black, red, green, yellow, blue, magenta, cyan, white), spec.md §4.4.
var palette = [8]RGB565{
	0x0000, // black
	0xF800, // red
	0x0780, // green
	0xFE00, // yellow
	0x001F, // blue
	0xF81F, // magenta
	0x07FF, // cyan
	0xFFFF, // white
}
