package main

import (
	"flag"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"vt100term"
	"vt100term/internal/hostshell"
)

func main() {
	cols := flag.Int("cols", 80, "terminal columns")
	rows := flag.Int("rows", 24, "terminal rows")
	flag.Parse()

	host, err := hostshell.Start(*cols, *rows)
	if err != nil {
		log.Fatalf("fyneterm: %v", err)
	}
	defer host.Close()

	a := app.New()
	w := a.NewWindow("vt100term")

	grid := widget.NewTextGrid()
	grid.ShowLineNumbers = false
	grid.ShowWhitespace = false

	display := newGridDisplay(grid, *cols, *rows)
	core := vt100.NewTerminal(display, nil)

	w.SetContent(container.NewScroll(grid))
	w.Resize(fyneWindowSize(*cols, *rows))

	w.Canvas().SetOnTypedRune(func(r rune) {
		host.Write([]byte(string(r)))
	})
	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if seq, ok := keyEscapes[key.Name]; ok {
			host.Write([]byte(seq))
		}
	})

	go pumpHostOutput(host, core)

	w.ShowAndRun()
}

// fyneWindowSize sizes the window to fit cols x rows glyph cells exactly,
// the same cols*charWidth / rows*charHeight math cli/terminal_widget.go
// uses when it resizes the textGrid to a freshly computed viewport.
func fyneWindowSize(cols, rows int) fyne.Size {
	return fyne.NewSize(float32(cols*cellWidth), float32(rows*cellHeight))
}

func pumpHostOutput(host hostshell.Host, core *vt100.Terminal) {
	buf := make([]byte, 4096)
	for {
		n, err := host.Read(buf)
		if n > 0 {
			core.PutBuffer(buf, n)
		}
		if err != nil {
			os.Exit(0)
		}
	}
}
