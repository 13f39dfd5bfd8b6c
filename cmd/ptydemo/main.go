package main

import (
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"vt100term"
	"vt100term/internal/hostshell"
	"vt100term/internal/textdisplay"
)

func main() {
	cols, rows := 80, 24
	if c, r, err := term.GetSize(int(os.Stdout.Fd())); err == nil && c > 0 && r > 0 {
		cols, rows = c, r
	}
	flag.IntVar(&cols, "cols", cols, "terminal columns")
	flag.IntVar(&rows, "rows", rows, "terminal rows")
	flag.Parse()

	host, err := hostshell.Start(cols, rows)
	if err != nil {
		log.Fatalf("ptydemo: %v", err)
	}
	defer host.Close()

	display := textdisplay.New(cols, rows, os.Stdout)
	core := vt100.NewTerminal(display, nil)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if oldState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
			defer term.Restore(int(os.Stdin.Fd()), oldState)
		}
	}

	go pumpKeystrokes(host)
	go pollResize(host, display)

	buf := make([]byte, 4096)
	for {
		n, err := host.Read(buf)
		if n > 0 {
			core.PutBuffer(buf, n)
		}
		if err != nil {
			return
		}
	}
}

func pumpKeystrokes(host hostshell.Host) {
	buf := make([]byte, 1024)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			host.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// pollResize re-queries the local terminal size periodically, the same
// fallback cmd_pty_demo.go uses on Windows because that platform has no
// SIGWINCH; on Unix this also catches resizes for us without wiring a
// separate signal-based path.
func pollResize(host hostshell.Host, display *textdisplay.Display) {
	lastC, lastR := 0, 0
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		c, r, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || c <= 0 || r <= 0 {
			continue
		}
		if c != lastC || r != lastR {
			lastC, lastR = c, r
			host.Resize(c, r)
			display.Resize(c, r)
		}
	}
}
