//go:build windows

package hostshell

import (
	"fmt"
	"os"

	"github.com/UserExistsError/conpty"
	"golang.org/x/sys/windows"
)

// windowsPTY wraps UserExistsError/conpty's ConPty handle, the same API the
// teacher's internal/gopyte/cli/cmd_pty_demo.go drives directly (that file
// has no wrapper type of its own since it never shared the interface with
// the Unix build).
type windowsPTY struct {
	cpty *conpty.ConPty
}

func startHostShell(cols, rows int) (Host, error) {
	enableVT()

	cpty, err := conpty.Start(`C:\Windows\System32\cmd.exe`, conpty.ConPtyDimensions(cols, rows))
	if err != nil {
		return nil, fmt.Errorf("start ConPTY: %w", err)
	}
	return &windowsPTY{cpty: cpty}, nil
}

func (w *windowsPTY) Read(p []byte) (int, error)  { return w.cpty.Read(p) }
func (w *windowsPTY) Write(p []byte) (int, error) { return w.cpty.Write(p) }
func (w *windowsPTY) Resize(cols, rows int) error { return w.cpty.Resize(cols, rows) }
func (w *windowsPTY) Close() error                { return w.cpty.Close() }

// enableVT turns on ENABLE_VIRTUAL_TERMINAL_PROCESSING so the local console
// renders the ANSI sequences textdisplay.Display emits, the same console
// mode bit cmd_pty_demo.go's enableVT sets.
func enableVT() {
	stdout := windows.Handle(os.Stdout.Fd())
	var mode uint32
	_ = windows.GetConsoleMode(stdout, &mode)
	const (
		enableVirtualTerminalProcessing = 0x0004
		enableProcessedOutput           = 0x0001
	)
	mode |= enableVirtualTerminalProcessing | enableProcessedOutput
	_ = windows.SetConsoleMode(stdout, mode)
}
