// Package hostshell spawns a local shell inside a pseudo-terminal and
// exposes it as a Host, mirroring the PTYInterface contract
// cli/terminal_pty.go and cli/pty_unix.go/cli/pty_windows.go use to plug a
// host shell into the teacher's gopyte screen. cmd/ptydemo and
// cmd/fyneterm both drive a vt100.Terminal from a Host.
package hostshell

import "io"

// Host is the minimal surface both platform PTY implementations satisfy:
// read its output, write keystrokes to it, resize it, close it.
type Host interface {
	io.ReadWriteCloser
	Resize(cols, rows int) error
}

// Start spawns the platform's default shell inside a pseudo-terminal sized
// cols x rows. The Unix and Windows implementations live in pty_unix.go and
// pty_windows.go respectively.
func Start(cols, rows int) (Host, error) {
	return startHostShell(cols, rows)
}
