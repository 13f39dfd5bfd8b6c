//go:build !windows

package hostshell

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/creack/pty"
)

// unixPTY wraps creack/pty's master file, the same wrapper shape as
// cli/pty_unix.go's UnixPTY.
type unixPTY struct {
	ptyFile *os.File
	cmd     *exec.Cmd
}

func startHostShell(cols, rows int) (Host, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		if runtime.GOOS == "darwin" {
			shell = "/bin/zsh"
		} else {
			shell = "/bin/bash"
		}
	}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		fmt.Sprintf("COLUMNS=%d", cols),
		fmt.Sprintf("LINES=%d", rows),
	)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start shell: %w", err)
	}
	pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})

	return &unixPTY{ptyFile: ptmx, cmd: cmd}, nil
}

func (u *unixPTY) Read(p []byte) (int, error)  { return u.ptyFile.Read(p) }
func (u *unixPTY) Write(p []byte) (int, error) { return u.ptyFile.Write(p) }

func (u *unixPTY) Resize(cols, rows int) error {
	return pty.Setsize(u.ptyFile, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (u *unixPTY) Close() error {
	err := u.ptyFile.Close()
	if u.cmd != nil && u.cmd.Process != nil {
		u.cmd.Process.Kill()
	}
	return err
}
