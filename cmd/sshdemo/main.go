package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"vt100term"
	"vt100term/internal/config"
	"vt100term/internal/textdisplay"
)

// responseWriter adapts an io.Writer to vt100.ResponseSink, forwarding
// device-query replies (the ENQ answerback and DA responses) straight
// back down the SSH channel, the same direction cli/ssh_backend.go's Write
// sends keystrokes.
type responseWriter struct {
	w interface{ Write([]byte) (int, error) }
}

func (r responseWriter) SendResponse(b []byte) {
	// Strip the NUL terminator vt100.sendResponse appends; a live terminal
	// protocol has no use for it.
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	r.w.Write(b)
}

func main() {
	var (
		sessionName = flag.String("session", "", "load connection details from sessions.yaml by display name")
		host        = flag.String("host", "", "SSH host (overrides -session)")
		port        = flag.Int("port", 0, "SSH port (default 22, or the -session's port)")
		user        = flag.String("user", "", "SSH username")
		password    = flag.String("password", "", "SSH password (prefer an agent or key in real use)")
		keyPath     = flag.String("key", "", "path to a private key")
		insecure    = flag.Bool("insecure", false, "skip host key verification (unsafe)")
		cols        = flag.Int("cols", 80, "terminal columns")
		rows        = flag.Int("rows", 24, "terminal rows")
	)
	flag.Parse()

	cfg := NewSSHBackend(DefaultSSHConfig()).config
	cfg.Cols, cfg.Rows = *cols, *rows
	cfg.Insecure = *insecure

	if *sessionName != "" {
		store := config.NewSessionStore(config.DefaultSessionPath())
		if err := store.Load(); err != nil {
			log.Fatalf("sshdemo: load sessions: %v", err)
		}
		sess, ok := store.FindByName(*sessionName)
		if !ok {
			log.Fatalf("sshdemo: no session named %q in %s", *sessionName, store.FilePath())
		}
		cfg.Host = sess.Host
		cfg.Port = sess.PortNumber()
		cfg.Username = sess.Username
		cfg.PrivateKeyPath = sess.KeyPath
		cfg.KeyPassphrase = sess.KeyPassphrase
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *user != "" {
		cfg.Username = *user
	}
	if *password != "" {
		cfg.Password = *password
	}
	if *keyPath != "" {
		cfg.PrivateKeyPath = *keyPath
	}
	if cfg.Host == "" || cfg.Username == "" {
		fmt.Fprintln(os.Stderr, "sshdemo: -host and -user are required (or -session naming a saved one)")
		os.Exit(2)
	}

	settings, err := config.LoadSettings(config.DefaultSettingsPath())
	if err != nil {
		log.Fatalf("sshdemo: load settings: %v", err)
	}
	if cfg.PrivateKeyPath == "" && settings.DefaultKeyPath != "" {
		cfg.PrivateKeyPath = settings.DefaultKeyPath
	}

	backend := NewSSHBackend(cfg)
	if err := backend.Connect(); err != nil {
		log.Fatalf("sshdemo: connect: %v", err)
	}
	defer backend.Close()

	display := textdisplay.New(cfg.Cols, cfg.Rows, os.Stdout)
	core := vt100.NewTerminal(display, responseWriter{backend})

	if f, ok := anyStdinFile(); ok {
		if oldState, err := term.MakeRaw(int(f.Fd())); err == nil {
			defer term.Restore(int(f.Fd()), oldState)
		}
	}

	go pumpKeystrokes(backend)

	buf := make([]byte, 4096)
	for {
		n, err := backend.Read(buf)
		if n > 0 {
			core.PutBuffer(buf, n)
		}
		if err != nil {
			break
		}
	}
}

func anyStdinFile() (*os.File, bool) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, true
	}
	return nil, false
}

func pumpKeystrokes(backend *SSHBackend) {
	buf := make([]byte, 1024)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			backend.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}
