// Command sshdemo drives the vt100 core from an SSH session instead of a
// local PTY: the remote shell is the "host program" and the SSH channel is
// its byte stream, mirroring cli/ssh_backend.go's TerminalBackend contract
// from the teacher repo but trimmed to what a headless demo needs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ConnectionState mirrors the teacher's SSHBackend state enum.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateAuthenticating
	StateConnected
	StateError
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// SSHConfig mirrors the teacher's SSHConfig, trimmed to fields a headless
// demo exercises: no in-memory key material or custom prompt plumbing.
type SSHConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	PrivateKeyPath string
	KeyPassphrase  string
	KnownHostsPath string
	Insecure       bool
	TermType       string
	Cols, Rows     int
	Timeout        time.Duration
	KeepAlive      time.Duration
}

// DefaultSSHConfig fills the zero-value defaults the teacher's
// NewSSHBackend applies.
func DefaultSSHConfig() SSHConfig {
	return SSHConfig{
		Port:      22,
		TermType:  "xterm",
		Cols:      80,
		Rows:      24,
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
}

// SSHBackend owns one SSH connection and exposes it as an io.ReadWriter so
// it can feed a vt100.Terminal exactly the way a local PTY would.
type SSHBackend struct {
	config SSHConfig

	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser

	outputReader *io.PipeReader
	outputWriter *io.PipeWriter

	stateMu sync.Mutex
	state   ConnectionState
	lastErr error

	ctx    context.Context
	cancel context.CancelFunc

	keepAliveDone chan struct{}
}

// NewSSHBackend applies config's zero-value defaults, as
// cli/ssh_backend.go's NewSSHBackend does.
func NewSSHBackend(config SSHConfig) *SSHBackend {
	if config.Port == 0 {
		config.Port = 22
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.TermType == "" {
		config.TermType = "xterm"
	}
	if config.Cols == 0 {
		config.Cols = 80
	}
	if config.Rows == 0 {
		config.Rows = 24
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SSHBackend{config: config, ctx: ctx, cancel: cancel}
}

func (s *SSHBackend) setState(next ConnectionState) {
	s.stateMu.Lock()
	prev := s.state
	s.state = next
	s.stateMu.Unlock()
	log.Printf("ssh: state change: %s -> %s", prev, next)
}

// State reports the connection's current ConnectionState.
func (s *SSHBackend) State() ConnectionState {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

// Connect dials, authenticates, requests a PTY and starts the remote shell,
// following the same sequence as cli/ssh_backend.go's Connect plus
// createSession.
func (s *SSHBackend) Connect() error {
	if s.State() == StateConnected {
		return errors.New("already connected")
	}
	s.setState(StateConnecting)

	clientConfig, err := s.buildClientConfig()
	if err != nil {
		s.lastErr = err
		s.setState(StateError)
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	conn, err := net.DialTimeout("tcp", addr, s.config.Timeout)
	if err != nil {
		s.lastErr = fmt.Errorf("dial %s: %w", addr, err)
		s.setState(StateError)
		return s.lastErr
	}
	conn.SetDeadline(time.Now().Add(s.config.Timeout))

	s.setState(StateAuthenticating)

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		conn.Close()
		s.lastErr = fmt.Errorf("ssh handshake: %w", err)
		s.setState(StateError)
		return s.lastErr
	}
	conn.SetDeadline(time.Time{})

	s.client = ssh.NewClient(sshConn, chans, reqs)

	if err := s.createSession(); err != nil {
		s.client.Close()
		s.client = nil
		s.lastErr = err
		s.setState(StateError)
		return err
	}

	s.setState(StateConnected)
	if s.config.KeepAlive > 0 {
		s.startKeepAlive()
	}
	return nil
}

func (s *SSHBackend) buildClientConfig() (*ssh.ClientConfig, error) {
	methods, err := s.buildAuthMethods()
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, errors.New("no authentication methods available")
	}
	hostKeyCallback, err := s.buildHostKeyCallback()
	if err != nil {
		return nil, err
	}
	return &ssh.ClientConfig{
		User:            s.config.Username,
		Auth:            methods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         s.config.Timeout,
	}, nil
}

// buildAuthMethods tries public key then password then keyboard-interactive,
// the same priority order as cli/ssh_backend.go's buildAuthMethods minus the
// agent stub (the teacher's own getAgentAuth never completed real agent
// support either).
func (s *SSHBackend) buildAuthMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if s.config.PrivateKeyPath != "" {
		if keyAuth, err := s.publicKeyAuth(); err != nil {
			log.Printf("ssh: public key auth unavailable: %v", err)
		} else if keyAuth != nil {
			methods = append(methods, keyAuth)
		}
	}
	if s.config.Password != "" {
		methods = append(methods, ssh.Password(s.config.Password))
	}
	methods = append(methods, ssh.KeyboardInteractive(s.keyboardInteractive))
	return methods, nil
}

func (s *SSHBackend) publicKeyAuth() (ssh.AuthMethod, error) {
	keyPath := s.config.PrivateKeyPath
	if strings.HasPrefix(keyPath, "~/") {
		home, _ := os.UserHomeDir()
		keyPath = filepath.Join(home, keyPath[2:])
	}
	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key %s: %w", keyPath, err)
	}
	var signer ssh.Signer
	if s.config.KeyPassphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(keyData, []byte(s.config.KeyPassphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(keyData)
	}
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return ssh.PublicKeys(signer), nil
}

// keyboardInteractive auto-answers password-looking prompts, answers echoed
// prompts with an empty string, and fails closed on any other hidden
// prompt, since this demo has no interactive prompt handler.
func (s *SSHBackend) keyboardInteractive(_, _ string, questions []string, echos []bool) ([]string, error) {
	answers := make([]string, len(questions))
	for i, q := range questions {
		if strings.Contains(strings.ToLower(q), "password") && s.config.Password != "" {
			answers[i] = s.config.Password
			continue
		}
		if echos[i] {
			answers[i] = ""
			continue
		}
		return nil, fmt.Errorf("no answer available for prompt %q", q)
	}
	return answers, nil
}

// buildHostKeyCallback mirrors cli/ssh_backend.go's buildHostKeyCallback:
// known_hosts verification by default, with an explicit opt-in escape hatch.
func (s *SSHBackend) buildHostKeyCallback() (ssh.HostKeyCallback, error) {
	if s.config.Insecure {
		log.Printf("ssh: WARNING - host key verification disabled")
		return ssh.InsecureIgnoreHostKey(), nil
	}

	path := s.config.KnownHostsPath
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".ssh", "known_hosts")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create known_hosts dir: %w", err)
		}
		if err := os.WriteFile(path, nil, 0600); err != nil {
			return nil, fmt.Errorf("create known_hosts file: %w", err)
		}
	}

	callback, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("load known_hosts: %w", err)
	}
	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		err := callback(hostname, remote, key)
		var keyErr *knownhosts.KeyError
		if errors.As(err, &keyErr) && len(keyErr.Want) == 0 {
			return fmt.Errorf("unknown host key for %s (add it to %s to trust it): %w", hostname, path, err)
		}
		return err
	}, nil
}

func (s *SSHBackend) createSession() error {
	session, err := s.client.NewSession()
	if err != nil {
		return fmt.Errorf("new ssh session: %w", err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty(s.config.TermType, s.config.Rows, s.config.Cols, modes); err != nil {
		session.Close()
		return fmt.Errorf("request pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		return fmt.Errorf("stdout pipe: %w", err)
	}

	s.outputReader, s.outputWriter = io.Pipe()
	go func() {
		io.Copy(s.outputWriter, stdout)
		s.outputWriter.Close()
	}()

	if err := session.Shell(); err != nil {
		session.Close()
		return fmt.Errorf("start shell: %w", err)
	}

	s.session = session
	s.stdin = stdin
	go s.monitorSession()
	return nil
}

func (s *SSHBackend) monitorSession() {
	err := s.session.Wait()
	if s.State() == StateConnected {
		s.lastErr = err
		s.setState(StateDisconnected)
	}
}

func (s *SSHBackend) startKeepAlive() {
	s.keepAliveDone = make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.config.KeepAlive)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, _, err := s.client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
					log.Printf("ssh: keepalive failed: %v", err)
				}
			case <-s.keepAliveDone:
				return
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Read implements io.Reader by draining the remote's merged stdout stream.
func (s *SSHBackend) Read(p []byte) (int, error) {
	if s.outputReader == nil {
		return 0, io.EOF
	}
	return s.outputReader.Read(p)
}

// Write implements io.Writer by forwarding keystrokes to the remote stdin.
func (s *SSHBackend) Write(p []byte) (int, error) {
	if s.stdin == nil {
		return 0, errors.New("ssh: not connected")
	}
	return s.stdin.Write(p)
}

// Resize sends an SSH window-change request, as cli/ssh_backend.go's
// Resize does.
func (s *SSHBackend) Resize(cols, rows int) error {
	if s.session == nil {
		return errors.New("ssh: not connected")
	}
	s.config.Cols, s.config.Rows = cols, rows
	return s.session.WindowChange(rows, cols)
}

// Close tears the session and client down and stops the keepalive loop.
func (s *SSHBackend) Close() error {
	if s.keepAliveDone != nil {
		close(s.keepAliveDone)
		s.keepAliveDone = nil
	}
	s.cancel()
	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	if s.outputWriter != nil {
		s.outputWriter.Close()
	}
	s.setState(StateDisconnected)
	return nil
}
