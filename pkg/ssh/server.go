//go:build !windows
// +build !windows

// Package ssh hosts the game over SSH. Every session gets its own
// client process attached to a pseudo-terminal.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/connectterm/pkg"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

const DefaultIdleTimeout = 5 * time.Minute

// ErrNoBinary is returned when no client binary is configured
var ErrNoBinary = errors.New("ssh: client binary must be specified")

// Server spawns Binary for every interactive SSH session
type Server struct {
	ListenAddress string
	Binary        string
	HostKeyFile   string // generated on start when empty
	IdleTimeout   time.Duration
	Logger        *zap.SugaredLogger

	server *ssh.Server
}

// NewServer validates the configuration and prepares the SSH server
func NewServer(cfg pkg.ServerConfig, logger *zap.SugaredLogger) (*Server, error) {
	if cfg.Binary == "" {
		return nil, ErrNoBinary
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}

	s := &Server{
		ListenAddress: cfg.Listen,
		Binary:        cfg.Binary,
		HostKeyFile:   cfg.HostKey,
		IdleTimeout:   cfg.IdleTimeout,
		Logger:        logger,
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		// Anyone may play
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := s.server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("failed to load host key %s: %w", s.HostKeyFile, err)
		}
	}

	return s, nil
}

// ListenAndServe blocks until the server is shut down, then returns
// ssh.ErrServerClosed
func (s *Server) ListenAndServe() error {
	s.Logger.Infow("listening", "address", s.ListenAddress, "binary", s.Binary)
	return s.server.ListenAndServe()
}

// Serve accepts sessions on l
func (s *Server) Serve(l net.Listener) error {
	s.Logger.Infow("listening", "address", l.Addr().String(), "binary", s.Binary)
	return s.server.Serve(l)
}

// Shutdown stops accepting sessions and waits for open ones until ctx
// is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// command builds the client process for a session
func (s *Server) command(ctx context.Context, name, term string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Binary, "-name", name)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sshSession ssh.Session) {
	name := pkg.SessionName()
	log := s.Logger.With("session", name, "user", sshSession.User(), "remote", sshSession.RemoteAddr().String())

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start connectterm: non-interactive terminals are not supported\n")
		log.Infow("rejected non-interactive session")

		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, name, ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		log.Errorw("failed to start client", "error", err)

		sshSession.Exit(1)
		return
	}
	defer f.Close()

	log.Infow("session started", "term", ptyReq.Term)
	start := time.Now()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				log.Debugw("failed to resize", "error", err)
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	err = cmd.Wait()

	log.Infow("session ended", "duration", time.Since(start).Round(time.Second).String(), "error", err)
}
