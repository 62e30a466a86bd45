//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"net"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/connectterm/pkg"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func startServer(t *testing.T, binary string) string {
	t.Helper()

	s, err := NewServer(pkg.ServerConfig{Binary: binary, IdleTimeout: time.Minute}, nil)
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(l)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, s.Shutdown(ctx))
		require.True(t, errors.Is(<-done, ssh.ErrServerClosed))
	})

	return l.Addr().String()
}

func dial(t *testing.T, addr string) *gossh.Client {
	t.Helper()

	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "player",
		Auth:            []gossh.AuthMethod{gossh.Password("anything")},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(pkg.ServerConfig{}, nil)
	require.ErrorIs(t, err, ErrNoBinary)

	_, err = NewServer(pkg.ServerConfig{Binary: "connectterm", HostKey: filepath.Join(t.TempDir(), "missing")}, nil)
	require.Error(t, err)

	s, err := NewServer(pkg.ServerConfig{Binary: "connectterm"}, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultIdleTimeout, s.IdleTimeout)
}

func TestCommand(t *testing.T) {
	s, err := NewServer(pkg.ServerConfig{Binary: "connectterm"}, nil)
	require.NoError(t, err)

	cmd := s.command(context.Background(), "lucky-otter", "xterm-256color")
	require.Equal(t, []string{"connectterm", "-name", "lucky-otter"}, cmd.Args)
	require.Equal(t, []string{"TERM=xterm-256color"}, cmd.Env)
}

func TestRejectNonInteractive(t *testing.T) {
	client := dial(t, startServer(t, "connectterm"))

	session, err := client.NewSession()
	require.NoError(t, err)
	defer session.Close()

	out, err := session.CombinedOutput("")
	require.Contains(t, string(out), "non-interactive terminals are not supported")

	var exit *gossh.ExitError
	require.ErrorAs(t, err, &exit)
	require.Equal(t, 1, exit.ExitStatus())
}

func TestSpawnOnPty(t *testing.T) {
	echo, err := exec.LookPath("echo")
	if err != nil {
		t.Skip("echo not available")
	}

	client := dial(t, startServer(t, echo))

	session, err := client.NewSession()
	require.NoError(t, err)
	defer session.Close()

	require.NoError(t, session.RequestPty("xterm", 24, 80, gossh.TerminalModes{}))

	out, err := session.Output("")
	require.NoError(t, err)
	require.Contains(t, string(out), "-name ")
}
