//go:build windows
// +build windows

package ssh

import (
	"context"
	"errors"
	"net"

	"github.com/qnkhuat/connectterm/pkg"
	"go.uber.org/zap"
)

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("ssh: hosting is not supported on windows")

type Server struct{}

func NewServer(cfg pkg.ServerConfig, logger *zap.SugaredLogger) (*Server, error) {
	return nil, ErrUnsupported
}

func (s *Server) ListenAndServe() error {
	return ErrUnsupported
}

func (s *Server) Serve(l net.Listener) error {
	return ErrUnsupported
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}
