package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	gliderssh "github.com/gliderlabs/ssh"
	"github.com/qnkhuat/connectterm/pkg"
	"github.com/qnkhuat/connectterm/pkg/ssh"
)

const ShutdownTimeout = 10 * time.Second

var cfg pkg.ServerConfig

func init() {
	log.SetFlags(0)

	if err := pkg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Flags(flag.CommandLine)
}

func main() {
	flag.Parse()

	logger, err := pkg.InitLog(cfg.LogPath, "server", cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	server, err := ssh.NewServer(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe()
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-done:
		logger.Errorw("server stopped", "error", err)
		log.Fatal(err)
	case sig := <-sigc:
		logger.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warnw("open sessions were cut", "error", err)
	}
	if err := <-done; err != nil && !errors.Is(err, gliderssh.ErrServerClosed) {
		logger.Errorw("server stopped", "error", err)
	}
}
