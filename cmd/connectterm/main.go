package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/connectterm/pkg"
	"github.com/qnkhuat/connectterm/pkg/board"
	"github.com/qnkhuat/connectterm/pkg/game"
	"github.com/qnkhuat/connectterm/pkg/gui"
	"golang.org/x/term"
)

var cfg pkg.ClientConfig

func init() {
	log.SetFlags(0)

	if err := pkg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Flags(flag.CommandLine)
}

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start connectterm: non-interactive terminals are not supported")
	}

	if cfg.Name == "" {
		cfg.Name = pkg.SessionName()
	}

	logger, err := pkg.InitLog(cfg.LogPath, "client", cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	logger = logger.With("session", cfg.Name)
	defer logger.Sync()

	b := board.New()
	if cfg.Board != "" {
		b, err = board.Parse(cfg.Board)
		if err != nil {
			log.Fatalf("failed to parse board: %s", err)
		}
	}

	theme, err := loadTheme(cfg.Theme, cfg.ThemesPath)
	if err != nil {
		log.Fatal(err)
	}

	precedence := board.LastMatch
	if cfg.FirstMatch {
		precedence = board.FirstMatch
	}

	session := game.NewSession(b, game.Options{
		Name:       cfg.Name,
		WinDelay:   cfg.WinDelay,
		Precedence: precedence,
		Logger:     logger,
	})

	screen, err := gui.NewScreen()
	if err != nil {
		log.Fatal(err)
	}

	loop := &gui.Loop{
		Screen:   screen,
		Session:  session,
		Theme:    theme,
		TickRate: cfg.FPS,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = loop.Run(ctx)
	stop()
	screen.Fini()

	if err != nil {
		logger.Errorw("game aborted", "error", err)
		log.Fatal(err)
	}

	printResult(session)
}

func loadTheme(name, path string) (gui.Theme, error) {
	var themes []gui.ThemeHex
	if path != "" {
		var err error
		themes, err = gui.LoadThemes(path)
		if err != nil {
			return gui.Theme{}, err
		}
	}

	theme, err := gui.ImportThemes(name, themes)
	if err != nil {
		return gui.Theme{}, fmt.Errorf("failed to load theme %q: %w", name, err)
	}
	return theme, nil
}

// printResult reports the outcome once the screen is gone
func printResult(s *game.Session) {
	switch s.Winner() {
	case board.PlayerA:
		color.New(color.FgRed, color.Bold).Printf("%s wins", board.PlayerA)
	case board.PlayerB:
		color.New(color.FgYellow, color.Bold).Printf("%s wins", board.PlayerB)
	default:
		fmt.Print("No winner")
	}
	fmt.Printf(" after %d moves\n", s.Board.Moves())
}
