package pkg

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const EnvPrefix = "CONNECTTERM_"

// LoadEnv loads variables from a .env file without overriding ones already
// set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(GetEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// ClientConfig configures a local game
type ClientConfig struct {
	LogPath    string
	Debug      bool
	FPS        int
	WinDelay   time.Duration
	Theme      string
	ThemesPath string
	Board      string
	FirstMatch bool
	Name       string
}

// Flags registers the client flags on flags, defaulting to the environment
func (c *ClientConfig) Flags(flags *flag.FlagSet) {
	flags.StringVar(&c.LogPath, "log", GetEnv("LOG", ""), "path to log file")
	flags.BoolVar(&c.Debug, "debug", GetEnvAsBool("DEBUG", false), "enable debug logging")
	flags.IntVar(&c.FPS, "fps", GetEnvAsInt("FPS", 30), "frames per second")
	flags.DurationVar(&c.WinDelay, "win-delay", GetEnvAsDuration("WIN_DELAY", time.Second), "time the winning board stays on screen")
	flags.StringVar(&c.Theme, "theme", GetEnv("THEME", "basic"), "theme name")
	flags.StringVar(&c.ThemesPath, "themes", GetEnv("THEMES", ""), "path to a JSON file of extra themes")
	flags.StringVar(&c.Board, "board", GetEnv("BOARD", ""), "pre-fill the board, e.g. 0000000/0000000/0000000/0000000/0000000/1200000")
	flags.BoolVar(&c.FirstMatch, "first-match", GetEnvAsBool("FIRST_MATCH", false), "report the first winning line found instead of the last")
	flags.StringVar(&c.Name, "name", GetEnv("NAME", ""), "session name used in logs")
}

// ServerConfig configures the SSH host
type ServerConfig struct {
	Listen      string
	Binary      string
	HostKey     string
	IdleTimeout time.Duration
	LogPath     string
	Debug       bool
}

// Flags registers the server flags on flags, defaulting to the environment
func (c *ServerConfig) Flags(flags *flag.FlagSet) {
	flags.StringVar(&c.Listen, "listen", GetEnv("LISTEN", ":2222"), "SSH listen address")
	flags.StringVar(&c.Binary, "binary", GetEnv("BINARY", "connectterm"), "path to the connectterm client")
	flags.StringVar(&c.HostKey, "host-key", GetEnv("HOST_KEY", ""), "path to the SSH host key, generated when empty")
	flags.DurationVar(&c.IdleTimeout, "idle-timeout", GetEnvAsDuration("IDLE_TIMEOUT", 5*time.Minute), "disconnect idle sessions")
	flags.StringVar(&c.LogPath, "log", GetEnv("LOG", "./server.log"), "path to log file")
	flags.BoolVar(&c.Debug, "debug", GetEnvAsBool("DEBUG", false), "enable debug logging")
}
