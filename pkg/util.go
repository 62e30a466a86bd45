package pkg

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLog returns a logger appending to dest, named after the process.
// The terminal belongs to the screen, so nothing is written to stderr.
// An empty dest discards every entry.
func InitLog(dest, name string, debug bool) (*zap.SugaredLogger, error) {
	if dest == "" {
		return zap.NewNop().Sugar(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{dest}
	cfg.ErrorOutputPaths = []string{dest}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(LogTimeFormat)
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", dest, err)
	}

	return logger.Named(name).Sugar(), nil
}

const LogTimeFormat = "2006-01-02 15:04:05"

// SessionName returns a readable name like "lucky-otter"
func SessionName() string {
	return petname.Generate(2, "-")
}
