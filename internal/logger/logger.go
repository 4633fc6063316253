package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
}

// New builds the application logger for env. Local runs get a human readable
// console writer on stderr; dev and prod emit JSON.
func New(env string) (zerolog.Logger, error) {
	return NewWithWriter(env, os.Stderr)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(env string, out io.Writer) (zerolog.Logger, error) {
	var (
		level zerolog.Level
		w     = out
	)
	switch env {
	case EnvDev:
		level = zerolog.DebugLevel
	case EnvProd:
		level = zerolog.InfoLevel
	case EnvLocal:
		level = zerolog.WarnLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", env)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger(), nil
}
