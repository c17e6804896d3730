// Package logger arma el logger zerolog de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envDevelopment = "development"

// Config opciones para el logger.
type Config struct {
	App   string    // se agrega como campo "app" a cada línea
	Env   string    // development -> consola legible; otro -> JSON
	Level string    // trace, debug, info, warn(ing), error
	Out   io.Writer // opcional; por defecto os.Stdout
}

// Logger raíz de la aplicación. Los componentes reciben sub-loggers vía Named.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y redirige el global de zerolog (lo usa la capa HTTP).
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == envDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	l := &Logger{zl: ctx.Logger()}
	log.Logger = l.zl
	return l
}

// ParseLevel nivel por nombre, sin distinguir mayúsculas; info si no se reconoce.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named sub-logger con el campo component fijo (store, http, seed...).
func (l *Logger) Named(component string) zerolog.Logger {
	return l.zl.With().Str("component", component).Logger()
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
