// Package logger monta o logger estruturado (zap) da aplicação
package logger

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options define como o logger é construído
type Options struct {
	Env   string // "production" usa JSON; qualquer outro valor usa console
	Level string // debug, info, warn, error

	// Stderr envia tudo para stderr. Obrigatório no modo MCP, em que o
	// stdout transporta o protocolo.
	Stderr bool
}

// New cria um logger de acordo com o ambiente
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if opts.Env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if opts.Stderr {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inicializar logger")
	}
	return log, nil
}

// ParseLevel converte LOG_LEVEL em zapcore.Level. Vazio equivale a info.
func ParseLevel(value string) (zapcore.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return zapcore.InfoLevel, errors.Errorf("LOG_LEVEL inválido: %q", value)
	}
	return level, nil
}

