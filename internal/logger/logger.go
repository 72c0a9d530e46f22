// Package logger builds the zerolog logger used by the Lambda functions and
// attaches per-invocation fields from the Lambda context.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/booknook/catalog-lambdas/internal/config"
)

// New returns the process logger for cfg, writing to stdout.
func New(cfg config.LogConfig, service string) zerolog.Logger {
	return NewWithWriter(cfg, service, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg config.LogConfig, service string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// WithInvocation returns a context carrying a child of base tagged with the
// Lambda request id and function name, when they are known.
func WithInvocation(ctx context.Context, base zerolog.Logger) context.Context {
	lc := base.With()

	if lctx, ok := lambdacontext.FromContext(ctx); ok {
		lc = lc.Str("request_id", lctx.AwsRequestID)
	}
	if lambdacontext.FunctionName != "" {
		lc = lc.Str("function", lambdacontext.FunctionName)
	}

	l := lc.Logger()
	return l.WithContext(ctx)
}
