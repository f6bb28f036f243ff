// Package logger wraps zap with a package-level default and context-carried
// loggers.
package logger

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs at debug level in a human-readable format.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs at info level as JSON.
	ProductionEnvironment = "production"
)

// defaultLogger is used when no logger is found in context.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger with one configured for environment.
func Setup(environment string) error {
	var (
		l   *zap.Logger
		err error
	)
	if environment == DevelopmentEnvironment {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	defaultLogger = l

	return nil
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields attaches fields to every message logged through the returned context.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs msg at debug level, reporting the caller of Debug.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}
