package logging

import (
	"context"

	zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/numaproj/orca/pkg/shared/util"
)

// level is shared by every logger built by NewLogger so that the log level
// can be changed at runtime, e.g. when the config file is reloaded.
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// NewLogger returns a new zap.SugaredLogger
func NewLogger() *zap.SugaredLogger {
	var config zap.Config
	if util.LookupEnvBoolOr("ORCA_DEBUG", false) {
		config = zap.NewDevelopmentConfig()
		level.SetLevel(zapcore.DebugLevel)
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = level
	config.OutputPaths = []string{"stdout"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger.Named("orca").Sugar()
}

// SetLevel changes the level of all the loggers created by NewLogger.
// Unknown level names are ignored and reported as an error.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

type loggerKey struct{}

// WithLogger returns a copy of parent context in which the
// value associated with logger key is the supplied logger.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger in the context.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}
	return NewLogger()
}
