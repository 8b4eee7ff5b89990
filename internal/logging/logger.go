// Package logging is the central logging package of the CLI. It holds our custom log formatters for zap.
//
// Standard output is reserved for the JSON document that `runjson` produces, so every log level is routed to
// standard error.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewProductionLogger returns a logger that prints Info and above to stderr.
func NewProductionLogger() *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		MessageKey: "M",
		LevelKey:   "L",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			// Anything other than "info" logs will have a capitalized level prefix.
			if lvl != zapcore.InfoLevel {
				zapcore.CapitalColorLevelEncoder(lvl, enc)
			}
		},
	})

	levels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level != zapcore.DebugLevel
	})

	return zap.New(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), levels),
	).Sugar()
}

// NewDebugLogger is similar to our production logger, however it also includes debug output & stacktraces
func NewDebugLogger() *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		LevelKey:      "L",
		MessageKey:    "M",
		NameKey:       "N",
		StacktraceKey: "S",
		TimeKey:       "T",
		EncodeLevel:   zapcore.CapitalColorLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
	})

	return zap.New(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.DebugLevel),
	).WithOptions(
		zap.Development(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Sugar()
}
