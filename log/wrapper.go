package log

import (
	"encoding"
	"fmt"
	stdlog "log"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// Wrapper is a simple wrapper of a logging function.
//
// Different binaries might use different logging libraries, and they are not
// always compatible with each other.
// Wrapper is a simple common ground that it's easy to wrap whatever logging
// library we use into.
//
// The zero value (nil) is valid and does nothing.
type Wrapper func(msg string)

var _ encoding.TextUnmarshaler = (*Wrapper)(nil)

// Log calls w with msg. It's safe to call on a nil Wrapper.
func (w Wrapper) Log(msg string) {
	if w != nil {
		w(msg)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It makes Wrapper possible to be used directly in yaml and other config
// files. Supported values are:
//
// - "" (empty) and "nop": NopWrapper
//
// - "std": StdWrapper with the stdlib default logger
//
// - "zap": ZapWrapper with info level
//
// - "zap:level": ZapWrapper with the given level, e.g. "zap:warn"
func (w *Wrapper) UnmarshalText(text []byte) error {
	const zapPrefix = "zap:"
	s := string(text)
	switch {
	case s == "", s == "nop":
		*w = NopWrapper
	case s == "std":
		*w = StdWrapper(stdlog.Default())
	case s == "zap":
		*w = ZapWrapper(zapcore.InfoLevel)
	case strings.HasPrefix(s, zapPrefix):
		level := Level(strings.TrimPrefix(s, zapPrefix))
		if level.ToZapLevel() == ZapNopLevel && level != NopLevel {
			return fmt.Errorf("unsupported log.Wrapper level: %q", text)
		}
		*w = ZapWrapper(level.ToZapLevel())
	default:
		return fmt.Errorf("unsupported log.Wrapper config: %q", text)
	}
	return nil
}

// NopWrapper is a Wrapper implementation that does nothing.
func NopWrapper(msg string) {}

// StdWrapper wraps stdlib log package into a Wrapper.
func StdWrapper(logger *stdlog.Logger) Wrapper {
	if logger == nil {
		return NopWrapper
	}
	return func(msg string) {
		logger.Print(msg)
	}
}

// TestWrapper is a wrapper can be used in test codes.
//
// It fails the test when called.
func TestWrapper(tb testing.TB) Wrapper {
	return func(msg string) {
		tb.Errorf("logger called with msg: %q", msg)
	}
}

// ZapWrapper wraps the global zap logger into a Wrapper.
func ZapWrapper(logLevel zapcore.Level) Wrapper {
	return func(msg string) {
		switch logLevel {
		default:
			// for unknown values, fallback to info level.
			fallthrough
		case zapcore.InfoLevel:
			logger.Info(msg)
		case zapcore.DebugLevel:
			logger.Debug(msg)
		case zapcore.WarnLevel:
			logger.Warn(msg)
		case zapcore.ErrorLevel:
			logger.Error(msg)
		case zapcore.PanicLevel:
			logger.Panic(msg)
		case zapcore.FatalLevel:
			logger.Fatal(msg)
		case ZapNopLevel:
			// do nothing
		}
	}
}
