// Package logging provides structured logging for cardtree components,
// built on go.uber.org/zap.
//
// # Basic usage
//
//	logger := logging.Default()
//	logger.Info("walk started", "entity", root)
//	defer logger.Close()
//
// # File logging
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelInfo,
//	    LogDir:  "~/.cardtree/logs",
//	    Service: "cardtree",
//	})
//	defer logger.Close()
//
// This writes JSON-formatted entries to "{service}_{date}.log" in LogDir,
// in addition to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Config configures a Logger. The zero value logs Debug+ (Level's zero
// value is LevelDebug) to stderr in human-readable form.
type Config struct {
	// Level is the minimum level that reaches any destination.
	Level Level

	// LogDir, if set, enables an additional JSON file destination:
	// "{LogDir}/{Service}_{YYYY-MM-DD}.log". Supports a leading "~".
	LogDir string

	// Service is attached to every entry as the "service" field.
	Service string

	// JSON forces JSON-formatted stderr output. File output is always
	// JSON regardless of this setting.
	JSON bool

	// Quiet disables the stderr destination entirely.
	Quiet bool
}

// Logger wraps a zap.SugaredLogger with cardtree's Config-driven,
// multi-destination setup.
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// New builds a Logger from config.
func New(config Config) *Logger {
	var cores []zapcore.Core
	enabler := zap.NewAtomicLevelAt(config.Level.zapLevel())

	if !config.Quiet {
		enc := encoderConfig()
		var encoder zapcore.Encoder
		if config.JSON {
			encoder = zapcore.NewJSONEncoder(enc)
		} else {
			enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(enc)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), enabler))
	}

	l := &Logger{}
	if config.LogDir != "" {
		dir := expandPath(config.LogDir)
		if err := os.MkdirAll(dir, 0o750); err == nil {
			service := config.Service
			if service == "" {
				service = "cardtree"
			}
			name := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
			if f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640); err == nil {
				l.file = f
				cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(f), enabler))
			}
		}
	}

	var core zapcore.Core
	if len(cores) == 0 {
		core = zapcore.NewNopCore()
	} else {
		core = zapcore.NewTee(cores...)
	}

	zl := zap.New(core)
	if config.Service != "" {
		zl = zl.With(zap.String("service", config.Service))
	}
	l.sugar = zl.Sugar()
	return l
}

// Default returns an Info-level logger writing human-readable text to
// stderr, tagged with service "cardtree".
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "cardtree"})
}

func (l *Logger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

// With returns a child Logger with additional structured fields attached
// to every subsequent entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sugar: l.sugar.With(args...), file: l.file}
}

// Close flushes buffered log entries and closes any open log file.
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
