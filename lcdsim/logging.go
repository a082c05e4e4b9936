package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logs holds the simulator's zap logger and the slog logger handed to the
// prompt library. Both write to the same file so the terminal stays free for
// the display.
type logs struct {
	zap  *zap.Logger
	slog *slog.Logger
	file *os.File
}

// openLogs creates the loggers for level ("debug", "info", "warn", "error").
// An empty level or path disables logging.
func openLogs(level, path string) (*logs, error) {
	if level == "" || path == "" {
		return &logs{
			zap:  zap.NewNop(),
			slog: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)})),
		}, nil
	}

	zapLevel, slogLevel := logLevels(level)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zap.NewAtomicLevelAt(zapLevel))

	return &logs{
		zap:  zap.New(core, zap.AddCaller()).Named("lcdsim"),
		slog: slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slogLevel})),
		file: f,
	}, nil
}

// logLevels maps a level name onto both libraries. Unknown names mean info.
func logLevels(level string) (zapcore.Level, slog.Level) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, slog.LevelDebug
	case "warn":
		return zapcore.WarnLevel, slog.LevelWarn
	case "error":
		return zapcore.ErrorLevel, slog.LevelError
	}
	return zapcore.InfoLevel, slog.LevelInfo
}

func (l *logs) Close() error {
	_ = l.zap.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
