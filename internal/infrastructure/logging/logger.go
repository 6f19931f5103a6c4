package logging

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile = "logs/app.log"

	// Rotation policy for the file sink.
	fileMaxSizeMB  = 50
	fileMaxBackups = 5

	// Writes are buffered so log calls never block the request path on
	// disk or terminal I/O.
	flushInterval = time.Second
	bufferSize    = 256 * 1024
)

// Config controls the process-wide log pipeline.
type Config struct {
	// Level is the minimum severity ("debug", "info", "warn", "error").
	// Events below it are dropped before encoding.
	Level string
	// File is the rotating log file path. Empty means defaultLogFile.
	File string
}

var (
	mu      sync.RWMutex
	logger  = zap.NewNop()
	buffers []*zapcore.BufferedWriteSyncer
)

// Setup installs the package logger: a colorized console core and a plain
// rotating-file core behind buffered write syncers. Call once at startup.
func Setup(cfg Config) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	atom := zap.NewAtomicLevelAt(level)

	file := cfg.File
	if file == "" {
		file = defaultLogFile
	}
	_ = os.MkdirAll(filepath.Dir(file), 0o755)

	consoleCfg := encoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	fileCfg := encoderConfig()
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	consoleWS := &zapcore.BufferedWriteSyncer{
		WS:            zapcore.Lock(os.Stdout),
		Size:          bufferSize,
		FlushInterval: flushInterval,
	}
	fileWS := &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			Compress:   true,
		}),
		Size:          bufferSize,
		FlushInterval: flushInterval,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), consoleWS, atom),
		zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), fileWS, atom),
	)

	mu.Lock()
	defer mu.Unlock()
	logger = zap.New(core, zap.AddCaller())
	buffers = []*zapcore.BufferedWriteSyncer{consoleWS, fileWS}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	// Emit the originating function next to file:line so a log line alone
	// names where it came from.
	cfg.FunctionKey = "function"
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

// L returns the process logger. Before Setup it is a nop logger, so library
// code can log unconditionally.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// For returns the process logger enriched with the request id bound to ctx.
func For(ctx context.Context) *zap.Logger {
	return L().With(zap.String("request_id", RequestID(ctx)))
}

// Drain flushes everything still sitting in the write buffers. Call it on
// shutdown; losing queued lines on a clean exit is a defect. Sink errors are
// swallowed, a broken disk must not turn shutdown into a crash.
func Drain() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	for _, b := range buffers {
		_ = b.Stop()
	}
	buffers = nil
}
