// Package logging provides the application-wide zap logger. Output goes to
// a rotated file because the terminal belongs to the UI.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *Logger
	raw    *zap.Logger

	noopLogger = &Logger{zap.NewNop().Sugar()}

	atomicLevel zap.AtomicLevel
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields and returns a new Logger.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger, or a no-op one before Init.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Raw returns the underlying zap.Logger, or a no-op one before Init.
func Raw() *zap.Logger {
	if raw == nil {
		return zap.NewNop()
	}
	return raw
}

// Options controls Init.
type Options struct {
	AppName string
	Env     string // "dev" writes console lines, anything else JSON
	Level   string
	Path    string // Overrides the XDG state location
}

// Init installs the global logger and returns the file it writes to.
func Init(opts Options) string {
	logPath := opts.Path
	if logPath == "" {
		logPath = selectLogPath(opts.AppName, opts.Env)
	}

	atomicLevel = zap.NewAtomicLevelAt(ParseLevel(opts.Level))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if opts.Env == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	raw = zap.New(core, zap.AddCaller())
	logger = &Logger{raw.Sugar()}

	logger.Infow("logger initialized", "env", opts.Env, "path", logPath)
	return logPath
}

// InitTest installs a development logger writing to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// Sync flushes buffered entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// SetLevel changes the level at runtime.
func SetLevel(level string) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(ParseLevel(level))
	}
}

// ParseLevel maps a level name to zap; unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func selectLogPath(appName, env string) string {
	fileName := "app.log"
	if env == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}
