package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = zap.NewNop()
	logPath string
)

// Setup points the global logger at <root>/.advent/logs/advent.log and
// returns a cleanup func that flushes and closes it and restores the no-op
// logger.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, ".advent", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setNop()
		return nil, err
	}
	path := filepath.Join(dir, "advent.log")

	// One sink serves both regular and internal error output.
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		setNop()
		return nil, err
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = func(t time.Time, pe zapcore.PrimitiveArrayEncoder) {
		pe.AppendString(t.UTC().Format(time.RFC3339Nano))
	}

	opts := []zap.Option{
		zap.ErrorOutput(sink),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if cfg.Debug {
		opts = append(opts, zap.AddCaller())
	}

	l := zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, level), opts...)

	mu.Lock()
	global = l
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", zap.String("path", path), zap.Bool("debug", cfg.Debug))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		serr := l.Sync()
		closeSink()
		if global == l {
			global = zap.NewNop()
			logPath = ""
		}
		return serr
	}

	return cleanup, nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the active log file, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setNop() {
	mu.Lock()
	defer mu.Unlock()
	global = zap.NewNop()
	logPath = ""
}
