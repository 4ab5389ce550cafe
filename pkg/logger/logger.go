package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init builds the global logger for the given environment.
// production uses JSON output, everything else the colored console encoder.
func Init(env string) {
	var cfg zap.Config
	switch env {
	case "production", "prod":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// development config panics on DPanic, keep the server alive instead
		cfg.Development = false
	}

	l, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return
	}

	Set(l)
}

// Set replaces the global logger. Used by Init and by tests.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(msg string, args ...any) {
	get().Debugw(msg, pairs(args)...)
}

func Info(msg string, args ...any) {
	get().Infow(msg, pairs(args)...)
}

func Warn(msg string, args ...any) {
	get().Warnw(msg, pairs(args)...)
}

func Error(msg string, args ...any) {
	get().Errorw(msg, pairs(args)...)
}

func Fatal(msg string, args ...any) {
	get().Fatalw(msg, pairs(args)...)
}

// Sync flushes buffered entries, call before exit.
func Sync() {
	_ = get().Sync()
}

// pairs turns loose arguments into key/value pairs. A bare error becomes
// "error", any other unkeyed value becomes "arg".
func pairs(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i++
			continue
		}

		switch v := args[i].(type) {
		case error:
			out = append(out, "error", v.Error())
		default:
			out = append(out, "arg", v)
		}
	}
	return out
}
