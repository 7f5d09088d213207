package logger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	global   *zap.SugaredLogger = zap.NewNop().Sugar()
	globalMx sync.RWMutex
)

// Init builds the process logger. format is "json" or "console".
func Init(level, format string) error {
	var cfg zap.Config
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel, level-%s: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetGlobal(l.Sugar())
	return nil
}

func SetGlobal(l *zap.SugaredLogger) {
	globalMx.Lock()
	defer globalMx.Unlock()

	global = l
}

func Sync() {
	_ = fromContext(context.Background()).Sync()
}

// ToContext attaches l to ctx; every helper in this package logs through it.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// With returns ctx carrying the current logger extended with keysAndValues.
func With(ctx context.Context, keysAndValues ...any) context.Context {
	return ToContext(ctx, fromContext(ctx).With(keysAndValues...))
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	return fromContext(ctx)
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}

	globalMx.RLock()
	defer globalMx.RUnlock()
	return global
}

func Debug(ctx context.Context, args ...any) { fromContext(ctx).Debug(args...) }
func Info(ctx context.Context, args ...any)  { fromContext(ctx).Info(args...) }
func Warn(ctx context.Context, args ...any)  { fromContext(ctx).Warn(args...) }
func Error(ctx context.Context, args ...any) { fromContext(ctx).Error(args...) }
func Fatal(ctx context.Context, args ...any) { fromContext(ctx).Fatal(args...) }

func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Fatalf(format, args...)
}
