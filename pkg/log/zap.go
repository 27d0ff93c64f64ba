package log

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a zap-backed Logger from cfg. An unbuildable config falls
// back to zap's development logger so startup never fails on logging.
func Init(cfg ZapConfig) Logger {
	var zcfg zap.Config
	if cfg.Mode == ModeProduction {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	switch cfg.Encoding {
	case EncodingJSON:
		zcfg.Encoding = EncodingJSON
	case EncodingConsole:
		zcfg.Encoding = EncodingConsole
	}

	if cfg.ColorEnabled && zcfg.Encoding == EncodingConsole {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l, _ = zap.NewDevelopment()
	}

	return &zapLogger{sugar: l.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// with attaches context fields to the sugared logger.
func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := GetRequestID(ctx); id != "" {
		return l.sugar.With(KeyRequestID, id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	l.with(ctx).Debugw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	l.with(ctx).Infow(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	l.with(ctx).Warnw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	l.with(ctx).Errorw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.with(ctx).DPanicw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	l.with(ctx).Panicw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	l.with(ctx).Fatalw(message(arg), keysAndValues(arg)...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// message and keysAndValues split the variadic form used across the code
// base: Info(ctx, "msg", "key", value, ...). Non-string leading args are
// rendered with fmt semantics instead.
func message(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	if s, ok := arg[0].(string); ok && len(arg)%2 == 1 {
		return s
	}
	return fmt.Sprint(arg...)
}

func keysAndValues(arg []any) []any {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return nil
	}
	if _, ok := arg[0].(string); !ok {
		return nil
	}
	return arg[1:]
}
