package logger

import (
	"context"

	"github.com/ecovance/disclose/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// SetLevel переключает уровень логирования для всего процесса.
func SetLevel(level zapcore.Level) {
	global = global.WithOptions(zap.IncreaseLevel(level))
}

func withCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		return global.With("request_id", reqID)
	}
	return global
}

func Info(ctx context.Context, msg string) {
	withCtx(ctx).Info(msg)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	withCtx(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	withCtx(ctx).Fatal(err.Error())
}
