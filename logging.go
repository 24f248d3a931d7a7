package printforge

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface so embedders with
// an existing zap setup can route SDK logs through it.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (z *ZapLogger) Debug(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *ZapLogger) Info(format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Error(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
