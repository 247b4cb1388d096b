package intvec

import "go.uber.org/zap"

// tracer receives one entry per lifecycle operation, in invocation
// order. Off by default.
var tracer = zap.NewNop()

// SetTracer installs l as the lifecycle trace logger and returns the
// previous one. Passing nil silences tracing.
func SetTracer(l *zap.Logger) *zap.Logger {
	prev := tracer
	if l == nil {
		l = zap.NewNop()
	}
	tracer = l
	return prev
}

func trace(op string, fields ...zap.Field) {
	tracer.Info(op, fields...)
}
