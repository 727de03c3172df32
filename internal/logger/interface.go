package logger

import "context"

// Logger is a leveled printf-style logger. Lines logged with a context that
// carries a request ID are tagged with it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
