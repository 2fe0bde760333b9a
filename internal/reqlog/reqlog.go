// Package reqlog tags log lines with the id of the request that produced them.
package reqlog

import (
	"context"
	"log"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id from ctx, or "" when none is set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger writes "[level] request_id=... operation=..." lines through the
// standard logger.
type Logger struct {
	requestID string
}

func New(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{requestID: rid}
}

func (l *Logger) Error(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) Infof(operation string, format string, args ...any) {
	l.printf("info", operation, format, args...)
}

func (l *Logger) Warnf(operation string, format string, args ...any) {
	l.printf("warn", operation, format, args...)
}

func (l *Logger) printf(level, operation, format string, args ...any) {
	log.Printf("[%s] request_id=%s operation=%s "+format, append([]any{level, l.requestID, operation}, args...)...)
}
