package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type ctxKey struct{}

// WithRequestID returns a copy of ctx tagged with id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	json   bool
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level, "text")
}

// NewWithWriter creates a Logger writing to w in the given format ("text" or "json").
func NewWithWriter(w io.Writer, level, format string) Logger {
	l := &implLogger{
		out:   w,
		level: strings.ToLower(level),
		json:  strings.EqualFold(format, "json"),
	}
	if !l.json {
		l.logger = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewWithWriter(io.Discard, "error", "text")
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

type entry struct {
	Time      string `json:"ts"`
	Level     string `json:"level"`
	RequestID string `json:"request_id,omitempty"`
	Msg       string `json:"msg"`
}

func (l *implLogger) write(ctx context.Context, level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	text := fmt.Sprintf(msg, args...)
	id := RequestID(ctx)

	if l.json {
		b, err := json.Marshal(entry{
			Time:      time.Now().UTC().Format(time.RFC3339Nano),
			Level:     level,
			RequestID: id,
			Msg:       text,
		})
		if err != nil {
			return
		}
		_, _ = l.out.Write(append(b, '\n'))
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if id != "" {
		prefix += "[" + id + "] "
	}
	l.logger.Print(prefix + text)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}
