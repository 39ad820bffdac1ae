package logger

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// Level controls which messages are written.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelError))
}

// SetLevel sets the minimum level that gets logged
func SetLevel(l Level) {
	current.Store(int32(l))
}

// GetLevel returns the current minimum level
func GetLevel() Level {
	return Level(current.Load())
}

// ParseLevel converts a level name ("debug", "info", "warn", "error").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// Debug logs msg with key/value pairs when the level is LevelDebug.
func Debug(ctx context.Context, msg string, keyvals ...any) {
	output(LevelDebug, msg, keyvals)
}

// Info logs msg with key/value pairs at LevelInfo or below.
func Info(ctx context.Context, msg string, keyvals ...any) {
	output(LevelInfo, msg, keyvals)
}

// Warn logs msg with key/value pairs at LevelWarn or below.
func Warn(ctx context.Context, msg string, keyvals ...any) {
	output(LevelWarn, msg, keyvals)
}

// Error logs msg together with err, if any.
func Error(ctx context.Context, err error, msg string, keyvals ...any) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	output(LevelError, msg, keyvals)
}

func output(l Level, msg string, keyvals []any) {
	if l < GetLevel() {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", l, msg)
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keyvals[i])
		}
	}
	log.Print(b.String())
}
