// Package logger provides the leveled console logger used for progress
// tracing. Output lines look like "[HH:MM:SS] [LEVEL] message".
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level is a log severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// String returns the upper-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

// ParseLevel converts a level name to a Level. Unknown or empty names
// fall back to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled messages to a writer. It is safe for concurrent use.
// A nil writer discards everything.
type Logger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// New creates a Logger writing messages at or above level to w.
// Color is enabled when w is a terminal and NO_COLOR is unset.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		writer:      w,
		level:       level,
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return New(nil, LevelError)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.writer != nil && level >= l.level
}

func (l *Logger) Tracef(format string, args ...any) { l.logf(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	ts := l.now().Format("15:04:05")
	name := level.String()
	if l.colorOutput {
		name = levelColors[level].Sprint(name)
	}

	fmt.Fprintf(l.writer, "[%s] [%s] %s\n", ts, name, fmt.Sprintf(format, args...))
}
