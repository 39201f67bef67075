package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(buf, level)
	l.now = func() time.Time { return time.Date(2026, 10, 17, 9, 5, 7, 0, time.UTC) }
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelInfo)

	l.Infof("indexed %d files", 3)

	assert.Equal(t, "[09:05:07] [INFO] indexed 3 files\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn)

	l.Tracef("trace")
	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")

	out := buf.String()
	assert.NotContains(t, out, "[TRACE]")
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] warn")
	assert.Contains(t, out, "[ERROR] error")
}

func TestLogger_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelTrace)

	l.Errorf("boom")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestLogger_NilWriter(t *testing.T) {
	l := New(nil, LevelTrace)

	assert.False(t, l.Enabled(LevelError))
	assert.NotPanics(t, func() { l.Errorf("dropped") })
	assert.NotPanics(t, func() { Discard().Infof("dropped") })
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelInfo)

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			l.Infof("line")
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, "[09:05:07] [INFO] line", line)
	}
}
