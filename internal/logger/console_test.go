package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{logLevel: "trace", messageLevel: "error", shouldAppear: true},
		{logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{logLevel: "info", messageLevel: "info", shouldAppear: true},
		{logLevel: "info", messageLevel: "warn", shouldAppear: true},
		{logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{logLevel: "error", messageLevel: "error", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel+" "+tt.messageLevel, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			switch tt.messageLevel {
			case "trace":
				logger.Tracef("msg %d", 1)
			case "debug":
				logger.Debugf("msg %d", 1)
			case "info":
				logger.Infof("msg %d", 1)
			case "warn":
				logger.Warnf("msg %d", 1)
			case "error":
				logger.Errorf("msg %d", 1)
			}

			assert.Equal(t, tt.shouldAppear, strings.Contains(buf.String(), "msg 1"))
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogWarn("LABELS dropped for version 2.2")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[WARN\] LABELS dropped for version 2\.2\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestConsoleLoggerNoColorForBuffers(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogError("boom")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "debug", NormalizeLevel(" DEBUG "))
	assert.Equal(t, "info", NormalizeLevel(""))
	assert.Equal(t, "info", NormalizeLevel("verbose"))
	assert.True(t, IsValidLevel("Warn"))
	assert.False(t, IsValidLevel("verbose"))
	assert.Equal(t, "info", NewConsoleLogger(nil, "bogus").Level())
}

func TestNilWriterDiscards(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() {
		logger.Errorf("nothing %s", "here")
	})
}

func TestConsoleLoggerConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Infof("loaded %d levels", 7)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Contains(t, line, "[INFO] loaded 7 levels")
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	assert.NotPanics(t, func() {
		logger.Debugf("debug %d", 1)
		logger.Infof("info %d", 2)
		logger.Warnf("warn %d", 3)
		logger.Errorf("error %d", 4)
	})
}
