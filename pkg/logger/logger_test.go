package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// captureLogger resets the global logger and returns its output buffer
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := Logger
	t.Cleanup(func() { Logger = original })

	Logger = logrus.New()
	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	return &buf
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			captureLogger(t)
			SetLevel(tt.input)
			assert.Equal(t, tt.expected, Logger.Level)
		})
	}
}

func TestSetVerboseAndQuiet(t *testing.T) {
	captureLogger(t)

	SetVerbose()
	assert.Equal(t, logrus.DebugLevel, Logger.Level)

	SetQuiet()
	assert.Equal(t, logrus.ErrorLevel, Logger.Level)
}

func TestLoggerOutput(t *testing.T) {
	buf := captureLogger(t)

	t.Run("should log traversal details in verbose mode", func(t *testing.T) {
		SetVerbose()
		buf.Reset()
		Logger.WithField("dir", "/tmp/project/locked").Debug("Skipping unreadable directory")
		assert.Contains(t, buf.String(), "Skipping unreadable directory")
		assert.Contains(t, buf.String(), "/tmp/project/locked")
	})

	t.Run("should hide warnings in quiet mode", func(t *testing.T) {
		SetQuiet()
		buf.Reset()
		Logger.Warn("Some directories could not be read")
		assert.Empty(t, buf.String())
	})

	t.Run("should log errors in quiet mode", func(t *testing.T) {
		SetQuiet()
		buf.Reset()
		Logger.WithError(assert.AnError).Error("Root directory could not be read")
		assert.Contains(t, buf.String(), "Root directory could not be read")
		assert.Contains(t, buf.String(), assert.AnError.Error())
	})
}
