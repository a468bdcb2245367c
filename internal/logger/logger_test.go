package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput points the shared sink at a buffer for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when VITALS_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when VITALS_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when VITALS_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			t.Setenv(EnvDebug, tt.envValue)

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
				assert.Contains(t, buf.String(), "level=debug")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureOutput(t)

	l := NewEnvLogger("[dash]")
	l.Info("info message %d", 42)
	l.Warn("warning message")
	l.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "[dash] info message 42")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "[dash] warning message")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "[dash] error message")
	assert.Contains(t, out, "level=error")
}

func TestEnvLogger_NoPrefix(t *testing.T) {
	buf := captureOutput(t)

	NewEnvLogger("").Info("bare %s", "message")

	assert.Contains(t, buf.String(), "bare message")
	assert.NotContains(t, buf.String(), "msg=\" bare")
}

func TestEnvLogger_DiscardsByDefault(t *testing.T) {
	// Nothing reaches the terminal unless a sink was configured.
	NewEnvLogger("[quiet]").Error("should be discarded")
}

func TestSetup(t *testing.T) {
	t.Run("disabled without VITALS_DEBUG", func(t *testing.T) {
		t.Setenv(EnvDebug, "")

		closer, err := Setup()
		require.NoError(t, err)
		assert.Nil(t, closer)
	})

	t.Run("writes to VITALS_LOG", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debug.log")
		t.Setenv(EnvDebug, "1")
		t.Setenv(EnvLogFile, path)
		t.Cleanup(func() { SetOutput(io.Discard) })

		closer, err := Setup()
		require.NoError(t, err)
		require.NotNil(t, closer)

		NewEnvLogger("[setup]").Info("hello file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[setup] hello file")
	})

	t.Run("unwritable path", func(t *testing.T) {
		t.Setenv(EnvDebug, "1")
		t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "missing", "dir", "debug.log"))

		closer, err := Setup()
		assert.Error(t, err)
		assert.Nil(t, closer)
	})
}

func TestNoopLogger(t *testing.T) {
	buf := captureOutput(t)

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String(), "noop logger should not produce any output")
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)

	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info msg"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn msg"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, l.Messages[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel("debug"))

	l.Debug("test")
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))

	l.Error("test")
	assert.True(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}
