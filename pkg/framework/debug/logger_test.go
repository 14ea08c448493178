package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: DefaultConfig(),
		},
		{
			name: "everything set",
			env: map[string]string{
				EnvLogLevel:  "debug",
				EnvLogFormat: "JSON",
				EnvLogFile:   " /tmp/ntsc.log ",
				EnvProfile:   "1",
			},
			want: Config{Level: logrus.DebugLevel, Format: FormatJSON, File: "/tmp/ntsc.log", Profile: true},
		},
		{
			name: "bad values keep defaults",
			env: map[string]string{
				EnvLogLevel:  "chatty",
				EnvLogFormat: "xml",
				EnvProfile:   "sometimes",
			},
			want: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFromLookup(lookupFrom(tt.env)))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		logger := NewLogger(Config{Level: logrus.WarnLevel, Format: FormatText})
		var buf bytes.Buffer
		logger.SetOutput(&buf)

		logger.Info("info message")
		logger.WithField("instance", "abc").Warn("warn message")

		assert.NotContains(t, buf.String(), "info message")
		assert.Contains(t, buf.String(), "warn message")
		assert.Contains(t, buf.String(), "instance=abc")
	})

	t.Run("json", func(t *testing.T) {
		logger := NewLogger(Config{Level: logrus.InfoLevel, Format: FormatJSON})
		var buf bytes.Buffer
		logger.SetOutput(&buf)

		logger.WithField("preset", "a.json").Error("load failed")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "load failed", entry["msg"])
		assert.Equal(t, "a.json", entry["preset"])
		assert.Equal(t, "error", entry["level"])
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "ntsc.log")
		logger := NewLogger(Config{Level: logrus.InfoLevel, File: path})
		logger.Info("to file")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() { logger.Error("dropped") })
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}
