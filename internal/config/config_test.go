package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, FormatText, config.Output.Format)
	assert.True(t, config.Output.Trim)
	assert.False(t, config.Parsing.StrictFrames)
	assert.False(t, config.Parsing.IgnoreWarnings)
	assert.Equal(t, ":8080", config.Server.Addr)
	assert.Equal(t, int64(64<<20), config.Server.MaxUploadBytes)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, config.Validate())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "id3dump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
parsing:
  strict_frames: true
  ignore_warnings: true
output:
  format: json
  trim: false
server:
  addr: "127.0.0.1:9000"
  max_upload_bytes: 1024
logging:
  level: debug
`)
		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.True(t, config.Parsing.StrictFrames)
		assert.True(t, config.Parsing.IgnoreWarnings)
		assert.Equal(t, FormatJSON, config.Output.Format)
		assert.False(t, config.Output.Trim)
		assert.Equal(t, "127.0.0.1:9000", config.Server.Addr)
		assert.Equal(t, int64(1024), config.Server.MaxUploadBytes)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Len(t, config.ExtractOptions(), 2)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "output:\n  format: yaml\n")
		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, config.Output.Format)
		assert.True(t, config.Output.Trim)
		assert.Equal(t, ":8080", config.Server.Addr)
		assert.Empty(t, config.ExtractOptions())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "output: [unclosed"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "output:\n  format: xml\nlogging:\n  level: loud\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "output.format")
		assert.ErrorContains(t, err, "logging.level")
	})
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	config.Server.Addr = ""
	config.Server.MaxUploadBytes = 0

	err := config.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "server.addr")
	assert.ErrorContains(t, err, "max_upload_bytes")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, level, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
