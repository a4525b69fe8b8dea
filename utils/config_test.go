package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, 500*time.Millisecond, config.Delay())
	assert.Nil(t, config.Seed)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"width": 25, "generations": 40, "delay_ms": 100, "display": "none", "seed": 9}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, config.Width)
	assert.Equal(t, 10, config.Height, "unset keys keep defaults")
	assert.Equal(t, 40, config.Generations)
	assert.Equal(t, 100*time.Millisecond, config.Delay())
	assert.Equal(t, DisplayNone, config.Display)
	require.NotNil(t, config.Seed)
	assert.Equal(t, int64(9), *config.Seed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "bad json", contents: `{"width": `},
		{name: "zero width", contents: `{"width": 0}`},
		{name: "negative delay", contents: `{"delay_ms": -5}`},
		{name: "unknown display", contents: `{"display": "window"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.contents))
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), config)
		})
	}
}
