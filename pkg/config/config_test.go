package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Be right back", cfg.Text)
	assert.Equal(t, "white", cfg.Color)
	assert.False(t, cfg.Chat)
	assert.False(t, cfg.HideTimer)
	assert.True(t, cfg.ProgressBar)
	assert.Equal(t, 100, cfg.ChatLimit)
	assert.Equal(t, 10, cfg.Hooks.TimeoutSeconds)
	assert.Empty(t, cfg.Hooks.Start)
}

func TestLoadFromFile(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "brb.yaml")
	content := `
text: "AFK!"
color: "255,0,0"
channel: somechannel
chat: true
hide_timer: true
chat_limit: 25
hooks:
  start:
    - "echo going away"
  exit:
    - "echo back"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "AFK!", cfg.Text)
	assert.Equal(t, "255,0,0", cfg.Color)
	assert.Equal(t, "somechannel", cfg.Channel)
	assert.True(t, cfg.Chat)
	assert.True(t, cfg.HideTimer)
	assert.Equal(t, 25, cfg.ChatLimit)
	assert.Equal(t, []string{"echo going away"}, cfg.Hooks.Start)
	assert.Equal(t, []string{"echo back"}, cfg.Hooks.Exit)

	// Values absent from the file keep their defaults
	assert.True(t, cfg.ProgressBar)
	assert.Equal(t, "sc current", cfg.SongCommand)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadMalformedFile(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "brb.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("text: [unclosed"), 0644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestFlagOverridesFile(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "brb.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("text: from file\n"), 0644))

	// Simulates a bound CLI flag, which viper ranks above the config file
	viper.Set("text", "from flag")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "from flag", cfg.Text)
}

func TestGetPanicsWhenUninitialized(t *testing.T) {
	resetViper(t)
	cfg = nil

	assert.Panics(t, func() { Get() })
}
