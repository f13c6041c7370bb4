package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayseat/wayseat/internal/xkb"
)

func TestGet_DefaultsWhenUninitialized(t *testing.T) {
	Set(nil)
	cfg := Get()
	assert.Equal(t, "/dev/input", cfg.Input.DeviceDir)
}

func TestInit_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wayseat.toml")
	content := `
[input]
device_dir = "/tmp/fake-input"
xkb_layout = "de"

[logging]
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	SetConfigPath(path)
	defer SetConfigPath("")
	defer Set(nil)

	require.NoError(t, Init())

	cfg := Get()
	assert.Equal(t, "/tmp/fake-input", cfg.Input.DeviceDir)
	assert.Equal(t, "de", cfg.Input.XKBLayout)
	assert.Equal(t, "debug", cfg.Logging.LogLevel)
}

func TestInputConfig_RuleNames(t *testing.T) {
	t.Setenv("XKB_DEFAULT_RULES", "evdev")
	t.Setenv("XKB_DEFAULT_MODEL", "")
	t.Setenv("XKB_DEFAULT_LAYOUT", "us")
	t.Setenv("XKB_DEFAULT_VARIANT", "")
	t.Setenv("XKB_DEFAULT_OPTIONS", "")

	tests := []struct {
		name string
		cfg  InputConfig
		want xkb.RuleNames
	}{
		{
			name: "empty config defers to environment",
			cfg:  InputConfig{},
			want: xkb.RuleNames{Rules: "evdev", Layout: "us"},
		},
		{
			name: "config overrides environment",
			cfg:  InputConfig{XKBLayout: "fr", XKBOptions: "caps:escape"},
			want: xkb.RuleNames{Rules: "evdev", Layout: "fr", Options: "caps:escape"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.RuleNames())
		})
	}
}
