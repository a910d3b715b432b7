package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "basics", cfg.DefaultMenu)
	assert.Equal(t, EchoAuto, cfg.Echo)
	assert.False(t, cfg.JSONLogs)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	Prepare(v, "")
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "basics", cfg.DefaultMenu)
	assert.Equal(t, EchoAuto, cfg.Echo)
	assert.Equal(t, LogFileName, filepath.Base(cfg.LogFile))
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "default_menu: funmath\njson_logs: true\necho: Always\nlog_file: /tmp/x.log\n")

	v := viper.New()
	Prepare(v, path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "funmath", cfg.DefaultMenu)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, EchoAlways, cfg.Echo)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "default_menu: funmath\n")
	t.Setenv("CALCMENU_DEFAULT_MENU", "applied")
	t.Setenv("CALCMENU_SESSION_ID", "from-env")

	v := viper.New()
	Prepare(v, path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "applied", cfg.DefaultMenu)
	assert.Equal(t, "from-env", cfg.SessionID)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	Prepare(v, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(v)
	require.Error(t, err)
}

func TestLoadRejectsBadEcho(t *testing.T) {
	path := writeConfig(t, "echo: sometimes\n")

	v := viper.New()
	Prepare(v, path)
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid echo mode")
}

func TestShouldEcho(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{EchoAuto, true, false},
		{EchoAuto, false, true},
		{EchoAlways, true, true},
		{EchoNever, false, false},
	}

	for _, tt := range tests {
		cfg := &Config{Echo: tt.mode}
		assert.Equal(t, tt.want, cfg.ShouldEcho(tt.terminal), "mode=%s terminal=%v", tt.mode, tt.terminal)
	}
}
