package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigDirName  = ".calcmenu"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	LogFileName    = "calcmenu.log"
	EnvPrefix      = "CALCMENU"
)

// Echo modes control whether consumed input lines are written back.
const (
	EchoAuto   = "auto"
	EchoAlways = "always"
	EchoNever  = "never"
)

// Config represents the application configuration
type Config struct {
	DefaultMenu string `mapstructure:"default_menu"`
	LogFile     string `mapstructure:"log_file"`
	JSONLogs    bool   `mapstructure:"json_logs"`
	Echo        string `mapstructure:"echo"`
	SessionID   string `mapstructure:"session_id"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, LogFileName)
	}
	return &Config{
		DefaultMenu: "basics",
		LogFile:     logFile,
		Echo:        EchoAuto,
	}
}

// GetConfigDir returns the directory holding the config file and logs.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}

// SetDefaults registers the defaults of NewConfig on v.
func SetDefaults(v *viper.Viper) {
	def := NewConfig()
	v.SetDefault("default_menu", def.DefaultMenu)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("json_logs", def.JSONLogs)
	v.SetDefault("echo", def.Echo)
	v.SetDefault("session_id", def.SessionID)
}

// Prepare points v at the config file and the CALCMENU_* environment.
// An explicit file wins over the default location.
func Prepare(v *viper.Viper, file string) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file if there is one and decodes v into a Config.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Echo = strings.ToLower(strings.TrimSpace(cfg.Echo))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	switch c.Echo {
	case EchoAuto, EchoAlways, EchoNever:
	default:
		return fmt.Errorf("invalid echo mode %q (want %s, %s or %s)", c.Echo, EchoAuto, EchoAlways, EchoNever)
	}
	if strings.TrimSpace(c.DefaultMenu) == "" {
		return errors.New("default_menu must not be empty")
	}
	return nil
}

// ShouldEcho resolves the echo mode for the given input.
func (c *Config) ShouldEcho(inputIsTerminal bool) bool {
	switch c.Echo {
	case EchoAlways:
		return true
	case EchoNever:
		return false
	default:
		return !inputIsTerminal
	}
}
