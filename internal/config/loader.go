package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MARKS"

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// BindFlag lets a command line flag override key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return l.v.BindPFlag(key, flag)
}

// ConfigFileUsed returns the file the settings were read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load loads configuration with proper precedence:
// defaults < config file < env vars < CLI flags
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	l.setupViper(cfg)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Config file is optional, only error if explicitly specified
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Store = ExpandTilde(cfg.Store)
	cfg.LogFile = ExpandTilde(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetDefault("store", cfg.Store)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("week_start", cfg.WeekStart)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("color", cfg.Color)

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		for _, dir := range SearchDirs() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// SearchDirs lists the directories searched for config.toml, most specific first.
func SearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "go-marks"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "go-marks"))
	}
	return dirs
}

// DefaultConfigPath is where `marks config init` writes the file.
func DefaultConfigPath() string {
	dirs := SearchDirs()
	if len(dirs) == 0 {
		return "config.toml"
	}
	return filepath.Join(dirs[0], "config.toml")
}

// Render encodes cfg as TOML.
func Render(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Write saves cfg as TOML at path, refusing to overwrite unless force is set.
func Write(cfg *Config, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists", path)
	}
	data, err := Render(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandTilde expands ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
