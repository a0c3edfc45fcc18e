package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// StorageConfig locates the local database.
type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme         string `mapstructure:"theme" yaml:"theme"`
	DefaultView   string `mapstructure:"default_view" yaml:"default_view"`
	HighlightMS   int    `mapstructure:"highlight_ms" yaml:"highlight_ms"`
	ShowCompleted bool   `mapstructure:"show_completed" yaml:"show_completed"`
}

// EmojiConfig configures the desktop emoji picker bridge.
type EmojiConfig struct {
	// NativeCommand is run through the shell to open the platform emoji
	// picker. Its stdout is taken as the chosen emoji. Empty disables it.
	NativeCommand string `mapstructure:"native_command" yaml:"native_command"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Emoji   EmojiConfig   `mapstructure:"emoji" yaml:"emoji"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/gtd/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "gtd", "config.yaml")
}

// dataDir follows XDG_DATA_HOME, falling back to ~/.local/share.
func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "gtd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "gtd")
}

// stateDir follows XDG_STATE_HOME, falling back to ~/.local/state.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "gtd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "gtd")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Path: filepath.Join(dataDir(), "gtd.db"),
		},
		Display: DisplayConfig{
			Theme:         "default",
			DefaultView:   string(ScheduleToday),
			HighlightMS:   1500,
			ShowCompleted: true,
		},
		Log: LogConfig{
			Path:  filepath.Join(stateDir(), "gtd.log"),
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("display.theme", d.Display.Theme)
	v.SetDefault("display.default_view", d.Display.DefaultView)
	v.SetDefault("display.highlight_ms", d.Display.HighlightMS)
	v.SetDefault("display.show_completed", d.Display.ShowCompleted)
	v.SetDefault("emoji.native_command", d.Emoji.NativeCommand)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values may be overridden by GTD_* environment variables (for example
// GTD_STORAGE_PATH). A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("gtd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Log.Path = expandHome(cfg.Log.Path)
	if _, ok := ParseView(cfg.Display.DefaultView); !ok {
		cfg.Display.DefaultView = string(ScheduleToday)
	}
	if cfg.Display.HighlightMS <= 0 {
		cfg.Display.HighlightMS = 1500
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("display", cfg.Display)
	v.Set("emoji", cfg.Emoji)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// DefaultViewSelector returns the parsed default view.
func (c *AppConfig) DefaultViewSelector() ViewSelector {
	if v, ok := ParseView(c.Display.DefaultView); ok {
		return v
	}
	return TodayView
}

func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
