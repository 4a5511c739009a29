package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Content    ContentSettings `mapstructure:"content"`
	UISettings UISettings      `mapstructure:"ui"`
	Log        LogSettings     `mapstructure:"log"`
}

// ContentSettings locates the portfolio content file. Empty uses the built-in sample.
type ContentSettings struct {
	Path string `mapstructure:"path"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ElevationThreshold int           `mapstructure:"elevation_threshold"`
	NoticeTimeout      time.Duration `mapstructure:"notice_timeout"`
	CompactWidth       int           `mapstructure:"compact_width"`
	SmoothScroll       bool          `mapstructure:"smooth_scroll"`
}

// LogSettings controls the file logger
type LogSettings struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// DispatchConfig holds EmailJS deployment credentials. These only ever come
// from the environment so they stay out of config files.
type DispatchConfig struct {
	ServiceID  string        `env:"EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	Endpoint   string        `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"10s"`
}

// EnvPrefix namespaces environment overrides, e.g. TERMFOLIO_UI_NOTICE_TIMEOUT
const EnvPrefix = "TERMFOLIO"

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns ~/.config/termfolio/config.toml (or the platform equivalent)
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "termfolio", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	return load(cs.filePath, false)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("content.path", config.Content.Path)
	v.Set("ui.elevation_threshold", config.UISettings.ElevationThreshold)
	v.Set("ui.notice_timeout", config.UISettings.NoticeTimeout.String())
	v.Set("ui.compact_width", config.UISettings.CompactWidth)
	v.Set("ui.smooth_scroll", config.UISettings.SmoothScroll)
	v.Set("log.path", config.Log.Path)
	v.Set("log.debug", config.Log.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func load(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if mustExist {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("content.path", d.Content.Path)
	v.SetDefault("ui.elevation_threshold", d.UISettings.ElevationThreshold)
	v.SetDefault("ui.notice_timeout", d.UISettings.NoticeTimeout)
	v.SetDefault("ui.compact_width", d.UISettings.CompactWidth)
	v.SetDefault("ui.smooth_scroll", d.UISettings.SmoothScroll)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate rejects settings the UI cannot work with
func (c *Config) Validate() error {
	if c.UISettings.ElevationThreshold < 0 {
		return fmt.Errorf("ui.elevation_threshold must not be negative, got %d", c.UISettings.ElevationThreshold)
	}
	if c.UISettings.NoticeTimeout <= 0 {
		return fmt.Errorf("ui.notice_timeout must be positive, got %s", c.UISettings.NoticeTimeout)
	}
	if c.UISettings.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must not be negative, got %d", c.UISettings.CompactWidth)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UISettings: UISettings{
			ElevationThreshold: 10,
			NoticeTimeout:      5 * time.Second,
			CompactWidth:       80,
			SmoothScroll:       true,
		},
		Log: LogSettings{
			Path: "termfolio.log",
		},
	}
}

// LoadDispatch reads EmailJS credentials from the environment
func LoadDispatch() (DispatchConfig, error) {
	var cfg DispatchConfig
	if err := env.Parse(&cfg); err != nil {
		return DispatchConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
