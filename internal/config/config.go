package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Network NetworkConfig `mapstructure:"network"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig holds the remote endpoints
type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	LegacyURL  string `mapstructure:"legacy_url"`  // Kindle push endpoints live here
	FileURL    string `mapstructure:"file_url"`    // ebook file downloads
	RefererURL string `mapstructure:"referer_url"` // book page, sent as Referer
}

// SessionConfig holds bearer token settings
type SessionConfig struct {
	TokenPath string `mapstructure:"token_path"`
}

// FetchConfig holds download directive settings
type FetchConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// CatalogConfig holds all-books scan settings
type CatalogConfig struct {
	MaxMisses int `mapstructure:"max_misses"`
}

// NetworkConfig holds network settings
type NetworkConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Defaults
const (
	DefaultBaseURL    = "https://api.ituring.com.cn/api/"
	DefaultLegacyURL  = "http://www.ituring.com.cn/api/"
	DefaultFileURL    = "http://www.ituring.com.cn/file/ebook/"
	DefaultRefererURL = "http://www.ituring.com.cn/book/"
	DefaultTokenPath  = "ituring-access-token.json"
	DefaultOutputDir  = "ebooks"
	DefaultMaxMisses  = 1000
)

var cfg *Config

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ituring")
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Init initializes the configuration
func Init(cfgFile string, version string) error {
	viper.SetDefault("api.base_url", DefaultBaseURL)
	viper.SetDefault("api.legacy_url", DefaultLegacyURL)
	viper.SetDefault("api.file_url", DefaultFileURL)
	viper.SetDefault("api.referer_url", DefaultRefererURL)
	viper.SetDefault("session.token_path", DefaultTokenPath)
	viper.SetDefault("fetch.output_dir", DefaultOutputDir)
	viper.SetDefault("catalog.max_misses", DefaultMaxMisses)
	viper.SetDefault("network.timeout", time.Duration(0))
	viper.SetDefault("network.user_agent", "ituring-kit/"+version)
	viper.SetDefault("log.level", "warn")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(GetConfigDir())
	}

	// Environment variable overrides
	viper.SetEnvPrefix("ITURING")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing default config file is fine; an explicit one must exist.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	loaded, err := load()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded
	return nil
}

func load() (*Config, error) {
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, err
	}
	if c.Catalog.MaxMisses <= 0 {
		c.Catalog.MaxMisses = DefaultMaxMisses
	}
	c.Session.TokenPath = expandPath(c.Session.TokenPath)
	return c, nil
}

// Get returns the configuration loaded by Init. Before a successful Init
// it returns the built-in defaults.
func Get() *Config {
	if cfg == nil {
		return &Config{
			API: APIConfig{
				BaseURL:    DefaultBaseURL,
				LegacyURL:  DefaultLegacyURL,
				FileURL:    DefaultFileURL,
				RefererURL: DefaultRefererURL,
			},
			Session: SessionConfig{TokenPath: DefaultTokenPath},
			Fetch:   FetchConfig{OutputDir: DefaultOutputDir},
			Catalog: CatalogConfig{MaxMisses: DefaultMaxMisses},
			Log:     LogConfig{Level: "warn"},
		}
	}
	return cfg
}

// Reset clears all loaded configuration
func Reset() {
	viper.Reset()
	cfg = nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
