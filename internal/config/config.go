// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	I18n     I18nConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings. Currency may be empty here; display
// code must normalize it through format.Normalize, which owns the default.
type UIConfig struct {
	Language string
	Currency string
}

// I18nConfig holds localization settings. Dir may point at a directory of
// extra language files layered over the built-in set.
type I18nConfig struct {
	Dir string
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskwallet", "jaskwallet.db"))
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.currency", "")
	v.SetDefault("i18n.dir", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKWALLET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskwallet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKWALLET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKWALLET_.
func Load() (Config, error) {
	v := newViper()

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings view for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("JASKWALLET_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskwallet", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("i18n.dir", cfg.I18n.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch re-reads the config file whenever it changes on disk and hands the
// result to fn. fn runs on the watcher's goroutine; the caller is
// responsible for marshalling it onto its own event loop.
func Watch(fn func(Config)) error {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v.OnConfigChange(func(fsnotify.Event) {
		var c Config
		if err := v.Unmarshal(&c); err != nil {
			return
		}
		fn(c)
	})
	v.WatchConfig()
	return nil
}
