// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Bridge   BridgeConfig
	Server   ServerConfig
	Database DatabaseConfig
	Injector InjectorConfig
	Target   TargetConfig
}

// BridgeConfig holds the skeletal-tracking bridge connection settings.
type BridgeConfig struct {
	URL string
}

// ServerConfig holds the HTTP status server settings.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// InjectorConfig holds the key-injector helper settings.
type InjectorConfig struct {
	Dir       string
	Name      string
	TimeoutMs int `mapstructure:"timeout_ms"`
}

// TargetConfig names the application receiving the key events.
type TargetConfig struct {
	Process string
}

// Load reads configuration from file and env. Env var overrides use prefix
// BODYPILOT_, e.g. BODYPILOT_TARGET_PROCESS.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("bridge.url", "ws://127.0.0.1:9350/frames")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".bodypilot", "bodypilot.db"))
	v.SetDefault("injector.dir", "injectors")
	v.SetDefault("injector.name", "xdo")
	v.SetDefault("injector.timeout_ms", 1000)
	v.SetDefault("target.process", "voxelcraft")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BODYPILOT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bodypilot"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BODYPILOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
