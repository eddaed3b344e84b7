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
	Database DatabaseConfig
	Snapshot SnapshotConfig
	Identity IdentityConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SnapshotConfig names the key the full state is persisted under.
type SnapshotConfig struct {
	Key string
}

// IdentityConfig fixes the demonstration contributor and client. There is
// no login flow; identity is configuration.
type IdentityConfig struct {
	ContributorID   string `mapstructure:"contributor_id"`
	ContributorName string `mapstructure:"contributor_name"`
	ClientID        string `mapstructure:"client_id"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix CROWDTRAIN_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "crowdtrain", "crowdtrain.db"))
	v.SetDefault("snapshot.key", "crowdtrain.v1")
	v.SetDefault("identity.contributor_id", "contrib-1")
	v.SetDefault("identity.contributor_name", "You (demo contributor)")
	v.SetDefault("identity.client_id", "client-demo")
	v.SetDefault("ui.date_format", "02 Jan 15:04")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CROWDTRAIN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "crowdtrain"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CROWDTRAIN")
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

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("CROWDTRAIN_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "crowdtrain", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("snapshot.key", cfg.Snapshot.Key)
	v.Set("identity.contributor_id", cfg.Identity.ContributorID)
	v.Set("identity.contributor_name", cfg.Identity.ContributorName)
	v.Set("identity.client_id", cfg.Identity.ClientID)
	v.Set("ui.date_format", cfg.UI.DateFormat)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
