// Package config loads moodplay settings from flags, environment variables,
// .env files and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"moodplay/internal/logger"
	"moodplay/internal/moods"
)

// EnvPrefix is prepended to every environment variable moodplay reads.
const EnvPrefix = "MOODPLAY"

// Config holds every moodplay setting.
type Config struct {
	Discord      DiscordConfig      `mapstructure:"discord"`
	Queue        QueueConfig        `mapstructure:"queue"`
	Moods        MoodsConfig        `mapstructure:"moods"`
	Autocomplete AutocompleteConfig `mapstructure:"autocomplete"`
}

// DiscordConfig configures the Discord transport.
type DiscordConfig struct {
	Token string `mapstructure:"token"`
	// GuildID registers commands for a single guild; empty registers them globally.
	GuildID string `mapstructure:"guild_id"`
}

// QueueConfig configures the enqueue collaborator. An empty URL selects the dry-run enqueuer.
type QueueConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MoodsConfig selects the preset table.
type MoodsConfig struct {
	// File replaces the embedded preset table when set.
	File string `mapstructure:"file"`
}

// AutocompleteConfig configures suggestions.
type AutocompleteConfig struct {
	Limit int `mapstructure:"limit"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("queue.url", "")
	v.SetDefault("queue.token", "")
	v.SetDefault("queue.timeout", "10s")
	v.SetDefault("moods.file", "")
	v.SetDefault("autocomplete.limit", moods.MaxChoices)
}

// Load reads configuration into a Config. Precedence, highest first: values bound
// on v (flags), environment, .env in the working directory, config file, defaults.
// configFile may be empty, in which case moodplay.yaml is searched for in the working
// directory and the user config directory.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("moodplay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "moodplay"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Debug("No config file found, using environment and defaults")
	} else {
		logger.Debug("Loaded config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "file", path)
	return nil
}

// Validate checks the settings shared by every mode.
func (c *Config) Validate() error {
	if c.Autocomplete.Limit < 1 || c.Autocomplete.Limit > moods.MaxChoices {
		return fmt.Errorf("autocomplete.limit must be between 1 and %d, got %d", moods.MaxChoices, c.Autocomplete.Limit)
	}
	if c.Queue.Timeout < 0 {
		return fmt.Errorf("queue.timeout cannot be negative")
	}
	return nil
}

// ValidateDiscord checks the settings the Discord transport needs.
func (c *Config) ValidateDiscord() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Discord.Token == "" {
		return fmt.Errorf("discord token is required (set %s_DISCORD_TOKEN or discord.token)", EnvPrefix)
	}
	return nil
}
