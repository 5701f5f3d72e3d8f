package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// FLASHVAULT_LOGGING_LEVEL or FLASHVAULT_SRS_MAX_INTERVAL.
const envPrefix = "FLASHVAULT"

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, and environment variables, in ascending precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile behaves like Load but reads the given config file instead of
// searching the working directory. An empty path keeps the default search.
func LoadWithFile(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("logging.level", "info")
	v.SetDefault("srs.min_ease_factor", 1.3)
	v.SetDefault("srs.max_ease_factor", 2.5)
	v.SetDefault("srs.again_penalty", 0.20)
	v.SetDefault("srs.hard_interval_modifier", 0.8)
	v.SetDefault("srs.easy_interval_modifier", 1.3)
	v.SetDefault("srs.first_interval", 1)
	v.SetDefault("srs.second_interval", 6)
	v.SetDefault("srs.lapse_interval", 1)
	v.SetDefault("srs.max_interval", 365)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// A missing config file is fine; everything has defaults.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind environment variables so they are visible to Unmarshal
	// even when neither a default nor a file value exists.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"logging.level", "FLASHVAULT_LOGGING_LEVEL"},
		{"srs.min_ease_factor", "FLASHVAULT_SRS_MIN_EASE_FACTOR"},
		{"srs.max_ease_factor", "FLASHVAULT_SRS_MAX_EASE_FACTOR"},
		{"srs.again_penalty", "FLASHVAULT_SRS_AGAIN_PENALTY"},
		{"srs.hard_interval_modifier", "FLASHVAULT_SRS_HARD_INTERVAL_MODIFIER"},
		{"srs.easy_interval_modifier", "FLASHVAULT_SRS_EASY_INTERVAL_MODIFIER"},
		{"srs.first_interval", "FLASHVAULT_SRS_FIRST_INTERVAL"},
		{"srs.second_interval", "FLASHVAULT_SRS_SECOND_INTERVAL"},
		{"srs.lapse_interval", "FLASHVAULT_SRS_LAPSE_INTERVAL"},
		{"srs.max_interval", "FLASHVAULT_SRS_MAX_INTERVAL"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
