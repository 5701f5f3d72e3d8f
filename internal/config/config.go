package config

import (
	"github.com/flashvault/flashvault/internal/domain/srs"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	SRS     SRSConfig     `mapstructure:"srs"     validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SRSConfig contains the tunable parameters of the scheduling algorithm.
// The defaults reproduce the stock algorithm; overrides let a deployment
// soften penalties or cap interval growth without code changes.
type SRSConfig struct {
	MinEaseFactor        float64 `mapstructure:"min_ease_factor"        validate:"required,gt=1"`
	MaxEaseFactor        float64 `mapstructure:"max_ease_factor"        validate:"required,gtefield=MinEaseFactor"`
	AgainPenalty         float64 `mapstructure:"again_penalty"          validate:"required,gt=0"`
	HardIntervalModifier float64 `mapstructure:"hard_interval_modifier" validate:"required,gt=0,lte=1"`
	EasyIntervalModifier float64 `mapstructure:"easy_interval_modifier" validate:"required,gte=1"`
	FirstInterval        int     `mapstructure:"first_interval"         validate:"required,gte=1"`
	SecondInterval       int     `mapstructure:"second_interval"        validate:"required,gte=1"`
	LapseInterval        int     `mapstructure:"lapse_interval"         validate:"required,gte=1"`
	MaxInterval          int     `mapstructure:"max_interval"           validate:"required,gte=1"`
}

// Params converts the configured values into scheduling parameters.
func (c SRSConfig) Params() *srs.Params {
	return srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:        c.MinEaseFactor,
		MaxEaseFactor:        c.MaxEaseFactor,
		AgainPenalty:         c.AgainPenalty,
		HardIntervalModifier: c.HardIntervalModifier,
		EasyIntervalModifier: c.EasyIntervalModifier,
		FirstInterval:        c.FirstInterval,
		SecondInterval:       c.SecondInterval,
		LapseInterval:        c.LapseInterval,
		MaxInterval:          c.MaxInterval,
	})
}
