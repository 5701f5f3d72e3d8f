package srs

// Params defines all configurable parameters for the scheduling algorithm
type Params struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Ease factor drop applied on a failed (Again) review
	AgainPenalty float64

	// Interval multipliers applied after the ease-based recompute
	HardIntervalModifier float64
	EasyIntervalModifier float64

	// Intervals, in days, after the first and second successful reviews
	FirstInterval  int
	SecondInterval int

	// Interval assigned when a review fails
	LapseInterval int

	// Interval bounds in days
	MinInterval int
	MaxInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	MinEaseFactor float64
	MaxEaseFactor float64

	AgainPenalty float64

	HardIntervalModifier float64
	EasyIntervalModifier float64

	FirstInterval  int
	SecondInterval int
	LapseInterval  int

	MinInterval int
	MaxInterval int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: 1.3,
		MaxEaseFactor: 2.5,

		AgainPenalty: 0.20,

		HardIntervalModifier: 0.8, // shrink after the ease-based recompute
		EasyIntervalModifier: 1.3, // bonus after the ease-based recompute

		FirstInterval:  1,
		SecondInterval: 6,
		LapseInterval:  1,

		MinInterval: 1,
		MaxInterval: 365,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero-valued config fields keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}

	if config.AgainPenalty > 0 {
		params.AgainPenalty = config.AgainPenalty
	}

	if config.HardIntervalModifier > 0 {
		params.HardIntervalModifier = config.HardIntervalModifier
	}
	if config.EasyIntervalModifier > 0 {
		params.EasyIntervalModifier = config.EasyIntervalModifier
	}

	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	if config.MinInterval > 0 {
		params.MinInterval = config.MinInterval
	}
	if config.MaxInterval > 0 {
		params.MaxInterval = config.MaxInterval
	}

	return params
}
