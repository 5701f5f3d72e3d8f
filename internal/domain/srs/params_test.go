package srs

import (
	"testing"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	if params.MinEaseFactor != 1.3 {
		t.Errorf("Expected MinEaseFactor 1.3, got %f", params.MinEaseFactor)
	}
	if params.MaxEaseFactor != 2.5 {
		t.Errorf("Expected MaxEaseFactor 2.5, got %f", params.MaxEaseFactor)
	}
	if params.AgainPenalty != 0.20 {
		t.Errorf("Expected AgainPenalty 0.20, got %f", params.AgainPenalty)
	}
	if params.FirstInterval != 1 || params.SecondInterval != 6 {
		t.Errorf("Expected first/second intervals 1/6, got %d/%d",
			params.FirstInterval, params.SecondInterval)
	}
	if params.MinInterval != 1 || params.MaxInterval != 365 {
		t.Errorf("Expected interval bounds 1/365, got %d/%d",
			params.MinInterval, params.MaxInterval)
	}
}

func TestNewParamsOverrides(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewParams(ParamsConfig{
		MaxEaseFactor: 3.0,
		SecondInterval: 4,
		MaxInterval:   180,
	})

	if params.MaxEaseFactor != 3.0 {
		t.Errorf("Expected overridden MaxEaseFactor 3.0, got %f", params.MaxEaseFactor)
	}
	if params.SecondInterval != 4 {
		t.Errorf("Expected overridden SecondInterval 4, got %d", params.SecondInterval)
	}
	if params.MaxInterval != 180 {
		t.Errorf("Expected overridden MaxInterval 180, got %d", params.MaxInterval)
	}

	// Everything else keeps its default.
	if params.MinEaseFactor != 1.3 {
		t.Errorf("Expected default MinEaseFactor 1.3, got %f", params.MinEaseFactor)
	}
	if params.FirstInterval != 1 {
		t.Errorf("Expected default FirstInterval 1, got %d", params.FirstInterval)
	}
}

func TestNewParamsZeroConfigKeepsDefaults(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewParams(ParamsConfig{})
	defaults := NewDefaultParams()

	if *params != *defaults {
		t.Errorf("Zero-valued config should keep defaults: %+v != %+v", params, defaults)
	}
}
