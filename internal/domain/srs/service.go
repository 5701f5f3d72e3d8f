// Package srs implements the spaced-repetition scheduling algorithm: given a
// card's scheduling state and a recall grade, it computes the next state.
// The computation is pure and deterministic; callers own persistence and
// supply the clock.
package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/flashvault/flashvault/internal/domain"
)

// Common errors
var (
	// ErrInvalidGrade is returned when a grade is outside the 1-4 domain.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrInvalidState is returned when the incoming scheduling state is nil,
	// corrupt, or out of range. This is a programming error on the caller's
	// side; scheduling must not proceed.
	ErrInvalidState = errors.New("invalid scheduling state")
)

// Preview holds the scheduling state that would result from each of the four
// grades, without committing any of them. The UI uses this to label the
// grade buttons with their resulting intervals.
type Preview struct {
	Again domain.Scheduling
	Hard  domain.Scheduling
	Good  domain.Scheduling
	Easy  domain.Scheduling
}

// ForGrade returns the previewed state for the given grade.
func (p Preview) ForGrade(grade Grade) (domain.Scheduling, error) {
	switch grade {
	case GradeAgain:
		return p.Again, nil
	case GradeHard:
		return p.Hard, nil
	case GradeGood:
		return p.Good, nil
	case GradeEasy:
		return p.Easy, nil
	default:
		return domain.Scheduling{}, fmt.Errorf("%w: %d", ErrInvalidGrade, int(grade))
	}
}

// Service defines the interface for scheduling operations
type Service interface {
	// Schedule computes the scheduling state that results from recording
	// the given grade at the given time. The input is never mutated; the
	// returned state is a fresh value the caller is responsible for
	// persisting as a unit.
	Schedule(state *domain.Scheduling, grade Grade, now time.Time) (*domain.Scheduling, error)

	// Preview computes the would-be result of every grade without
	// committing any of them. Calling Preview then Schedule with the same
	// inputs yields the same state as the matching preview entry.
	Preview(state *domain.Scheduling, now time.Time) (Preview, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// Verify interface compliance at compile time
var _ Service = (*defaultService)(nil)

// NewDefaultService creates a new scheduling service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Schedule implements the Service interface.
func (s *defaultService) Schedule(
	state *domain.Scheduling,
	grade Grade,
	now time.Time,
) (*domain.Scheduling, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil scheduling state", ErrInvalidState)
	}

	if !grade.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(grade))
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	next := calculateNextScheduling(*state, grade, now, s.params)
	return &next, nil
}

// Preview implements the Service interface.
func (s *defaultService) Preview(state *domain.Scheduling, now time.Time) (Preview, error) {
	if state == nil {
		return Preview{}, fmt.Errorf("%w: nil scheduling state", ErrInvalidState)
	}

	if err := state.Validate(); err != nil {
		return Preview{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	return Preview{
		Again: calculateNextScheduling(*state, GradeAgain, now, s.params),
		Hard:  calculateNextScheduling(*state, GradeHard, now, s.params),
		Good:  calculateNextScheduling(*state, GradeGood, now, s.params),
		Easy:  calculateNextScheduling(*state, GradeEasy, now, s.params),
	}, nil
}
