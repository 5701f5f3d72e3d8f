package domain

import (
	"errors"
	"time"
)

// DefaultEaseFactor is the ease factor assigned to a card that has never
// been reviewed.
const DefaultEaseFactor = 2.5

// MatureIntervalDays is the interval, in days, at which a card counts as
// mature rather than learning.
const MatureIntervalDays = 21

// Scheduling validation errors
var (
	// ErrNegativeReviewCount is returned when the review count is negative.
	ErrNegativeReviewCount = errors.New("review count cannot be negative")

	// ErrNegativeCorrectCount is returned when the correct count is negative.
	ErrNegativeCorrectCount = errors.New("correct count cannot be negative")

	// ErrCorrectExceedsReviews is returned when the correct count exceeds the
	// review count.
	ErrCorrectExceedsReviews = errors.New("correct count cannot exceed review count")

	// ErrNegativeInterval is returned when the interval is negative.
	ErrNegativeInterval = errors.New("interval cannot be negative")

	// ErrEaseFactorTooLow is returned when the ease factor is at or below 1.0.
	ErrEaseFactorTooLow = errors.New("ease factor must be greater than 1.0")
)

// Scheduling holds a card's spaced-repetition state. The six fields are
// updated together as a unit by each grading event; no other code mutates
// them. A zero NextReviewAt means the card has never been scheduled and is
// due immediately; a zero LastReviewedAt means it has never been reviewed.
type Scheduling struct {
	ReviewCount    int       `json:"review_count"`
	CorrectCount   int       `json:"correct_count"`
	Interval       int       `json:"interval"` // days until the next review
	EaseFactor     float64   `json:"ease_factor"`
	NextReviewAt   time.Time `json:"next_review_date"`
	LastReviewedAt time.Time `json:"last_reviewed"`
}

// NewScheduling returns the scheduling state for a freshly created card:
// no reviews recorded, default ease factor, due immediately.
func NewScheduling() Scheduling {
	return Scheduling{
		EaseFactor: DefaultEaseFactor,
	}
}

// Validate checks if the Scheduling state is internally consistent.
// Returns an error if any field fails validation.
func (s Scheduling) Validate() error {
	if s.ReviewCount < 0 {
		return ErrNegativeReviewCount
	}

	if s.CorrectCount < 0 {
		return ErrNegativeCorrectCount
	}

	if s.CorrectCount > s.ReviewCount {
		return ErrCorrectExceedsReviews
	}

	if s.Interval < 0 {
		return ErrNegativeInterval
	}

	if s.EaseFactor <= 1.0 {
		return ErrEaseFactorTooLow
	}

	return nil
}

// IsDue reports whether the card should be shown now: either it has never
// been scheduled, or its next review date has arrived.
func (s Scheduling) IsDue(now time.Time) bool {
	return s.NextReviewAt.IsZero() || !s.NextReviewAt.After(now)
}

// IsOverdue reports whether the card's next review date is more than a full
// day in the past. Never-scheduled cards are due but not overdue.
func (s Scheduling) IsOverdue(now time.Time) bool {
	return !s.NextReviewAt.IsZero() && s.NextReviewAt.Before(now.Add(-24*time.Hour))
}

// IsNew reports whether the card has never been reviewed.
func (s Scheduling) IsNew() bool {
	return s.ReviewCount == 0
}

// IsLearning reports whether the card has been reviewed but its interval has
// not yet reached maturity.
func (s Scheduling) IsLearning() bool {
	return s.ReviewCount > 0 && s.Interval < MatureIntervalDays
}

// IsMature reports whether the card's interval has reached maturity.
func (s Scheduling) IsMature() bool {
	return s.Interval >= MatureIntervalDays
}
