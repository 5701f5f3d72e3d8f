package srs

import (
	"math"
	"time"

	"github.com/flashvault/flashvault/internal/domain"
)

// easeAdjustment returns the ease factor delta for a successful review.
//
// This is the SM-2 quality adjustment with the 1-4 grade domain mapped onto
// quality values: 0.1 - (5-g)*(0.08 + (5-g)*0.02). Easy leaves the ease
// factor unchanged; Good and Hard pull it down:
//
//	Hard (2): 0.1 - 3*(0.08 + 3*0.02) = -0.32
//	Good (3): 0.1 - 2*(0.08 + 2*0.02) = -0.14
//	Easy (4): 0.1 - 1*(0.08 + 1*0.02) = 0.00
func easeAdjustment(grade Grade) float64 {
	q := float64(5 - int(grade))
	return 0.1 - q*(0.08+q*0.02)
}

// roundDays rounds a fractional day count to the nearest whole day,
// half away from zero, matching the behavior the stored intervals were
// produced with.
func roundDays(days float64) int {
	return int(math.Round(days))
}

// calculateNextScheduling computes the scheduling state that results from
// grading a card. It never mutates its input; the returned value is a fresh
// copy with all six scheduling fields updated as a unit.
//
// Algorithm, in order:
//  1. The review count increments unconditionally.
//  2. Again: interval resets to the lapse interval and the ease factor drops
//     by the again penalty. The correct count is untouched.
//  3. Otherwise the grade is a success: the correct count increments, the
//     first two successes get fixed intervals, later ones grow the previous
//     interval by the previous ease factor. The ease adjustment is applied
//     after the interval recompute, then the Hard/Easy interval modifiers.
//  4. Ease factor is clamped to its configured bounds and rounded to two
//     decimal places; the interval is clamped to its configured day range.
//  5. The next review lands interval days after now.
func calculateNextScheduling(
	state domain.Scheduling,
	grade Grade,
	now time.Time,
	params *Params,
) domain.Scheduling {
	next := state
	next.ReviewCount++

	if !grade.IsSuccess() {
		next.Interval = params.LapseInterval
		next.EaseFactor = state.EaseFactor - params.AgainPenalty
	} else {
		next.CorrectCount++

		switch next.CorrectCount {
		case 1:
			next.Interval = params.FirstInterval
		case 2:
			next.Interval = params.SecondInterval
		default:
			// Grow from the pre-review interval and ease factor.
			next.Interval = roundDays(float64(state.Interval) * state.EaseFactor)
		}

		next.EaseFactor = state.EaseFactor + easeAdjustment(grade)

		if grade == GradeEasy {
			next.Interval = roundDays(float64(next.Interval) * params.EasyIntervalModifier)
		}
		if grade == GradeHard {
			next.Interval = roundDays(float64(next.Interval) * params.HardIntervalModifier)
		}
	}

	// Clamp the ease factor, then round to two decimals for storage stability.
	if next.EaseFactor < params.MinEaseFactor {
		next.EaseFactor = params.MinEaseFactor
	}
	if next.EaseFactor > params.MaxEaseFactor {
		next.EaseFactor = params.MaxEaseFactor
	}
	next.EaseFactor = math.Round(next.EaseFactor*100) / 100

	if next.Interval < params.MinInterval {
		next.Interval = params.MinInterval
	}
	if next.Interval > params.MaxInterval {
		next.Interval = params.MaxInterval
	}

	next.NextReviewAt = now.AddDate(0, 0, next.Interval)
	next.LastReviewedAt = now

	return next
}
