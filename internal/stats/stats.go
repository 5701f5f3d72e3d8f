// Package stats computes read-only projections over a card collection.
// Nothing here is cached or stored; every summary is recomputed from the
// snapshot the caller supplies.
package stats

import (
	"math"
	"time"

	"github.com/flashvault/flashvault/internal/domain"
)

// Aggregate names a statistic family that a mutation can invalidate. Grading
// reports which aggregates it touched so the caller can decide what to
// refresh instead of discarding every derived view.
type Aggregate string

// Aggregate families
const (
	AggregateAccuracy  Aggregate = "accuracy"   // review and correct counts
	AggregateDueCounts Aggregate = "due_counts" // due and overdue counts
	AggregateMaturity  Aggregate = "maturity"   // new/learning/mature split
	AggregateStreak    Aggregate = "streak"     // distinct study days
)

// Summary holds the dashboard projections for a card collection.
type Summary struct {
	TotalCards   int `json:"total_cards"`
	StudiedCards int `json:"studied_cards"` // cards with at least one review

	// Accuracy is the percentage of all recorded grades that were
	// successful, rounded to the nearest integer. Zero when nothing has
	// been reviewed yet.
	Accuracy int `json:"accuracy"`

	DueCount      int `json:"due_count"`
	OverdueCount  int `json:"overdue_count"` // due by more than a full day
	NewCount      int `json:"new_count"`
	LearningCount int `json:"learning_count"`
	MatureCount   int `json:"mature_count"`

	// StudyStreak counts the distinct calendar dates on which any review
	// happened. Despite the name it is not a consecutive-days streak; the
	// name is kept for continuity with the stored statistic it replaces.
	StudyStreak int `json:"study_streak"`
}

// Compute builds a Summary over the given cards as of now.
func Compute(cards []domain.Card, now time.Time) Summary {
	var summary Summary
	summary.TotalCards = len(cards)

	totalReviews := 0
	correctReviews := 0
	studyDays := make(map[string]struct{})

	for _, card := range cards {
		sched := card.Scheduling

		if sched.ReviewCount > 0 {
			summary.StudiedCards++
		}
		totalReviews += sched.ReviewCount
		correctReviews += sched.CorrectCount

		if sched.IsDue(now) {
			summary.DueCount++
		}
		if sched.IsOverdue(now) {
			summary.OverdueCount++
		}

		if sched.IsNew() {
			summary.NewCount++
		}
		if sched.IsLearning() {
			summary.LearningCount++
		}
		if sched.IsMature() {
			summary.MatureCount++
		}

		if !sched.LastReviewedAt.IsZero() {
			studyDays[sched.LastReviewedAt.Format("2006-01-02")] = struct{}{}
		}
	}

	if totalReviews > 0 {
		summary.Accuracy = int(math.Round(100 * float64(correctReviews) / float64(totalReviews)))
	}
	summary.StudyStreak = len(studyDays)

	return summary
}
