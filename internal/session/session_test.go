package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
	"github.com/flashvault/flashvault/internal/stats"
)

func newTestSession(t *testing.T, cards ...domain.Card) *Session {
	t.Helper()
	sess, err := New(cards, srs.NewDefaultService())
	require.NoError(t, err)
	return sess
}

func TestNewRejectsEmptyQueue(t *testing.T) {
	t.Parallel() // Enable parallel execution

	_, err := New(nil, srs.NewDefaultService())
	assert.ErrorIs(t, err, ErrNoCardsAvailable)

	_, err = New([]domain.Card{}, srs.NewDefaultService())
	assert.ErrorIs(t, err, ErrNoCardsAvailable)
}

func TestSessionQueueIsASnapshot(t *testing.T) {
	t.Parallel() // Enable parallel execution

	cards := []domain.Card{makeCard(t, "one", 3)}
	sess := newTestSession(t, cards...)

	cards[0].Front = "mutated"
	require.NotNil(t, sess.Current())
	assert.Equal(t, "one", sess.Current().Front)
}

func TestClassicRevealToggles(t *testing.T) {
	t.Parallel() // Enable parallel execution
	sess := newTestSession(t, makeCard(t, "front", 3))

	require.NoError(t, sess.Reveal())
	assert.True(t, sess.Revealed())

	// Peek back: toggling has no scheduling side effect.
	require.NoError(t, sess.Reveal())
	assert.False(t, sess.Revealed())
	assert.Equal(t, 0, sess.Current().Scheduling.ReviewCount)

	require.NoError(t, sess.Reveal())
	assert.True(t, sess.Revealed())
}

func TestGradeBeforeRevealIsInvalid(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "front", 3))

	_, err := sess.Grade(srs.GradeGood, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGradeAdvancesAndFinishes(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "first", 3), makeCard(t, "second", 3))

	require.NoError(t, sess.Reveal())
	result, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)

	assert.False(t, result.Finished)
	assert.Equal(t, 1, result.Scheduling.ReviewCount)
	assert.Equal(t, 1, result.Scheduling.CorrectCount)
	assert.Equal(t, 1, result.Scheduling.Interval)
	assert.Equal(t, 1, sess.Position())
	assert.False(t, sess.Revealed())
	assert.Equal(t, "second", sess.Current().Front)

	require.NoError(t, sess.Reveal())
	result, err = sess.Grade(srs.GradeAgain, now)
	require.NoError(t, err)

	assert.True(t, result.Finished)
	assert.True(t, sess.IsFinished())
	assert.Nil(t, sess.Current())

	// The final queue keeps the applied scheduling updates for summaries.
	queue := sess.Queue()
	require.Len(t, queue, 2)
	assert.Equal(t, 1, queue[0].Scheduling.ReviewCount)
	assert.Equal(t, 1, queue[1].Scheduling.ReviewCount)
	assert.Equal(t, 0, queue[1].Scheduling.CorrectCount)
}

func TestDoubleGradeIsRejected(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "first", 3), makeCard(t, "second", 3))

	require.NoError(t, sess.Reveal())
	_, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)

	// A second grade without an intervening reveal must not double-count.
	_, err = sess.Grade(srs.GradeGood, now)
	assert.ErrorIs(t, err, ErrAlreadyGraded)
	assert.Equal(t, 0, sess.Current().Scheduling.ReviewCount)

	// Revealing unblocks grading for the new position.
	require.NoError(t, sess.Reveal())
	_, err = sess.Grade(srs.GradeGood, now)
	assert.NoError(t, err)
}

func TestGradeOnFinishedSession(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "only", 3))

	require.NoError(t, sess.Reveal())
	_, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)
	require.True(t, sess.IsFinished())

	_, err = sess.Grade(srs.GradeGood, now)
	assert.ErrorIs(t, err, ErrSessionFinished)
	assert.ErrorIs(t, sess.Reveal(), ErrSessionFinished)
}

func TestInvalidGradePassesThrough(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "front", 3))

	require.NoError(t, sess.Reveal())
	_, err := sess.Grade(srs.Grade(7), now)
	assert.ErrorIs(t, err, srs.ErrInvalidGrade)

	// The failed grade neither advanced nor consumed the reveal.
	assert.Equal(t, 0, sess.Position())
	assert.True(t, sess.Revealed())
}

func TestCancelDiscardsRemainingCards(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "first", 3), makeCard(t, "second", 3), makeCard(t, "third", 3))

	require.NoError(t, sess.Reveal())
	_, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)

	sess.Cancel()
	assert.True(t, sess.IsFinished())

	// Cancel is idempotent and leaves ungraded cards untouched.
	sess.Cancel()
	queue := sess.Queue()
	assert.Equal(t, 1, queue[0].Scheduling.ReviewCount)
	assert.Equal(t, 0, queue[1].Scheduling.ReviewCount)
	assert.Equal(t, 0, queue[2].Scheduling.ReviewCount)
}

func TestSubmitAnswerFlow(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mc, err := domain.NewCard("Pick the capital of France", "Paris", domain.CardTypeMultipleChoice, 2,
		"Paris", "Lyon", "Marseille")
	require.NoError(t, err)

	sess := newTestSession(t, *mc)

	require.NoError(t, sess.SubmitAnswer("Lyon"))
	assert.True(t, sess.Revealed())

	answer, ok := sess.SubmittedAnswer()
	require.True(t, ok)
	assert.Equal(t, "Lyon", answer)

	// Submitting twice at one position is an invalid transition.
	assert.ErrorIs(t, sess.SubmitAnswer("Paris"), ErrInvalidTransition)

	result, err := sess.GradeFromAnswer(now)
	require.NoError(t, err)

	// The wrong option grades as Again.
	assert.Equal(t, 1, result.Scheduling.ReviewCount)
	assert.Equal(t, 0, result.Scheduling.CorrectCount)
	assert.True(t, result.Finished)
}

func TestSubmitAnswerRejectsClassicCards(t *testing.T) {
	t.Parallel() // Enable parallel execution
	sess := newTestSession(t, makeCard(t, "front", 3))

	assert.ErrorIs(t, sess.SubmitAnswer("anything"), ErrInvalidTransition)
}

func TestGradeFromAnswerWithoutSubmission(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	typed, err := domain.NewCard("2+2?", "4", domain.CardTypeTypeAnswer, 1)
	require.NoError(t, err)
	sess := newTestSession(t, *typed)

	_, err = sess.GradeFromAnswer(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAffectedAggregates(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "first", 3), makeCard(t, "second", 3))

	require.NoError(t, sess.Reveal())
	result, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)

	// A new card graded for the first time changes its maturity stage.
	assert.Contains(t, result.Affected, stats.AggregateAccuracy)
	assert.Contains(t, result.Affected, stats.AggregateDueCounts)
	assert.Contains(t, result.Affected, stats.AggregateStreak)
	assert.Contains(t, result.Affected, stats.AggregateMaturity)
}

func TestProgress(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sess := newTestSession(t, makeCard(t, "first", 3), makeCard(t, "second", 3))

	assert.InDelta(t, 0.0, sess.Progress(), 1e-9)

	require.NoError(t, sess.Reveal())
	assert.InDelta(t, 0.25, sess.Progress(), 1e-9)

	_, err := sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sess.Progress(), 1e-9)

	require.NoError(t, sess.Reveal())
	_, err = sess.Grade(srs.GradeGood, now)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sess.Progress(), 1e-9)
}
