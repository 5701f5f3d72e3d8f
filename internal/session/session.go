package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
	"github.com/flashvault/flashvault/internal/stats"
)

// Status describes where a session is in its lifecycle.
type Status string

// Possible session status values. A session is created already in progress;
// the not-started state exists only before construction, because starting
// with an empty queue is an error rather than a session.
const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Session errors
var (
	// ErrNoCardsAvailable is returned when a session is started with an
	// empty queue.
	ErrNoCardsAvailable = errors.New("no cards available for review")

	// ErrSessionFinished is returned when reveal or grade is called on a
	// finished session.
	ErrSessionFinished = errors.New("session is finished")

	// ErrAlreadyGraded is returned when grade is called a second time at the
	// same position without an intervening reveal.
	ErrAlreadyGraded = errors.New("current card already graded")

	// ErrInvalidTransition is returned for operations that are not valid in
	// the session's current state, such as grading before revealing.
	ErrInvalidTransition = errors.New("invalid session transition")
)

// GradeResult reports the outcome of grading one card: the scheduling state
// the caller must persist as a unit, whether the session just completed, and
// which statistic aggregates the grade invalidated.
type GradeResult struct {
	CardID     uuid.UUID
	Scheduling domain.Scheduling
	Finished   bool
	Affected   []stats.Aggregate
}

// Session steps through a fixed, ordered queue of card snapshots. It owns
// its queue exclusively; restarting means building a new Session. Not safe
// for concurrent use.
type Session struct {
	id           uuid.UUID
	queue        []domain.Card
	position     int
	revealed     bool
	lastWasGrade bool // distinguishes a repeat grade from grading unrevealed
	answer       string
	answered     bool
	status       Status
	scheduler    srs.Service
}

// New creates a session over the given queue, typically produced by
// SelectCards. The queue is copied; later changes to the input slice do not
// affect the session. An empty queue returns ErrNoCardsAvailable.
func New(queue []domain.Card, scheduler srs.Service) (*Session, error) {
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	if len(queue) == 0 {
		return nil, ErrNoCardsAvailable
	}

	snapshot := make([]domain.Card, len(queue))
	copy(snapshot, queue)

	return &Session{
		id:        uuid.New(),
		queue:     snapshot,
		status:    StatusInProgress,
		scheduler: scheduler,
	}, nil
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the card at the session's position, or nil once the
// session has finished.
func (s *Session) Current() *domain.Card {
	if s.status == StatusFinished {
		return nil
	}
	return &s.queue[s.position]
}

// Position returns the zero-based index of the current card.
func (s *Session) Position() int {
	return s.position
}

// Size returns the number of cards in the session queue.
func (s *Session) Size() int {
	return len(s.queue)
}

// Revealed reports whether the current card's answer is shown.
func (s *Session) Revealed() bool {
	return s.revealed
}

// IsFinished reports whether the session has reached its terminal state.
func (s *Session) IsFinished() bool {
	return s.status == StatusFinished
}

// Progress returns session completion in [0,1]. A revealed card counts as
// half done.
func (s *Session) Progress() float64 {
	if s.status == StatusFinished {
		return 1
	}
	done := float64(s.position)
	if s.revealed {
		done += 0.5
	}
	return done / float64(len(s.queue))
}

// Queue returns a copy of the session's card snapshots, including the
// scheduling updates applied so far. Valid in any state; after finishing it
// is the only remaining operation, used for summary statistics.
func (s *Session) Queue() []domain.Card {
	out := make([]domain.Card, len(s.queue))
	copy(out, s.queue)
	return out
}

// Reveal shows the current card's answer. For classic cards it toggles, so a
// second call hides the answer again (peeking has no scheduling effect).
// For other card types revealing twice is an invalid transition; their
// reveal happens when an answer is submitted.
func (s *Session) Reveal() error {
	if s.status == StatusFinished {
		return ErrSessionFinished
	}

	s.lastWasGrade = false

	if s.queue[s.position].Type == domain.CardTypeClassic {
		s.revealed = !s.revealed
		return nil
	}

	if s.revealed {
		return fmt.Errorf("%w: answer already revealed", ErrInvalidTransition)
	}
	s.revealed = true
	return nil
}

// SubmitAnswer records the user's answer for the current card and reveals
// the outcome. Valid only for the objective card types; classic cards have
// nothing to submit. An empty answer is allowed and simply never matches.
func (s *Session) SubmitAnswer(input string) error {
	if s.status == StatusFinished {
		return ErrSessionFinished
	}

	card := s.queue[s.position]
	if card.Type == domain.CardTypeClassic {
		return fmt.Errorf("%w: classic cards take no answer input", ErrInvalidTransition)
	}
	if s.revealed {
		return fmt.Errorf("%w: answer already revealed", ErrInvalidTransition)
	}

	s.answer = input
	s.answered = true
	s.revealed = true
	s.lastWasGrade = false
	return nil
}

// SubmittedAnswer returns the ephemeral answer recorded for the current
// card, if any. It is discarded when the session advances.
func (s *Session) SubmittedAnswer() (string, bool) {
	return s.answer, s.answered
}

// Grade records the given grade for the current card, applies the scheduler,
// and advances; grading the last card finishes the session. The returned
// result carries the updated scheduling state, which the caller persists.
// Grading is only valid while the answer is revealed, and only once per
// position.
func (s *Session) Grade(grade srs.Grade, now time.Time) (*GradeResult, error) {
	if s.status == StatusFinished {
		return nil, ErrSessionFinished
	}

	if !s.revealed {
		if s.lastWasGrade {
			return nil, ErrAlreadyGraded
		}
		return nil, fmt.Errorf("%w: grade before reveal", ErrInvalidTransition)
	}

	card := &s.queue[s.position]
	before := card.Scheduling

	next, err := s.scheduler.Schedule(&before, grade, now)
	if err != nil {
		return nil, err
	}
	card.Scheduling = *next

	result := &GradeResult{
		CardID:     card.ID,
		Scheduling: *next,
		Affected:   affectedAggregates(before, *next),
	}

	// Discard ephemeral input and advance.
	s.answer = ""
	s.answered = false
	s.revealed = false
	s.lastWasGrade = true

	if s.position == len(s.queue)-1 {
		s.status = StatusFinished
	} else {
		s.position++
	}
	result.Finished = s.status == StatusFinished

	return result, nil
}

// GradeFromAnswer evaluates the submitted answer against the current card
// and grades it Good when correct, Again when not. Valid only for the
// objective card types after SubmitAnswer.
func (s *Session) GradeFromAnswer(now time.Time) (*GradeResult, error) {
	if s.status == StatusFinished {
		return nil, ErrSessionFinished
	}

	if !s.answered {
		if s.lastWasGrade && !s.revealed {
			return nil, ErrAlreadyGraded
		}
		return nil, fmt.Errorf("%w: no answer submitted", ErrInvalidTransition)
	}

	correct, err := EvaluateAnswer(&s.queue[s.position], s.answer)
	if err != nil {
		return nil, err
	}

	return s.Grade(GradeForCorrect(correct), now)
}

// Cancel ends the session early, discarding the remaining queue entries
// without touching their scheduling state. Idempotent; safe to call on a
// finished session.
func (s *Session) Cancel() {
	s.status = StatusFinished
	s.revealed = false
	s.answer = ""
	s.answered = false
}

// affectedAggregates reports which statistic families a scheduling change
// invalidates. Counts and review dates move on every grade; the maturity
// split only moves when the card crosses a stage boundary.
func affectedAggregates(before, after domain.Scheduling) []stats.Aggregate {
	affected := []stats.Aggregate{
		stats.AggregateAccuracy,
		stats.AggregateDueCounts,
		stats.AggregateStreak,
	}

	if before.IsNew() != after.IsNew() ||
		before.IsLearning() != after.IsLearning() ||
		before.IsMature() != after.IsMature() {
		affected = append(affected, stats.AggregateMaturity)
	}

	return affected
}
