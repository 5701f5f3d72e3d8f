// Package study orchestrates study sessions over a card collection: it
// selects cards through the session package, drives the session state
// machine, and persists each graded card through the caller's repository.
package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
	"github.com/flashvault/flashvault/internal/session"
	"github.com/flashvault/flashvault/internal/stats"
)

// CardRepository is the external collaborator that owns card storage. The
// engine only ever reads a materialized snapshot and writes back the six
// scheduling fields of a graded card as a unit.
type CardRepository interface {
	// GetAllCards returns a snapshot of the full card collection.
	GetAllCards(ctx context.Context) ([]domain.Card, error)

	// UpdateScheduling persists a card's scheduling state atomically.
	UpdateScheduling(ctx context.Context, cardID uuid.UUID, scheduling domain.Scheduling) error
}

// StudyService drives study sessions and dashboard statistics.
type StudyService interface {
	// StartSession selects and orders the cards for the given mode and
	// returns a fresh session over them.
	//
	// Returns:
	//   - (*session.Session, nil): a session ready for its first reveal
	//   - (nil, session.ErrNoCardsAvailable): the mode matched no cards
	//   - (nil, error): repository or selector failure
	StartSession(ctx context.Context, mode session.Mode, filter session.Filter, now time.Time) (*session.Session, error)

	// GradeCurrent grades the session's current card and persists the
	// updated scheduling state. Scheduling is deterministic, so only
	// persistence failures are worth retrying: on a failed write the
	// session still advances and the result is returned alongside the
	// error so the caller can retry the write with it.
	GradeCurrent(ctx context.Context, sess *session.Session, grade srs.Grade, now time.Time) (*session.GradeResult, error)

	// SubmitAndGrade records an answer for the current objective card,
	// evaluates it, grades Good or Again accordingly, and persists the
	// result, mirroring GradeCurrent.
	SubmitAndGrade(ctx context.Context, sess *session.Session, input string, now time.Time) (*session.GradeResult, error)

	// PreviewGrades computes the would-be scheduling outcome of all four
	// grades for the session's current card, for labeling grade buttons.
	PreviewGrades(sess *session.Session, now time.Time) (srs.Preview, error)

	// Summary recomputes the dashboard statistics from the repository's
	// current snapshot.
	Summary(ctx context.Context, now time.Time) (stats.Summary, error)
}

// Common error types for StudyService
var (
	// ErrNoCurrentCard indicates the session has no card to operate on.
	ErrNoCurrentCard = errors.New("session has no current card")
)

// ServiceError wraps errors from the study service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "start_session", "grade_current")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewStartSessionError returns a new ServiceError for the start_session operation.
func NewStartSessionError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "start_session",
		Message:   message,
		Err:       err,
	}
}

// NewGradeCurrentError returns a new ServiceError for the grade_current operation.
func NewGradeCurrentError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "grade_current",
		Message:   message,
		Err:       err,
	}
}

// NewSummaryError returns a new ServiceError for the summary operation.
func NewSummaryError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "summary",
		Message:   message,
		Err:       err,
	}
}
