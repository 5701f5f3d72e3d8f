package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/flashvault/flashvault/internal/domain/srs"
	"github.com/flashvault/flashvault/internal/platform/logger"
	"github.com/flashvault/flashvault/internal/session"
	"github.com/flashvault/flashvault/internal/stats"
)

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	cardRepo   CardRepository
	srsService srs.Service
	logger     *slog.Logger
}

// NewStudyService creates a new StudyService implementation.
func NewStudyService(
	cardRepo CardRepository,
	srsService srs.Service,
	log *slog.Logger,
) StudyService {
	// Validate inputs
	if cardRepo == nil {
		panic("cardRepo cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	// Use provided logger or create default
	if log == nil {
		log = slog.Default()
	}

	return &studyServiceImpl{
		cardRepo:   cardRepo,
		srsService: srsService,
		logger:     log.With(slog.String("component", "study_service")),
	}
}

// StartSession implements StudyService.StartSession.
func (s *studyServiceImpl) StartSession(
	ctx context.Context,
	mode session.Mode,
	filter session.Filter,
	now time.Time,
) (*session.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cardRepo.GetAllCards(ctx)
	if err != nil {
		log.Error("failed to load card collection",
			slog.String("error", err.Error()),
			slog.String("mode", string(mode)))
		return nil, NewStartSessionError("failed to load card collection", err)
	}

	queue, err := session.SelectCards(cards, mode, filter, now)
	if err != nil {
		return nil, NewStartSessionError("failed to select cards", err)
	}

	sess, err := session.New(queue, s.srsService)
	if err != nil {
		// Pass the sentinel through so callers can detect the empty queue.
		return nil, err
	}

	log.Debug("study session started",
		slog.String("session_id", sess.ID().String()),
		slog.String("mode", string(mode)),
		slog.Int("queue_size", sess.Size()))
	return sess, nil
}

// GradeCurrent implements StudyService.GradeCurrent.
func (s *studyServiceImpl) GradeCurrent(
	ctx context.Context,
	sess *session.Session,
	grade srs.Grade,
	now time.Time,
) (*session.GradeResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := sess.Grade(grade, now)
	if err != nil {
		return nil, err
	}

	if err := s.cardRepo.UpdateScheduling(ctx, result.CardID, result.Scheduling); err != nil {
		log.Error("failed to persist scheduling update",
			slog.String("error", err.Error()),
			slog.String("session_id", sess.ID().String()),
			slog.String("card_id", result.CardID.String()))
		// The grade itself stands; hand the result back so the caller can
		// retry the write.
		return result, NewGradeCurrentError("failed to persist scheduling update", err)
	}

	log.Debug("card graded",
		slog.String("session_id", sess.ID().String()),
		slog.String("card_id", result.CardID.String()),
		slog.String("grade", grade.String()),
		slog.Int("interval", result.Scheduling.Interval),
		slog.Float64("ease_factor", result.Scheduling.EaseFactor),
		slog.Time("next_review_at", result.Scheduling.NextReviewAt),
		slog.Bool("session_finished", result.Finished))
	return result, nil
}

// SubmitAndGrade implements StudyService.SubmitAndGrade.
func (s *studyServiceImpl) SubmitAndGrade(
	ctx context.Context,
	sess *session.Session,
	input string,
	now time.Time,
) (*session.GradeResult, error) {
	card := sess.Current()
	if card == nil {
		return nil, ErrNoCurrentCard
	}

	if err := sess.SubmitAnswer(input); err != nil {
		return nil, err
	}

	correct, err := session.EvaluateAnswer(card, input)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	return s.GradeCurrent(ctx, sess, session.GradeForCorrect(correct), now)
}

// PreviewGrades implements StudyService.PreviewGrades.
func (s *studyServiceImpl) PreviewGrades(sess *session.Session, now time.Time) (srs.Preview, error) {
	card := sess.Current()
	if card == nil {
		return srs.Preview{}, ErrNoCurrentCard
	}

	return s.srsService.Preview(&card.Scheduling, now)
}

// Summary implements StudyService.Summary.
func (s *studyServiceImpl) Summary(ctx context.Context, now time.Time) (stats.Summary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cardRepo.GetAllCards(ctx)
	if err != nil {
		log.Error("failed to load card collection", slog.String("error", err.Error()))
		return stats.Summary{}, NewSummaryError("failed to load card collection", err)
	}

	return stats.Compute(cards, now), nil
}
