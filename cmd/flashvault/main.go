// Package main implements the flashvault command, a headless demonstration
// of the spaced-repetition engine: it seeds an in-memory deck, studies every
// due card once, and prints the resulting collection summary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"time"

	"github.com/flashvault/flashvault/internal/config"
	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
	"github.com/flashvault/flashvault/internal/platform/logger"
	"github.com/flashvault/flashvault/internal/service/study"
	"github.com/flashvault/flashvault/internal/session"
	"github.com/flashvault/flashvault/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("flashvault: %v", err)
	}
}

// run loads configuration, wires the engine together, and drives one study
// session over the seeded deck.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.Setup(logger.LoggerConfig{Level: cfg.Logging.Level})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx := logger.WithLogger(context.Background(), logg)

	cardStore := store.NewMemoryCardStore()
	if err := cardStore.CreateCards(ctx, seedDeck()); err != nil {
		return fmt.Errorf("failed to seed deck: %w", err)
	}

	svc := study.NewStudyService(cardStore, srs.NewServiceWithParams(cfg.SRS.Params()), logg)
	now := time.Now().UTC()

	sess, err := svc.StartSession(ctx, session.ModeDue, session.Filter{}, now)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	logg.Info("session started", slog.Int("queue_size", sess.Size()))

	rng := rand.New(rand.NewSource(now.UnixNano()))
	for !sess.IsFinished() {
		if err := studyCurrentCard(ctx, svc, sess, rng, now); err != nil {
			return err
		}
	}

	summary, err := svc.Summary(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// studyCurrentCard reviews one card: classic cards are revealed and graded
// Good, objective cards answer themselves with the known-correct answer.
func studyCurrentCard(
	ctx context.Context,
	svc study.StudyService,
	sess *session.Session,
	rng *rand.Rand,
	now time.Time,
) error {
	card := sess.Current()
	if card == nil {
		return study.ErrNoCurrentCard
	}

	preview, err := svc.PreviewGrades(sess, now)
	if err != nil {
		return fmt.Errorf("failed to preview grades: %w", err)
	}

	fmt.Printf("Q: %s\n", card.Front)
	if card.Type == domain.CardTypeMultipleChoice {
		for _, option := range session.ShuffleOptions(rng, card.Options) {
			fmt.Printf("   - %s\n", option)
		}
	}
	fmt.Printf("A: %s  (again %dd / hard %dd / good %dd / easy %dd)\n",
		card.Back,
		preview.Again.Interval, preview.Hard.Interval,
		preview.Good.Interval, preview.Easy.Interval)

	var result *session.GradeResult
	if card.Type == domain.CardTypeClassic {
		if err := sess.Reveal(); err != nil {
			return err
		}
		result, err = svc.GradeCurrent(ctx, sess, srs.GradeGood, now)
	} else {
		result, err = svc.SubmitAndGrade(ctx, sess, card.Back, now)
	}
	if err != nil {
		return fmt.Errorf("failed to grade card: %w", err)
	}

	fmt.Printf("   next review in %d day(s)\n\n", result.Scheduling.Interval)
	return nil
}

// seedDeck builds a small deck exercising every card type.
func seedDeck() []*domain.Card {
	mustCard := func(card *domain.Card, err error) *domain.Card {
		if err != nil {
			panic(err)
		}
		return card
	}

	return []*domain.Card{
		mustCard(domain.NewCard(
			"What is the capital of France?", "Paris",
			domain.CardTypeClassic, 1)),
		mustCard(domain.NewCard(
			"Which planet is closest to the sun?", "Mercury",
			domain.CardTypeMultipleChoice, 2,
			"Mercury", "Venus", "Mars")),
		mustCard(domain.NewCard(
			"Water boils at {{blank}} degrees Celsius at sea level.", "100",
			domain.CardTypeFillInBlank, 2)),
		mustCard(domain.NewCard(
			"What is the chemical symbol for gold?", "Au",
			domain.CardTypeTypeAnswer, 3)),
	}
}
