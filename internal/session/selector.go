package session

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/flashvault/flashvault/internal/domain"
)

// Mode selects which subset of the collection a study session draws from.
type Mode string

// Possible study mode values
const (
	ModeDue          Mode = "due"        // cards due now or never scheduled
	ModeAll          Mode = "all"        // the whole collection
	ModeByDeck       Mode = "deck"       // cards in one deck
	ModeByTopic      Mode = "topic"      // cards with one topic
	ModeByDifficulty Mode = "difficulty" // cards with one difficulty level
)

// IsValid reports whether the mode is one of the known values.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDue, ModeAll, ModeByDeck, ModeByTopic, ModeByDifficulty:
		return true
	default:
		return false
	}
}

// Filter supplies the parameter the filtering modes need. Only the field
// matching the mode is consulted.
type Filter struct {
	DeckID     uuid.UUID
	Topic      string
	Difficulty int
}

// Selector errors
var (
	// ErrInvalidMode is returned when the study mode is not a known value.
	ErrInvalidMode = errors.New("invalid study mode")

	// ErrMissingFilter is returned when a filtering mode is used without its
	// filter parameter.
	ErrMissingFilter = errors.New("study mode requires a filter parameter")
)

// SelectCards returns the cards eligible for a session in the given mode,
// ordered by due-priority: never-scheduled and most-overdue cards first,
// then ascending next review date. The sort is stable, so unchanged inputs
// produce an identical sequence on every call. The input slice is not
// modified.
func SelectCards(cards []domain.Card, mode Mode, filter Filter, now time.Time) ([]domain.Card, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	selected := make([]domain.Card, 0, len(cards))

	for _, card := range cards {
		include, err := matchesMode(card, mode, filter, now)
		if err != nil {
			return nil, err
		}
		if include {
			selected = append(selected, card)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return moreUrgent(selected[i].Scheduling, selected[j].Scheduling)
	})

	return selected, nil
}

func matchesMode(card domain.Card, mode Mode, filter Filter, now time.Time) (bool, error) {
	switch mode {
	case ModeDue:
		return card.Scheduling.IsDue(now), nil
	case ModeAll:
		return true, nil
	case ModeByDeck:
		if filter.DeckID == uuid.Nil {
			return false, fmt.Errorf("%w: deck ID", ErrMissingFilter)
		}
		// Cards outside any deck never match a deck filter.
		return card.DeckID == filter.DeckID, nil
	case ModeByTopic:
		if filter.Topic == "" {
			return false, fmt.Errorf("%w: topic", ErrMissingFilter)
		}
		return card.Topic == filter.Topic, nil
	case ModeByDifficulty:
		if filter.Difficulty < 1 || filter.Difficulty > 5 {
			return false, fmt.Errorf("%w: difficulty must be between 1 and 5", ErrMissingFilter)
		}
		return card.Difficulty == filter.Difficulty, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}
}

// moreUrgent orders scheduling states by ascending next review date, with a
// missing date sorting before everything (a never-scheduled card is
// infinitely overdue). Equal urgency reports false so the stable sort keeps
// collection order.
func moreUrgent(a, b domain.Scheduling) bool {
	aNever := a.NextReviewAt.IsZero()
	bNever := b.NextReviewAt.IsZero()

	switch {
	case aNever && bNever:
		return false
	case aNever:
		return true
	case bNever:
		return false
	default:
		return a.NextReviewAt.Before(b.NextReviewAt)
	}
}
