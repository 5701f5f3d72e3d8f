package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlankPlaceholder is the token a fill-in-the-blank card's front text must
// contain. The rendering boundary splits the front around it.
const BlankPlaceholder = "{{blank}}"

// CardType identifies how a card is presented and answered.
type CardType string

// Possible card type values
const (
	CardTypeClassic        CardType = "classic"
	CardTypeMultipleChoice CardType = "multiple_choice"
	CardTypeFillInBlank    CardType = "fill_in_the_blank"
	CardTypeTypeAnswer     CardType = "type_the_answer"
)

// IsValid reports whether the card type is one of the known values.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeClassic, CardTypeMultipleChoice, CardTypeFillInBlank, CardTypeTypeAnswer:
		return true
	default:
		return false
	}
}

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front text is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back text is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardTypeInvalid is returned when a card's type is not a known value.
	ErrCardTypeInvalid = errors.New("invalid card type")

	// ErrCardOptionsEmpty is returned when a multiple choice card has no options.
	ErrCardOptionsEmpty = errors.New("multiple choice card must have options")

	// ErrCardOptionsMissingBack is returned when a multiple choice card's
	// options do not contain the correct answer.
	ErrCardOptionsMissingBack = errors.New("multiple choice options must contain the back text")

	// ErrCardDifficultyRange is returned when a card's difficulty is outside 1-5.
	ErrCardDifficultyRange = errors.New("card difficulty must be between 1 and 5")

	// ErrCardBlankMissing is returned when a fill-in-the-blank card's front
	// does not contain the blank placeholder.
	ErrCardBlankMissing = errors.New("fill-in-the-blank front must contain the blank placeholder")
)

// Card represents a single flashcard with its content and scheduling state.
// Content fields (Front, Back, Type, Options, Difficulty, DeckID, Topic) are
// owned by the caller and never touched by the engine; the Scheduling field
// is mutated only through the srs package.
type Card struct {
	ID         uuid.UUID  `json:"id"`
	DeckID     uuid.UUID  `json:"deck_id"` // uuid.Nil means the card belongs to no deck
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Type       CardType   `json:"card_type"`
	Options    []string   `json:"options,omitempty"` // multiple choice only; must contain Back
	Topic      string     `json:"topic,omitempty"`   // empty means no topic
	Difficulty int        `json:"difficulty"`        // user-assigned 1-5, not used for scheduling
	Scheduling Scheduling `json:"scheduling"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewCard creates a new Card of the given type with default scheduling state.
// Options are only meaningful for multiple choice cards. Returns an error if
// validation fails.
func NewCard(front, back string, cardType CardType, difficulty int, options ...string) (*Card, error) {
	card := &Card{
		ID:         uuid.New(),
		Front:      front,
		Back:       back,
		Type:       cardType,
		Options:    options,
		Difficulty: difficulty,
		Scheduling: NewScheduling(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if strings.TrimSpace(c.Front) == "" {
		return ErrCardFrontEmpty
	}

	if strings.TrimSpace(c.Back) == "" {
		return ErrCardBackEmpty
	}

	if !c.Type.IsValid() {
		return ErrCardTypeInvalid
	}

	if c.Difficulty < 1 || c.Difficulty > 5 {
		return ErrCardDifficultyRange
	}

	switch c.Type {
	case CardTypeMultipleChoice:
		if len(c.Options) == 0 {
			return ErrCardOptionsEmpty
		}
		if !containsString(c.Options, c.Back) {
			return ErrCardOptionsMissingBack
		}
	case CardTypeFillInBlank:
		if !strings.Contains(c.Front, BlankPlaceholder) {
			return ErrCardBlankMissing
		}
	}

	return c.Scheduling.Validate()
}

// BlankParts splits a fill-in-the-blank card's front text around the blank
// placeholder. ok is false for other card types or when the placeholder is
// missing.
func (c *Card) BlankParts() (before, after string, ok bool) {
	if c.Type != CardTypeFillInBlank {
		return "", "", false
	}
	before, after, ok = strings.Cut(c.Front, BlankPlaceholder)
	return before, after, ok
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
