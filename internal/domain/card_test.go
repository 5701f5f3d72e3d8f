package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card, err := NewCard("What is the capital of France?", "Paris", CardTypeClassic, 2)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, CardTypeClassic, card.Type)
	assert.Equal(t, 0, card.Scheduling.ReviewCount)
	assert.Equal(t, 0, card.Scheduling.CorrectCount)
	assert.Equal(t, DefaultEaseFactor, card.Scheduling.EaseFactor)
	assert.True(t, card.Scheduling.NextReviewAt.IsZero(), "a new card has no scheduled review")
	assert.True(t, card.Scheduling.LastReviewedAt.IsZero())
	assert.False(t, card.CreatedAt.IsZero())
}

func TestCardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := func() *Card {
		return &Card{
			ID:         uuid.New(),
			Front:      "front",
			Back:       "back",
			Type:       CardTypeClassic,
			Difficulty: 3,
			Scheduling: NewScheduling(),
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Card)
		wantErr error
	}{
		{
			name:    "valid classic card",
			mutate:  func(c *Card) {},
			wantErr: nil,
		},
		{
			name:    "nil ID",
			mutate:  func(c *Card) { c.ID = uuid.Nil },
			wantErr: ErrCardIDEmpty,
		},
		{
			name:    "blank front",
			mutate:  func(c *Card) { c.Front = "   " },
			wantErr: ErrCardFrontEmpty,
		},
		{
			name:    "blank back",
			mutate:  func(c *Card) { c.Back = "" },
			wantErr: ErrCardBackEmpty,
		},
		{
			name:    "unknown card type",
			mutate:  func(c *Card) { c.Type = "cloze" },
			wantErr: ErrCardTypeInvalid,
		},
		{
			name:    "difficulty below range",
			mutate:  func(c *Card) { c.Difficulty = 0 },
			wantErr: ErrCardDifficultyRange,
		},
		{
			name:    "difficulty above range",
			mutate:  func(c *Card) { c.Difficulty = 6 },
			wantErr: ErrCardDifficultyRange,
		},
		{
			name:    "multiple choice without options",
			mutate:  func(c *Card) { c.Type = CardTypeMultipleChoice },
			wantErr: ErrCardOptionsEmpty,
		},
		{
			name: "multiple choice options missing the answer",
			mutate: func(c *Card) {
				c.Type = CardTypeMultipleChoice
				c.Options = []string{"red herring", "another"}
			},
			wantErr: ErrCardOptionsMissingBack,
		},
		{
			name: "multiple choice with the answer among options",
			mutate: func(c *Card) {
				c.Type = CardTypeMultipleChoice
				c.Options = []string{"red herring", "back"}
			},
			wantErr: nil,
		},
		{
			name:    "fill in the blank without placeholder",
			mutate:  func(c *Card) { c.Type = CardTypeFillInBlank },
			wantErr: ErrCardBlankMissing,
		},
		{
			name: "fill in the blank with placeholder",
			mutate: func(c *Card) {
				c.Type = CardTypeFillInBlank
				c.Front = "The capital of France is {{blank}}."
			},
			wantErr: nil,
		},
		{
			name:    "corrupt scheduling state",
			mutate:  func(c *Card) { c.Scheduling.CorrectCount = 5 },
			wantErr: ErrCorrectExceedsReviews,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid()
			tc.mutate(card)

			err := card.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCardTypeIsValid(t *testing.T) {
	t.Parallel() // Enable parallel execution

	for _, valid := range []CardType{CardTypeClassic, CardTypeMultipleChoice, CardTypeFillInBlank, CardTypeTypeAnswer} {
		assert.True(t, valid.IsValid(), "%s should be valid", valid)
	}
	assert.False(t, CardType("").IsValid())
	assert.False(t, CardType("cloze").IsValid())
}

func TestBlankParts(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card := &Card{
		ID:         uuid.New(),
		Front:      "The {{blank}} jumps over the dog.",
		Back:       "fox",
		Type:       CardTypeFillInBlank,
		Difficulty: 1,
		Scheduling: NewScheduling(),
	}

	before, after, ok := card.BlankParts()
	require.True(t, ok)
	assert.Equal(t, "The ", before)
	assert.Equal(t, " jumps over the dog.", after)

	classic := &Card{Type: CardTypeClassic}
	_, _, ok = classic.BlankParts()
	assert.False(t, ok)
}
