package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
)

func TestEvaluateAnswer(t *testing.T) {
	t.Parallel() // Enable parallel execution

	mc, err := domain.NewCard("Pick the capital", "Paris", domain.CardTypeMultipleChoice, 2,
		"Paris", "Lyon")
	require.NoError(t, err)

	typed, err := domain.NewCard("Capital of France?", "Paris", domain.CardTypeTypeAnswer, 2)
	require.NoError(t, err)

	blank, err := domain.NewCard("The capital of France is {{blank}}.", "Paris", domain.CardTypeFillInBlank, 2)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		card    *domain.Card
		input   string
		correct bool
	}{
		{
			name:    "multiple choice exact match",
			card:    mc,
			input:   "Paris",
			correct: true,
		},
		{
			name:    "multiple choice wrong option",
			card:    mc,
			input:   "Lyon",
			correct: false,
		},
		{
			name:    "multiple choice is case sensitive",
			card:    mc,
			input:   "paris",
			correct: false,
		},
		{
			name:    "typed answer ignores case and whitespace",
			card:    typed,
			input:   "  pArIs  ",
			correct: true,
		},
		{
			name:    "typed answer wrong text",
			card:    typed,
			input:   "London",
			correct: false,
		},
		{
			name:    "typed answer empty input",
			card:    typed,
			input:   "",
			correct: false,
		},
		{
			name:    "fill in the blank ignores case and whitespace",
			card:    blank,
			input:   "paris ",
			correct: true,
		},
		{
			name:    "fill in the blank no partial credit",
			card:    blank,
			input:   "Par",
			correct: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			correct, err := EvaluateAnswer(tc.card, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.correct, correct)
		})
	}
}

func TestEvaluateAnswerRejectsClassic(t *testing.T) {
	t.Parallel() // Enable parallel execution

	classic := makeCard(t, "front", 3)
	_, err := EvaluateAnswer(&classic, "anything")
	assert.ErrorIs(t, err, ErrNotObjective)
}

func TestGradeForCorrect(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.Equal(t, srs.GradeGood, GradeForCorrect(true))
	assert.Equal(t, srs.GradeAgain, GradeForCorrect(false))
}

func TestShuffleOptions(t *testing.T) {
	t.Parallel() // Enable parallel execution

	options := []string{"a", "b", "c", "d", "e", "f"}

	// A fixed seed produces a fixed presentation order.
	first := ShuffleOptions(rand.New(rand.NewSource(42)), options)
	second := ShuffleOptions(rand.New(rand.NewSource(42)), options)
	require.Equal(t, first, second)

	assert.ElementsMatch(t, options, first, "shuffling must keep the same options")
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, options,
		"the input slice must not be modified")
}
