package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/flashvault/flashvault/internal/domain"
	"github.com/flashvault/flashvault/internal/domain/srs"
)

// ErrNotObjective is returned when answer evaluation is attempted on a
// classic card, which is graded by self-assessment instead.
var ErrNotObjective = errors.New("classic cards have no objective answer")

// EvaluateAnswer reports whether the given input is the correct answer for
// the card. Multiple choice requires the exact option text; typed answers
// match the back text ignoring case and surrounding whitespace. There is no
// partial credit.
func EvaluateAnswer(card *domain.Card, input string) (bool, error) {
	switch card.Type {
	case domain.CardTypeMultipleChoice:
		return input == card.Back, nil
	case domain.CardTypeFillInBlank, domain.CardTypeTypeAnswer:
		return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(card.Back)), nil
	case domain.CardTypeClassic:
		return false, ErrNotObjective
	default:
		return false, fmt.Errorf("%w: %q", domain.ErrCardTypeInvalid, string(card.Type))
	}
}

// GradeForCorrect maps an objective correctness result onto the grade
// domain: Good when correct, Again when not.
func GradeForCorrect(correct bool) srs.Grade {
	if correct {
		return srs.GradeGood
	}
	return srs.GradeAgain
}

// ShuffleOptions returns the options in a random presentation order drawn
// from rng. The randomness stays out of the scheduler entirely; tests seed
// rng for deterministic order. The input slice is not modified.
func ShuffleOptions(rng *rand.Rand, options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
