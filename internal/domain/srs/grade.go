package srs

import "fmt"

// Grade is the discrete 1-4 recall-quality signal recorded for a review.
// Non-classic card types collapse correctness into Good (correct) or Again
// (incorrect) before reaching the scheduler.
type Grade int

// Possible grade values
const (
	GradeAgain Grade = 1 // failed to recall
	GradeHard  Grade = 2 // recalled with significant difficulty
	GradeGood  Grade = 3 // recalled with some effort
	GradeEasy  Grade = 4 // recalled effortlessly
)

// IsValid reports whether g is one of the four accepted grades.
func (g Grade) IsValid() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// IsSuccess reports whether g counts as a successful recall. Everything but
// Again is a success.
func (g Grade) IsSuccess() bool {
	return g >= GradeHard && g <= GradeEasy
}

// String returns the name of the grade ("again", "hard", "good", "easy").
// For invalid values it returns "Grade(n)".
func (g Grade) String() string {
	switch g {
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}

// Grades lists the four valid grades in ascending order. Useful for
// previewing all possible outcomes of a review.
func Grades() []Grade {
	return []Grade{GradeAgain, GradeHard, GradeGood, GradeEasy}
}
