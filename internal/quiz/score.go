// Package quiz contains the scoring engine and the question parser for the
// per-place trivia quiz, plus the static fallback question bank used when
// the generation service yields too few usable questions.
package quiz

import "fmt"

// PointsPerCorrectAnswer is the fixed weight of one correct answer.
const PointsPerCorrectAnswer = 10

// Outcome is the reward computed from a completed quiz.
type Outcome struct {
	Points      int
	DiscountPct int
}

// Score computes points and the tiered discount percentage for a finished
// quiz. Every quiz grants at least the 5% participation floor. total must be
// positive and correct must be within [0, total].
func Score(correct, total int) (Outcome, error) {
	if total <= 0 {
		return Outcome{}, fmt.Errorf("quiz: total questions must be positive, got %d", total)
	}
	if correct < 0 || correct > total {
		return Outcome{}, fmt.Errorf("quiz: correct answers %d out of range [0,%d]", correct, total)
	}

	pct := float64(correct) / float64(total) * 100

	out := Outcome{Points: correct * PointsPerCorrectAnswer}
	switch {
	case pct >= 90:
		out.DiscountPct = 25
	case pct >= 70:
		out.DiscountPct = 15
	case pct >= 50:
		out.DiscountPct = 10
	default:
		out.DiscountPct = 5
	}
	return out, nil
}
