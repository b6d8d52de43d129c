// Package scoring turns submitted answers into a normalized result.
package scoring

import (
	"math"

	"wellnest/internal/domain"
)

// maxPointsPerAnswer is the ceiling of the per-option scale.
const maxPointsPerAnswer = 3

// Aggregate sums the snapshot points carried by the submitted answers
// and derives the normalized 0-10 score. It only sums what it is given;
// points were fixed when the questions were generated and selected, so
// historical results stay stable even if generation heuristics change.
// An answer without a selection contributes 0 points; it is not an error.
func Aggregate(userID, category string, answers []domain.Answer) domain.Result {
	total := 0
	for _, a := range answers {
		total += a.Points
	}

	maxPoints := len(answers) * maxPointsPerAnswer

	score := 0
	if maxPoints > 0 {
		score = int(math.Round(float64(total) / float64(maxPoints) * 10))
	}

	return domain.Result{
		UserID:       userID,
		Category:     category,
		Answers:      answers,
		TotalPoints:  total,
		MaxPoints:    maxPoints,
		ScoreOutOf10: score,
	}
}
