package quizgen

import "strings"

// Keyword tables for the fallback scorer. Loaded once, read-only; safe
// for concurrent use. Matching is case-insensitive substring matching
// against the question text or option label.

// negativeConstructTerms mark a question as a negative health construct:
// higher reported intensity means less healthy.
var negativeConstructTerms = []string{
	"stress", "pain", "smok", "alcohol", "drink", "sugar", "candy", "soda",
	"junk", "fast food", "screen", "sedentary", "sitting", "anxiety",
	"depress", "fatigue", "exhaust", "insomnia", "blood pressure", "cholesterol",
}

// bestIndicatorTerms are labels that signal the healthiest choice.
var bestIndicatorTerms = []string{
	"always", "excellent", "great", "7-9", "4-5", "often exercise",
	"well-rested", "clear", "none", "never", "low", "rarely",
}

// worstIndicatorTerms signal the unhealthiest choice. "never", "daily"
// and "frequent" only count when not about exercise.
var worstIndicatorTerms = []string{"poor", "<5", "0-1", "high", "severe"}

var (
	negHighTiers = []string{"none", "never", "low", "rarely", "minimal"}
	negMidTiers  = []string{"moderate", "sometimes", "medium", "some"}
	negZeroTiers = []string{"often", "high", "frequent", "severe", "daily", "always"}

	posMidTiers = []string{"most", "good", "3-4", "sometimes", "moderate", "ok", "fair"}
	posLowTiers = []string{"rarely", "1-2", "poor", "not much"}
)

// AssignPoints scores every option label of a question on the 0-3
// healthiness scale. Deterministic for identical input; invoked only
// when the provider omitted points for at least one option.
func AssignPoints(questionText string, labels []string) []int {
	negative := isNegativeConstruct(questionText)

	points := make([]int, len(labels))
	for i, label := range labels {
		t := strings.ToLower(label)
		if negative {
			points[i] = scoreNegative(t)
		} else {
			points[i] = scorePositive(t)
		}
	}
	return points
}

// isNegativeConstruct reports whether higher intensity means less healthy
// for this question.
func isNegativeConstruct(questionText string) bool {
	return containsAny(strings.ToLower(questionText), negativeConstructTerms)
}

func scoreNegative(t string) int {
	switch {
	case containsAny(t, negHighTiers):
		return 3
	case containsAny(t, negMidTiers):
		return 2
	case containsAny(t, negZeroTiers):
		return 0
	case isBestIndicator(t):
		return 3
	case isWorstIndicator(t):
		return 0
	default:
		return 1
	}
}

func scorePositive(t string) int {
	switch {
	case isBestIndicator(t):
		return 3
	case containsAny(t, posMidTiers):
		return 2
	case containsAny(t, posLowTiers):
		return 1
	case isWorstIndicator(t):
		return 0
	default:
		return 1
	}
}

func isBestIndicator(t string) bool {
	return containsAny(t, bestIndicatorTerms)
}

func isWorstIndicator(t string) bool {
	if containsAny(t, worstIndicatorTerms) {
		return true
	}
	// Intensity words read as unhealthy unless they describe exercise
	// ("never exercise" is worst, "daily exercise" is not).
	for _, term := range []string{"never", "daily", "frequent"} {
		if strings.Contains(t, term) && !strings.Contains(t, "exercise") {
			return true
		}
	}
	return false
}

func containsAny(t string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
