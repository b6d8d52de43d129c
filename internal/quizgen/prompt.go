package quizgen

import (
	"fmt"
	"strings"

	"wellnest/internal/domain"
	"wellnest/internal/llm"
)

const questionSystemPrompt = `You are a wellness coach writing self-assessment quizzes for everyday users. You return only valid JSON, never prose or code fences.`

// schemaRules fixes the required output shape and the scoring polarity
// convention. Every provider receives the identical contract.
const schemaRules = `Return ONLY valid JSON (no prose, no code fences).

Schema:
[
  {
    "question": "string",
    "options": [
      { "text": "string", "points": 0|1|2|3 },
      { "text": "string", "points": 0|1|2|3 },
      { "text": "string", "points": 0|1|2|3 },
      { "text": "string", "points": 0|1|2|3 }
    ],
    "dimension": "optional-short-tag-like 'sleep'|'stress'|'hydration'"
  }
]

Scoring rules (VERY IMPORTANT):
- Points reflect HEALTHINESS. Higher = healthier (3 best, 0 worst).
- For POSITIVE behaviors (sleep quality/quantity, hydration, fruit/veg intake, physical activity):
  - Best/healthiest choice -> 3, then 2, 1, 0.
- For NEGATIVE constructs (stress level, pain level, smoking, alcohol frequency, screen time, junk/processed food):
  - Worst choice (e.g., "High", "Severe", "Daily", "Very Often") -> 0
  - Best choice (e.g., "Low", "None", "Never", "Rarely") -> 3

Constraints:
- Exactly 4 concise options per question.
- Keep labels short and clear (e.g., "Never", "Rarely", "Most days", "Always").
- No duplicate options. No explanations. Pure JSON only.`

// buildQuestionPrompt constructs the generation prompt for a request
// whose defaults have already been applied.
func buildQuestionPrompt(req domain.GenerateRequest) llm.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d questions to assess a user's %s health", req.Count, req.Category)
	if req.Target != "" && req.Target != "general" {
		fmt.Fprintf(&b, ", focusing on %s", req.Target)
	}
	b.WriteString(".\nQuestions should be practical and answerable by everyday users (no medical diagnostics).\n\n")
	b.WriteString(schemaRules)

	return llm.Prompt{
		System:      questionSystemPrompt,
		User:        b.String(),
		Temperature: 0.5,
		MaxTokens:   2048,
	}
}
