package domain

import "time"

// Option is one selectable answer for a question. Value identifies the
// choice in submissions; Text is the display label (often identical).
// Points is the healthiness impact in [0,3], 3 being healthiest.
type Option struct {
	Text   string `json:"text"`
	Value  string `json:"value"`
	Points int    `json:"points"`
}

// Question is the canonical generated quiz question. Options are sorted
// by descending points and never share a value.
type Question struct {
	ID        string   `json:"id"`
	Text      string   `json:"question"`
	Options   []Option `json:"options"`
	Dimension string   `json:"dimension,omitempty"`
}

// Answer is one submitted answer. Points is copied from the matching
// option at submission time; the stored score is a snapshot and is never
// recomputed from later heuristics.
type Answer struct {
	QuestionID    string `json:"quizId"`
	QuestionText  string `json:"question"`
	SelectedValue string `json:"selectedAnswer"`
	Points        int    `json:"points"`
}

// Result aggregates a completed test. Immutable once created; owned by
// the submitting user's history.
type Result struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"userId"`
	Category     string    `json:"category"`
	Answers      []Answer  `json:"answers"`
	TotalPoints  int       `json:"totalPoints"`
	MaxPoints    int       `json:"maxPoints"`
	ScoreOutOf10 int       `json:"scoreOutOf10"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TestSession holds the questions retained between starting a test and
// submitting it.
type TestSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
}

// GenerateRequest asks for quiz questions in a category.
type GenerateRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Target   string `json:"target"`
}
