package quizgen

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/google/uuid"

	"wellnest/internal/domain"
)

// rawQuestion accepts the field spellings seen across provider replies.
type rawQuestion struct {
	ID           string            `json:"id"`
	Question     string            `json:"question"`
	QuestionText string            `json:"questionText"`
	Text         string            `json:"text"`
	Options      []json.RawMessage `json:"options"`
	Dimension    string            `json:"dimension"`
	Topic        string            `json:"topic"`
}

// normalizedOption carries an option before final point assignment.
// points is nil when the provider omitted a numeric value.
type normalizedOption struct {
	text   string
	value  string
	points *float64
}

// Normalize converts loosely-typed provider records into the canonical
// question list. It never fails: unusable records are dropped, missing
// fields are repaired, and input order of survivors is preserved.
// Normalizing canonical output again is a no-op.
func Normalize(records []json.RawMessage) []domain.Question {
	questions := make([]domain.Question, 0, len(records))
	for _, record := range records {
		if q, ok := normalizeRecord(record); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

func normalizeRecord(record json.RawMessage) (domain.Question, bool) {
	var raw rawQuestion
	if err := json.Unmarshal(record, &raw); err != nil {
		return domain.Question{}, false
	}

	text := firstNonEmpty(raw.Question, raw.QuestionText, raw.Text)
	if text == "" {
		return domain.Question{}, false
	}

	options := normalizeOptions(raw.Options)

	// Partial trust is not allowed: mixing provider-assigned points with
	// heuristic ones inside one question would mix two scales. If any
	// option lacks a numeric value, rescore the whole set.
	if anyMissingPoints(options) {
		labels := make([]string, len(options))
		for i, o := range options {
			labels[i] = o.text
		}
		assigned := AssignPoints(text, labels)
		for i := range options {
			p := float64(assigned[i])
			options[i].points = &p
		}
	}

	final := make([]domain.Option, 0, len(options))
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if seen[o.value] {
			continue
		}
		seen[o.value] = true
		final = append(final, domain.Option{
			Text:   o.text,
			Value:  o.value,
			Points: clampPoints(*o.points),
		})
	}

	if len(final) < 2 {
		return domain.Question{}, false
	}

	// Presentation convenience only; scoring does not depend on order.
	sort.SliceStable(final, func(i, j int) bool {
		return final[i].Points > final[j].Points
	})

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	return domain.Question{
		ID:        id,
		Text:      text,
		Options:   final,
		Dimension: firstNonEmpty(raw.Dimension, raw.Topic),
	}, true
}

// normalizeOptions resolves the bare-label and labeled-record option
// shapes into one form, defaulting value to text and vice versa.
func normalizeOptions(raws []json.RawMessage) []normalizedOption {
	options := make([]normalizedOption, 0, len(raws))
	for _, raw := range raws {
		var label string
		if err := json.Unmarshal(raw, &label); err == nil {
			if label == "" {
				continue
			}
			options = append(options, normalizedOption{text: label, value: label})
			continue
		}

		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}

		text, _ := fields["text"].(string)
		value, _ := fields["value"].(string)
		if text == "" {
			text = value
		}
		if value == "" {
			value = text
		}
		if text == "" {
			continue
		}

		opt := normalizedOption{text: text, value: value}
		if p, ok := fields["points"].(float64); ok {
			opt.points = &p
		}
		options = append(options, opt)
	}
	return options
}

func anyMissingPoints(options []normalizedOption) bool {
	for _, o := range options {
		if o.points == nil {
			return true
		}
	}
	return false
}

// clampPoints rounds and clamps into the closed range [0,3].
func clampPoints(p float64) int {
	rounded := int(math.Round(p))
	if rounded < 0 {
		return 0
	}
	if rounded > 3 {
		return 3
	}
	return rounded
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
