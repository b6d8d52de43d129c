package quizgen

import (
	"context"
	"fmt"
	"log"

	"wellnest/internal/domain"
	"wellnest/internal/llm"
)

const (
	minCount     = 1
	maxCount     = 20
	defaultCount = 5
)

// Generator produces canonical quiz questions by trying an ordered list
// of providers in sequence. Providers are attempted one at a time; the
// next is only tried after the previous is confirmed failed. No retry
// beyond the single pass through the list, no partial results.
type Generator struct {
	providers []llm.Provider
}

// NewGenerator creates a Generator. Provider order is fallback order.
func NewGenerator(providers ...llm.Provider) *Generator {
	return &Generator{providers: providers}
}

// Generate requests questions for the given category. On any provider
// failure (transport error, unparseable reply, or an empty normalized
// set) the next provider receives the identical prompt. When every
// provider fails, domain.ErrGenerationFailed is returned.
func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	req = withDefaults(req)
	prompt := buildQuestionPrompt(req)

	for _, provider := range g.providers {
		questions, err := attempt(ctx, provider, prompt)
		if err != nil {
			log.Printf("warn: question generation via %s failed: %v", provider.Name(), err)
			continue
		}
		return questions, nil
	}

	return nil, domain.ErrGenerationFailed
}

func attempt(ctx context.Context, provider llm.Provider, prompt llm.Prompt) ([]domain.Question, error) {
	text, err := provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	records, err := ExtractArray(text)
	if err != nil {
		return nil, err
	}

	questions := Normalize(records)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no usable questions in reply")
	}
	return questions, nil
}

func withDefaults(req domain.GenerateRequest) domain.GenerateRequest {
	if req.Category == "" {
		req.Category = "general"
	}
	if req.Target == "" {
		req.Target = "general"
	}
	if req.Count == 0 {
		req.Count = defaultCount
	}
	if req.Count < minCount {
		req.Count = minCount
	}
	if req.Count > maxCount {
		req.Count = maxCount
	}
	return req
}
