// Package tips produces short AI-written improvement suggestions from a
// user's submitted answers.
package tips

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"wellnest/internal/domain"
	"wellnest/internal/llm"
	"wellnest/internal/quizgen"
)

const (
	maxTips = 7

	systemPrompt = "You return only a JSON array of short tips (strings). No code fences, no extra text."
)

// genericTips is served when every provider fails or returns nothing
// usable. Tips are advisory; an empty answer is worse than a canned one.
var genericTips = []string{
	"Schedule 10-minute movement breaks each hour.",
	"Drink a glass of water with every meal and task.",
	"Aim for 7-9 hours of sleep at consistent times.",
	"Add one vegetable to lunch and dinner.",
	"Do 5 minutes of gentle stretching daily.",
}

// Service generates improvement tips, falling through an ordered
// provider list the same way question generation does.
type Service struct {
	providers []llm.Provider
}

// NewService creates a tip Service. Provider order is fallback order.
func NewService(providers ...llm.Provider) *Service {
	return &Service{providers: providers}
}

// Generate returns 5-7 concise tips for the given answers. It never
// fails: when no provider yields usable output the generic list is
// returned instead.
func (s *Service) Generate(ctx context.Context, answers []domain.Answer) []string {
	prompt, err := buildTipsPrompt(answers)
	if err != nil {
		return finalize(genericTips)
	}

	for _, provider := range s.providers {
		text, err := provider.Complete(ctx, prompt)
		if err != nil {
			log.Printf("warn: tip generation via %s failed: %v", provider.Name(), err)
			continue
		}
		if tips := quizgen.ExtractLines(text); len(tips) > 0 {
			return finalize(tips)
		}
	}

	return finalize(genericTips)
}

func buildTipsPrompt(answers []domain.Answer) (llm.Prompt, error) {
	payload, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return llm.Prompt{}, err
	}

	var b strings.Builder
	b.WriteString("You are a certified health coach. Based on the user's quiz answers, produce 5-7 concise improvement tips (max 120 characters each).\n")
	b.WriteString("- One sentence per tip, imperative voice.\n")
	b.WriteString("- DO NOT include code fences or any prose.\n")
	b.WriteString("- Return ONLY a JSON array of strings.\n\n")
	fmt.Fprintf(&b, "User answers JSON:\n%s\n", payload)

	return llm.Prompt{
		System:      systemPrompt,
		User:        b.String(),
		Temperature: 0.4,
		MaxTokens:   1024,
	}, nil
}

// finalize trims each tip, guarantees terminal punctuation, drops
// empties, and caps the list.
func finalize(tips []string) []string {
	out := make([]string, 0, maxTips)
	for _, tip := range tips {
		tip = strings.TrimSpace(tip)
		if tip == "" {
			continue
		}
		if !strings.ContainsAny(tip[len(tip)-1:], ".!?") {
			tip += "."
		}
		out = append(out, tip)
		if len(out) == maxTips {
			break
		}
	}
	return out
}
