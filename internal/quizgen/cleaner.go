package quizgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"wellnest/internal/domain"
)

// Providers are told to return pure JSON but routinely wrap it in
// markdown fences or surround it with prose. The cleaner recovers the
// structured payload anyway, trying the cheapest interpretation first.

var (
	fenceRe  = regexp.MustCompile("(?i)```[a-z]*")
	bulletRe = regexp.MustCompile(`^\s*[-*•\d.)]+\s*`)
)

const maxFallbackLines = 8

// stripFences removes markdown code-fence markers (with or without a
// language tag) and trims surrounding whitespace.
func stripFences(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
}

// ExtractArray recovers a JSON array of records from a raw provider
// reply. It tries, in order: the whole cleaned text as an array, an
// object wrapping the array under "questions" or "data", and the first
// outermost bracketed substring. Returns domain.ErrParseFailure when no
// array can be recovered.
func ExtractArray(raw string) ([]json.RawMessage, error) {
	cleaned := stripFences(raw)

	if records, ok := parseArray(cleaned); ok {
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil {
		for _, field := range []string{"questions", "data"} {
			if inner, ok := wrapper[field]; ok {
				if records, ok := parseArray(string(inner)); ok {
					return records, nil
				}
			}
		}
	}

	if sub, ok := arraySubstring(cleaned); ok {
		if records, ok := parseArray(sub); ok {
			return records, nil
		}
	}

	return nil, fmt.Errorf("%w: no array found in reply", domain.ErrParseFailure)
}

// ExtractLines converts an arbitrary provider reply into a plain list of
// strings. Used by the tip path only; structured parsing is attempted
// first, then a line-splitting fallback capped at 8 entries.
func ExtractLines(raw string) []string {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil
	}

	if items, ok := parseStringArray(cleaned); ok {
		return items
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil {
		if inner, ok := wrapper["tips"]; ok {
			if items, ok := parseStringArray(string(inner)); ok {
				return items
			}
		}
	}

	if sub, ok := arraySubstring(cleaned); ok {
		if items, ok := parseStringArray(sub); ok {
			return items
		}
	}

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxFallbackLines {
			break
		}
	}
	return lines
}

func parseArray(s string) ([]json.RawMessage, bool) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(s), &records); err != nil {
		return nil, false
	}
	return records, true
}

func parseStringArray(s string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		default:
			b, err := json.Marshal(v)
			if err == nil {
				out = append(out, string(b))
			}
		}
	}
	return out, true
}

// arraySubstring returns the greedy outermost bracketed span of s.
func arraySubstring(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
