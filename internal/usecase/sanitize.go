package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"

	"song-suggester/internal/domain/entity"
)

var (
	leadingFence  = regexp.MustCompile("^\\s*```(?i:json)?[ \\t]*\\r?\\n?")
	trailingFence = regexp.MustCompile("\\s*```\\s*$")
)

// StripCodeFences removes a markdown code fence wrapped around model output.
// A leading fence may carry a json language tag. Text without fences is
// returned unchanged.
func StripCodeFences(text string) string {
	if loc := leadingFence.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	if loc := trailingFence.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return text
}

// ParseSuggestions checks that cleaned model output is syntactically valid JSON.
// The shape of the value is not checked.
func ParseSuggestions(text string) (json.RawMessage, error) {
	raw := json.RawMessage(text)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %q", entity.ErrMalformedOutput, truncate(text, 200))
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
