package processors

import (
	"encoding/json"
	"fmt"
	"strings"

	"skillbridge/pkg/utils"
)

// JSONCleaner strips formatting artifacts from raw model output and parses it
// into a typed result. Models frequently wrap JSON in markdown code fences
// despite explicit instructions not to; only the literal fence tokens are
// removed, no markdown parsing is attempted.
type JSONCleaner struct{}

// NewJSONCleaner creates a new JSON cleaner instance
func NewJSONCleaner() *JSONCleaner {
	return &JSONCleaner{}
}

// Clean removes a leading/trailing code fence from the raw output if present
func (c *JSONCleaner) Clean(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	return text
}

// Decode cleans the raw output and parses it as strict JSON into v. On parse
// failure the returned error wraps ErrMalformedOutput and carries the
// original raw text for diagnosis; no speculative repair of the JSON is
// attempted, since a repaired guess cannot be verified.
func (c *JSONCleaner) Decode(raw string, v any) error {
	cleaned := c.Clean(raw)

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v, raw output: %s", utils.ErrMalformedOutput, err, raw)
	}

	return nil
}
