package ai

import (
	"encoding/json"
	"strings"
)

// ParseResponse decodes a model reply, unwrapping a markdown code fence if
// the model added one. A reply that still fails to decode as a JSON object
// is preserved rather than rejected.
func ParseResponse(text string) map[string]any {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return map[string]any{"raw_response": text, "parse_error": true}
	}
	return out
}
