package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseStructuredResponse pulls a JSON object out of a free-text model
// completion. Models routinely wrap the object in prose or markdown fences,
// so we take the substring from the first "{" to the last "}" and decode
// that. The distinction between "no object found" and "object did not
// decode" does not matter to callers: both resolve to fallback content.
func parseStructuredResponse(text string) (map[string]interface{}, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response JSON: %w", err)
	}
	return parsed, nil
}

func parsedString(parsed map[string]interface{}, key string) string {
	if v, ok := parsed[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func parsedInt(parsed map[string]interface{}, key string) (int, bool) {
	switch v := parsed[key].(type) {
	case float64:
		return int(v + 0.5), true
	case string:
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

func parsedStringSlice(parsed map[string]interface{}, key string) []string {
	raw, ok := parsed[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
