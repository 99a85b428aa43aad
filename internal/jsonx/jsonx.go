// Package jsonx recovers JSON values from noisy LLM output. Model responses
// are expected to be pure JSON but frequently arrive wrapped in markdown
// fencing or surrounded by prose; the recovery chain is: strip fences, strict
// parse, widest bracketed-span extraction, empty fallback.
package jsonx

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSONPattern = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	objectPattern     = regexp.MustCompile(`\{[\s\S]*\}`)
	arrayOfObjects    = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)
	anyArrayPattern   = regexp.MustCompile(`\[[\s\S]*\]`)
)

// StripFences removes a markdown code fence wrapping the content, with or
// without a language tag. Content without fencing passes through unchanged.
func StripFences(raw string) string {
	content := strings.TrimSpace(raw)

	if strings.Contains(content, "```json") {
		if m := fencedJSONPattern.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			content = strings.Join(lines[1:len(lines)-1], "\n")
		} else {
			content = strings.Join(lines[1:], "\n")
		}
	}

	return strings.TrimSpace(content)
}

// Object extracts a JSON object from raw model output. On total failure it
// returns an empty map, never nil: absence of a verdict is handled by the
// caller's field defaults, not by an error.
func Object(raw string) map[string]any {
	content := StripFences(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		return obj
	}

	if span := objectPattern.FindString(content); span != "" {
		obj = nil
		if err := json.Unmarshal([]byte(span), &obj); err == nil {
			return obj
		}
	}

	return map[string]any{}
}

// Array extracts a JSON array of objects from raw model output. Entries that
// are not objects are skipped. On total failure it returns an empty slice.
func Array(raw string) []map[string]any {
	content := StripFences(raw)

	if entries, ok := decodeArray(content); ok {
		return entries
	}

	// Prefer a span that looks like an array of objects, then any array.
	for _, pattern := range []*regexp.Regexp{arrayOfObjects, anyArrayPattern} {
		if span := pattern.FindString(content); span != "" {
			if entries, ok := decodeArray(span); ok {
				return entries
			}
		}
	}

	return []map[string]any{}
}

func decodeArray(content string) ([]map[string]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, false
	}

	entries := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			entries = append(entries, obj)
		}
	}
	return entries, true
}

// String reads a string field from a decoded object, with a default.
func String(obj map[string]any, key, fallback string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return fallback
}
