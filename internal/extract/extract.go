// Package extract recovers structured values from free-form model output.
// The model is instructed to answer in a fixed shape but routinely adds
// preamble, markdown fences or trailing commentary; these helpers scrape
// best-effort instead of parsing strictly.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when the text contains no {...} span to parse.
var ErrNoJSON = errors.New("extract: no JSON object found in model output")

var (
	straightQuoted = regexp.MustCompile(`"([^"]*\?)\s*"`)
	curlyQuoted    = regexp.MustCompile(`“([^”]*\?)\s*”`)
)

// Question pulls a single interview question out of arbitrary model text.
// Fallback order: a double-quoted substring ending in "?", then everything
// up to the first "?", then the first line. Total: never fails, always
// returns some (possibly empty) string.
func Question(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if m := straightQuoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := curlyQuoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if idx := strings.Index(text, "?"); idx >= 0 {
		seg := text[:idx+1]
		// keep the result single-line: the question starts after any preamble lines
		if nl := strings.LastIndex(seg, "\n"); nl >= 0 {
			seg = seg[nl+1:]
		}
		return strings.TrimSpace(seg)
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(firstLine)
}

// stripFences removes markdown code fences around a JSON payload.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// JSON slices the first {...} span out of text and unmarshals it into v.
// Returns ErrNoJSON when no brace pair exists; json.Unmarshal errors pass
// through. Callers log the raw text and answer 500.
func JSON(text string, v any) error {
	clean := stripFences(text)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start < 0 || end < start {
		return ErrNoJSON
	}
	return json.Unmarshal([]byte(clean[start:end+1]), v)
}
