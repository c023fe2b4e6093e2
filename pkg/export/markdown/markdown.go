// Package markdown strips lightweight markup out of provider text so the
// rendered documents read as plain prose.
package markdown

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reFence      = regexp.MustCompile("(?s)```.*?```")
	reFenceOpen  = regexp.MustCompile("^```[a-zA-Z]*\n?")
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	reHeading    = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)
	reBlockquote = regexp.MustCompile(`(?m)^\s{0,3}>\s?`)
	reListMarker = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+\.)\s+`)
	reBoldStar   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reBoldUnder  = regexp.MustCompile(`__([^_]+)__`)
	reItalStar   = regexp.MustCompile(`\*([^*]+)\*`)
	reItalUnder  = regexp.MustCompile(`_([^_]+)_`)
	reTrailWS    = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Stringify renders any value as text. Maps and slices become pretty
// printed JSON so object-shaped payloads survive in a readable form.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, []any:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// Clean stringifies v and removes common markup artifacts. The rule order
// matters: fences before inline code, links before emphasis.
func Clean(v any) string {
	s := Stringify(v)
	s = reFence.ReplaceAllStringFunc(s, func(m string) string {
		m = reFenceOpen.ReplaceAllString(m, "")
		return strings.ReplaceAll(m, "```", "")
	})
	s = reInlineCode.ReplaceAllString(s, "$1")
	s = reLink.ReplaceAllString(s, "$1")
	s = reHeading.ReplaceAllString(s, "")
	s = reBlockquote.ReplaceAllString(s, "")
	s = reListMarker.ReplaceAllString(s, "")
	s = reBoldStar.ReplaceAllString(s, "$1")
	s = reBoldUnder.ReplaceAllString(s, "$1")
	s = reItalStar.ReplaceAllString(s, "$1")
	s = reItalUnder.ReplaceAllString(s, "$1")
	s = reTrailWS.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanLines splits the cleaned text into trimmed non-empty lines.
func CleanLines(v any) []string {
	raw := Clean(v)
	if raw == "" {
		return nil
	}
	var out []string
	for _, ln := range strings.Split(raw, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses extended ISO-8601 timestamps, with or without an
// offset (a trailing Z reads as +00:00). Unparsable or missing values
// return the zero time so they sort before everything else.
func ParseTime(v any) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	s := strings.TrimSpace(Stringify(v))
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
