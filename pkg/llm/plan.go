package llm

import (
	"encoding/json"
	"strings"

	"github.com/behavelab/parley/pkg/models"
)

// ExtractPlan pulls a {"actions": [...]} plan object out of a raw model
// reply. Models wrap JSON in prose or markdown fences more often than not,
// so the extractor tries, in order:
//
//  1. fenced ```json blocks (and bare ``` fences),
//  2. bracket-matched {...} objects anywhere in the text.
//
// A reply with no parseable plan yields an empty plan; callers treat that as
// "do nothing this tick" rather than an error.
func ExtractPlan(text string) models.Plan {
	for _, candidate := range fencedBlocks(text) {
		if plan, ok := parsePlan(candidate); ok {
			return plan
		}
	}
	for _, candidate := range bracketObjects(text) {
		if plan, ok := parsePlan(candidate); ok {
			return plan
		}
	}
	return models.Plan{}
}

func parsePlan(candidate string) (models.Plan, bool) {
	// Require the actions key so stray JSON objects in prose (examples the
	// model quotes back, tool results it repeats) are not mistaken for plans.
	if !strings.Contains(candidate, `"actions"`) {
		return models.Plan{}, false
	}
	var plan models.Plan
	if err := json.Unmarshal([]byte(candidate), &plan); err != nil {
		return models.Plan{}, false
	}
	return plan, true
}

// fencedBlocks returns the bodies of all ``` fenced blocks, with a leading
// language tag (json, JSON) stripped.
func fencedBlocks(text string) []string {
	var blocks []string
	rest := text
	for {
		start := strings.Index(rest, "```")
		if start < 0 {
			return blocks
		}
		rest = rest[start+3:]
		end := strings.Index(rest, "```")
		if end < 0 {
			return blocks
		}
		body := rest[:end]
		rest = rest[end+3:]

		// Drop the language tag line if present.
		if nl := strings.IndexByte(body, '\n'); nl >= 0 {
			tag := strings.TrimSpace(body[:nl])
			if tag == "" || strings.EqualFold(tag, "json") {
				body = body[nl+1:]
			}
		}
		body = strings.TrimSpace(body)
		if body != "" {
			blocks = append(blocks, body)
		}
	}
}

// bracketObjects returns every balanced {...} span in the text, outermost
// first, tracking string literals so braces inside values do not miscount.
func bracketObjects(text string) []string {
	var objects []string
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		if end := matchBrace(text, i); end > i {
			objects = append(objects, text[i:end+1])
			i = end
		}
	}
	return objects
}

// matchBrace returns the index of the brace closing the one at start, or -1.
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
