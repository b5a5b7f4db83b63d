package nlu

import (
	"errors"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON pulls the first JSON object out of a completion that may be
// pure JSON, JSON inside a markdown fence, or JSON surrounded by prose.
func ExtractJSON(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty input")
	}
	if strings.HasPrefix(s, "{") {
		if obj := balancedObject(s); obj != "" {
			return []byte(obj), nil
		}
	}
	if m := fencedJSON.FindStringSubmatch(s); len(m) > 1 {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "{") {
			if obj := balancedObject(inner); obj != "" {
				return []byte(obj), nil
			}
		}
	}
	if start := strings.Index(s, "{"); start >= 0 {
		if obj := balancedObject(s[start:]); obj != "" {
			return []byte(obj), nil
		}
	}
	return nil, errors.New("no balanced JSON object found")
}

// balancedObject returns the prefix of s spanning one brace-balanced object,
// string-literal and escape aware, or "" if the braces never close.
func balancedObject(s string) string {
	depth := 0
	inString := false
	escape := false
	for i, ch := range s {
		if escape {
			escape = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escape = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
	}
	return ""
}
