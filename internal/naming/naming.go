// Package naming derives generated identifiers from raw table and column names.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy selects how raw schema identifiers are transformed
type Strategy string

const (
	// Unmodified strips whitespace and keeps every other character
	Unmodified Strategy = "unmodified"
	// CamelCase joins separator-delimited words into camelCase
	CamelCase Strategy = "camel-case"
)

// Strategies lists every supported strategy
var Strategies = []Strategy{Unmodified, CamelCase}

// ParseStrategy converts a user supplied value into a Strategy
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid naming strategy: %s (must be 'unmodified' or 'camel-case')", s)
}

// Apply transforms raw under the given strategy. Unknown strategies behave like Unmodified.
func Apply(raw string, strategy Strategy) string {
	if strategy == CamelCase {
		return ToCamelCase(raw)
	}
	return stripSpace(raw)
}

// TypeName derives a type identifier: strategy applied, first letter uppercased
func TypeName(raw string, strategy Strategy) string {
	return UpperFirst(Apply(raw, strategy))
}

// FieldName derives a field identifier: strategy applied, first letter lowercased
func FieldName(raw string, strategy Strategy) string {
	return LowerFirst(Apply(raw, strategy))
}

// ToCamelCase converts "created_at", "Created At" or "created-at" into "createdAt"
func ToCamelCase(s string) string {
	words := splitWords(s)
	title := cases.Title(language.Und)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// UpperFirst uppercases the first rune of s
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst lowercases the first rune of s
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// splitWords breaks s on any non-alphanumeric rune and on camelCase boundaries.
// An uppercase run followed by a lowercase letter starts a new word at its last
// capital ("URLParser" -> "URL", "Parser").
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if len(current) > 0 && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if len(current) > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}
