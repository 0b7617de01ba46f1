package generator

import (
	"regexp"
	"strings"
)

// Semantic field types produced by inference
const (
	TypeDate    = "Date"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeAny     = "any"
)

// typePattern maps a column type pattern to a field type
type typePattern struct {
	pattern   *regexp.Regexp
	fieldType string
}

// typePatterns are evaluated in order, first match wins
var typePatterns = []typePattern{
	{regexp.MustCompile(`(?i)(date|timestamp)`), TypeDate},
	{regexp.MustCompile(`(?i)(int|double|decimal|float|numeric|real|serial)`), TypeNumber},
	{regexp.MustCompile(`(?i)(char|character|text|uuid)`), TypeString},
	{regexp.MustCompile(`(?i)(bit|bool)`), TypeBoolean},
}

var (
	interpolationRe = regexp.MustCompile(`^\$\{(.*)\}$`)
	paramsRe        = regexp.MustCompile(`\s*\(.*\)\s*$`)
)

// Unwrap strips an enclosing ${...} interpolation marker
func Unwrap(columnType string) string {
	if m := interpolationRe.FindStringSubmatch(columnType); m != nil {
		return m[1]
	}
	return columnType
}

// BareType strips a trailing parameter list: "numeric(10,2)" -> "numeric"
func BareType(columnType string) string {
	return strings.TrimSpace(paramsRe.ReplaceAllString(columnType, ""))
}

// InferFieldType maps an unwrapped column type to a semantic field type.
// Unmatched types fall back to TypeAny.
func InferFieldType(columnType string) string {
	bare := BareType(columnType)
	for _, p := range typePatterns {
		if p.pattern.MatchString(bare) {
			return p.fieldType
		}
	}
	return TypeAny
}
