package generator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/schema"
)

// ZodHeader is emitted once per Generate call that produces declarations
const ZodHeader = `import * as z from "zod";`

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ZodGenerator emits a zod object schema and its inferred type per table variant
type ZodGenerator struct{}

// Generate renders s as zod schemas
func (g ZodGenerator) Generate(s *schema.Schema, cfg *config.Config) []string {
	decls := Declarations(s, cfg)
	if len(decls) == 0 {
		return nil
	}

	lines := []string{ZodHeader, ""}
	for _, decl := range decls {
		lines = append(lines, fmt.Sprintf("export const %s = z.object({", decl.Name))
		for _, f := range decl.Fields {
			optional := ""
			if f.Optional {
				optional = ".optional()"
			}
			lines = append(lines, fmt.Sprintf("    %s: %s%s,", f.Name, validator(f.Type), optional))
		}
		lines = append(lines,
			"});",
			"",
			fmt.Sprintf("export type I%s = z.infer<typeof %s>;", decl.Name, decl.Name),
			"",
		)
	}
	return lines
}

// FieldType returns the zod validator for a raw column type
func (g ZodGenerator) FieldType(columnType string) string {
	return validator(InferFieldType(Unwrap(columnType)))
}

// validator turns a bare identifier into a zod validator call. Lowercase
// identifiers are primitives (z.string()), uppercase ones are classes checked
// with z.instanceof. Anything else is already an expression and kept verbatim.
func validator(fieldType string) string {
	if !identifierRe.MatchString(fieldType) {
		return fieldType
	}
	if first := []rune(fieldType)[0]; unicode.IsUpper(first) {
		return fmt.Sprintf("z.instanceof(%s)", fieldType)
	}
	return fmt.Sprintf("z.%s()", fieldType)
}
