package generator

import (
	"fmt"

	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/schema"
)

// TypeScriptGenerator emits one exported interface per table variant
type TypeScriptGenerator struct{}

// Generate renders s as TypeScript interfaces
func (g TypeScriptGenerator) Generate(s *schema.Schema, cfg *config.Config) []string {
	var lines []string
	for _, decl := range Declarations(s, cfg) {
		lines = append(lines, fmt.Sprintf("export interface %s {", decl.Name))
		for _, f := range decl.Fields {
			optional := ""
			if f.Optional {
				optional = "?"
			}
			lines = append(lines, fmt.Sprintf("    %s%s: %s;", f.Name, optional, f.Type))
		}
		lines = append(lines, "}", "")
	}
	return lines
}

// FieldType returns the inferred TypeScript type for a raw column type
func (g TypeScriptGenerator) FieldType(columnType string) string {
	return InferFieldType(Unwrap(columnType))
}
