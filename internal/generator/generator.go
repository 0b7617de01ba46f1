// Package generator renders schema fragments into TypeScript interfaces or
// zod schemas. Both generators share name resolution, type inference and
// optionality rules; only the rendering differs.
package generator

import (
	"fmt"

	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/schema"
)

// Generator renders one schema fragment into output lines
type Generator interface {
	// Generate returns the lines for every table and variant in s
	Generate(s *schema.Schema, cfg *config.Config) []string
	// FieldType renders a column type in the generator's notation
	FieldType(columnType string) string
}

// New returns the generator for kind
func New(kind config.GeneratorKind) (Generator, error) {
	switch kind {
	case config.TypeScript, "":
		return TypeScriptGenerator{}, nil
	case config.Zod:
		return ZodGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", config.ErrInvalidConfig, kind)
	}
}
