// Package hclschema reads Atlas HCL schema files into the schema model.
package hclschema

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/tordrt/atlas2ts/internal/schema"
)

// ErrInvalidSchema is returned when the file parses but its structure is not a table schema
var ErrInvalidSchema = errors.New("invalid schema")

// Parse parses src as one Atlas HCL document. Table and column blocks are kept
// in source order; repeated blocks with the same name append another definition.
func Parse(filename string, src []byte) ([]schema.Schema, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected body type %T", ErrInvalidSchema, filename, file.Body)
	}

	var s schema.Schema
	for _, block := range body.Blocks {
		if block.Type != "table" {
			continue
		}
		name, err := blockName(block)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, filename, err)
		}
		def, err := parseTable(block, src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: table %s: %v", ErrInvalidSchema, filename, name, err)
		}
		s.AddTable(name, def)
	}

	return []schema.Schema{s}, nil
}

func parseTable(block *hclsyntax.Block, src []byte) (schema.TableDefinition, error) {
	var def schema.TableDefinition
	for _, cb := range block.Body.Blocks {
		if cb.Type != "column" {
			continue
		}
		name, err := blockName(cb)
		if err != nil {
			return def, err
		}
		col, err := parseColumn(cb, src)
		if err != nil {
			return def, fmt.Errorf("column %s: %w", name, err)
		}
		def.AddColumn(name, col)
	}
	return def, nil
}

func parseColumn(block *hclsyntax.Block, src []byte) (schema.ColumnDefinition, error) {
	var col schema.ColumnDefinition
	attrs := block.Body.Attributes

	typeAttr, ok := attrs["type"]
	if !ok {
		return col, errors.New("missing type attribute")
	}
	col.Type = typeString(typeAttr.Expr, src)

	if nullAttr, ok := attrs["null"]; ok {
		v, diags := nullAttr.Expr.Value(nil)
		if diags.HasErrors() || v.IsNull() || !v.IsKnown() || v.Type() != cty.Bool {
			return col, errors.New("null must be a boolean literal")
		}
		col.Nullable = v.True()
	}

	_, col.HasDefault = attrs["default"]
	return col, nil
}

// typeString returns the literal value of a quoted type, or the expression
// source wrapped as ${...} for references and calls such as int or varchar(255).
func typeString(expr hclsyntax.Expression, src []byte) string {
	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsKnown() && !v.IsNull() && v.Type() == cty.String {
		return v.AsString()
	}
	return "${" + string(expr.Range().SliceBytes(src)) + "}"
}

func blockName(block *hclsyntax.Block) (string, error) {
	if len(block.Labels) != 1 {
		return "", fmt.Errorf("%s block must have exactly one label, got %d", block.Type, len(block.Labels))
	}
	return block.Labels[0], nil
}
