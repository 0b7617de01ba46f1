package generator

import "github.com/tordrt/atlas2ts/internal/schema"

// Variant is one of the declarations generated for every table
type Variant int

const (
	// Base mirrors a stored row
	Base Variant = iota
	// Create is the shape accepted on insert
	Create
	// Patch is the shape accepted on partial update
	Patch
)

// Variants lists the variants in generation order
var Variants = []Variant{Base, Create, Patch}

func (v Variant) String() string {
	switch v {
	case Base:
		return "base"
	case Create:
		return "create"
	case Patch:
		return "patch"
	default:
		return "unknown"
	}
}

// Prefix is prepended to the type name of the variant's declaration
func (v Variant) Prefix() string {
	if v == Create {
		return "New"
	}
	return ""
}

// Suffix is appended to the type name of the variant's declaration
func (v Variant) Suffix() string {
	if v == Patch {
		return "Patch"
	}
	return ""
}

// DeclarationName returns the name of the variant's declaration for typeName
func (v Variant) DeclarationName(typeName string) string {
	return v.Prefix() + typeName + v.Suffix()
}

// IsOptional reports whether a column is optional in the given variant
func IsOptional(col schema.ColumnDefinition, v Variant) bool {
	switch v {
	case Create:
		return col.Nullable || col.HasDefault
	case Patch:
		return true
	default:
		return col.Nullable
	}
}
