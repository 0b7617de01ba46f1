package generator

import (
	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/naming"
	"github.com/tordrt/atlas2ts/internal/schema"
)

// lookup returns a value and whether it matched
type lookup func() (string, bool)

// firstMatch tries each lookup in order
func firstMatch(lookups ...lookup) (string, bool) {
	for _, l := range lookups {
		if v, ok := l(); ok {
			return v, true
		}
	}
	return "", false
}

func fromMap(m map[string]string, key string) lookup {
	return func() (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func always(v string) lookup {
	return func() (string, bool) { return v, true }
}

// Field is a resolved field of a declaration
type Field struct {
	Name string
	// Type is either an override value or an inferred semantic type
	Type     string
	Optional bool
}

// Declaration is one variant of one table, ready to render
type Declaration struct {
	Name     string
	TypeName string
	Variant  Variant
	Fields   []Field
}

// resolveTypeName returns the override for table or the derived type name
func resolveTypeName(table string, cfg *config.Config) string {
	name, _ := firstMatch(
		fromMap(cfg.TypeNames, table),
		always(naming.TypeName(table, cfg.NamingStrategy)),
	)
	return name
}

// resolveFieldName applies table.column > column > derived precedence
func resolveFieldName(table, column string, cfg *config.Config) string {
	name, _ := firstMatch(
		fromMap(cfg.FieldNames, table+"."+column),
		fromMap(cfg.FieldNames, column),
		always(naming.FieldName(column, cfg.NamingStrategy)),
	)
	return name
}

// resolveFieldType applies typeName.fieldName > fieldName > raw type > bare type precedence.
// ok is false when no override matched and the caller must infer.
func resolveFieldType(typeName, fieldName, columnType string, cfg *config.Config) (string, bool) {
	colType := Unwrap(columnType)
	return firstMatch(
		fromMap(cfg.FieldTypes, typeName+"."+fieldName),
		fromMap(cfg.FieldTypes, fieldName),
		fromMap(cfg.TypeMapping, colType),
		fromMap(cfg.TypeMapping, BareType(colType)),
	)
}

// Declarations resolves every variant of every table in s, in table order
func Declarations(s *schema.Schema, cfg *config.Config) []Declaration {
	var decls []Declaration
	for _, table := range s.Tables {
		typeName := resolveTypeName(table.Name, cfg)
		columns := table.Effective().Columns
		for _, v := range Variants {
			decl := Declaration{
				Name:     v.DeclarationName(typeName),
				TypeName: typeName,
				Variant:  v,
				Fields:   make([]Field, 0, len(columns)),
			}
			for _, column := range columns {
				col := column.Effective()
				f := Field{
					Name:     resolveFieldName(table.Name, column.Name, cfg),
					Optional: IsOptional(col, v),
				}
				if t, ok := resolveFieldType(typeName, f.Name, col.Type, cfg); ok {
					f.Type = t
				} else {
					f.Type = InferFieldType(Unwrap(col.Type))
				}
				decl.Fields = append(decl.Fields, f)
			}
			decls = append(decls, decl)
		}
	}
	return decls
}
