package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	assert.Equal(t, "bigint", Unwrap("${bigint}"))
	assert.Equal(t, "varchar(255)", Unwrap("${varchar(255)}"))
	assert.Equal(t, "text", Unwrap("text"))
	assert.Equal(t, "${partial", Unwrap("${partial"))
}

func TestBareType(t *testing.T) {
	assert.Equal(t, "numeric", BareType("numeric(10,2)"))
	assert.Equal(t, "varchar", BareType("varchar(255)"))
	assert.Equal(t, "character varying", BareType("character varying (20)"))
	assert.Equal(t, "bigint", BareType("bigint"))
}

func TestInferFieldType(t *testing.T) {
	tests := []struct {
		columnType string
		want       string
	}{
		{"date", TypeDate},
		{"timestamp", TypeDate},
		{"timestamp(6)", TypeDate},
		{"TIMESTAMPTZ", TypeDate},
		{"bigint", TypeNumber},
		{"smallint", TypeNumber},
		{"double precision", TypeNumber},
		{"decimal", TypeNumber},
		{"numeric(10,2)", TypeNumber},
		{"real", TypeNumber},
		{"serial", TypeNumber},
		{"FLOAT", TypeNumber},
		{"varchar(255)", TypeString},
		{"character varying", TypeString},
		{"text", TypeString},
		{"uuid", TypeString},
		{"bit", TypeBoolean},
		{"boolean", TypeBoolean},
		{"bytea", TypeAny},
		{"json", TypeAny},
		{"", TypeAny},
	}

	for _, tt := range tests {
		t.Run(tt.columnType, func(t *testing.T) {
			assert.Equal(t, tt.want, InferFieldType(tt.columnType))
		})
	}
}

func TestFieldTypeNotation(t *testing.T) {
	assert.Equal(t, "number", TypeScriptGenerator{}.FieldType("${int}"))
	assert.Equal(t, "Date", TypeScriptGenerator{}.FieldType("${timestamp}"))
	assert.Equal(t, "z.number()", ZodGenerator{}.FieldType("${int}"))
	assert.Equal(t, "z.instanceof(Date)", ZodGenerator{}.FieldType("${date}"))
	assert.Equal(t, "z.any()", ZodGenerator{}.FieldType("${tsvector}"))
}
