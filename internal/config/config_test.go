package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/atlas2ts/internal/naming"
)

func TestParseMappings(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "empty",
			entries: nil,
			want:    map[string]string{},
		},
		{
			name:    "dotted keys",
			entries: []string{"user.name:handle", "bigint:string"},
			want:    map[string]string{"user.name": "handle", "bigint": "string"},
		},
		{
			name:    "later entry wins",
			entries: []string{"a:b", "a:c"},
			want:    map[string]string{"a": "c"},
		},
		{
			name:    "missing separator",
			entries: []string{"ab"},
			wantErr: true,
		},
		{
			name:    "too many separators",
			entries: []string{"a:b:c"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMappings(tt.entries)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMapping)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, TypeScript, c.Generator)
	assert.Equal(t, naming.CamelCase, c.NamingStrategy)
	assert.Equal(t, DefaultOutputPath, c.OutputPath)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Generator = "java"
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

	c = Default()
	c.NamingStrategy = "snake"
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}

func TestLoadFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas2ts.yaml")
	content := `
input: [schema.hcl]
generator: zod
naming-strategy: unmodified
type-names:
  user: Person
type-mapping:
  bigint: string
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"schema.hcl"}, c.InputPaths)
	assert.Equal(t, Zod, c.Generator)
	assert.Equal(t, naming.Unmodified, c.NamingStrategy)

	c.Merge(&Config{
		Generator: TypeScript,
		TypeNames: map[string]string{"user": "Account", "post": "Article"},
	})
	c.ApplyDefaults()

	assert.Equal(t, TypeScript, c.Generator)
	assert.Equal(t, naming.Unmodified, c.NamingStrategy)
	assert.Equal(t, map[string]string{"user": "Account", "post": "Article"}, c.TypeNames)
	assert.Equal(t, map[string]string{"bigint": "string"}, c.TypeMapping)
	assert.Equal(t, DefaultOutputPath, c.OutputPath)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type-names: [1, 2"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
