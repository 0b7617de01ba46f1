package atlas2ts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/schema"
)

func minimalSchema() Schema {
	return Schema{Tables: []schema.Table{{
		Name: "user",
		Definitions: []schema.TableDefinition{{
			Columns: []schema.Column{
				{Name: "id", Definitions: []schema.ColumnDefinition{{Type: "${bigint}"}}},
				{Name: "name", Definitions: []schema.ColumnDefinition{{Type: "${varchar(255)}", Nullable: true}}},
			},
		}},
	}}}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTransformSchemasEmptyInput(t *testing.T) {
	cfg := DefaultConfig()

	out, err := TransformSchemas(nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = TransformSchemas([]Schema{{}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	cfg.Generator = config.Zod
	out, err = TransformSchemas([]Schema{{}, {}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestTransformSchemasEmptyTable(t *testing.T) {
	s := Schema{Tables: []schema.Table{{Name: "user", Definitions: []schema.TableDefinition{{}}}}}

	out, err := TransformSchemas([]Schema{s}, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "export interface User {\n}\n"))
	assert.Contains(t, out, "export interface NewUser {\n}")
	assert.Contains(t, out, "export interface UserPatch {\n}")
}

func TestTransformSchemasTypeScript(t *testing.T) {
	out, err := TransformSchemas([]Schema{minimalSchema()}, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "export interface User {\n    id: number;\n    name?: string;\n}\n"))
}

func TestTransformSchemasZod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator = config.Zod

	out, err := TransformSchemas([]Schema{minimalSchema()}, cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "import * as z from \"zod\";\n\nexport const User = z.object({\n"))
	assert.Contains(t, out, "    id: z.number(),\n")
	assert.Contains(t, out, "    name: z.string().optional(),\n")
	assert.Contains(t, out, "export type IUser = z.infer<typeof User>;")
}

func TestTransformSchemasSharesOutputAcrossFragments(t *testing.T) {
	other := Schema{Tables: []schema.Table{{Name: "post", Definitions: []schema.TableDefinition{{}}}}}

	out, err := TransformSchemas([]Schema{minimalSchema(), other}, DefaultConfig())
	require.NoError(t, err)
	userIdx := strings.Index(out, "export interface User {")
	postIdx := strings.Index(out, "export interface Post {")
	require.GreaterOrEqual(t, userIdx, 0)
	assert.Greater(t, postIdx, userIdx)
	assert.Equal(t, 6, strings.Count(out, "export interface "))
}

func TestTransformSchemasIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FieldNames = map[string]string{"user.name": "handle"}

	first, err := TransformSchemas([]Schema{minimalSchema()}, cfg)
	require.NoError(t, err)
	second, err := TransformSchemas([]Schema{minimalSchema()}, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTransformSchemasTemplate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "wrap.tmpl", "/* header */\n{{.Output}}")

	cfg := DefaultConfig()
	cfg.Template = "wrap"
	cfg.TemplateRoot = root

	out, err := TransformSchemas(nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/* header */\n", out)

	out, err = TransformSchemas([]Schema{minimalSchema()}, cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "/* header */\nexport interface User {"))
}

func TestTransformFiles(t *testing.T) {
	dir := t.TempDir()
	users := writeFile(t, dir, "users.hcl", `
table "user" {
  column "id" {
    null = false
    type = bigint
  }
  column "name" {
    null = true
    type = varchar(255)
  }
}
`)
	posts := writeFile(t, dir, "posts.hcl", `
table "blog_post" {
  column "created_at" {
    type    = timestamp
    default = sql("now()")
  }
}
`)

	cfg := DefaultConfig()
	cfg.InputPaths = []string{posts, users}

	out, err := TransformFiles(context.Background(), cfg)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "export interface BlogPost {"), strings.Index(out, "export interface User {"))
	assert.Contains(t, out, "export interface BlogPost {\n    createdAt: Date;\n}")
	assert.Contains(t, out, "export interface NewBlogPost {\n    createdAt?: Date;\n}")
	assert.Contains(t, out, "export interface BlogPostPatch {\n    createdAt?: Date;\n}")
	assert.Contains(t, out, "export interface User {\n    id: number;\n    name?: string;\n}")
}

func TestTransformFilesKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	slow := writeFile(t, dir, "slow.hcl", "")
	fast := writeFile(t, dir, "fast.hcl", "")

	parse := func(filename string, _ []byte) ([]schema.Schema, error) {
		if filename == slow {
			time.Sleep(50 * time.Millisecond)
		}
		name := strings.TrimSuffix(filepath.Base(filename), ".hcl")
		return []schema.Schema{
			{Tables: []schema.Table{{Name: name + "_a", Definitions: []schema.TableDefinition{{}}}}},
			{Tables: []schema.Table{{Name: name + "_b", Definitions: []schema.TableDefinition{{}}}}},
		}, nil
	}

	cfg := DefaultConfig()
	cfg.InputPaths = []string{slow, fast}

	out, err := transformFiles(context.Background(), cfg, parse)
	require.NoError(t, err)

	order := []string{"SlowA", "SlowB", "FastA", "FastB"}
	last := -1
	for _, name := range order {
		idx := strings.Index(out, "export interface "+name+" {")
		require.Greater(t, idx, last, name)
		last = idx
	}
}

func TestTransformFilesErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.hcl", `table "a" {}`)
	bad := writeFile(t, dir, "bad.hcl", `table "a" {`)

	tests := []struct {
		name   string
		inputs []string
		mutate func(c *Config)
	}{
		{"missing file", []string{good, filepath.Join(dir, "missing.hcl")}, nil},
		{"syntax error", []string{good, bad}, nil},
		{"invalid generator", []string{good}, func(c *Config) { c.Generator = "java" }},
		{"missing template", []string{good}, func(c *Config) { c.Template = "missing"; c.TemplateRoot = dir }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputPaths = tt.inputs
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			out, err := TransformFiles(context.Background(), cfg)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestTransformFilesParseFailureAborts(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.hcl", "")
	errBoom := errors.New("boom")

	cfg := DefaultConfig()
	cfg.InputPaths = []string{a}
	_, err := transformFiles(context.Background(), cfg, func(string, []byte) ([]schema.Schema, error) {
		return nil, errBoom
	})
	assert.ErrorIs(t, err, errBoom)
}
