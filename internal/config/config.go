// Package config holds the generation settings shared by the CLI and the library.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tordrt/atlas2ts/internal/naming"
)

// GeneratorKind selects the output generator
type GeneratorKind string

const (
	// TypeScript emits plain interface declarations
	TypeScript GeneratorKind = "ts"
	// Zod emits runtime-validated schema objects
	Zod GeneratorKind = "zod"
)

// DefaultOutputPath is used when no output path is configured
const DefaultOutputPath = "db-types.ts"

var (
	// ErrInvalidMapping is returned for mapping entries not in source:target form
	ErrInvalidMapping = errors.New("invalid mapping")
	// ErrInvalidConfig is returned for unknown enum values
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config configures a transform run. It is read-only once generation starts.
type Config struct {
	InputPaths     []string          `yaml:"input"`
	OutputPath     string            `yaml:"output"`
	Generator      GeneratorKind     `yaml:"generator"`
	NamingStrategy naming.Strategy   `yaml:"naming-strategy"`
	TypeNames      map[string]string `yaml:"type-names"`
	FieldNames     map[string]string `yaml:"field-names"`
	FieldTypes     map[string]string `yaml:"field-types"`
	TypeMapping    map[string]string `yaml:"type-mapping"`
	Template       string            `yaml:"template"`
	TemplateRoot   string            `yaml:"template-root"`
	// SchemaName is the database schema introspected for postgres:// and mysql:// inputs
	SchemaName string `yaml:"schema"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns a Config with every default applied
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields with their defaults
func (c *Config) ApplyDefaults() {
	if c.Generator == "" {
		c.Generator = TypeScript
	}
	if c.NamingStrategy == "" {
		c.NamingStrategy = naming.CamelCase
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
}

// Validate checks enum-valued settings
func (c *Config) Validate() error {
	if _, err := ParseGenerator(string(c.Generator)); err != nil {
		return err
	}
	if _, err := naming.ParseStrategy(string(c.NamingStrategy)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Merge overlays the set values of other onto c. Mapping entries from other win per key.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.InputPaths) > 0 {
		c.InputPaths = other.InputPaths
	}
	if other.OutputPath != "" {
		c.OutputPath = other.OutputPath
	}
	if other.Generator != "" {
		c.Generator = other.Generator
	}
	if other.NamingStrategy != "" {
		c.NamingStrategy = other.NamingStrategy
	}
	if other.Template != "" {
		c.Template = other.Template
	}
	if other.TemplateRoot != "" {
		c.TemplateRoot = other.TemplateRoot
	}
	if other.SchemaName != "" {
		c.SchemaName = other.SchemaName
	}
	c.Verbose = c.Verbose || other.Verbose
	c.TypeNames = mergeMaps(c.TypeNames, other.TypeNames)
	c.FieldNames = mergeMaps(c.FieldNames, other.FieldNames)
	c.FieldTypes = mergeMaps(c.FieldTypes, other.FieldTypes)
	c.TypeMapping = mergeMaps(c.TypeMapping, other.TypeMapping)
}

// LoadFile reads a YAML config file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file %s: %v", ErrInvalidConfig, path, err)
	}
	return &c, nil
}

// ParseGenerator converts a user supplied value into a GeneratorKind
func ParseGenerator(s string) (GeneratorKind, error) {
	switch GeneratorKind(s) {
	case TypeScript, Zod:
		return GeneratorKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown generator %q (must be 'ts' or 'zod')", ErrInvalidConfig, s)
	}
}

// ParseMappings converts repeated "source:target" entries into a lookup map.
// Later entries win over earlier ones for the same source.
func ParseMappings(entries []string) (map[string]string, error) {
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q (expected source:target)", ErrInvalidMapping, entry)
		}
		result[parts[0]] = parts[1]
	}
	return result, nil
}

func mergeMaps(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
