package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tordrt/atlas2ts"
	"github.com/tordrt/atlas2ts/internal/config"
	"github.com/tordrt/atlas2ts/internal/naming"
)

// cliOptions holds the raw flag values before they are turned into a config.Config
type cliOptions struct {
	inputs         []string
	output         string
	stdout         bool
	generator      string
	namingStrategy string
	typeMapping    []string
	typeNames      []string
	fieldNames     []string
	fieldTypes     []string
	template       string
	templateRoot   string
	configFile     string
	schemaName     string
	verbose        bool
}

var opts cliOptions

var rootCmd = &cobra.Command{
	Use:   "atlas2ts",
	Short: "Generate typescript interfaces and zod typespecs from atlas HCL files",
	Long: `atlas2ts reads Atlas HCL schema files (or introspects a live database) and generates
TypeScript interfaces or zod schemas. Each table yields a base declaration, a New-prefixed
declaration for inserts and a Patch-suffixed declaration for partial updates.`,
	Example: `  atlas2ts -i schema.hcl -o src/db-types.ts
  atlas2ts -i schema.hcl -g zod --type-mapping bigint:string --field-names user.name:handle
  atlas2ts -i postgres://localhost/app --schema public --stdout`,
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&opts.inputs, "input", "i", nil, "Path of one or more input files (or database URLs) to process")
	f.StringVarP(&opts.output, "output", "o", "", "Path of output file for generated types (default: "+config.DefaultOutputPath+")")
	f.BoolVar(&opts.stdout, "stdout", false, "Write generated types to stdout instead of a file")
	f.StringVarP(&opts.generator, "generator", "g", "", "Generator to be used, can be ts (default) or zod")
	f.StringVar(&opts.namingStrategy, "naming-strategy", "", "Strategy used to derive field & type names: unmodified or camel-case (default)")
	f.StringArrayVar(&opts.typeMapping, "type-mapping", nil, "Mapping of database types to field types, e.g. bigint:string (can be repeated)")
	f.StringArrayVar(&opts.typeNames, "type-names", nil, "Type name for a table, e.g. users:Person (can be repeated)")
	f.StringArrayVar(&opts.fieldNames, "field-names", nil, "Override names for specific fields, e.g. users.name:handle (can be repeated)")
	f.StringArrayVar(&opts.fieldTypes, "field-types", nil, "Override types for specific fields, e.g. Person.handle:Handle (can be repeated)")
	f.StringVarP(&opts.template, "template", "t", "", "Name of template file (resolved relative to template root) to feed the generated content into")
	f.StringVar(&opts.templateRoot, "template-root", "", "Root relative to which templates will be resolved (default: working directory)")
	f.StringVarP(&opts.configFile, "config", "c", "", "YAML file with default values for any of these flags")
	f.StringVarP(&opts.schemaName, "schema", "s", "", "Database schema to introspect for database URL inputs")
	f.BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	setupLogging(cfg.Verbose)

	if len(cfg.InputPaths) == 0 {
		return cmd.Help()
	}

	output, err := atlas2ts.TransformFiles(context.Background(), cfg)
	if err != nil {
		return err
	}

	if opts.stdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}
	return writeOutput(cfg.OutputPath, output)
}

// buildConfig merges the config file (if any) with flag values and validates
// the result. Flags win over the file.
func buildConfig(o cliOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if o.configFile != "" {
		fileCfg, err := config.LoadFile(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	flagCfg := &config.Config{
		InputPaths:     o.inputs,
		OutputPath:     o.output,
		Generator:      config.GeneratorKind(o.generator),
		NamingStrategy: naming.Strategy(o.namingStrategy),
		Template:       o.template,
		TemplateRoot:   o.templateRoot,
		SchemaName:     o.schemaName,
		Verbose:        o.verbose,
	}

	mappings := []struct {
		flag    string
		entries []string
		target  *map[string]string
	}{
		{"--type-mapping", o.typeMapping, &flagCfg.TypeMapping},
		{"--type-names", o.typeNames, &flagCfg.TypeNames},
		{"--field-names", o.fieldNames, &flagCfg.FieldNames},
		{"--field-types", o.fieldTypes, &flagCfg.FieldTypes},
	}
	for _, m := range mappings {
		parsed, err := config.ParseMappings(m.entries)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", m.flag, err)
		}
		*m.target = parsed
	}

	cfg.Merge(flagCfg)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func writeOutput(path, output string) error {
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	slog.Debug("wrote generated types", "path", path, "bytes", len(output))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
