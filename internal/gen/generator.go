package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"envgen/internal/resolve"
	"envgen/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the package clause of generated files. It must match
	// the package the annotated structs are declared in.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// Generator renders load plans into formatted Go source files.
type Generator struct {
	config Config

	// usesScalar tracks whether the file being generated needs the scalar
	// runtime import. Reset per file.
	usesScalar bool

	// emitted maps struct names to their specs, for deduplication when
	// several roots share a nested type. Reset per file.
	emitted map[string]*schema.StructSpec
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "app_config_envgen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file per root plan.
func (g *Generator) Generate(plans []*resolve.LoadPlan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, plan := range plans {
		file, err := g.generateRoot(plan)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", plan.Spec.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRoot renders the loader file for one root type. The root loader
// comes first, its transitive children follow in discovery order.
func (g *Generator) generateRoot(plan *resolve.LoadPlan) (*GeneratedFile, error) {
	g.usesScalar = false
	g.emitted = make(map[string]*schema.StructSpec)

	data := &fileData{PackageName: g.config.PackageName}

	if err := g.collectLoaders(data, plan, true); err != nil {
		return nil, err
	}

	data.Imports = append(data.Imports, canonicalImports[0])
	if g.usesScalar {
		data.Imports = append(data.Imports, canonicalImports[1])
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: toSnake(plan.Spec.Name) + "_envgen.go",
		Content:  formatted,
	}, nil
}

// collectLoaders appends the loader for plan and then recurses into child
// plans. A struct reached through several fields gets one loader; two
// distinct structs sharing a name cannot both live in one file.
func (g *Generator) collectLoaders(data *fileData, plan *resolve.LoadPlan, root bool) error {
	if prev, ok := g.emitted[plan.Spec.Name]; ok {
		if prev != plan.Spec {
			return fmt.Errorf("duplicate struct name %s", plan.Spec.Name)
		}

		return nil
	}

	g.emitted[plan.Spec.Name] = plan.Spec

	data.Loaders = append(data.Loaders, loaderData{
		TypeName: plan.Spec.Name,
		FuncName: loaderName(plan.Spec.Name),
		Prefix:   plan.Prefix,
		Root:     root,
		Body:     g.buildBody(plan),
	})

	for _, step := range plan.Steps {
		if step.Child == nil {
			continue
		}

		if err := g.collectLoaders(data, step.Child, false); err != nil {
			return err
		}
	}

	return nil
}

// toSnake converts a CamelCase type name to snake_case for filenames.
func toSnake(name string) string {
	var sb strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(rune(name[i-1])) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
