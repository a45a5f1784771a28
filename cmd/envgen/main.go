// Package main provides the CLI entrypoint for envgen.
//
// envgen reads a YAML manifest naming annotated struct types, extracts
// their schemas through go/types, and generates reflection-free loader
// functions next to the structs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"envgen/internal/gen"
	"envgen/internal/manifest"
	"envgen/internal/resolve"
	"envgen/internal/schema"
)

var (
	// Global flags
	manifestPath string
	verbose      bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "envgen",
	Short: "envgen - environment loader generator for annotated Go structs",
	Long: `envgen generates type-safe environment loaders for Go structs
annotated with env, default and prefix struct tags.

The manifest (envgen.yaml by default) names the package and the root
types; one Go file with loaders is generated per root.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// genCmd generates loader files for every root in the manifest.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate loader files for the manifest roots",
	RunE:  runGen,
}

// checkCmd resolves the manifest without writing anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate schemas and annotations without writing files",
	RunE:  runCheck,
}

// inspectCmd prints the resolved key layout of each root.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the resolved environment keys per root type",
	RunE:  runInspect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "envgen.yaml", "path to the generation manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
}

// resolveRoots loads the manifest, extracts each root's schema, and
// resolves it into a load plan.
func resolveRoots() (*manifest.File, *schema.Extractor, []*resolve.LoadPlan, error) {
	mf, err := manifest.LoadFile(manifestPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debug("manifest loaded",
		zap.String("package", mf.Package),
		zap.Int("roots", len(mf.Roots)))

	ex := schema.NewExtractor()
	if err := ex.LoadPackages(mf.Package); err != nil {
		return nil, nil, nil, fmt.Errorf("loading package %s: %w", mf.Package, err)
	}

	var plans []*resolve.LoadPlan

	for _, root := range mf.Roots {
		spec, err := ex.Extract(root.Type)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("extracting %s: %w", root.Type, err)
		}

		plan, err := resolve.NewResolver().Resolve(spec, root.Prefix)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("resolving %s: %w", root.Type, err)
		}

		plans = append(plans, plan)
	}

	return mf, ex, plans, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	mf, ex, plans, err := resolveRoots()
	if err != nil {
		return err
	}

	pkgs := ex.Packages()
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages matched %s", mf.Package)
	}

	outputDir := mf.OutputDir
	if outputDir == "" {
		outputDir = pkgs[0].Dir
	}

	g := gen.NewGenerator(gen.Config{
		PackageName: pkgs[0].Name,
		OutputDir:   outputDir,
	})

	files, err := g.Generate(plans)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, outputDir); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("generated", zap.String("file", f.Filename))
	}

	logger.Info("generation complete",
		zap.Int("roots", len(plans)),
		zap.String("dir", outputDir))

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, _, plans, err := resolveRoots()
	if err != nil {
		return err
	}

	logger.Info("check passed", zap.Int("roots", len(plans)))

	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, _, plans, err := resolveRoots()
	if err != nil {
		return err
	}

	for _, plan := range plans {
		fmt.Printf("%s:\n", plan.Spec.Name)
		printPlan(plan, "")
	}

	return nil
}

// printPlan writes one line per scalar key, indenting nested levels.
func printPlan(plan *resolve.LoadPlan, indent string) {
	for _, step := range plan.Steps {
		if step.Child != nil {
			if step.Policy == resolve.PolicyNested {
				fmt.Printf("%s  %s (%s):\n", indent, step.Field.Name, step.Policy)
				printPlan(step.Child, indent+"  ")

				continue
			}

			printPlan(step.Child, indent)

			continue
		}

		var attrs []string
		attrs = append(attrs, step.Policy.String())

		if step.Policy == resolve.PolicyDefault {
			attrs = append(attrs, fmt.Sprintf("default=%s", step.Default))
		}

		fmt.Printf("%s  %-30s %s.%s (%s)\n",
			indent, step.Key, plan.Spec.Name, step.Field.Name, strings.Join(attrs, ", "))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
