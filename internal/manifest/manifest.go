// Package manifest reads the envgen.yaml generation manifest.
package manifest

// File is the top-level manifest document.
type File struct {
	// Version of the manifest format. Defaults to "1".
	Version string `yaml:"version"`
	// Package is the Go package pattern holding the annotated structs.
	Package string `yaml:"package"`
	// OutputDir overrides where generated files land. Empty means the
	// package's own directory.
	OutputDir string `yaml:"output_dir"`
	// Roots lists the types to generate loaders for.
	Roots []Root `yaml:"roots"`
}

// Root is one type to generate a loader for.
type Root struct {
	// Type is the struct type name within the package.
	Type string `yaml:"type"`
	// Prefix is prepended to every key of this root. Optional.
	Prefix string `yaml:"prefix"`
}
