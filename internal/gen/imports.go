package gen

// Canonical aliases used by every generated file. The underscore form is
// not a legal package name a consumer would write, so identifiers in the
// generated code cannot collide with consumer declarations.
const (
	aliasSource = "envgen_source"
	aliasScalar = "envgen_scalar"
)

// importSpec represents one aliased import line.
type importSpec struct {
	Alias string
	Path  string
}

// canonicalImports lists the runtime imports in path-sorted order.
var canonicalImports = []importSpec{
	{Alias: aliasSource, Path: "envgen/envsource"},
	{Alias: aliasScalar, Path: "envgen/scalar"},
}
