package schema

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"envgen/scalar"
)

// LoadMode specifies what information the extractor needs from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Extractor loads Go packages and extracts StructSpecs from annotated
// struct types.
type Extractor struct {
	pkgs  []*packages.Package
	cache map[types.Type]*StructSpec
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{cache: make(map[types.Type]*StructSpec)}
}

// LoadPackages loads the specified package patterns (e.g. "./config",
// "envgen/examples/basic").
func (e *Extractor) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, pe := range pkg.Errors {
			errs = append(errs, pe)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	e.pkgs = append(e.pkgs, pkgs...)
	return nil
}

// PackageMeta describes a loaded package.
type PackageMeta struct {
	Path string
	Name string
	Dir  string
}

// Packages returns metadata for every loaded package.
func (e *Extractor) Packages() []PackageMeta {
	metas := make([]PackageMeta, 0, len(e.pkgs))
	for _, pkg := range e.pkgs {
		m := PackageMeta{Path: pkg.PkgPath, Name: pkg.Name}
		if len(pkg.GoFiles) > 0 {
			m.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		metas = append(metas, m)
	}

	return metas
}

// Extract builds the StructSpec for a named struct type declared in any of
// the loaded packages.
func (e *Extractor) Extract(typeName string) (*StructSpec, error) {
	for _, pkg := range e.pkgs {
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			continue
		}

		tn, ok := obj.(*types.TypeName)
		if !ok {
			return nil, &SchemaError{Kind: ErrInvalidShape, Type: typeName, Detail: "not a type name"}
		}

		return e.extractType(tn.Type())
	}

	return nil, fmt.Errorf("type %s not found in loaded packages", typeName)
}

// extractType extracts a named struct type, reusing cached specs so shared
// nested types are extracted once.
func (e *Extractor) extractType(t types.Type) (*StructSpec, error) {
	if spec, ok := e.cache[t]; ok {
		return spec, nil
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil, &SchemaError{Kind: ErrInvalidShape, Type: t.String(), Detail: "not a named struct type"}
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, &SchemaError{Kind: ErrInvalidShape, Type: named.Obj().Name(), Detail: "not a plain struct type"}
	}

	obj := named.Obj()
	spec := &StructSpec{Name: obj.Name(), PkgPath: obj.Pkg().Path()}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		a := ParseTag(reflect.StructTag(st.Tag(i)))
		if a.Skip {
			continue
		}

		if len(a.Unknown) > 0 {
			return nil, &SchemaError{
				Kind:   ErrUnrecognizedAnnotation,
				Type:   spec.Name,
				Field:  field.Name(),
				Detail: fmt.Sprintf("unknown env option %q", a.Unknown[0]),
			}
		}

		fs := FieldSpec{
			Name:       field.Name(),
			Index:      i,
			Key:        a.Key,
			HasKey:     a.HasKey,
			Default:    a.Default,
			HasDefault: a.HasDefault,
			Prefix:     a.Prefix,
			HasPrefix:  a.HasPrefix,
			Nested:     a.Nested,
			Flatten:    a.Flatten,
			Optional:   a.Optional,
		}

		ft := field.Type()
		if ptr, ok := ft.(*types.Pointer); ok {
			fs.Pointer = true
			fs.Optional = true
			ft = ptr.Elem()
		}

		switch {
		case kindOf(ft) != scalar.KindInvalid:
			if a.Nested || a.Flatten {
				return nil, shapeError(spec.Name, field.Name(), "nested and flatten apply to struct fields only")
			}

			fs.Kind = kindOf(ft)

			if err := checkScalarScope(ft, obj.Pkg()); err != nil {
				return nil, shapeError(spec.Name, field.Name(), err.Error())
			}

			fs.TypeName = types.TypeString(ft, relativeTo(obj.Pkg()))

		case isStructType(ft):
			if fs.Pointer {
				return nil, shapeError(spec.Name, field.Name(), "pointer to struct is not supported")
			}

			if !a.Nested && !a.Flatten {
				return nil, shapeError(spec.Name, field.Name(), "struct field requires a nested or flatten annotation")
			}

			childNamed := ft.(*types.Named)
			if childNamed.Obj().Pkg() != obj.Pkg() {
				return nil, shapeError(spec.Name, field.Name(), "nested struct must be declared in the same package")
			}

			child, err := e.extractType(ft)
			if err != nil {
				return nil, err
			}

			fs.IsStruct = true
			fs.Child = child
			fs.TypeName = childNamed.Obj().Name()

		default:
			return nil, shapeError(spec.Name, field.Name(), fmt.Sprintf("unsupported field type %s", field.Type()))
		}

		spec.Fields = append(spec.Fields, fs)
	}

	e.cache[t] = spec
	return spec, nil
}

// kindOf maps a go/types type onto its scalar kind. Named types with a
// supported underlying type map through it, except time.Duration, which is
// recognized directly.
func kindOf(t types.Type) scalar.Kind {
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Duration" {
			return scalar.KindDuration
		}

		return kindOf(named.Underlying())
	}

	basic, ok := t.(*types.Basic)
	if !ok {
		return scalar.KindInvalid
	}

	switch basic.Kind() {
	case types.String:
		return scalar.KindString
	case types.Bool:
		return scalar.KindBool
	case types.Int:
		return scalar.KindInt
	case types.Int8:
		return scalar.KindInt8
	case types.Int16:
		return scalar.KindInt16
	case types.Int32:
		return scalar.KindInt32
	case types.Int64:
		return scalar.KindInt64
	case types.Uint:
		return scalar.KindUint
	case types.Uint8:
		return scalar.KindUint8
	case types.Uint16:
		return scalar.KindUint16
	case types.Uint32:
		return scalar.KindUint32
	case types.Uint64:
		return scalar.KindUint64
	case types.Float32:
		return scalar.KindFloat32
	case types.Float64:
		return scalar.KindFloat64
	default:
		return scalar.KindInvalid
	}
}

// checkScalarScope rejects named scalar types from foreign packages, since
// generated code could not reference them without extra imports.
// time.Duration is the one deliberate exception.
func checkScalarScope(t types.Type, pkg *types.Package) error {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg() == pkg {
		return nil
	}

	if obj.Pkg().Path() == "time" && obj.Name() == "Duration" {
		return nil
	}

	return fmt.Errorf("named scalar type %s from another package is not supported", obj.Name())
}

func isStructType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	_, ok = named.Underlying().(*types.Struct)
	return ok
}

// relativeTo returns a qualifier that omits the package prefix for types
// declared in pkg itself.
func relativeTo(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}

		return other.Name()
	}
}
