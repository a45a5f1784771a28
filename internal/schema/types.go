package schema

import "envgen/scalar"

// Category classifies how a field participates in loading.
type Category int

const (
	CategoryScalar   Category = iota // required scalar value
	CategoryOptional                 // scalar whose absence is not an error
	CategoryNested                   // struct in its own key namespace
	CategoryFlatten                  // struct sharing the parent key namespace
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryOptional:
		return "optional"
	case CategoryNested:
		return "nested"
	case CategoryFlatten:
		return "flatten"
	default:
		return "unknown"
	}
}

// StructSpec is the extracted schema of one struct type. It is produced by
// extraction and consumed read-only by every later stage.
type StructSpec struct {
	Name    string
	PkgPath string
	Fields  []FieldSpec // declaration order
}

// FieldSpec is the extracted schema of one field: its annotations plus the
// type shape the annotations are checked against.
type FieldSpec struct {
	Name  string
	Index int // field index within the struct, used by the reflect loader

	// Annotations.
	Key        string // explicit key override
	HasKey     bool
	Default    string
	HasDefault bool
	Prefix     string // explicit prefix override for nested fields
	HasPrefix  bool
	Nested     bool
	Flatten    bool

	// Type shape.
	Optional bool        // declared optional or pointer-typed
	Pointer  bool        // pointer-typed scalar, absence leaves nil
	Kind     scalar.Kind // scalar kind, KindInvalid for struct fields
	IsStruct bool
	Child    *StructSpec // for struct fields
	TypeName string      // scalar type as written in the declaring package (element type for pointers)
}

// Category derives the declared category from annotations and type shape.
func (f *FieldSpec) Category() Category {
	switch {
	case f.Flatten:
		return CategoryFlatten
	case f.Nested:
		return CategoryNested
	case f.Optional:
		return CategoryOptional
	default:
		return CategoryScalar
	}
}
