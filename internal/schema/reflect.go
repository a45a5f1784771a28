package schema

import (
	"fmt"
	"reflect"

	"envgen/scalar"
)

// FromReflect extracts a StructSpec from a runtime struct type. It applies
// the same shape and annotation rules as the go/types front end, so the
// reflection loader and the code generator agree on every schema.
func FromReflect(t reflect.Type) (*StructSpec, error) {
	if t == nil || t.Kind() != reflect.Struct {
		name := "<nil>"
		if t != nil {
			name = t.String()
		}

		return nil, &SchemaError{Kind: ErrInvalidShape, Type: name, Detail: "not a plain struct type"}
	}

	spec := &StructSpec{Name: t.Name(), PkgPath: t.PkgPath()}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		a := ParseTag(field.Tag)
		if a.Skip {
			continue
		}

		if len(a.Unknown) > 0 {
			return nil, &SchemaError{
				Kind:   ErrUnrecognizedAnnotation,
				Type:   spec.Name,
				Field:  field.Name,
				Detail: fmt.Sprintf("unknown env option %q", a.Unknown[0]),
			}
		}

		fs := FieldSpec{
			Name:       field.Name,
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

		ft := field.Type
		if ft.Kind() == reflect.Pointer {
			fs.Pointer = true
			fs.Optional = true
			ft = ft.Elem()
		}

		switch {
		case scalar.FromReflectType(ft) != scalar.KindInvalid:
			if a.Nested || a.Flatten {
				return nil, shapeError(spec.Name, field.Name, "nested and flatten apply to struct fields only")
			}

			fs.Kind = scalar.FromReflectType(ft)

		case ft.Kind() == reflect.Struct:
			if fs.Pointer {
				return nil, shapeError(spec.Name, field.Name, "pointer to struct is not supported")
			}

			if !a.Nested && !a.Flatten {
				return nil, shapeError(spec.Name, field.Name, "struct field requires a nested or flatten annotation")
			}

			child, err := FromReflect(ft)
			if err != nil {
				return nil, err
			}

			fs.IsStruct = true
			fs.Child = child

		default:
			return nil, shapeError(spec.Name, field.Name, fmt.Sprintf("unsupported field type %s", field.Type))
		}

		spec.Fields = append(spec.Fields, fs)
	}

	return spec, nil
}

func shapeError(typ, field, detail string) *SchemaError {
	return &SchemaError{Kind: ErrInvalidShape, Type: typ, Field: field, Detail: detail}
}
