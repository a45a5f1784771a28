package resolve

import (
	"strings"

	"envgen/envsource"
	"envgen/internal/schema"
)

// fieldKey returns the key segment a field contributes: the uppercased
// explicit override when present, else the uppercased field name.
func fieldKey(f *schema.FieldSpec) string {
	if f.HasKey {
		return strings.ToUpper(f.Key)
	}

	return strings.ToUpper(f.Name)
}

// scalarKey composes the effective lookup key of a scalar field. The key is
// a pure function of the field's position in the schema tree and its own
// annotations.
func scalarKey(prefix string, f *schema.FieldSpec) string {
	return envsource.Key(prefix, fieldKey(f))
}

// childPrefix computes the prefix a struct-valued field hands to its child.
// Nested fields open a new namespace level derived from the field key,
// unless an explicit override replaces the derived value entirely. Flatten
// fields inherit the parent prefix unchanged.
func childPrefix(prefix string, f *schema.FieldSpec, p Policy) string {
	if p == PolicyFlatten {
		return prefix
	}

	if f.HasPrefix {
		return f.Prefix
	}

	return envsource.Key(prefix, fieldKey(f))
}
