package resolve

import (
	"fmt"

	"envgen/internal/diagnostic"
	"envgen/internal/schema"
	"envgen/scalar"
)

// Policy is the single load behavior assigned to a field. Assignment is
// total: after resolution succeeds every field carries exactly one policy.
type Policy int

const (
	// PolicyScalar - required scalar, a missing key is an error.
	PolicyScalar Policy = iota
	// PolicyOptional - scalar whose absence is not an error.
	PolicyOptional
	// PolicyDefault - scalar with a declared fallback literal.
	PolicyDefault
	// PolicyNested - struct loaded under a derived or overridden prefix.
	PolicyNested
	// PolicyFlatten - struct loaded at the parent's key-namespace level.
	PolicyFlatten
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyScalar:
		return "scalar"
	case PolicyOptional:
		return "optional"
	case PolicyDefault:
		return "default"
	case PolicyNested:
		return "nested"
	case PolicyFlatten:
		return "flatten"
	default:
		return "unknown"
	}
}

// codeInvalidDefault flags a default literal that does not parse as the
// field's scalar kind.
const codeInvalidDefault = "invalid-default"

// classify maps a field's annotation set onto exactly one policy, reporting
// every conflict it finds. ok is false when the field cannot be classified.
func classify(typ, path string, f *schema.FieldSpec, d *diagnostic.Diagnostics) (Policy, bool) {
	ok := true
	conflict := func(detail string) {
		d.AddError(schema.ErrConflictingAnnotations.String(), typ, path, detail)
		ok = false
	}

	if f.Nested && f.Flatten {
		conflict("nested and flatten are mutually exclusive")
	}

	if f.Flatten && f.HasKey {
		conflict("flatten fields have no key of their own")
	}

	if f.Flatten && f.HasDefault {
		conflict("flatten fields cannot declare a default")
	}

	if f.Flatten && f.HasPrefix {
		conflict("flatten fields inherit the parent prefix and cannot override it")
	}

	if f.Nested && f.HasDefault {
		conflict("nested fields cannot declare a default")
	}

	if f.HasPrefix && !f.Nested {
		conflict("prefix overrides apply to nested fields only")
	}

	if f.HasDefault && f.Optional {
		conflict("default and optional are mutually exclusive")
	}

	if f.HasDefault && f.Kind != scalar.KindInvalid {
		if err := scalar.Validate(f.Kind, f.Default); err != nil {
			d.AddError(codeInvalidDefault, typ, path, fmt.Sprintf("default %q: %s", f.Default, err))
			ok = false
		}
	}

	if !ok {
		return PolicyScalar, false
	}

	switch {
	case f.Flatten:
		return PolicyFlatten, true
	case f.Nested:
		return PolicyNested, true
	case f.HasDefault:
		return PolicyDefault, true
	case f.Optional:
		return PolicyOptional, true
	default:
		return PolicyScalar, true
	}
}
