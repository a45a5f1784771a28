package envgen

import (
	"fmt"
	"reflect"

	"envgen/envsource"
	"envgen/internal/resolve"
	"envgen/internal/schema"
	"envgen/scalar"
)

type options struct {
	prefix string
}

// Option adjusts how Load and Dump derive keys.
type Option func(*options)

// WithPrefix prepends a root prefix to every derived key.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load fills dst, a pointer to an annotated struct, from src. Every field
// is attempted before reporting: the returned error lists all missing and
// invalid values at once. On failure dst is left untouched.
func Load(dst any, src envsource.Source, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("envgen: Load requires a non-nil pointer to a struct, got %T", dst)
	}

	plan, err := planFor(rv.Elem().Type(), o.prefix)
	if err != nil {
		return err
	}

	// Stage into a fresh value so a failed load never leaves dst half
	// written.
	staged := reflect.New(rv.Elem().Type()).Elem()

	if errs := runPlan(plan, src, staged); len(errs) > 0 {
		return errs.Err()
	}

	rv.Elem().Set(staged)

	return nil
}

// planFor extracts the schema of t and resolves it under prefix.
func planFor(t reflect.Type, prefix string) (*resolve.LoadPlan, error) {
	spec, err := schema.FromReflect(t)
	if err != nil {
		return nil, err
	}

	return resolve.NewResolver().Resolve(spec, prefix)
}

// runPlan executes one plan node against dst, collecting every field error.
func runPlan(plan *resolve.LoadPlan, src envsource.Source, dst reflect.Value) envsource.ErrorList {
	var errs envsource.ErrorList

	for _, step := range plan.Steps {
		f := step.Field
		fv := dst.Field(f.Index)

		switch step.Policy {
		case resolve.PolicyNested:
			errs = append(errs, runPlan(step.Child, src, fv).Prefixed(f.Name)...)
		case resolve.PolicyFlatten:
			errs = append(errs, runPlan(step.Child, src, fv)...)
		default:
			errs = appendScalar(errs, &step, src, fv)
		}
	}

	return errs
}

// appendScalar looks up, parses and assigns one scalar field, appending to
// errs on missing or invalid values.
func appendScalar(
	errs envsource.ErrorList,
	step *resolve.Instruction,
	src envsource.Source,
	fv reflect.Value,
) envsource.ErrorList {
	f := step.Field

	raw, ok := src.Lookup(step.Key)
	if !ok {
		switch step.Policy {
		case resolve.PolicyDefault:
			raw = step.Default
		case resolve.PolicyOptional:
			return errs
		default:
			return append(errs, envsource.NewMissing(f.Name, step.Key))
		}
	}

	target := fv
	if f.Pointer {
		target = reflect.New(fv.Type().Elem()).Elem()
	}

	if err := scalar.Assign(f.Kind, target, raw); err != nil {
		return append(errs, envsource.NewInvalid(f.Name, step.Key, raw, err))
	}

	if f.Pointer {
		fv.Set(target.Addr())
	}

	return errs
}
