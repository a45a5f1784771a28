package envgen

import (
	"fmt"
	"reflect"

	"envgen/envsource"
	"envgen/internal/resolve"
	"envgen/scalar"
)

// Dump renders an annotated struct back into the key/value map Load would
// read it from. Nil optional fields produce no entry. Dump is the inverse
// of Load for any value Load can produce.
func Dump(v any, opts ...Option) (envsource.Map, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("envgen: Dump requires a struct or pointer to one, got %T", v)
	}

	plan, err := planFor(rv.Type(), o.prefix)
	if err != nil {
		return nil, err
	}

	out := envsource.Map{}
	dumpPlan(plan, rv, out)

	return out, nil
}

func dumpPlan(plan *resolve.LoadPlan, v reflect.Value, out envsource.Map) {
	for _, step := range plan.Steps {
		f := step.Field
		fv := v.Field(f.Index)

		if step.Child != nil {
			dumpPlan(step.Child, fv, out)

			continue
		}

		if f.Pointer {
			if fv.IsNil() {
				continue
			}

			fv = fv.Elem()
		}

		out[step.Key] = scalar.Format(f.Kind, fv)
	}
}
