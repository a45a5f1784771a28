package resolve

import (
	"envgen/internal/diagnostic"
	"envgen/internal/schema"
)

// Resolver assigns policies and composes load plans.
type Resolver struct {
	diags diagnostic.Diagnostics
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Diagnostics returns everything reported by previous Resolve calls.
func (r *Resolver) Diagnostics() diagnostic.Diagnostics {
	return r.diags
}

// Resolve builds the LoadPlan for spec under rootPrefix. Every conflict in
// the tree is collected before the error is returned; no partial plan is
// ever handed out.
func (r *Resolver) Resolve(spec *schema.StructSpec, rootPrefix string) (*LoadPlan, error) {
	plan := r.resolveStruct(spec, rootPrefix, "")
	if r.diags.HasErrors() {
		return nil, r.diags.Error()
	}

	return plan, nil
}

func (r *Resolver) resolveStruct(spec *schema.StructSpec, prefix, path string) *LoadPlan {
	plan := &LoadPlan{Spec: spec, Prefix: prefix}

	for i := range spec.Fields {
		f := &spec.Fields[i]
		fieldPath := joinPath(path, f.Name)

		policy, ok := classify(spec.Name, fieldPath, f, &r.diags)
		if !ok {
			continue
		}

		step := Instruction{Field: f, Policy: policy, Segment: fieldKey(f)}

		switch policy {
		case PolicyNested:
			step.Child = r.resolveStruct(f.Child, childPrefix(prefix, f, policy), fieldPath)
		case PolicyFlatten:
			// Flattened fields keep the parent's namespace in keys and in
			// diagnostic paths alike.
			step.Child = r.resolveStruct(f.Child, prefix, path)
		default:
			step.Key = scalarKey(prefix, f)
			if policy == PolicyDefault {
				step.Default = f.Default
			}
		}

		plan.Steps = append(plan.Steps, step)
	}

	return plan
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
