package resolve

import "envgen/internal/schema"

// Instruction is one field-load step in a LoadPlan.
type Instruction struct {
	Field  *schema.FieldSpec
	Policy Policy
	// Key is the fully composed lookup key, set for scalar policies.
	Key string
	// Segment is the uppercased relative key segment the field contributes.
	Segment string
	// Default is the declared literal, set for PolicyDefault.
	Default string
	// Child is the sub-plan, set for PolicyNested and PolicyFlatten.
	Child *LoadPlan
}

// LoadPlan is the ordered load sequence for one struct node. Steps mirror
// field declaration order: order never changes the final value, but it
// keeps diagnostics reproducible across runs.
type LoadPlan struct {
	Spec *schema.StructSpec
	// Prefix is the composed prefix of this node, computed once during
	// resolution and never recomputed.
	Prefix string
	Steps  []Instruction
}
