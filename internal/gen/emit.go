package gen

import (
	"fmt"
	"strconv"
	"strings"

	"envgen/internal/resolve"
	"envgen/internal/schema"
	"envgen/scalar"
)

// bodyBuilder accumulates the load sequence of one loader function.
type bodyBuilder struct {
	sb strings.Builder
	// usesScalar is set when any emitted line references the scalar
	// runtime package, so the generator can drop the import otherwise.
	usesScalar bool
}

func (b *bodyBuilder) addf(format string, args ...any) {
	b.sb.WriteString("\t")
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteString("\n")
}

func (b *bodyBuilder) blank() {
	b.sb.WriteString("\n")
}

// buildBody renders the load steps of one plan node. Child loaders are
// referenced by name; the generator walks the plan tree separately to emit
// them.
func (g *Generator) buildBody(plan *resolve.LoadPlan) string {
	var b bodyBuilder

	for i, step := range plan.Steps {
		if i > 0 {
			b.blank()
		}

		switch step.Policy {
		case resolve.PolicyNested, resolve.PolicyFlatten:
			emitStructField(&b, &step)
		default:
			emitScalar(&b, &step)
		}
	}

	if b.usesScalar {
		g.usesScalar = true
	}

	return b.sb.String()
}

// emitScalar renders the lookup-parse-assign sequence for one scalar field.
func emitScalar(b *bodyBuilder, step *resolve.Instruction) {
	f := step.Field
	kName := "k" + f.Name

	b.addf("%s := %s.Key(prefix, %q)", kName, aliasSource, step.Segment)
	b.addf("if raw, ok := src.Lookup(%s); ok {", kName)

	if f.Kind == scalar.KindString {
		emitAssign(b, f, castExpr(f, "raw"), "\t")
	} else {
		v := parseVar(f.Kind)
		b.usesScalar = true
		b.addf("\t%s, err := %s", v, parseCall(f.Kind))
		b.addf("\tif err != nil {")
		b.addf("\t\terrs = append(errs, %s.NewInvalid(%q, %s, raw, err))", aliasSource, f.Name, kName)
		b.addf("\t} else {")
		emitAssign(b, f, castExpr(f, v), "\t\t")
		b.addf("\t}")
	}

	switch step.Policy {
	case resolve.PolicyScalar:
		b.addf("} else {")
		b.addf("\terrs = append(errs, %s.NewMissing(%q, %s))", aliasSource, f.Name, kName)
		b.addf("}")
	case resolve.PolicyDefault:
		b.addf("} else {")
		emitAssign(b, f, defaultExpr(b, f, step.Default), "\t")
		b.addf("}")
	default:
		b.addf("}")
	}
}

// emitStructField renders the call into a child loader plus error merging.
// Nested children contribute a path segment to their errors; flattened
// children report through the parent's path untouched.
func emitStructField(b *bodyBuilder, step *resolve.Instruction) {
	f := step.Field
	v := "v" + f.Name

	var prefixExpr string

	switch {
	case step.Policy == resolve.PolicyFlatten:
		prefixExpr = "prefix"
	case f.HasPrefix:
		prefixExpr = strconv.Quote(f.Prefix)
	default:
		prefixExpr = fmt.Sprintf("%s.Key(prefix, %q)", aliasSource, step.Segment)
	}

	b.addf("%s, %sErrs := %s(src, %s)", v, v, loaderName(f.Child.Name), prefixExpr)
	b.addf("out.%s = %s", f.Name, v)

	if step.Policy == resolve.PolicyNested {
		b.addf("errs = append(errs, %sErrs.Prefixed(%q)...)", v, f.Name)
	} else {
		b.addf("errs = append(errs, %sErrs...)", v)
	}
}

// emitAssign writes the final assignment, going through a temporary for
// pointer fields so the address of the parsed value can be taken.
func emitAssign(b *bodyBuilder, f *schema.FieldSpec, expr, indent string) {
	if f.Pointer {
		b.addf("%sv := %s", indent, expr)
		b.addf("%sout.%s = &v", indent, f.Name)

		return
	}

	b.addf("%sout.%s = %s", indent, f.Name, expr)
}

// parseVar names the parse result variable per kind family.
func parseVar(k scalar.Kind) string {
	switch {
	case k == scalar.KindBool:
		return "bv"
	case k == scalar.KindDuration:
		return "dv"
	case k.IsFloat():
		return "fv"
	default:
		return "n"
	}
}

// parseCall returns the runtime parse expression for a raw string.
func parseCall(k scalar.Kind) string {
	switch {
	case k == scalar.KindBool:
		return aliasScalar + ".ParseBool(raw)"
	case k == scalar.KindDuration:
		return aliasScalar + ".ParseDuration(raw)"
	case k.IsSigned():
		return fmt.Sprintf("%s.ParseInt(raw, %d)", aliasScalar, k.Bits())
	case k.IsUnsigned():
		return fmt.Sprintf("%s.ParseUint(raw, %d)", aliasScalar, k.Bits())
	default:
		return fmt.Sprintf("%s.ParseFloat(raw, %d)", aliasScalar, k.Bits())
	}
}

// resultType is the Go type produced by the parse call for a kind.
func resultType(k scalar.Kind) string {
	switch {
	case k == scalar.KindString:
		return "string"
	case k == scalar.KindBool:
		return "bool"
	case k == scalar.KindDuration:
		return "time.Duration"
	case k.IsSigned():
		return "int64"
	case k.IsUnsigned():
		return "uint64"
	default:
		return "float64"
	}
}

// castExpr wraps expr in a conversion when the field's declared type is not
// what the parse call already produces.
func castExpr(f *schema.FieldSpec, expr string) string {
	if f.TypeName == resultType(f.Kind) {
		return expr
	}

	return fmt.Sprintf("%s(%s)", f.TypeName, expr)
}

// defaultExpr renders the validated default literal as a Go expression.
// Numeric and string defaults become untyped constants, which assign to
// named scalar types without a conversion. Durations go through the runtime
// because Go has no duration literal.
func defaultExpr(b *bodyBuilder, f *schema.FieldSpec, lit string) string {
	switch {
	case f.Kind == scalar.KindString:
		return strconv.Quote(lit)
	case f.Kind == scalar.KindBool:
		v, _ := scalar.ParseBool(lit)

		return strconv.FormatBool(v)
	case f.Kind == scalar.KindDuration:
		b.usesScalar = true
		expr := fmt.Sprintf("%s.MustDuration(%q)", aliasScalar, lit)
		if f.TypeName != "time.Duration" {
			expr = fmt.Sprintf("%s(%s)", f.TypeName, expr)
		}

		return expr
	case f.Kind.IsSigned():
		v, _ := scalar.ParseInt(lit, f.Kind.Bits())

		return strconv.FormatInt(v, 10)
	case f.Kind.IsUnsigned():
		v, _ := scalar.ParseUint(lit, f.Kind.Bits())

		return strconv.FormatUint(v, 10)
	default:
		v, _ := scalar.ParseFloat(lit, 64)

		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// loaderName is the unexported per-struct loader function name.
func loaderName(typeName string) string {
	return "load" + typeName
}
