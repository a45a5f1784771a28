package schema

import (
	"reflect"
	"strings"
)

// Tag keys recognized by envgen. Tags belonging to other libraries are
// ignored entirely.
const (
	TagEnv     = "env"
	TagDefault = "default"
	TagPrefix  = "prefix"
)

// Option tokens allowed after the key position of the env tag.
const (
	optOptional = "optional"
	optNested   = "nested"
	optFlatten  = "flatten"
)

// Annotations is the tokenized form of one field's tags.
type Annotations struct {
	Key        string
	HasKey     bool
	Skip       bool
	Optional   bool
	Nested     bool
	Flatten    bool
	Default    string
	HasDefault bool
	Prefix     string
	HasPrefix  bool
	// Unknown holds unrecognized option tokens; any entry is fatal for
	// the caller.
	Unknown []string
}

// ParseTag tokenizes the envgen annotations of a struct tag. The env tag
// has the form "KEY[,option...]": an empty key position keeps the
// name-derived key and "-" skips the field entirely.
func ParseTag(tag reflect.StructTag) Annotations {
	var a Annotations

	if v, ok := tag.Lookup(TagEnv); ok {
		parts := strings.Split(v, ",")
		switch parts[0] {
		case "-":
			a.Skip = true
		case "":
		default:
			a.Key = parts[0]
			a.HasKey = true
		}

		for _, opt := range parts[1:] {
			switch opt {
			case optOptional:
				a.Optional = true
			case optNested:
				a.Nested = true
			case optFlatten:
				a.Flatten = true
			default:
				a.Unknown = append(a.Unknown, opt)
			}
		}
	}

	if v, ok := tag.Lookup(TagDefault); ok {
		a.Default = v
		a.HasDefault = true
	}

	if v, ok := tag.Lookup(TagPrefix); ok {
		a.Prefix = v
		a.HasPrefix = true
	}

	return a
}
