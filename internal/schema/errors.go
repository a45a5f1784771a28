package schema

import "fmt"

// ErrorKind classifies a schema failure. The String form doubles as the
// stable diagnostic code reported for the failure.
type ErrorKind int

const (
	// ErrUnrecognizedAnnotation reports a token outside the closed
	// annotation set.
	ErrUnrecognizedAnnotation ErrorKind = iota
	// ErrConflictingAnnotations reports a mutually exclusive annotation
	// pair, detected during resolution.
	ErrConflictingAnnotations
	// ErrInvalidShape reports a type that is not a plain aggregate of
	// named fields, or a field type outside the supported set.
	ErrInvalidShape
)

// String returns the stable code for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnrecognizedAnnotation:
		return "unrecognized-annotation"
	case ErrConflictingAnnotations:
		return "conflicting-annotations"
	case ErrInvalidShape:
		return "invalid-shape"
	default:
		return "unknown"
	}
}

// SchemaError is a fatal extraction-time error. No partial schema is ever
// returned alongside one, and it surfaces before any generated logic runs.
type SchemaError struct {
	Kind   ErrorKind
	Type   string
	Field  string
	Detail string
}

func (e *SchemaError) Error() string {
	loc := e.Type
	if e.Field != "" {
		loc += "." + e.Field
	}

	return fmt.Sprintf("%s: %s: %s", loc, e.Kind, e.Detail)
}
