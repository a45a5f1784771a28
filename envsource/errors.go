package envsource

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a FieldError.
type ErrorKind int

const (
	// ErrorMissing reports a required key absent from the source.
	ErrorMissing ErrorKind = iota
	// ErrorInvalid reports a present value that failed scalar parsing.
	ErrorInvalid
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorMissing:
		return "missing"
	case ErrorInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// FieldError describes one field that failed to load.
type FieldError struct {
	Kind ErrorKind
	// Path holds the field names from the struct root to the failing field.
	Path []string
	// Key is the composed lookup key that was consulted.
	Key string
	// Raw is the source value, set for ErrorInvalid.
	Raw string
	// Detail is the parse failure description, set for ErrorInvalid.
	Detail string
}

// NewMissing builds a FieldError for an absent required key.
func NewMissing(field, key string) *FieldError {
	return &FieldError{Kind: ErrorMissing, Path: []string{field}, Key: key}
}

// NewInvalid builds a FieldError for a value that failed parsing.
func NewInvalid(field, key, raw string, err error) *FieldError {
	return &FieldError{Kind: ErrorInvalid, Path: []string{field}, Key: key, Raw: raw, Detail: err.Error()}
}

// FieldPath returns the dotted path from the struct root to the field.
func (e *FieldError) FieldPath() string {
	return strings.Join(e.Path, ".")
}

func (e *FieldError) Error() string {
	if e.Kind == ErrorInvalid {
		return fmt.Sprintf("%s: invalid value %q for %s: %s", e.FieldPath(), e.Raw, e.Key, e.Detail)
	}

	return fmt.Sprintf("%s: missing required value %s", e.FieldPath(), e.Key)
}

// ErrorList is an ordered collection of field errors. Order follows the
// field declaration order of the loaded struct tree, so reports are
// reproducible across runs.
type ErrorList []*FieldError

func (l ErrorList) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}

	return strings.Join(parts, "; ")
}

// Prefixed returns a copy of the list with name prepended to every path.
// Parents use it when merging errors of a nested struct; flattened structs
// merge their errors unprefixed instead.
func (l ErrorList) Prefixed(name string) ErrorList {
	if len(l) == 0 {
		return nil
	}

	out := make(ErrorList, len(l))
	for i, e := range l {
		c := *e
		c.Path = append([]string{name}, e.Path...)
		out[i] = &c
	}

	return out
}

// Err collapses the list into an error value: nil when empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}

	return l
}
