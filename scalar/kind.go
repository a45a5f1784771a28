// Package scalar defines the closed set of scalar kinds a configuration
// field may have, plus parsing and formatting for each kind.
//
// The same kind vocabulary is shared by the schema extractor, the resolver,
// the code generator, and the runtime loader.
package scalar

import (
	"reflect"
	"time"
)

// Kind identifies one of the supported scalar field kinds.
type Kind int

const (
	// KindInvalid marks a type outside the supported scalar set.
	KindInvalid Kind = iota

	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDuration
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDuration:
		return "duration"
	default:
		return "invalid"
	}
}

// BaseType returns the Go type expression underlying the kind.
func (k Kind) BaseType() string {
	if k == KindDuration {
		return "time.Duration"
	}

	return k.String()
}

// IsSigned reports whether the kind is a signed integer.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the kind is an unsigned integer.
func (k Kind) IsUnsigned() bool {
	switch k {
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the kind is any integer.
func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// IsFloat reports whether the kind is a floating point number.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the strconv bit size for numeric kinds. Zero means the
// platform-sized int/uint, which is what strconv expects for those.
func (k Kind) Bits() int {
	switch k {
	case KindInt, KindUint:
		return 0
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	default:
		return 0
	}
}

var durationType = reflect.TypeOf(time.Duration(0))

// FromReflectType maps a runtime type onto its scalar kind. Named types
// with a supported underlying kind map through it, so `type Port int`
// is KindInt. Types outside the scalar set map to KindInvalid.
func FromReflectType(rt reflect.Type) Kind {
	if rt == nil {
		return KindInvalid
	}

	if rt == durationType {
		return KindDuration
	}

	switch rt.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}
