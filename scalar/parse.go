package scalar

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ParseBool accepts true/false, yes/no and on/off, case-insensitively.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("only true/false, yes/no, on/off are allowed for bool, got: %s", raw)
	}
}

// ParseInt parses a signed integer with the given strconv bit size.
func ParseInt(raw string, bits int) (int64, error) {
	return strconv.ParseInt(raw, 10, bits)
}

// ParseUint parses an unsigned integer with the given strconv bit size.
func ParseUint(raw string, bits int) (uint64, error) {
	return strconv.ParseUint(raw, 10, bits)
}

// ParseFloat parses a floating point number with the given strconv bit size.
func ParseFloat(raw string, bits int) (float64, error) {
	return strconv.ParseFloat(raw, bits)
}

// ParseDuration parses a Go duration literal such as "30s" or "1h30m".
func ParseDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(raw)
}

// MustDuration parses a duration literal known to be valid. Generated code
// uses it for default literals, which the resolver validates ahead of time.
func MustDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic("scalar: invalid duration literal: " + raw)
	}

	return d
}

// Validate reports whether raw parses as kind k.
func Validate(k Kind, raw string) error {
	var err error

	switch {
	case k == KindString:
	case k == KindBool:
		_, err = ParseBool(raw)
	case k == KindDuration:
		_, err = ParseDuration(raw)
	case k.IsSigned():
		_, err = ParseInt(raw, k.Bits())
	case k.IsUnsigned():
		_, err = ParseUint(raw, k.Bits())
	case k.IsFloat():
		_, err = ParseFloat(raw, k.Bits())
	default:
		err = fmt.Errorf("unsupported scalar kind %s", k)
	}

	return err
}

// Assign parses raw as kind k and stores the result into dst, which must be
// an addressable value whose type matches the kind. Named scalar types are
// handled through the reflect setters.
func Assign(k Kind, dst reflect.Value, raw string) error {
	switch {
	case k == KindString:
		dst.SetString(raw)
	case k == KindBool:
		b, err := ParseBool(raw)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case k == KindDuration:
		d, err := ParseDuration(raw)
		if err != nil {
			return err
		}
		dst.SetInt(int64(d))
	case k.IsSigned():
		n, err := ParseInt(raw, k.Bits())
		if err != nil {
			return err
		}
		dst.SetInt(n)
	case k.IsUnsigned():
		n, err := ParseUint(raw, k.Bits())
		if err != nil {
			return err
		}
		dst.SetUint(n)
	case k.IsFloat():
		f, err := ParseFloat(raw, k.Bits())
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	default:
		return fmt.Errorf("unsupported scalar kind %s", k)
	}

	return nil
}

// Format renders a value of kind k back into its source string form. It is
// the inverse of Assign for every supported kind.
func Format(k Kind, v reflect.Value) string {
	switch {
	case k == KindString:
		return v.String()
	case k == KindBool:
		return strconv.FormatBool(v.Bool())
	case k == KindDuration:
		return time.Duration(v.Int()).String()
	case k.IsSigned():
		return strconv.FormatInt(v.Int(), 10)
	case k.IsUnsigned():
		return strconv.FormatUint(v.Uint(), 10)
	case k.IsFloat():
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}
