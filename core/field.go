package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// FieldType selects which value slot of a Field is in use.
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Float64Type
	BoolType
	NullType
)

// ErrInvalidValue is returned by New when the value is not one of the
// supported primitive kinds (string, integer, float, bool, nil).
var ErrInvalidValue = errors.New("invalid field value")

// Field represents an immutable key-value pair for structured logging.
// Values are encoded into fixed-size slots so that common kinds never
// escape to the heap. Fields are comparable; equality is structural.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
}

// New creates a Field from an arbitrary value. It fails with
// ErrInvalidValue when the value is not one of the supported primitive
// kinds; values are never coerced.
func New(key string, value interface{}) (Field, error) {
	switch v := value.(type) {
	case nil:
		return Null(key), nil
	case string:
		return String(key, v), nil
	case bool:
		return Bool(key, v), nil
	case int:
		return Int64(key, int64(v)), nil
	case int8:
		return Int64(key, int64(v)), nil
	case int16:
		return Int64(key, int64(v)), nil
	case int32:
		return Int64(key, int64(v)), nil
	case int64:
		return Int64(key, v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return Field{}, fmt.Errorf("%w: uint %d overflows int64 for key %q", ErrInvalidValue, v, key)
		}
		return Int64(key, int64(v)), nil
	case uint8:
		return Int64(key, int64(v)), nil
	case uint16:
		return Int64(key, int64(v)), nil
	case uint32:
		return Int64(key, int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Field{}, fmt.Errorf("%w: uint64 %d overflows int64 for key %q", ErrInvalidValue, v, key)
		}
		return Int64(key, int64(v)), nil
	case float32:
		return Float64(key, float64(v)), nil
	case float64:
		return Float64(key, v), nil
	default:
		return Field{}, fmt.Errorf("%w: unsupported kind %T for key %q", ErrInvalidValue, value, key)
	}
}

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// Int creates an integer field
func Int(key string, val int) Field {
	return Field{Key: key, Type: Int64Type, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Int64: val}
}

// Float64 creates a float field
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return Field{Key: key, Type: BoolType, Int64: int64Val}
}

// Null creates a field carrying the null value
func Null(key string) Field {
	return Field{Key: key, Type: NullType}
}

// Err creates a field with key "error" holding the error's message, or
// null when err is nil.
func Err(err error) Field {
	if err == nil {
		return Null("error")
	}
	return String("error", err.Error())
}

// StringValue returns the rendered form of the field's value. Floats use
// a stable decimal representation, booleans render as true/false, and
// the null value renders as the literal "null".
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case NullType:
		return "null"
	default:
		return ""
	}
}

// Resolve collapses duplicate keys in an ordered field sequence: for each
// key only the last occurrence is kept, at the position of that last
// occurrence. The input slice is never modified; when it contains no
// duplicates it is returned as-is.
func Resolve(fields []Field) []Field {
	if len(fields) < 2 {
		return fields
	}

	shadowed := false
	for i := range fields {
		for j := i + 1; j < len(fields); j++ {
			if fields[j].Key == fields[i].Key {
				shadowed = true
				break
			}
		}
		if shadowed {
			break
		}
	}
	if !shadowed {
		return fields
	}

	out := make([]Field, 0, len(fields))
	for i, f := range fields {
		last := true
		for _, later := range fields[i+1:] {
			if later.Key == f.Key {
				last = false
				break
			}
		}
		if last {
			out = append(out, f)
		}
	}
	return out
}
