package logger

import "github.com/redlog-dev/redlog/core"

// Field helper re-exports for convenience

// Field is re-exported so callers only need to import this package
type Field = core.Field

// NewField creates a field from an arbitrary value, failing with
// core.ErrInvalidValue when the value is not one of the supported
// primitive kinds.
func NewField(key string, value interface{}) (Field, error) {
	return core.New(key, value)
}

// String creates a string field
func String(key, val string) Field {
	return core.String(key, val)
}

// Int creates an integer field
func Int(key string, val int) Field {
	return core.Int(key, val)
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return core.Int64(key, val)
}

// Float64 creates a float field
func Float64(key string, val float64) Field {
	return core.Float64(key, val)
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	return core.Bool(key, val)
}

// Null creates a field carrying the null value
func Null(key string) Field {
	return core.Null(key)
}

// ErrField creates an "error" field from an error value
func ErrField(err error) Field {
	return core.Err(err)
}
