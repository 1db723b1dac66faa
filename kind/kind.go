// Package kind classifies arbitrary runtime values into the small set of
// shapes the tree engine cares about: orderable scalars (strings, numbers
// and dates), keyed objects, sequences, and everything else.
//
// The engine consumes the classifier as an injected function, so tests can
// substitute their own classification without touching this package.
package kind

import (
	"reflect"
	"strings"
	"time"
)

// Kind is the classified shape of a value.
type Kind int

const (
	// Invalid is the kind of nil and nil pointers.
	Invalid Kind = iota
	String
	Number
	Date
	Object
	Array
	Func
	Other
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case String:
		return "string"
	case Number:
		return "number"
	case Date:
		return "date"
	case Object:
		return "object"
	case Array:
		return "array"
	case Func:
		return "func"
	case Other:
		return "other"
	default:
		return "<invalid kind.Kind>"
	}
}

// Of classifies v:
//   - nil and nil pointers are Invalid
//   - strings are String
//   - every integer and float type is Number
//   - time.Time is Date
//   - structs, pointers to structs, and string-keyed maps are Object
//   - slices and arrays are Array
//   - funcs are Func
//   - everything else (channels, bools, complex numbers, ...) is Other
func Of(v any) Kind {
	if v == nil {
		return Invalid
	}

	if _, ok := v.(time.Time); ok {
		// time.Time is a struct, so this must be checked
		// before the generic struct case below
		return Date
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Struct:
		return Object
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Object
		}
		return Other
	case reflect.Pointer:
		if rv.IsNil() {
			return Invalid
		}
		if rv.Elem().Kind() == reflect.Struct {
			if _, ok := rv.Elem().Interface().(time.Time); ok {
				return Date
			}
			return Object
		}
		return Other
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Func:
		return Func
	default:
		return Other
	}
}

// Scalar reports whether k is a kind that can be used as a key on its own.
func Scalar(k Kind) bool {
	return k == String || k == Number || k == Date
}

// NormalizeKey collapses every numeric type to float64 so that keys of
// different numeric Go types share one ordering domain. Strings, times and
// everything else pass through unchanged.
func NormalizeKey(v any) any {
	if t, ok := v.(*time.Time); ok && t != nil {
		return *t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return v
	}
}

// Field reads the named entry from an Object-shaped value: a map entry for
// string-keyed maps, an exported field for structs and pointers to structs.
// Struct fields match exactly first, then case-insensitively, so the
// conventional "id" key field finds a Go "ID" field.
func Field(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		fv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Struct:
		fv := rv.FieldByName(name)
		if !fv.IsValid() {
			fv = rv.FieldByNameFunc(func(f string) bool {
				return strings.EqualFold(f, name)
			})
		}
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	default:
		return nil, false
	}
}

// Fields enumerates the named entries of an Object-shaped value.
// The result is empty (not nil) for objects with no entries, and nil for
// values that are not Object-shaped.
func Fields(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	case reflect.Struct:
		rt := rv.Type()
		out := make(map[string]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			out[rt.Field(i).Name] = rv.Field(i).Interface()
		}
		return out
	default:
		return nil
	}
}

// Elems expands an Array-shaped value into a []any.
// Values that are not Array-shaped yield nil.
func Elems(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return nil
	}
}
