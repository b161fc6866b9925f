package helix

import (
	"fmt"
	"reflect"
	"strings"
)

// ExtractProps converts the raw property container passed at render time into
// the typed view a render body expects. dst must be a pointer to a struct.
//
// Field keys default to the lower-cased field name and can be overridden with
// a helix tag:
//
//	type Props struct {
//	    Label string `helix:"label"`
//	    Count int
//	    Theme *Theme `helix:"-"` // never populated from raw props
//	}
//
// Numeric raw values convert across int/uint/float widths; nested RawProps
// values populate nested structs recursively. Missing keys leave the zero
// value in place.
func ExtractProps(raw RawProps, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: destination must be a non-nil struct pointer, got %T", ErrBadProps, dst)
	}
	return extractStruct(raw, rv.Elem())
}

// MustExtractProps is the generated-code form of ExtractProps. A failure here
// is a programming error in the definition, not a recoverable condition.
func MustExtractProps[P any](raw RawProps) P {
	var p P
	if err := ExtractProps(raw, &p); err != nil {
		panic(err)
	}
	return p
}

func extractStruct(raw RawProps, sv reflect.Value) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _, exclude := parseFieldTag(field)
		if exclude {
			continue
		}
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if err := assignField(sv.Field(i), value); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrBadProps, field.Name, err)
		}
	}
	return nil
}

func assignField(fv reflect.Value, value any) error {
	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(fv.Type()) {
		fv.Set(vv)
		return nil
	}

	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := toInt64(value); ok {
			fv.SetInt(n)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := toInt64(value); ok && n >= 0 {
			fv.SetUint(uint64(n))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat64(value); ok {
			fv.SetFloat(f)
			return nil
		}
	case reflect.Struct:
		if m, ok := value.(RawProps); ok {
			return extractStruct(m, fv)
		}
		if m, ok := value.(map[string]any); ok {
			return extractStruct(RawProps(m), fv)
		}
	case reflect.Pointer:
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return assignField(fv.Elem(), value)
	}

	if vv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(vv.Convert(fv.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T", value)
}

// parseFieldTag reads the helix struct tag. The key defaults to the
// lower-cased field name; "-" excludes the field.
func parseFieldTag(field reflect.StructField) (key string, omitEmpty bool, exclude bool) {
	tag := field.Tag.Get("helix")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	key = parts[0]
	if key == "" {
		key = strings.ToLower(field.Name)
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return key, omitEmpty, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		if i, ok := toInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}
