package helix

import "reflect"

// Spread is the reserved property key that merges an arbitrary value into the
// property object at construction time. At most one spread entry may appear
// in a mapping; its value is never inspected statically.
//
//	helix.E("input", helix.Props{"type": "text", helix.Spread: extra})
const Spread = "&"

// Props is the literal property mapping written at element construction
// sites. Keys use source-side names ("class", "on-click", "aria-label") and
// are normalized to runtime names during construction.
type Props map[string]any

// RawProps is the runtime property container: keys are already normalized to
// the names the host runtime expects ("className", "onClick", "aria-label").
// Generated code builds RawProps directly.
type RawProps map[string]any

// Element is the runtime element value produced by CreateElement. Type is a
// native tag string or a component reference; Children holds child nodes in
// order. Elements are immutable after construction.
type Element struct {
	Type     any
	Props    RawProps
	Children []any
}

// CreateElement constructs an element directly from an already-normalized
// property object. This is the single runtime constructor every construction
// path - generated or dynamic - bottoms out in.
func CreateElement(typ any, props RawProps, children ...any) *Element {
	return &Element{Type: typ, Props: props, Children: children}
}

// E is the dynamic-dispatch construction path. It classifies its first
// argument using actual runtime values - a Props literal becomes the property
// object (normalized with the native transform when typ is a tag string),
// nil means no properties, and any other value is treated as the first child.
// E never fails; it guarantees every element request is constructible even
// when helixgen could not prove a shape at build time.
func E(typ any, args ...any) *Element {
	if len(args) == 0 {
		return CreateElement(typ, nil)
	}
	switch first := args[0].(type) {
	case nil:
		return CreateElement(typ, nil, args[1:]...)
	case Props:
		_, native := typ.(string)
		return CreateElement(typ, buildProps(first, native), args[1:]...)
	default:
		_ = first
		return CreateElement(typ, nil, args...)
	}
}

// buildProps performs the runtime equivalent of the generator's property
// build: key normalization, native special cases, style expansion, and the
// spread merge.
func buildProps(mapping Props, native bool) RawProps {
	out := make(RawProps, len(mapping))
	var spread any
	hasSpread := false
	for key, value := range mapping {
		if key == Spread {
			spread = value
			hasSpread = true
			continue
		}
		if !native {
			out[key] = value
			continue
		}
		if key == "style" {
			out["style"] = ConvertStyle(value)
			continue
		}
		out[NativeKey(key)] = value
	}
	if hasSpread {
		return MergeProps(out, spread)
	}
	return out
}

// MergeProps merges an arbitrary value into a property object. Maps are
// merged key-by-key (later keys win); structs contribute their exported
// fields under lower-cased names; nil merges nothing.
func MergeProps(base RawProps, extra any) RawProps {
	out := make(RawProps, len(base))
	for k, v := range base {
		out[k] = v
	}
	switch m := extra.(type) {
	case nil:
	case RawProps:
		for k, v := range m {
			out[k] = v
		}
	case Props:
		for k, v := range m {
			out[k] = v
		}
	case map[string]any:
		for k, v := range m {
			out[k] = v
		}
	default:
		mergeStruct(out, extra)
	}
	return out
}

// ConvertStyle converts a style value to its runtime shape. Literal maps are
// normalized key-by-key; strings (CSS text) and anything else pass through
// for the host runtime to interpret.
func ConvertStyle(v any) any {
	switch m := v.(type) {
	case Props:
		out := make(RawProps, len(m))
		for k, val := range m {
			out[NormalizeKey(k)] = val
		}
		return out
	case RawProps:
		out := make(RawProps, len(m))
		for k, val := range m {
			out[NormalizeKey(k)] = val
		}
		return out
	default:
		return v
	}
}

// mergeStruct copies exported struct fields into the property object. Field
// names are lower-cased unless a helix tag overrides them, matching
// ExtractProps.
func mergeStruct(out RawProps, v any) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _, exclude := parseFieldTag(field)
		if exclude {
			continue
		}
		out[key] = rv.Field(i).Interface()
	}
}
