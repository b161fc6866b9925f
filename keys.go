package helix

import "strings"

// Namespaced attribute prefixes that are never camel-cased.
var namespacedPrefixes = map[string]bool{
	"aria": true,
	"data": true,
}

// NormalizeKey maps a hyphen-separated property key to its runtime camelCase
// name: "http-equiv" becomes "httpEquiv". Keys with a single segment, keys
// starting with "aria" or "data", and keys that are not identifier-shaped
// pass through unchanged. NormalizeKey is total and idempotent.
func NormalizeKey(key string) string {
	if !identShaped(key) {
		return key
	}
	segments := strings.Split(key, "-")
	if len(segments) == 1 || namespacedPrefixes[segments[0]] {
		return key
	}
	var b strings.Builder
	b.WriteString(segments[0])
	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// NativeKey maps a property key to its native-element attribute name. Beyond
// NormalizeKey it renames "class" to the runtime's class attribute and "for"
// to the label-target attribute. The "style" key is not special here; style
// values are expanded by the property builders.
func NativeKey(key string) string {
	switch key {
	case "class":
		return "className"
	case "for":
		return "htmlFor"
	default:
		return NormalizeKey(key)
	}
}

// identShaped reports whether key looks like a (possibly hyphenated)
// identifier. Anything else is passed through the normalizer unchanged.
func identShaped(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
