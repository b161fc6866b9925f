package helix

import "reflect"

// RenderFunc is the shape of a wrapped render function: it receives the raw
// property container passed at render time and an optional ref (or second
// argument) and produces an element.
type RenderFunc func(raw RawProps, ref any) *Element

// Component is the wrapped render value produced by a component definition.
// Generated code builds one per definition: the render function is threaded
// through the definition's wrap decorators and, in debug builds, tagged with
// a display name and a hook signature.
type Component struct {
	render      RenderFunc
	displayName string
	signature   *Signature
}

// NewComponent wraps a render function into a component value.
func NewComponent(render RenderFunc) *Component {
	return &Component{render: render}
}

// Render invokes the wrapped render function.
func (c *Component) Render(raw RawProps, ref any) *Element {
	return c.render(raw, ref)
}

// SetDisplayName attaches a debug display name. Generated code calls this
// only under the debug flag.
func (c *Component) SetDisplayName(name string) {
	c.displayName = name
}

// DisplayName returns the debug display name, or "" in release builds.
func (c *Component) DisplayName() string {
	return c.displayName
}

// Signature returns the hook signature populated for this component, or nil
// if the component was defined in a release build.
func (c *Component) Signature() *Signature {
	return c.signature
}

// Wrapper is a component decorator. Component definitions list wrappers with
// //helix:wrap directives; the generator applies them left to right, each
// wrapping the result of the previous one.
type Wrapper func(*Component) *Component

// Memo wraps a component so that re-rendering with shallowly-equal props
// returns the previous element without invoking the render function.
func Memo(c *Component) *Component {
	var lastRaw RawProps
	var lastRef any
	var lastEl *Element
	memo := NewComponent(func(raw RawProps, ref any) *Element {
		if lastEl != nil && ref == lastRef && shallowEqual(raw, lastRaw) {
			return lastEl
		}
		lastRaw, lastRef = raw, ref
		lastEl = c.Render(raw, ref)
		return lastEl
	})
	memo.displayName = c.displayName
	memo.signature = c.signature
	return memo
}

func shallowEqual(a, b RawProps) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			if av != bv {
				return false
			}
			continue
		}
		// Uncomparable values (funcs, maps) never count as equal.
		if !reflect.TypeOf(av).Comparable() || !reflect.TypeOf(bv).Comparable() {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}
