package helix

// Runtime is the host-runtime seam for stateful hooks. Installing a runtime
// is the host's responsibility; the helix core only declares the hook call
// surface so render bodies can be written (and fingerprinted) against it.
type Runtime interface {
	UseState(initial any) (any, func(any))
	UseEffect(setup func() func(), deps []any)
	UseMemo(compute func() any, deps []any) any
	UseRef(initial any) *Ref
	UseContext(key any) any
	UseCallback(fn any, deps []any) any
	UseReducer(reducer func(state, action any) any, initial any) (any, func(any))
}

// Ref is a mutable box whose identity is stable across renders.
type Ref struct {
	Current any
}

var hostRuntime Runtime

// SetRuntime installs the host runtime that backs hook calls. Pass nil to
// uninstall (hooks will panic with ErrNoRuntime).
func SetRuntime(r Runtime) {
	hostRuntime = r
}

func activeRuntime() Runtime {
	if hostRuntime == nil {
		panic(ErrNoRuntime)
	}
	return hostRuntime
}

// UseState returns a stateful value and a setter for it.
func UseState[T any](initial T) (T, func(T)) {
	v, set := activeRuntime().UseState(initial)
	return v.(T), func(next T) { set(next) }
}

// UseEffect runs setup after render when deps change; the returned function,
// if any, is the cleanup.
func UseEffect(setup func() func(), deps ...any) {
	activeRuntime().UseEffect(setup, deps)
}

// UseMemo memoizes a computed value across renders with the same deps.
func UseMemo[T any](compute func() T, deps ...any) T {
	v := activeRuntime().UseMemo(func() any { return compute() }, deps)
	return v.(T)
}

// UseRef returns a stable mutable box initialized once.
func UseRef(initial any) *Ref {
	return activeRuntime().UseRef(initial)
}

// UseContext reads the nearest provided value for key.
func UseContext(key any) any {
	return activeRuntime().UseContext(key)
}

// UseCallback memoizes a function value across renders with the same deps.
func UseCallback(fn any, deps ...any) any {
	return activeRuntime().UseCallback(fn, deps)
}

// UseReducer returns reducer-managed state and a dispatch function.
func UseReducer(reducer func(state, action any) any, initial any) (any, func(any)) {
	return activeRuntime().UseReducer(reducer, initial)
}
