// Package helix provides a React-style element and component layer for Go,
// paired with a build-time optimizer (helixgen) that turns dynamic element
// construction into direct, statically-shaped code.
//
// # Core Concepts
//
// Elements are constructed from a type (a native tag string or a component
// reference), an optional property mapping, and child nodes:
//
//	helix.E("div", helix.Props{"class": "panel"},
//	    helix.E("span", nil, title),
//	)
//
// E is the dynamic construction path: it classifies its first argument at
// runtime (property map, nil, primitive, or child value) and builds the
// element accordingly. It is total - every argument list produces an element.
//
// # The Generator
//
// Running 'helixgen generate' rewrites component source files (build tag
// helixdsl) into *_helix.go files where every E call whose property shape can
// be proven statically becomes a direct CreateElement call with the property
// object already normalized:
//
//	helix.CreateElement("div", helix.RawProps{"className": "panel"},
//	    helix.CreateElement("span", nil, title),
//	)
//
// Call sites the generator cannot prove are left on the dynamic path and
// reported as missed optimizations during the build. The generated and
// dynamic paths are observationally identical; the generator is purely an
// optimization.
//
// Property keys are normalized to the runtime's camelCase names: "http-equiv"
// becomes "httpEquiv", while namespaced "aria-*" and "data-*" keys pass
// through unchanged. Native elements additionally map "class" to "className",
// "for" to "htmlFor", and expand literal "style" maps into nested objects.
//
// # Components
//
// A component is a render function marked with a //helix:component directive:
//
//	// Counter shows a labelled click counter.
//	//
//	//helix:component
//	func Counter(props CounterProps) *helix.Element {
//	    count, setCount := helix.UseState(0)
//	    ...
//	}
//
// The generator wraps the render function so it receives a normalized
// property view (ExtractProps), threads it through any //helix:wrap
// decorators in order, and - in debug builds only - tags it with a signature
// derived from the hooks it calls. The signature fingerprint preserves hook
// call order and count, which is exactly the identity a hot-reload host needs
// to decide whether component state can survive a redefinition.
//
// # Hot Reload
//
// Debug builds register every component under its fully-qualified name in a
// process-wide registry. The registry is append/overwrite-only and populated
// during package initialization; RegistrySnapshot exposes it in encoded form
// for a dev-server transport to consume. Release builds (HELIX_DEBUG=0) skip
// signature population and registration entirely.
//
// # Rendering
//
// The package includes a server-side HTML renderer: Templ adapts an element
// tree to a templ.Component, and Render writes it to any io.Writer. The host
// UI runtime proper (reconciliation, event dispatch) is out of scope; hooks
// delegate to a pluggable Runtime installed with SetRuntime.
package helix
