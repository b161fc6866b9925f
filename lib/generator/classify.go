package generator

import (
	"go/ast"
	"go/token"
)

// Classification is the static decision for the first argument of an element
// construction request. It is computed once per call site from the first
// argument only and never re-evaluated at runtime.
type Classification int

const (
	// Unknown means no static proof was found. This is the only
	// classification whose call site stays on the dynamic path.
	Unknown Classification = iota
	// NativePropsMap is a literal property mapping on a native tag element.
	NativePropsMap
	// GenericPropsMap is a literal property mapping on a component element.
	GenericPropsMap
	// PrimitiveChild is a literal string, number, or bool first argument.
	PrimitiveChild
	// NilChild is a literal nil first argument.
	NilChild
	// InferredPrimitive means inference proved the argument is a string,
	// number, bool, nil, slice, or element value.
	InferredPrimitive
	// InferredElement means the argument is a nested element-construction
	// call, recognized syntactically regardless of inference success.
	InferredElement
)

func (c Classification) String() string {
	switch c {
	case NativePropsMap:
		return "NativePropsMap"
	case GenericPropsMap:
		return "GenericPropsMap"
	case PrimitiveChild:
		return "PrimitiveChild"
	case NilChild:
		return "NilChild"
	case InferredPrimitive:
		return "InferredPrimitive"
	case InferredElement:
		return "InferredElement"
	default:
		return "Unknown"
	}
}

// classify decides the construction strategy for an element request. native
// reports whether the enclosing element type is a native tag (which selects
// the key transform for literal property maps).
func (r *fileRewriter) classify(req *elementRequest, env *staticEnv) Classification {
	if len(req.args) == 0 {
		return NilChild
	}
	if req.ellipsis {
		// A spread argument list has no statically known first argument.
		return Unknown
	}

	first := unparen(req.args[0])
	switch e := first.(type) {
	case *ast.Ident:
		switch e.Name {
		case "nil":
			return NilChild
		case "true", "false":
			return PrimitiveChild
		}
	case *ast.BasicLit:
		switch e.Kind {
		case token.STRING, token.INT, token.FLOAT, token.CHAR:
			return PrimitiveChild
		}
	case *ast.CompositeLit:
		if r.isPropsType(e.Type) {
			if spreadCount(e, r.helixName) > 1 {
				// Malformed mapping: more than one spread entry. Leave it
				// to the dynamic path rather than guessing a merge order.
				return Unknown
			}
			if !r.staticKeys(e, req.native) {
				// A computed key is only resolvable at runtime: it may
				// normalize differently or evaluate to the spread marker.
				return Unknown
			}
			if req.native {
				return NativePropsMap
			}
			return GenericPropsMap
		}
	case *ast.CallExpr:
		if r.isElementCall(e) {
			return InferredElement
		}
	}

	switch env.exprKind(first) {
	case kindString, kindNumber, kindBool, kindNil, kindSlice:
		return InferredPrimitive
	case kindElement:
		return InferredPrimitive
	}
	return Unknown
}

// isPropsType reports whether a composite literal type is helix.Props.
func (r *fileRewriter) isPropsType(typ ast.Expr) bool {
	sel, ok := typ.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	x, ok := sel.X.(*ast.Ident)
	return ok && x.Name == r.helixName && sel.Sel.Name == "Props"
}

// isElementCall reports whether a call statically resolves to element
// construction: helix.E, helix.CreateElement, a native shorthand package, or
// a same-package function declared to return *helix.Element.
func (r *fileRewriter) isElementCall(call *ast.CallExpr) bool {
	switch fun := unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		x, ok := fun.X.(*ast.Ident)
		if !ok {
			return false
		}
		if x.Name == r.helixName && (fun.Sel.Name == "E" || fun.Sel.Name == "CreateElement") {
			return true
		}
		if _, ok := r.nativePkgs[x.Name]; ok {
			return true
		}
	case *ast.Ident:
		return r.pkg.results[fun.Name] == kindElement
	}
	return false
}

// staticKeys reports whether every key in a literal property mapping is a
// string literal or the spread marker, so the builder's output matches what
// the runtime fallback would construct for the same mapping. For native
// mappings the check covers a literal style value's keys too.
func (r *fileRewriter) staticKeys(lit *ast.CompositeLit, native bool) bool {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return false
		}
		if isSpreadKey(kv.Key, r.helixName) {
			continue
		}
		key, literal := literalKey(kv.Key)
		if !literal {
			return false
		}
		if native && key == "style" {
			if style, ok := unparen(kv.Value).(*ast.CompositeLit); ok && r.isPropsType(style.Type) && !r.literalStyleKeys(style) {
				return false
			}
		}
	}
	return true
}

// literalStyleKeys reports whether every key of a literal style mapping is a
// string literal. The style normalizer has no spread handling, so the marker
// gets no exemption here.
func (r *fileRewriter) literalStyleKeys(lit *ast.CompositeLit) bool {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return false
		}
		if _, literal := literalKey(kv.Key); !literal {
			return false
		}
	}
	return true
}

// spreadCount counts spread entries in a literal property mapping.
func spreadCount(lit *ast.CompositeLit, helixName string) int {
	n := 0
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if isSpreadKey(kv.Key, helixName) {
			n++
		}
	}
	return n
}

// isSpreadKey recognizes the reserved spread marker, written either as
// helix.Spread or as its literal value "&".
func isSpreadKey(key ast.Expr, helixName string) bool {
	switch k := unparen(key).(type) {
	case *ast.SelectorExpr:
		x, ok := k.X.(*ast.Ident)
		return ok && x.Name == helixName && k.Sel.Name == "Spread"
	case *ast.BasicLit:
		return k.Kind == token.STRING && k.Value == `"&"`
	}
	return false
}

func unparen(x ast.Expr) ast.Expr {
	for {
		p, ok := x.(*ast.ParenExpr)
		if !ok {
			return x
		}
		x = p.X
	}
}
