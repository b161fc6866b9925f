package generator

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/wilkerlucio/helix"
)

// keyTransform maps one logical property entry to zero or more output
// entries. A transform may rename the key and reshape the value (the native
// style expansion does both); it may also divert the entry out of the object
// entirely (the spread marker).
type keyTransform func(key string, value ast.Expr) []outputEntry

type outputEntry struct {
	name  string
	value ast.Expr
}

// buildPropsExpr folds a literal property mapping into a single
// object-construction expression: a helix.RawProps composite, or a
// helix.MergeProps call when the mapping carries a spread entry. Entries are
// emitted in source order.
func (r *fileRewriter) buildPropsExpr(lit *ast.CompositeLit, transform keyTransform) ast.Expr {
	var elts []ast.Expr
	var spread ast.Expr

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if isSpreadKey(kv.Key, r.helixName) {
			spread = kv.Value
			continue
		}
		key, literal := literalKey(kv.Key)
		if !literal {
			// classify routes mappings with computed keys to the dynamic
			// path; the builder never sees one.
			continue
		}
		for _, entry := range transform(key, kv.Value) {
			elts = append(elts, &ast.KeyValueExpr{
				Key:   stringLit(entry.name),
				Value: entry.value,
			})
		}
	}

	obj := &ast.CompositeLit{
		Type: r.helixSel("RawProps"),
		Elts: elts,
	}
	if spread == nil {
		return obj
	}
	return &ast.CallExpr{
		Fun:  r.helixSel("MergeProps"),
		Args: []ast.Expr{obj, spread},
	}
}

// defaultTransform leaves keys and values untouched. Used for component
// (generic) property maps.
func (r *fileRewriter) defaultTransform(key string, value ast.Expr) []outputEntry {
	return []outputEntry{{name: key, value: value}}
}

// nativeTransform applies the runtime attribute renames for native tag
// elements: class and for map to their runtime names, a literal style map
// expands into a nested object with normalized keys, a non-literal style
// value becomes an opaque ConvertStyle call, and every other key goes through
// the normalizer.
func (r *fileRewriter) nativeTransform(key string, value ast.Expr) []outputEntry {
	if key == "style" {
		if lit, ok := unparen(value).(*ast.CompositeLit); ok && r.isPropsType(lit.Type) {
			return []outputEntry{{name: "style", value: r.buildStyleExpr(lit)}}
		}
		return []outputEntry{{
			name: "style",
			value: &ast.CallExpr{
				Fun:  r.helixSel("ConvertStyle"),
				Args: []ast.Expr{value},
			},
		}}
	}
	return []outputEntry{{name: helix.NativeKey(key), value: value}}
}

// buildStyleExpr builds the nested object for a literal style map,
// normalizing nested keys recursively through the key normalizer.
func (r *fileRewriter) buildStyleExpr(lit *ast.CompositeLit) ast.Expr {
	var elts []ast.Expr
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, literal := literalKey(kv.Key)
		if !literal {
			continue
		}
		elts = append(elts, &ast.KeyValueExpr{
			Key:   stringLit(helix.NormalizeKey(key)),
			Value: kv.Value,
		})
	}
	return &ast.CompositeLit{Type: r.helixSel("RawProps"), Elts: elts}
}

// literalKey extracts a string literal property key.
func literalKey(key ast.Expr) (string, bool) {
	lit, ok := unparen(key).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *fileRewriter) helixSel(name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ast.NewIdent(r.helixName), Sel: ast.NewIdent(name)}
}

func stringLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}
