package generator

import (
	"fmt"
	"go/ast"
	"strings"
)

// Component definition directives, written in the function's doc comment.
const (
	componentDirective = "//helix:component"
	wrapDirective      = "//helix:wrap"
)

// componentInfo holds everything a component definition expands into: the
// docstring, the props/ref binding, the ordered wrap decorators, and the hook
// fingerprint scanned from the body.
type componentInfo struct {
	Name       string
	Doc        []string // docstring comment lines, directives stripped
	Wraps      []string // decorator expressions, in directive order
	PropsParam string
	PropsType  string
	RefParam   string // "" when the definition has no ref binding
	Hooks      []string
	Body       *ast.BlockStmt // rewritten body
}

// isComponent reports whether a function declaration carries the component
// directive.
func isComponent(fn *ast.FuncDecl) bool {
	if fn.Doc == nil {
		return false
	}
	for _, c := range fn.Doc.List {
		if strings.TrimSpace(c.Text) == componentDirective {
			return true
		}
	}
	return false
}

// parseComponent validates a component definition and extracts its parts.
// The binding pattern is required: a props parameter and a single
// *helix.Element result. A missing pattern is a build error, not a panic.
func (r *fileRewriter) parseComponent(fn *ast.FuncDecl) (*componentInfo, error) {
	if fn.Recv != nil {
		return nil, fmt.Errorf("component %s: methods cannot be components", fn.Name.Name)
	}
	params := fn.Type.Params
	if params == nil || len(params.List) == 0 || len(params.List) > 2 {
		return nil, fmt.Errorf("component %s: want (props) or (props, ref) parameters", fn.Name.Name)
	}
	if fn.Type.Results == nil || len(fn.Type.Results.List) != 1 ||
		typeKind(fn.Type.Results.List[0].Type, r.helixName) != kindElement {
		return nil, fmt.Errorf("component %s: must return *%s.Element", fn.Name.Name, r.helixName)
	}
	if len(params.List[0].Names) != 1 {
		return nil, fmt.Errorf("component %s: props parameter must bind one name", fn.Name.Name)
	}

	info := &componentInfo{
		Name:       fn.Name.Name,
		PropsParam: params.List[0].Names[0].Name,
		PropsType:  r.printExpr(params.List[0].Type),
		Body:       fn.Body,
	}
	if len(params.List) == 2 {
		if len(params.List[1].Names) != 1 {
			return nil, fmt.Errorf("component %s: ref parameter must bind one name", fn.Name.Name)
		}
		info.RefParam = params.List[1].Names[0].Name
	}

	for _, c := range fn.Doc.List {
		text := strings.TrimSpace(c.Text)
		switch {
		case text == componentDirective:
		case strings.HasPrefix(text, wrapDirective+" "):
			expr := strings.TrimSpace(strings.TrimPrefix(text, wrapDirective))
			if expr != "" {
				info.Wraps = append(info.Wraps, expr)
			}
		default:
			info.Doc = append(info.Doc, c.Text)
		}
	}

	info.Hooks = scanHooks(fn.Body, r.g.cfg.HookPrefixes)
	return info, nil
}

// scanHooks collects hook invocations from a render body in source order,
// duplicates preserved. A hook call is any call whose callee name starts with
// "Use" or "use" (plus configured extra prefixes); call order and count are
// exactly what the fingerprint must be sensitive to.
func scanHooks(body *ast.BlockStmt, extraPrefixes []string) []string {
	if body == nil {
		return nil
	}
	var hooks []string
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		name := calleeName(call)
		if name == "" {
			return true
		}
		if isHookName(name, extraPrefixes) {
			hooks = append(hooks, name)
		}
		return true
	})
	return hooks
}

func calleeName(call *ast.CallExpr) string {
	switch fun := unparen(call.Fun).(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		// Explicit instantiation: helix.UseState[int](0).
		if sel, ok := unparen(fun.X).(*ast.SelectorExpr); ok {
			return sel.Sel.Name
		}
		if ident, ok := unparen(fun.X).(*ast.Ident); ok {
			return ident.Name
		}
	}
	return ""
}

func isHookName(name string, extraPrefixes []string) bool {
	if strings.HasPrefix(name, "Use") || strings.HasPrefix(name, "use") {
		return len(name) > 3
	}
	for _, prefix := range extraPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Fingerprint joins the hook list into the signature fingerprint string.
func (c *componentInfo) Fingerprint() string {
	return strings.Join(c.Hooks, "\n")
}

// usesName reports whether an identifier is referenced anywhere in the body.
func (c *componentInfo) usesName(name string) bool {
	if name == "_" || c.Body == nil {
		return false
	}
	used := false
	ast.Inspect(c.Body, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == name {
			used = true
			return false
		}
		return !used
	})
	return used
}
