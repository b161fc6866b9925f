package generator

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
)

// dynamicDirective marks a call site as intentionally dynamic: the call stays
// on the runtime path and no missed-optimization diagnostic is reported.
const dynamicDirective = "//helix:dynamic"

// fileRewriter rewrites one DSL file. It owns the per-file state the
// classifier and builders need: the import name bound to the helix package,
// the recognized native shorthand packages, and the classification decided
// for every element call site.
type fileRewriter struct {
	g        *Generator
	fset     *token.FileSet
	file     *ast.File
	filename string
	pkg      *packageIndex

	helixName  string
	nativePkgs map[string]string // local import name -> import path

	decisions    map[*ast.CallExpr]Classification
	requests     map[*ast.CallExpr]*elementRequest
	dynamicLines map[int]bool
}

// elementRequest is a recognized element construction call: the expression
// for the element type, whether that type is a native tag, and the argument
// list whose first entry the classifier inspects.
type elementRequest struct {
	typeExpr  ast.Expr
	native    bool
	shorthand bool // recognized via a native shorthand package call
	args      []ast.Expr
	ellipsis  bool
}

func (g *Generator) newFileRewriter(fset *token.FileSet, file *ast.File, filename string, pkg *packageIndex) *fileRewriter {
	r := &fileRewriter{
		g:            g,
		fset:         fset,
		file:         file,
		filename:     filename,
		pkg:          pkg,
		helixName:    "helix",
		nativePkgs:   make(map[string]string),
		decisions:    make(map[*ast.CallExpr]Classification),
		requests:     make(map[*ast.CallExpr]*elementRequest),
		dynamicLines: make(map[int]bool),
	}
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := importName(imp)
		if path == helixImportPath {
			r.helixName = name
		}
		for _, native := range g.cfg.NativePackages {
			if path == native {
				r.nativePkgs[name] = path
			}
		}
	}
	for _, group := range file.Comments {
		for _, c := range group.List {
			if strings.TrimSpace(c.Text) == dynamicDirective {
				r.dynamicLines[fset.Position(c.Pos()).Line] = true
			}
		}
	}
	return r
}

// importName resolves the local name an import is bound to.
func importName(imp *ast.ImportSpec) string {
	if imp.Name != nil {
		return imp.Name.Name
	}
	path, _ := strconv.Unquote(imp.Path.Value)
	name := path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// gopkg.in style versioned paths: yaml.v3 -> yaml.
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// elementRequest recognizes helix.E calls and native shorthand calls.
func (r *fileRewriter) elementRequest(call *ast.CallExpr) (*elementRequest, bool) {
	sel, ok := unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return nil, false
	}
	if x.Name == r.helixName && sel.Sel.Name == "E" {
		if len(call.Args) == 0 {
			return nil, false
		}
		typ := call.Args[0]
		_, isTag := stringLitValue(typ)
		return &elementRequest{
			typeExpr: typ,
			native:   isTag,
			args:     call.Args[1:],
			ellipsis: call.Ellipsis.IsValid(),
		}, true
	}
	if _, ok := r.nativePkgs[x.Name]; ok {
		return &elementRequest{
			typeExpr:  stringLit(strings.ToLower(sel.Sel.Name)),
			native:    true,
			shorthand: true,
			args:      call.Args,
			ellipsis:  call.Ellipsis.IsValid(),
		}, true
	}
	return nil, false
}

// analyze walks a subtree deciding a classification for every element call.
// Calls under a frozen (dynamic) call stay dynamic so the fallback receives
// the original argument list unmodified.
func (r *fileRewriter) analyze(root ast.Node, env *staticEnv, frozen bool) {
	if root == nil {
		return
	}
	ast.Inspect(root, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		req, isReq := r.elementRequest(call)
		if !isReq {
			return true
		}
		if frozen || r.markedDynamic(call) {
			r.analyzeArgs(req, env, true)
			return false
		}
		cls := r.classify(req, env)
		if cls == Unknown {
			r.diagnose(call)
			r.analyzeArgs(req, env, true)
			return false
		}
		r.decisions[call] = cls
		r.requests[call] = req
		r.analyzeArgs(req, env, false)
		return false
	})
}

func (r *fileRewriter) analyzeArgs(req *elementRequest, env *staticEnv, frozen bool) {
	r.analyze(req.typeExpr, env, frozen)
	for _, arg := range req.args {
		r.analyze(arg, env, frozen)
	}
}

// rewrite replaces every decided call with its direct construction. The walk
// is post-order so nested element calls are rewritten before their parents.
func (r *fileRewriter) rewrite(root ast.Node) {
	if root == nil {
		return
	}
	astutil.Apply(root, nil, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		cls, decided := r.decisions[call]
		if !decided {
			return true
		}
		c.Replace(r.emit(call, r.requests[call], cls))
		return true
	})
}

// emit maps a classification to its construction strategy. Every state
// produces exactly one shape; Unknown never reaches here.
func (r *fileRewriter) emit(call *ast.CallExpr, req *elementRequest, cls Classification) ast.Expr {
	if !req.shorthand {
		// Re-read from the call: nested rewrites may have replaced
		// argument nodes since analysis.
		req.typeExpr = call.Args[0]
		req.args = call.Args[1:]
	}
	args := []ast.Expr{req.typeExpr}
	switch cls {
	case NativePropsMap:
		lit := unparen(req.args[0]).(*ast.CompositeLit)
		args = append(args, r.buildPropsExpr(lit, r.nativeTransform))
		args = append(args, req.args[1:]...)
	case GenericPropsMap:
		lit := unparen(req.args[0]).(*ast.CompositeLit)
		args = append(args, r.buildPropsExpr(lit, r.defaultTransform))
		args = append(args, req.args[1:]...)
	case NilChild:
		args = append(args, ast.NewIdent("nil"))
		if len(req.args) > 0 {
			args = append(args, req.args[1:]...)
		}
	default:
		// PrimitiveChild, InferredPrimitive, InferredElement: no props,
		// every argument is a child.
		args = append(args, ast.NewIdent("nil"))
		args = append(args, req.args...)
	}
	return &ast.CallExpr{
		Fun:  r.helixSel("CreateElement"),
		Args: args,
	}
}

func (r *fileRewriter) markedDynamic(call *ast.CallExpr) bool {
	line := r.fset.Position(call.Pos()).Line
	return r.dynamicLines[line] || r.dynamicLines[line-1]
}

// diagnose reports a missed optimization: the call stays correct through the
// dynamic path, but the property shape could not be proven at build time.
func (r *fileRewriter) diagnose(call *ast.CallExpr) {
	r.g.unknowns++
	if r.g.cfg.Diagnostics != DiagnosticsAll {
		return
	}
	pos := r.fset.Position(call.Pos())
	r.g.log.Warn("dynamic element construction",
		zap.String("file", r.filename),
		zap.Int("line", pos.Line),
		zap.String("expr", r.preview(call)),
	)
}

// preview renders a truncated view of the call for diagnostics.
func (r *fileRewriter) preview(node ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, r.fset, node); err != nil {
		return "<unprintable>"
	}
	text := buf.String()
	if fields := strings.Fields(text); len(fields) > 0 {
		text = strings.Join(fields, " ")
	}
	const max = 60
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}

func stringLitValue(x ast.Expr) (string, bool) {
	lit, ok := unparen(x).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}
