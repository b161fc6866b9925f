package generator

import (
	"go/ast"
	"go/token"
)

// kind is the coarse static type lattice the classifier works over. Anything
// the lattice cannot express stays kindUnknown and flows to the dynamic path,
// which is always correct, just slower.
type kind int

const (
	kindUnknown kind = iota
	kindString
	kindNumber
	kindBool
	kindNil
	kindSlice
	kindElement
)

// packageIndex carries cross-file facts about the package being rewritten:
// declared function result kinds and struct field kinds. It is built once per
// package from every parsed file, DSL or not.
type packageIndex struct {
	results map[string]kind            // func name -> single-result kind
	structs map[string]map[string]kind // struct type name -> field name -> kind
}

func newPackageIndex(files []*ast.File, nameFor func(*ast.File) string) *packageIndex {
	idx := &packageIndex{
		results: make(map[string]kind),
		structs: make(map[string]map[string]kind),
	}
	for _, file := range files {
		helixName := nameFor(file)
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv != nil || d.Type.Results == nil || len(d.Type.Results.List) != 1 {
					continue
				}
				if k := typeKind(d.Type.Results.List[0].Type, helixName); k != kindUnknown {
					idx.results[d.Name.Name] = k
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					st, ok := ts.Type.(*ast.StructType)
					if !ok {
						continue
					}
					fields := make(map[string]kind)
					for _, field := range st.Fields.List {
						k := typeKind(field.Type, helixName)
						if k == kindUnknown {
							continue
						}
						for _, name := range field.Names {
							fields[name.Name] = k
						}
					}
					idx.structs[ts.Name.Name] = fields
				}
			}
		}
	}
	return idx
}

// staticEnv is the per-function inference environment: identifier kinds from
// parameter and var declarations, literal assignments, and same-package
// function results, plus identifier-to-struct-type bindings for field lookup.
type staticEnv struct {
	pkg       *packageIndex
	helixName string
	vars      map[string]kind
	structOf  map[string]string // ident -> named struct type
}

// emptyEnv is used outside function bodies (package-level initializers).
func (r *fileRewriter) emptyEnv() *staticEnv {
	return &staticEnv{
		pkg:       r.pkg,
		helixName: r.helixName,
		vars:      make(map[string]kind),
		structOf:  make(map[string]string),
	}
}

// funcEnv builds the environment for one function declaration by scanning its
// parameters and, in a single pass, its local declarations. The scan is
// flow-insensitive: a name keeps the first kind it can be proven to have.
func (r *fileRewriter) funcEnv(fn *ast.FuncDecl) *staticEnv {
	env := r.emptyEnv()
	env.addFieldList(fn.Type.Params)
	if fn.Body != nil {
		env.scanBody(fn.Body)
	}
	return env
}

func (e *staticEnv) addFieldList(params *ast.FieldList) {
	if params == nil {
		return
	}
	for _, field := range params.List {
		k := typeKind(field.Type, e.helixName)
		typeName := ""
		if ident, ok := field.Type.(*ast.Ident); ok {
			if _, isStruct := e.pkg.structs[ident.Name]; isStruct {
				typeName = ident.Name
			}
		}
		for _, name := range field.Names {
			if k != kindUnknown {
				e.setVar(name.Name, k)
			}
			if typeName != "" {
				e.structOf[name.Name] = typeName
			}
		}
	}
}

func (e *staticEnv) scanBody(body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		switch s := n.(type) {
		case *ast.FuncLit:
			e.addFieldList(s.Type.Params)
		case *ast.DeclStmt:
			gen, ok := s.Decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				return true
			}
			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok || vs.Type == nil {
					continue
				}
				k := typeKind(vs.Type, e.helixName)
				if k == kindUnknown {
					continue
				}
				for _, name := range vs.Names {
					e.setVar(name.Name, k)
				}
			}
		case *ast.AssignStmt:
			e.scanAssign(s)
		}
		return true
	})
}

func (e *staticEnv) scanAssign(assign *ast.AssignStmt) {
	if assign.Tok != token.DEFINE {
		return
	}
	if len(assign.Lhs) == 1 && len(assign.Rhs) == 1 {
		if lhs, ok := assign.Lhs[0].(*ast.Ident); ok {
			if k := e.exprKind(assign.Rhs[0]); k != kindUnknown {
				e.setVar(lhs.Name, k)
			}
		}
		return
	}
	// UseState-shaped binding: the state value takes the initializer's kind.
	if len(assign.Lhs) == 2 && len(assign.Rhs) == 1 {
		call, ok := assign.Rhs[0].(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return
		}
		sel, ok := unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "UseState" {
			return
		}
		if x, ok := sel.X.(*ast.Ident); !ok || x.Name != e.helixName {
			return
		}
		if lhs, ok := assign.Lhs[0].(*ast.Ident); ok {
			if k := e.exprKind(call.Args[0]); k != kindUnknown {
				e.setVar(lhs.Name, k)
			}
		}
	}
}

func (e *staticEnv) setVar(name string, k kind) {
	if name == "_" {
		return
	}
	if _, exists := e.vars[name]; !exists {
		e.vars[name] = k
	}
}

// exprKind infers the kind of an expression from literals, the environment,
// declared results, and a few closed-world builtins. Unknown is always a safe
// answer.
func (e *staticEnv) exprKind(x ast.Expr) kind {
	switch v := unparen(x).(type) {
	case *ast.BasicLit:
		switch v.Kind {
		case token.STRING:
			return kindString
		case token.INT, token.FLOAT, token.CHAR:
			return kindNumber
		}
	case *ast.Ident:
		switch v.Name {
		case "nil":
			return kindNil
		case "true", "false":
			return kindBool
		}
		return e.vars[v.Name]
	case *ast.BinaryExpr:
		if v.Op != token.ADD {
			return kindUnknown
		}
		lk, rk := e.exprKind(v.X), e.exprKind(v.Y)
		if lk == kindString || rk == kindString {
			return kindString
		}
		if lk == kindNumber && rk == kindNumber {
			return kindNumber
		}
	case *ast.SelectorExpr:
		ident, ok := v.X.(*ast.Ident)
		if !ok {
			return kindUnknown
		}
		if typeName, ok := e.structOf[ident.Name]; ok {
			return e.pkg.structs[typeName][v.Sel.Name]
		}
	case *ast.CallExpr:
		return e.callKind(v)
	case *ast.CompositeLit:
		if _, ok := v.Type.(*ast.ArrayType); ok {
			return kindSlice
		}
	case *ast.UnaryExpr:
		if v.Op == token.SUB || v.Op == token.ADD {
			return e.exprKind(v.X)
		}
	}
	return kindUnknown
}

func (e *staticEnv) callKind(call *ast.CallExpr) kind {
	switch fun := unparen(call.Fun).(type) {
	case *ast.Ident:
		switch fun.Name {
		case "len", "cap":
			return kindNumber
		case "string":
			return kindString
		}
		return e.pkg.results[fun.Name]
	case *ast.SelectorExpr:
		x, ok := fun.X.(*ast.Ident)
		if !ok {
			return kindUnknown
		}
		if x.Name == "fmt" && (fun.Sel.Name == "Sprintf" || fun.Sel.Name == "Sprint") {
			return kindString
		}
		if x.Name == e.helixName && (fun.Sel.Name == "E" || fun.Sel.Name == "CreateElement") {
			return kindElement
		}
		if x.Name == "strconv" && fun.Sel.Name == "Itoa" {
			return kindString
		}
	}
	return kindUnknown
}

// typeKind maps a declared type expression to the inference lattice.
func typeKind(typ ast.Expr, helixName string) kind {
	switch t := unparen(typ).(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			return kindString
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64",
			"float32", "float64", "byte", "rune":
			return kindNumber
		case "bool":
			return kindBool
		}
	case *ast.ArrayType:
		return kindSlice
	case *ast.StarExpr:
		if sel, ok := t.X.(*ast.SelectorExpr); ok {
			if x, ok := sel.X.(*ast.Ident); ok && x.Name == helixName && sel.Sel.Name == "Element" {
				return kindElement
			}
		}
	}
	return kindUnknown
}
