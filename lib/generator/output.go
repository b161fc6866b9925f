package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"os"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"go.uber.org/zap"
)

// renderedDecl is one top-level declaration of the generated file: either a
// declaration copied (with element calls rewritten) from the DSL file, or a
// component definition to expand.
type renderedDecl struct {
	decl      ast.Decl
	component *componentInfo
}

const fileHeader = `// Code generated by helixgen. DO NOT EDIT.
// Source: %s

//go:build !%s

package %s
`

// componentTemplate expands one component definition: the signature handle,
// the public binding, and the constructor that wraps the render function and
// performs the debug-only side effects.
const componentTemplate = `var {{.SigVar}} = {{.Helix}}.CreateSignature()

{{range .Doc}}{{.}}
{{end}}var {{.Name}} = {{.Ctor}}()

func {{.Ctor}}() *{{.Helix}}.Component {
	render := func({{.RawParam}} {{.Helix}}.RawProps, {{.RefName}} any) *{{.Helix}}.Element {
		if {{.Helix}}.Debug() {
			{{.SigVar}}.Check()
		}
		{{.PropsBind}}
{{.Body}}
	}
	wrapped := {{.WrapExpr}}
	if {{.Helix}}.Debug() {
		wrapped.SetDisplayName({{printf "%q" .Name}})
		{{.Helix}}.PopulateSignature({{.SigVar}}, wrapped, {{printf "%q" .Fingerprint}}, nil, nil)
		{{.Helix}}.RegisterForHotReload(wrapped, {{printf "%q" .FQN}})
	}
	return wrapped
}`

var componentTmpl = template.Must(template.New("component").Parse(componentTemplate))

// renderFile assembles the generated source for one DSL file.
func (g *Generator) renderFile(r *fileRewriter, pkgName, importPath, source string, decls []renderedDecl) ([]byte, error) {
	var body bytes.Buffer
	for i, d := range decls {
		if i > 0 {
			body.WriteString("\n\n")
		}
		if d.component != nil {
			text, err := g.renderComponent(r, importPath, pkgName, d.component)
			if err != nil {
				return nil, err
			}
			body.WriteString(text)
			continue
		}
		if err := r.printDecl(&body, d.decl); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, fileHeader, source, dslTag, pkgName)
	if imports := r.usedImports(body.String()); imports != "" {
		out.WriteString("\nimport (\n" + imports + ")\n")
	}
	out.WriteString("\n")
	out.Write(body.Bytes())
	out.WriteString("\n")
	return out.Bytes(), nil
}

// renderComponent expands a component definition through the template.
func (g *Generator) renderComponent(r *fileRewriter, importPath, pkgName string, info *componentInfo) (string, error) {
	rawParam := pickRawName(info)
	refName := info.RefParam
	if refName == "" {
		refName = "_"
	}

	extract := fmt.Sprintf("%s.MustExtractProps[%s](%s)", r.helixName, info.PropsType, rawParam)
	propsBind := fmt.Sprintf("%s := %s", info.PropsParam, extract)
	if info.PropsParam == "_" || !info.usesName(info.PropsParam) {
		propsBind = "_ = " + extract
	}

	wrapExpr := fmt.Sprintf("%s.NewComponent(render)", r.helixName)
	for _, w := range info.Wraps {
		wrapExpr = w + "(" + wrapExpr + ")"
	}

	qualifier := importPath
	if qualifier == "" {
		qualifier = pkgName
	}

	bodyText, err := r.printBody(info.Body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = componentTmpl.Execute(&buf, struct {
		Helix       string
		Name        string
		SigVar      string
		Ctor        string
		Doc         []string
		RawParam    string
		RefName     string
		PropsBind   string
		Body        string
		WrapExpr    string
		Fingerprint string
		FQN         string
	}{
		Helix:       r.helixName,
		Name:        info.Name,
		SigVar:      lowerFirst(info.Name) + "Signature",
		Ctor:        "new" + info.Name,
		Doc:         info.Doc,
		RawParam:    rawParam,
		RefName:     refName,
		PropsBind:   propsBind,
		Body:        bodyText,
		WrapExpr:    wrapExpr,
		Fingerprint: info.Fingerprint(),
		FQN:         qualifier + "." + info.Name,
	})
	return buf.String(), err
}

// printDecl prints a declaration with its doc comment. Doc comments are
// emitted by hand because go/printer drops comments on isolated nodes.
func (r *fileRewriter) printDecl(buf *bytes.Buffer, decl ast.Decl) error {
	var doc *ast.CommentGroup
	switch d := decl.(type) {
	case *ast.FuncDecl:
		doc, d.Doc = d.Doc, nil
	case *ast.GenDecl:
		doc, d.Doc = d.Doc, nil
	}
	if doc != nil {
		for _, c := range doc.List {
			buf.WriteString(c.Text + "\n")
		}
	}
	return printer.Fprint(buf, r.fset, decl)
}

// printBody prints a block statement without its enclosing braces.
func (r *fileRewriter) printBody(body *ast.BlockStmt) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, r.fset, body); err != nil {
		return "", err
	}
	text := strings.TrimSpace(buf.String())
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return strings.Trim(text, "\n"), nil
}

// printExpr renders a single expression.
func (r *fileRewriter) printExpr(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, r.fset, expr); err != nil {
		return ""
	}
	return buf.String()
}

// usedImports renders the import block for the generated file: imports from
// the DSL file that the generated body still references, plus blank and dot
// imports, which are kept unconditionally.
func (r *fileRewriter) usedImports(body string) string {
	var b strings.Builder
	for _, imp := range r.file.Imports {
		name := importName(imp)
		keep := false
		switch {
		case imp.Name != nil && (imp.Name.Name == "_" || imp.Name.Name == "."):
			keep = true
		case name == r.helixName:
			keep = true
		default:
			matched, err := regexp.MatchString(`\b`+regexp.QuoteMeta(name)+`\.`, body)
			keep = err == nil && matched
		}
		if !keep {
			continue
		}
		if imp.Name != nil {
			fmt.Fprintf(&b, "\t%s %s\n", imp.Name.Name, imp.Path.Value)
		} else {
			fmt.Fprintf(&b, "\t%s\n", imp.Path.Value)
		}
	}
	return b.String()
}

// pickRawName chooses the raw-props parameter name, avoiding collisions with
// the definition's own bindings.
func pickRawName(info *componentInfo) string {
	name := "rawProps"
	for info.PropsParam == name || info.RefParam == name || info.usesName(name) {
		name += "_"
	}
	return name
}

// writeFormatted formats generated code and writes it, keeping an
// unformatted copy next to the target when formatting fails so the bug is
// debuggable.
func (g *Generator) writeFormatted(outputFile string, code []byte) error {
	formatted, err := format.Source(code)
	if err != nil {
		if writeErr := os.WriteFile(outputFile+".unformatted", code, 0o644); writeErr == nil {
			g.log.Error("wrote unformatted code for debugging",
				zap.String("file", outputFile+".unformatted"))
		}
		return fmt.Errorf("format source: %w", err)
	}
	return os.WriteFile(outputFile, formatted, 0o644)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
