// Package generator implements the helixgen build step: it parses component
// source files (build tag helixdsl), statically classifies every element
// construction call, and emits *_helix.go files containing direct
// construction code where the property shape is provable and the unmodified
// dynamic call where it is not.
package generator

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/mod/modfile"
)

const (
	helixImportPath = "github.com/wilkerlucio/helix"
	dslTag          = "helixdsl"
	generatedSuffix = "_helix.go"
)

// Options configures the generator.
type Options struct {
	DryRun bool
	Logger *zap.Logger
	Config *Config
}

// Generator generates helix code.
type Generator struct {
	opts Options
	fset *token.FileSet
	log  *zap.Logger
	cfg  *Config

	unknowns int
}

// New creates a new generator.
func New(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = Default()
	}
	return &Generator{
		opts: opts,
		fset: token.NewFileSet(),
		log:  log,
		cfg:  cfg,
	}
}

// Generate generates code for the given package patterns.
func (g *Generator) Generate(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	g.unknowns = 0
	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}
	if g.cfg.Diagnostics == DiagnosticsSummary && g.unknowns > 0 {
		g.log.Warn("dynamic element construction", zap.Int("call_sites", g.unknowns))
	}
	return nil
}

// Clean removes generated files for the given package patterns.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}
	return nil
}

// findPackages resolves package patterns to directory paths.
func (g *Generator) findPackages(patterns []string) ([]string, error) {
	var packages []string

	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			packages = append(packages, pattern)
			continue
		}
		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return nil
			}
			base := filepath.Base(path)
			if strings.HasPrefix(base, ".") && path != root {
				return filepath.SkipDir
			}
			for _, excluded := range g.cfg.Exclude {
				if base == excluded {
					return filepath.SkipDir
				}
			}

			entries, err := os.ReadDir(path)
			if err != nil {
				return nil
			}
			for _, entry := range entries {
				name := entry.Name()
				if !entry.IsDir() && strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
					packages = append(packages, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return packages, nil
}

// generatePackage generates code for a single package directory.
func (g *Generator) generatePackage(pkgPath string) error {
	pkgs, err := parser.ParseDir(g.fset, pkgPath, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, generatedSuffix)
	}, parser.ParseComments)
	if err != nil {
		return err
	}

	importPath := resolveImportPath(pkgPath)

	for pkgName, pkg := range pkgs {
		var files []*ast.File
		names := make(map[*ast.File]string)
		for filename, file := range pkg.Files {
			files = append(files, file)
			names[file] = filename
		}
		idx := newPackageIndex(files, helixNameFor)

		for _, file := range files {
			if !isDSLFile(file) {
				continue
			}
			if err := g.generateFile(pkgPath, pkgName, importPath, names[file], file, idx); err != nil {
				return err
			}
		}
	}

	return nil
}

// generateFile rewrites one DSL file and writes its generated sibling.
func (g *Generator) generateFile(pkgPath, pkgName, importPath, filename string, file *ast.File, idx *packageIndex) error {
	r := g.newFileRewriter(g.fset, file, filename, idx)

	var decls []renderedDecl
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			env := r.funcEnv(d)
			r.analyze(d.Body, env, false)
			r.rewrite(d.Body)
			if !isComponent(d) {
				decls = append(decls, renderedDecl{decl: d})
				continue
			}
			info, err := r.parseComponent(d)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			decls = append(decls, renderedDecl{component: info})
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}
			env := r.emptyEnv()
			r.analyze(d, env, false)
			r.rewrite(d)
			decls = append(decls, renderedDecl{decl: d})
		default:
			decls = append(decls, renderedDecl{decl: decl})
		}
	}

	baseName := strings.TrimSuffix(filepath.Base(filename), ".go")
	outputFile := filepath.Join(pkgPath, baseName+generatedSuffix)
	g.log.Info("generating", zap.String("file", outputFile))
	if g.opts.DryRun {
		return nil
	}

	code, err := g.renderFile(r, pkgName, importPath, filepath.Base(filename), decls)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return g.writeFormatted(outputFile, code)
}

// cleanPackage removes generated files from a package directory.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), generatedSuffix) {
			continue
		}
		path := filepath.Join(pkgPath, entry.Name())
		g.log.Info("removing", zap.String("file", path))
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// isDSLFile reports whether a file's build constraint selects the DSL tag.
func isDSLFile(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				continue
			}
			if expr.Eval(func(tag string) bool { return tag == dslTag }) {
				return true
			}
		}
	}
	return false
}

// helixNameFor resolves the local import name bound to the helix package in
// a file, defaulting to "helix".
func helixNameFor(file *ast.File) string {
	for _, imp := range file.Imports {
		if imp.Path.Value == `"`+helixImportPath+`"` {
			return importName(imp)
		}
	}
	return "helix"
}

// resolveImportPath derives a package's import path from the enclosing
// go.mod, for fully-qualified hot-reload names. Empty when no module is
// found; the emitter falls back to the package name.
func resolveImportPath(pkgPath string) string {
	dir, err := filepath.Abs(pkgPath)
	if err != nil {
		return ""
	}
	for d := dir; ; {
		data, err := os.ReadFile(filepath.Join(d, "go.mod"))
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return ""
			}
			rel, err := filepath.Rel(d, dir)
			if err != nil || rel == "." {
				return modPath
			}
			return modPath + "/" + filepath.ToSlash(rel)
		}
		parent := filepath.Dir(d)
		if parent == d {
			return ""
		}
		d = parent
	}
}
