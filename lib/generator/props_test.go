package generator

import (
	"go/ast"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const propsSrc = `package demo

import "github.com/wilkerlucio/helix"

func native(handler func(), extra helix.RawProps, css string, key string) *helix.Element {
	return helix.E("div", helix.Props{"class": "card", "for": "name", "http-equiv": "refresh", "aria-label": "close", "on-click": handler})
}

func styled() *helix.Element {
	return helix.E("div", helix.Props{"style": helix.Props{"background-color": "red", "fontSize": "12px"}})
}

func dynamicStyle(css string) *helix.Element {
	return helix.E("div", helix.Props{"style": css})
}

func spread(extra helix.RawProps) *helix.Element {
	return helix.E("input", helix.Props{"type": "text", helix.Spread: extra})
}

func generic(handler func()) *helix.Element {
	return helix.E(Card, helix.Props{"class": "card", "on-click": handler})
}
`

// propsLiteral extracts the helix.Props composite literal from a function's
// element call.
func propsLiteral(t *testing.T, r *fileRewriter, file *ast.File, fn string) *ast.CompositeLit {
	t.Helper()
	decl := findFunc(t, file, fn)
	_, req := firstElementCall(t, r, decl)
	lit, ok := unparen(req.args[0]).(*ast.CompositeLit)
	if !ok {
		t.Fatalf("first argument of %s is not a composite literal", fn)
	}
	return lit
}

func TestBuildPropsExprNative(t *testing.T) {
	r, file := parseRewriter(t, propsSrc)
	lit := propsLiteral(t, r, file, "native")

	got := r.printExpr(r.buildPropsExpr(lit, r.nativeTransform))
	want := `helix.RawProps{"className": "card", "htmlFor": "name", "httpEquiv": "refresh", "aria-label": "close", "onClick": handler}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("native props mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPropsExprStyleLiteral(t *testing.T) {
	r, file := parseRewriter(t, propsSrc)
	lit := propsLiteral(t, r, file, "styled")

	got := r.printExpr(r.buildPropsExpr(lit, r.nativeTransform))
	want := `helix.RawProps{"style": helix.RawProps{"backgroundColor": "red", "fontSize": "12px"}}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("style literal mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPropsExprStyleDynamic(t *testing.T) {
	r, file := parseRewriter(t, propsSrc)
	lit := propsLiteral(t, r, file, "dynamicStyle")

	got := r.printExpr(r.buildPropsExpr(lit, r.nativeTransform))
	want := `helix.RawProps{"style": helix.ConvertStyle(css)}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dynamic style mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPropsExprSpread(t *testing.T) {
	r, file := parseRewriter(t, propsSrc)
	lit := propsLiteral(t, r, file, "spread")

	got := r.printExpr(r.buildPropsExpr(lit, r.nativeTransform))
	want := `helix.MergeProps(helix.RawProps{"type": "text"}, extra)`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spread mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPropsExprGeneric(t *testing.T) {
	r, file := parseRewriter(t, propsSrc)
	lit := propsLiteral(t, r, file, "generic")

	// Component props keep their keys as written.
	got := r.printExpr(r.buildPropsExpr(lit, r.defaultTransform))
	want := `helix.RawProps{"class": "card", "on-click": handler}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generic props mismatch (-want +got):\n%s", diff)
	}
}
