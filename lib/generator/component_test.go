package generator

import (
	"go/parser"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const componentSrc = `package demo

import "github.com/wilkerlucio/helix"

type counterProps struct {
	Label string
}

// Counter renders a labeled increment button.
//
//helix:component
//helix:wrap helix.Memo
//helix:wrap withLogging
func Counter(props counterProps) *helix.Element {
	count, setCount := helix.UseState(0)
	helix.UseEffect(func() func() {
		helix.UseRef(nil)
		return nil
	}, count)
	onClick := helix.UseCallback(func() { setCount(count + 1) }, count)
	return helix.E("button", helix.Props{"on-click": onClick}, props.Label)
}

//helix:component
func WithRef(props counterProps, ref any) *helix.Element {
	return helix.E("div", nil)
}

func plain(props counterProps) *helix.Element {
	return helix.E("div", nil)
}

//helix:component
func (c counterProps) Bad() *helix.Element { return nil }

//helix:component
func NoParams() *helix.Element { return nil }

//helix:component
func WrongResult(props counterProps) string { return "" }

//helix:component
func TwoNames(a, b counterProps) *helix.Element { return nil }
`

func TestIsComponent(t *testing.T) {
	_, file := parseRewriter(t, componentSrc)
	if !isComponent(findFunc(t, file, "Counter")) {
		t.Error("Counter should be a component")
	}
	if isComponent(findFunc(t, file, "plain")) {
		t.Error("plain should not be a component")
	}
}

func TestParseComponent(t *testing.T) {
	r, file := parseRewriter(t, componentSrc)
	info, err := r.parseComponent(findFunc(t, file, "Counter"))
	if err != nil {
		t.Fatalf("parseComponent: %v", err)
	}

	if info.Name != "Counter" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.PropsParam != "props" || info.PropsType != "counterProps" {
		t.Errorf("props binding = %q %q", info.PropsParam, info.PropsType)
	}
	if info.RefParam != "" {
		t.Errorf("RefParam = %q, want empty", info.RefParam)
	}
	if diff := cmp.Diff([]string{"helix.Memo", "withLogging"}, info.Wraps); diff != "" {
		t.Errorf("wraps mismatch (-want +got):\n%s", diff)
	}
	// Directives are stripped from the docstring; prose stays.
	doc := strings.Join(info.Doc, "\n")
	if !strings.Contains(doc, "Counter renders a labeled increment button.") {
		t.Errorf("doc lost prose: %q", doc)
	}
	if strings.Contains(doc, "helix:") {
		t.Errorf("doc kept directives: %q", doc)
	}
}

func TestParseComponentRef(t *testing.T) {
	r, file := parseRewriter(t, componentSrc)
	info, err := r.parseComponent(findFunc(t, file, "WithRef"))
	if err != nil {
		t.Fatalf("parseComponent: %v", err)
	}
	if info.RefParam != "ref" {
		t.Errorf("RefParam = %q, want ref", info.RefParam)
	}
}

func TestParseComponentErrors(t *testing.T) {
	r, file := parseRewriter(t, componentSrc)
	for _, name := range []string{"Bad", "NoParams", "WrongResult", "TwoNames"} {
		t.Run(name, func(t *testing.T) {
			if _, err := r.parseComponent(findFunc(t, file, name)); err == nil {
				t.Errorf("parseComponent(%s) should fail", name)
			}
		})
	}
}

func TestHookFingerprint(t *testing.T) {
	r, file := parseRewriter(t, componentSrc)
	info, err := r.parseComponent(findFunc(t, file, "Counter"))
	if err != nil {
		t.Fatalf("parseComponent: %v", err)
	}

	// Source order, closures included, duplicates preserved.
	want := []string{"UseState", "UseEffect", "UseRef", "UseCallback"}
	if diff := cmp.Diff(want, info.Hooks); diff != "" {
		t.Errorf("hooks mismatch (-want +got):\n%s", diff)
	}
	if got := info.Fingerprint(); got != "UseState\nUseEffect\nUseRef\nUseCallback" {
		t.Errorf("fingerprint = %q", got)
	}
}

func TestFingerprintOrderSensitive(t *testing.T) {
	first := `package demo

import "github.com/wilkerlucio/helix"

//helix:component
func A(props P) *helix.Element {
	helix.UseState(0)
	helix.UseEffect(nil)
	return nil
}
`
	second := `package demo

import "github.com/wilkerlucio/helix"

//helix:component
func A(props P) *helix.Element {
	helix.UseEffect(nil)
	helix.UseState(0)
	return nil
}
`
	r1, f1 := parseRewriter(t, first)
	i1, err := r1.parseComponent(findFunc(t, f1, "A"))
	if err != nil {
		t.Fatal(err)
	}
	r2, f2 := parseRewriter(t, second)
	i2, err := r2.parseComponent(findFunc(t, f2, "A"))
	if err != nil {
		t.Fatal(err)
	}
	if i1.Fingerprint() == i2.Fingerprint() {
		t.Error("reordered hook calls must change the fingerprint")
	}
}

func TestScanHooksExplicitInstantiation(t *testing.T) {
	src := `package demo

import "github.com/wilkerlucio/helix"

//helix:component
func A(props P) *helix.Element {
	v := helix.UseMemo[string](func() string { return "" })
	_ = v
	return nil
}
`
	r, file := parseRewriter(t, src)
	info, err := r.parseComponent(findFunc(t, file, "A"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"UseMemo"}, info.Hooks); diff != "" {
		t.Errorf("hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestScanHooksExtraPrefixes(t *testing.T) {
	src := `package demo

import "github.com/wilkerlucio/helix"

//helix:component
func A(props P) *helix.Element {
	WatchQuery("q")
	return nil
}
`
	g := New(Options{Config: &Config{
		Diagnostics:  DiagnosticsNone,
		HookPrefixes: []string{"Watch"},
	}})
	file, err := parser.ParseFile(g.fset, "demo.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	idx := newPackageIndex(nil, helixNameFor)
	r := g.newFileRewriter(g.fset, file, "demo.go", idx)
	info, err := r.parseComponent(findFunc(t, file, "A"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"WatchQuery"}, info.Hooks); diff != "" {
		t.Errorf("hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestIsHookName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"UseState", true},
		{"useTheme", true},
		{"Use", false},
		{"use", false},
		{"User", true},
		{"Render", false},
	}
	for _, tt := range tests {
		if got := isHookName(tt.name, nil); got != tt.want {
			t.Errorf("isHookName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
