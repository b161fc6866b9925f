// Package h provides native-element shorthands. Each function forwards to
// helix.E with its tag name, so shorthands participate in both the dynamic
// path and the helixgen rewrite (the generator treats h.* calls as native
// element requests).
package h

import "github.com/wilkerlucio/helix"

func A(args ...any) *helix.Element        { return helix.E("a", args...) }
func Article(args ...any) *helix.Element  { return helix.E("article", args...) }
func Aside(args ...any) *helix.Element    { return helix.E("aside", args...) }
func Body(args ...any) *helix.Element     { return helix.E("body", args...) }
func Br(args ...any) *helix.Element       { return helix.E("br", args...) }
func Button(args ...any) *helix.Element   { return helix.E("button", args...) }
func Canvas(args ...any) *helix.Element   { return helix.E("canvas", args...) }
func Code(args ...any) *helix.Element     { return helix.E("code", args...) }
func Div(args ...any) *helix.Element      { return helix.E("div", args...) }
func Em(args ...any) *helix.Element       { return helix.E("em", args...) }
func Footer(args ...any) *helix.Element   { return helix.E("footer", args...) }
func Form(args ...any) *helix.Element     { return helix.E("form", args...) }
func H1(args ...any) *helix.Element       { return helix.E("h1", args...) }
func H2(args ...any) *helix.Element       { return helix.E("h2", args...) }
func H3(args ...any) *helix.Element       { return helix.E("h3", args...) }
func H4(args ...any) *helix.Element       { return helix.E("h4", args...) }
func H5(args ...any) *helix.Element       { return helix.E("h5", args...) }
func H6(args ...any) *helix.Element       { return helix.E("h6", args...) }
func Head(args ...any) *helix.Element     { return helix.E("head", args...) }
func Header(args ...any) *helix.Element   { return helix.E("header", args...) }
func Hr(args ...any) *helix.Element       { return helix.E("hr", args...) }
func Img(args ...any) *helix.Element      { return helix.E("img", args...) }
func Input(args ...any) *helix.Element    { return helix.E("input", args...) }
func Label(args ...any) *helix.Element    { return helix.E("label", args...) }
func Li(args ...any) *helix.Element       { return helix.E("li", args...) }
func Main(args ...any) *helix.Element     { return helix.E("main", args...) }
func Meta(args ...any) *helix.Element     { return helix.E("meta", args...) }
func Nav(args ...any) *helix.Element      { return helix.E("nav", args...) }
func Ol(args ...any) *helix.Element       { return helix.E("ol", args...) }
func Option(args ...any) *helix.Element   { return helix.E("option", args...) }
func P(args ...any) *helix.Element        { return helix.E("p", args...) }
func Pre(args ...any) *helix.Element      { return helix.E("pre", args...) }
func Section(args ...any) *helix.Element  { return helix.E("section", args...) }
func Select(args ...any) *helix.Element   { return helix.E("select", args...) }
func Span(args ...any) *helix.Element     { return helix.E("span", args...) }
func Strong(args ...any) *helix.Element   { return helix.E("strong", args...) }
func Table(args ...any) *helix.Element    { return helix.E("table", args...) }
func Tbody(args ...any) *helix.Element    { return helix.E("tbody", args...) }
func Td(args ...any) *helix.Element       { return helix.E("td", args...) }
func Textarea(args ...any) *helix.Element { return helix.E("textarea", args...) }
func Th(args ...any) *helix.Element       { return helix.E("th", args...) }
func Thead(args ...any) *helix.Element    { return helix.E("thead", args...) }
func Tr(args ...any) *helix.Element       { return helix.E("tr", args...) }
func Ul(args ...any) *helix.Element       { return helix.E("ul", args...) }
