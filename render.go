package helix

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// voidElements have no closing tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// runtimeToAttr maps runtime property names back to their HTML attribute
// names when serializing.
var runtimeToAttr = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// Templ adapts an element tree to a templ.Component for server-side
// rendering. Event handler properties (func values) are skipped; component
// references are rendered by invoking their wrapped render function with the
// element's props.
func Templ(el *Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeNode(ctx, w, el)
	})
}

// Render writes an element tree as HTML.
func Render(w io.Writer, el *Element) error {
	return Templ(el).Render(context.Background(), w)
}

func writeNode(ctx context.Context, w io.Writer, node any) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *Element:
		return writeElement(ctx, w, n)
	case string:
		_, err := io.WriteString(w, templ.EscapeString(n))
		return err
	case templ.Component:
		return n.Render(ctx, w)
	case []any:
		for _, child := range n {
			if err := writeNode(ctx, w, child); err != nil {
				return err
			}
		}
		return nil
	case []*Element:
		for _, child := range n {
			if err := writeNode(ctx, w, child); err != nil {
				return err
			}
		}
		return nil
	case bool:
		return nil
	default:
		_, err := io.WriteString(w, templ.EscapeString(fmt.Sprint(n)))
		return err
	}
}

func writeElement(ctx context.Context, w io.Writer, el *Element) error {
	if el == nil {
		return nil
	}
	switch typ := el.Type.(type) {
	case string:
		return writeTag(ctx, w, typ, el)
	case *Component:
		return writeNode(ctx, w, typ.Render(el.Props, nil))
	case RenderFunc:
		return writeNode(ctx, w, typ(el.Props, nil))
	default:
		return fmt.Errorf("helix: cannot render element type %T", el.Type)
	}
}

func writeTag(ctx context.Context, w io.Writer, tag string, el *Element) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := writeAttrs(w, el.Props); err != nil {
		return err
	}
	if voidElements[tag] {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := writeNode(ctx, w, child); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// writeAttrs serializes props in sorted key order so output is deterministic.
func writeAttrs(w io.Writer, props RawProps) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		name := key
		if attr, ok := runtimeToAttr[key]; ok {
			name = attr
		}
		var text string
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			// Boolean attributes render bare.
			if _, err := io.WriteString(w, " "+name); err != nil {
				return err
			}
			continue
		case string:
			text = v
		case RawProps:
			if key != "style" {
				continue
			}
			text = styleText(v)
		case int:
			text = strconv.Itoa(v)
		case float64:
			text = strconv.FormatFloat(v, 'g', -1, 64)
		default:
			if isFunc(value) {
				continue
			}
			text = fmt.Sprint(v)
		}
		if _, err := io.WriteString(w, ` `+name+`="`+templ.EscapeString(text)+`"`); err != nil {
			return err
		}
	}
	return nil
}

// styleText renders a style map as CSS declaration text.
func styleText(style RawProps) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, cssName(k)+":"+fmt.Sprint(style[k]))
	}
	return strings.Join(parts, ";")
}

// cssName converts a camelCase style key to its CSS property name:
// backgroundColor -> background-color.
func cssName(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isFunc(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}
