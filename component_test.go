package helix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentRender(t *testing.T) {
	c := NewComponent(func(raw RawProps, ref any) *Element {
		return CreateElement("div", nil, raw["label"])
	})
	el := c.Render(RawProps{"label": "hi"}, nil)
	require.NotNil(t, el)
	assert.Equal(t, []any{"hi"}, el.Children)
}

func TestComponentDisplayName(t *testing.T) {
	c := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	assert.Empty(t, c.DisplayName())
	c.SetDisplayName("app.Button")
	assert.Equal(t, "app.Button", c.DisplayName())
}

func TestMemoCachesShallowEqualProps(t *testing.T) {
	calls := 0
	c := Memo(NewComponent(func(raw RawProps, ref any) *Element {
		calls++
		return CreateElement("div", raw)
	}))

	first := c.Render(RawProps{"label": "a", "count": 1}, nil)
	second := c.Render(RawProps{"label": "a", "count": 1}, nil)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	third := c.Render(RawProps{"label": "b", "count": 1}, nil)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, calls)
}

func TestMemoRefChangeInvalidates(t *testing.T) {
	calls := 0
	c := Memo(NewComponent(func(raw RawProps, ref any) *Element {
		calls++
		return CreateElement("div", nil)
	}))

	c.Render(RawProps{}, "ref-a")
	c.Render(RawProps{}, "ref-b")
	assert.Equal(t, 2, calls)
}

func TestMemoUncomparableValuesNeverEqual(t *testing.T) {
	calls := 0
	c := Memo(NewComponent(func(raw RawProps, ref any) *Element {
		calls++
		return CreateElement("div", nil)
	}))

	handler := func() {}
	c.Render(RawProps{"onClick": handler}, nil)
	c.Render(RawProps{"onClick": handler}, nil)
	assert.Equal(t, 2, calls, "func-valued props must not be treated as equal")
}

func TestMemoPreservesIdentity(t *testing.T) {
	inner := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	inner.SetDisplayName("app.List")
	sig := CreateSignature()
	PopulateSignature(sig, inner, "UseState", nil, nil)

	memoed := Memo(inner)
	assert.Equal(t, "app.List", memoed.DisplayName())
	assert.Same(t, sig, memoed.Signature())
}

func TestWrapperComposition(t *testing.T) {
	var order []string
	tag := func(name string) Wrapper {
		return func(c *Component) *Component {
			return NewComponent(func(raw RawProps, ref any) *Element {
				order = append(order, name)
				return c.Render(raw, ref)
			})
		}
	}

	base := NewComponent(func(raw RawProps, ref any) *Element {
		order = append(order, "render")
		return nil
	})

	// Wrappers apply left to right, so the last one is outermost.
	wrapped := tag("outer")(tag("inner")(base))
	wrapped.Render(RawProps{}, nil)
	assert.Equal(t, []string{"outer", "inner", "render"}, order)
}
