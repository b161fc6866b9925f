package h_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilkerlucio/helix"
	"github.com/wilkerlucio/helix/h"
)

func TestShorthandTags(t *testing.T) {
	el := h.Div(helix.Props{"class": "card"}, h.Span("hi"))
	assert.Equal(t, "div", el.Type)
	assert.Equal(t, "card", el.Props["className"])

	child := el.Children[0].(*helix.Element)
	assert.Equal(t, "span", child.Type)
	assert.Equal(t, []any{"hi"}, child.Children)
}

func TestVoidTag(t *testing.T) {
	el := h.Input(helix.Props{"type": "text"})
	assert.Equal(t, "input", el.Type)
	assert.Equal(t, "text", el.Props["type"])
}
