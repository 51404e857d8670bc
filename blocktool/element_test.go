package blocktool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementClassHelpers(t *testing.T) {
	el := newElement("div", "a")

	el.AddClass("b")
	el.AddClass("b")
	el.AddClass("")
	assert.Equal(t, []string{"a", "b"}, el.Classes)

	el.RemoveClass("a")
	assert.Equal(t, []string{"b"}, el.Classes)
	assert.True(t, el.HasClass("b"))
	assert.False(t, el.HasClass("a"))

	el.RemoveClass("missing")
	assert.Equal(t, []string{"b"}, el.Classes)
}

func TestElementFindFieldDepthFirst(t *testing.T) {
	inner := newElement("div")
	inner.Field = FieldMessage
	inner.HTML = "first"

	second := newElement("div")
	second.Field = FieldMessage
	second.HTML = "second"

	root := newElement("div").Append(
		newElement("div").Append(inner),
		second,
	)

	found, ok := root.FindField(FieldMessage)
	require.True(t, ok)
	assert.Equal(t, "first", found.HTML)

	all := root.FindFields(FieldMessage)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[1].HTML)
}

func TestElementFindFieldMisses(t *testing.T) {
	root := newElement("div")

	_, ok := root.FindField(FieldTitle)
	assert.False(t, ok)

	_, ok = root.FindField(FieldNone)
	assert.False(t, ok)

	var nilRoot *Element
	_, ok = nilRoot.FindField(FieldTitle)
	assert.False(t, ok)
}

func TestElementAttrs(t *testing.T) {
	el := newElement("div")

	assert.Equal(t, "", el.Attr("data-type"))

	el.SetAttr("data-type", "info")
	assert.Equal(t, "info", el.Attr("data-type"))
}
