package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotRyken/AdvancedChatLog/internal/text"
	"github.com/NotRyken/AdvancedChatLog/internal/wire"
)

func sampleTree() *text.Text {
	return text.Empty().Append(
		text.Styled("<Alex> ", text.Style{Color: "aqua"}),
		text.Styled("look", text.Style{
			Italic:     true,
			HoverEvent: &text.HoverEvent{Action: text.HoverShowItem, Item: &text.ItemStack{ID: "minecraft:diamond_sword", Count: 1}},
		}),
	)
}

func TestNew(t *testing.T) {
	f, err := wire.New("tree", nil)
	require.NoError(t, err)
	assert.Equal(t, wire.FormatTree, f.Name())

	f, err = wire.New(" STRING ", nil)
	require.NoError(t, err)
	assert.Equal(t, wire.FormatString, f.Name())

	f, err = wire.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, wire.FormatTree, f.Name())

	_, err = wire.New("gson", nil)
	assert.ErrorIs(t, err, wire.ErrUnknownFormat)
}

func TestFormats_RoundTrip(t *testing.T) {
	for _, name := range []string{wire.FormatTree, wire.FormatString} {
		t.Run(name, func(t *testing.T) {
			f, err := wire.New(name, wire.NewRegistry())
			require.NoError(t, err)

			v, err := f.Serialize(sampleTree())
			require.NoError(t, err)

			got, err := f.Deserialize(v)
			require.NoError(t, err)
			assert.Equal(t, sampleTree(), got)
		})
	}
}

func TestFormats_Shape(t *testing.T) {
	tree := &wire.TreeFormat{}
	v, err := tree.Serialize(text.Empty().Append(text.Literal("hello")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"","extra":[{"text":"hello"}]}`, string(v))

	str := &wire.StringFormat{}
	v, err = str.Serialize(text.Empty().Append(text.Literal("hello")))
	require.NoError(t, err)
	var inner string
	require.NoError(t, json.Unmarshal(v, &inner))
	assert.JSONEq(t, `{"text":"","extra":[{"text":"hello"}]}`, inner)
}

func TestFormats_EncodeErrors(t *testing.T) {
	registry := wire.NewRegistry("minecraft:stone", "dirt")

	cases := map[string]*text.Text{
		"open_file click": text.Empty().Append(text.Styled("x", text.Style{
			ClickEvent: &text.ClickEvent{Action: text.ClickOpenFile, Value: "/etc/passwd"},
		})),
		"unknown item": text.Empty().Append(text.Styled("x", text.Style{
			HoverEvent: &text.HoverEvent{Action: text.HoverShowItem, Item: &text.ItemStack{ID: "minecraft:diamond"}},
		})),
		"nested hover text": text.Empty().Append(text.Styled("x", text.Style{
			HoverEvent: &text.HoverEvent{Action: text.HoverShowText, Text: text.Styled("y", text.Style{
				ClickEvent: &text.ClickEvent{Action: text.ClickOpenFile, Value: "a"},
			})},
		})),
		"bad font": text.Empty().Append(text.Styled("x", text.Style{Font: "Not A Font"})),
		"nil":      nil,
	}

	for _, name := range []string{wire.FormatTree, wire.FormatString} {
		f, err := wire.New(name, registry)
		require.NoError(t, err)
		for caseName, tree := range cases {
			t.Run(name+"/"+caseName, func(t *testing.T) {
				_, err := f.Serialize(tree)
				require.Error(t, err)
				assert.ErrorIs(t, err, wire.ErrEncode)
			})
		}
	}
}

func TestRegistry_KnowsItem(t *testing.T) {
	var nilRegistry *wire.Registry
	assert.True(t, nilRegistry.KnowsItem("anything"))
	assert.True(t, wire.NewRegistry().KnowsItem("minecraft:diamond"))

	r := wire.NewRegistry("stone", " minecraft:dirt ", "")
	assert.True(t, r.KnowsItem("minecraft:stone"))
	assert.True(t, r.KnowsItem("dirt"))
	assert.False(t, r.KnowsItem("minecraft:diamond"))
}

func TestFormats_DecodeErrors(t *testing.T) {
	tree := &wire.TreeFormat{}
	for _, raw := range []string{``, `null`, `5`, `{"color":"red"}`} {
		_, err := tree.Deserialize(json.RawMessage(raw))
		assert.ErrorIs(t, err, wire.ErrDecode, "input %q", raw)
	}

	str := &wire.StringFormat{}
	for _, raw := range []string{`{"text":"x"}`, `"not json"`, `""`, `null`} {
		_, err := str.Deserialize(json.RawMessage(raw))
		assert.ErrorIs(t, err, wire.ErrDecode, "input %q", raw)
	}
}
