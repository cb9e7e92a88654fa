package block

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextBlock(t *testing.T) {
	raw := json.RawMessage(`{"type":"text","text":"<p>Hi</p>","layout":"right"}`)
	b, err := Decode(raw)
	require.NoError(t, err)
	txt, ok := b.(Text)
	require.True(t, ok)
	assert.Equal(t, "<p>Hi</p>", txt.Text)
	assert.Equal(t, LayoutRight, txt.Layout)
}

func TestDecodeNestedDataShapes(t *testing.T) {
	raw := json.RawMessage(`{
		"type":"side_by_side_image",
		"data":{"images":[
			{"src":"a.png","layout":"left"},
			{"src":"b.png","alt":"b","layout":"right"}
		]}
	}`)
	b, err := Decode(raw)
	require.NoError(t, err)
	sbs, ok := b.(SideBySideImage)
	require.True(t, ok)
	require.Len(t, sbs.Images, 2)
	assert.Equal(t, "a.png", sbs.FindSide(LayoutLeft).Src)
	assert.Equal(t, "b.png", sbs.FindSide(LayoutRight).Src)

	raw = json.RawMessage(`{
		"type":"text_and_side_image",
		"data":{"text":"hello","image":{"src":"c.png","layout":"right"}}
	}`)
	b, err = Decode(raw)
	require.NoError(t, err)
	tsi, ok := b.(TextAndSideImage)
	require.True(t, ok)
	assert.Equal(t, "hello", tsi.Text)
	assert.Equal(t, LayoutRight, tsi.Image.Layout)

	raw = json.RawMessage(`{
		"type":"three_grid_layout",
		"data":{"items":[{"type":"text","text":"t"},{"type":"image","src":"d.png"}]}
	}`)
	b, err = Decode(raw)
	require.NoError(t, err)
	grid, ok := b.(ThreeGridLayout)
	require.True(t, ok)
	require.Len(t, grid.Items, 2)
	assert.Equal(t, GridItemText, grid.Items[0].Kind)
	assert.Equal(t, GridItemImage, grid.Items[1].Kind)
}

func TestDecodeUnknownTypeSurvives(t *testing.T) {
	raw := json.RawMessage(`{"type":"bogus","whatever":1}`)
	b, err := Decode(raw)
	require.NoError(t, err)
	u, ok := b.(Unknown)
	require.True(t, ok)
	assert.Equal(t, Type("bogus"), u.TypeTag)

	// round-trips byte-for-byte through marshal
	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestMarshalWireShapes(t *testing.T) {
	out, err := json.Marshal(Text{Text: "x", Layout: LayoutLeft})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"x","layout":"left"}`, string(out))

	out, err = json.Marshal(SideBySideImage{Images: []SideImage{{Src: "a", Layout: LayoutLeft}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"side_by_side_image","data":{"images":[{"src":"a","layout":"left"}]}}`, string(out))

	out, err = json.Marshal(TextAndSideImage{Text: "t", Image: SideImage{Src: "i", Layout: LayoutRight}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text_and_side_image","data":{"text":"t","image":{"src":"i","layout":"right"}}}`, string(out))

	// empty collections marshal as [], not null
	out, err = json.Marshal(ThreeGridLayout{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"three_grid_layout","data":{"items":[]}}`, string(out))
}

func TestListUnmarshalPreservesOrder(t *testing.T) {
	var l List
	err := json.Unmarshal([]byte(`[
		{"type":"text","text":"a","layout":"left"},
		{"type":"full_image","src":"b.png"},
		{"type":"image","src":"legacy.png"}
	]`), &l)
	require.NoError(t, err)
	require.Len(t, l, 3)
	assert.Equal(t, TypeText, l[0].BlockType())
	assert.Equal(t, TypeFullImage, l[1].BlockType())
	assert.Equal(t, TypeLegacyImage, l[2].BlockType())
}

func TestListScanValueRoundTrip(t *testing.T) {
	l := List{
		Text{Text: "hi", Layout: LayoutLeft},
		FullImage{Src: "x.png", Alt: "x"},
	}
	v, err := l.Value()
	require.NoError(t, err)

	var got List
	require.NoError(t, got.Scan(v))
	assert.Equal(t, l, got)

	var empty List
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}

func TestWithIDsAndStripIDs(t *testing.T) {
	n := 0
	newID := func() string {
		n++
		return "id-1"
	}
	l := List{Text{Text: "a", Layout: LayoutLeft}, FullImage{ID: "keep", Src: "s"}}
	withIDs := l.WithIDs(newID)
	assert.Equal(t, "id-1", withIDs[0].(Text).ID)
	assert.Equal(t, "keep", withIDs[1].(FullImage).ID)
	assert.Equal(t, 1, n)

	stripped := withIDs.StripIDs()
	assert.Empty(t, stripped[0].(Text).ID)
	assert.Empty(t, stripped[1].(FullImage).ID)
	// original untouched
	assert.Equal(t, "keep", withIDs[1].(FullImage).ID)
}
