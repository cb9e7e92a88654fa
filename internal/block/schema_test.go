package block

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidType(t *testing.T) {
	for _, v := range ValidTypes {
		assert.True(t, IsValidType(v), string(v))
	}
	assert.False(t, IsValidType(TypeLegacyImage))
	assert.False(t, IsValidType("bogus"))
	assert.False(t, IsValidType(""))
}

func TestDefaultFor(t *testing.T) {
	assert.Equal(t, Text{Text: "", Layout: LayoutLeft}, DefaultFor(TypeText))
	assert.Equal(t, FullImage{}, DefaultFor(TypeFullImage))
	assert.Equal(t, SideBySideImage{Images: []SideImage{}}, DefaultFor(TypeSideBySideImage))
	assert.Equal(t, TextAndSideImage{Image: SideImage{Layout: LayoutLeft}}, DefaultFor(TypeTextAndSideImage))
	assert.Equal(t, ThreeGridLayout{Items: []GridItem{}}, DefaultFor(TypeThreeGridLayout))
	assert.Nil(t, DefaultFor("bogus"))
}

func TestNormalizeLegacyImage(t *testing.T) {
	b, err := Decode(json.RawMessage(`{"type":"image","src":"x.png","alt":"x"}`))
	require.NoError(t, err)

	got := Normalize(b)
	assert.Equal(t, FullImage{Src: "x.png", Alt: "x"}, got)

	// idempotent
	assert.Equal(t, got, Normalize(got))

	// other blocks pass through identically
	txt := Text{Text: "t", Layout: LayoutRight}
	assert.Equal(t, Block(txt), Normalize(txt))
	bogus := Unknown{TypeTag: "bogus"}
	assert.Equal(t, Block(bogus), Normalize(bogus))
}

func TestValidateNamesOffendingBlocks(t *testing.T) {
	ok := List{Text{Layout: LayoutLeft}, FullImage{Src: "a"}}
	assert.NoError(t, ok.Validate())

	bad := List{Text{Layout: LayoutLeft}, Unknown{TypeTag: "bogus"}, nil}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `block 1: invalid type "bogus"`)
	assert.Contains(t, err.Error(), "block 2: missing")

	// legacy tag must be normalized before validation
	legacy := List{Unknown{TypeTag: TypeLegacyImage, Raw: json.RawMessage(`{"type":"image"}`)}}
	assert.Error(t, legacy.Validate())
	assert.NoError(t, legacy.Normalize().Validate())
}

func TestListMove(t *testing.T) {
	l := List{
		Text{Text: "A", Layout: LayoutLeft},
		Text{Text: "B", Layout: LayoutLeft},
		Text{Text: "C", Layout: LayoutLeft},
	}
	moved := l.Move(0, 2)
	assert.Equal(t, "B", moved[0].(Text).Text)
	assert.Equal(t, "C", moved[1].(Text).Text)
	assert.Equal(t, "A", moved[2].(Text).Text)
	// source untouched
	assert.Equal(t, "A", l[0].(Text).Text)

	assert.Equal(t, l, l.Move(-1, 2))
	assert.Equal(t, l, l.Move(0, 3))
}

func TestListInsertRemoveReplaceSwap(t *testing.T) {
	l := List{Text{Text: "A", Layout: LayoutLeft}}

	l2 := l.Insert(1, FullImage{Src: "b"})
	require.Len(t, l2, 2)
	assert.Equal(t, TypeFullImage, l2[1].BlockType())

	l3 := l2.Remove(0)
	require.Len(t, l3, 1)
	assert.Equal(t, TypeFullImage, l3[0].BlockType())
	assert.Equal(t, l2, l2.Remove(5))

	l4 := l2.Replace(0, Text{Text: "Z", Layout: LayoutRight})
	assert.Equal(t, "Z", l4[0].(Text).Text)
	assert.Equal(t, "A", l2[0].(Text).Text)

	l5 := l2.Swap(0, 1)
	assert.Equal(t, TypeFullImage, l5[0].BlockType())
	assert.Equal(t, l2, l2.Swap(0, 0))
}
