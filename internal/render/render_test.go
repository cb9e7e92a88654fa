package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newstalgia/backend/internal/block"
)

func TestTextBlockEmitsContentAndSpacer(t *testing.T) {
	cells := Cells(block.List{block.Text{Text: "<p>Hi</p>", Layout: block.LayoutLeft}})
	require.Len(t, cells, 2)

	assert.Equal(t, KindText, cells[0].Kind)
	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Contains(t, string(cells[0].HTML), "Hi")

	assert.Equal(t, KindSpacer, cells[1].Kind)
	assert.Equal(t, ColumnRight, cells[1].Column)

	for _, c := range cells {
		assert.NotEqual(t, KindImage, c.Kind)
	}
}

func TestTextBlockRightLayoutSpacerFirst(t *testing.T) {
	cells := Cells(block.List{block.Text{Text: "x", Layout: block.LayoutRight}})
	require.Len(t, cells, 2)
	assert.Equal(t, KindSpacer, cells[0].Kind)
	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Equal(t, KindText, cells[1].Kind)
	assert.Equal(t, ColumnRight, cells[1].Column)
}

func TestTextBlockMissingLayoutDefaultsLeft(t *testing.T) {
	cells := Cells(block.List{block.Text{Text: "x"}})
	require.Len(t, cells, 2)
	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Equal(t, KindText, cells[0].Kind)
}

func TestDefaultTextBlockRendersOneContentCell(t *testing.T) {
	b := block.DefaultFor(block.TypeText)
	cells := Cells(block.List{b})
	require.Len(t, cells, 2)

	var content, spacer int
	for _, c := range cells {
		switch c.Kind {
		case KindText:
			content++
			assert.Equal(t, ColumnLeft, c.Column)
		case KindSpacer:
			spacer++
		}
	}
	assert.Equal(t, 1, content)
	assert.Equal(t, 1, spacer)
}

func TestFullImageSpansBothColumns(t *testing.T) {
	cells := Cells(block.List{block.FullImage{Src: "a.png", Alt: "a"}})
	require.Len(t, cells, 1)
	assert.Equal(t, KindImage, cells[0].Kind)
	assert.Equal(t, ColumnFull, cells[0].Column)
	assert.Equal(t, "a.png", cells[0].Src)
}

func TestTextAndSideImageOrdering(t *testing.T) {
	imgLeft := block.TextAndSideImage{
		Text:  "body",
		Image: block.SideImage{Src: "i.png", Layout: block.LayoutLeft},
	}
	cells := Cells(block.List{imgLeft})
	require.Len(t, cells, 2)
	assert.Equal(t, KindImage, cells[0].Kind)
	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Equal(t, KindText, cells[1].Kind)
	assert.Equal(t, ColumnRight, cells[1].Column)

	imgRight := imgLeft
	imgRight.Image.Layout = block.LayoutRight
	cells = Cells(block.List{imgRight})
	require.Len(t, cells, 2)
	assert.Equal(t, KindText, cells[0].Kind)
	assert.Equal(t, KindImage, cells[1].Kind)
}

func TestTextAndSideImageWithoutSrcRendersNothing(t *testing.T) {
	cells := Cells(block.List{block.TextAndSideImage{Text: "wip"}})
	assert.Empty(t, cells)
}

func TestSideBySideOnlyLeftImage(t *testing.T) {
	b := block.SideBySideImage{Images: []block.SideImage{
		{Src: "l.png", Layout: block.LayoutLeft},
	}}
	cells := Cells(block.List{b})
	require.Len(t, cells, 1)
	assert.Equal(t, KindImage, cells[0].Kind)
	assert.Equal(t, ColumnLeft, cells[0].Column)
}

func TestSideBySideBothImagesLeftFirst(t *testing.T) {
	b := block.SideBySideImage{Images: []block.SideImage{
		{Src: "r.png", Layout: block.LayoutRight},
		{Src: "l.png", Layout: block.LayoutLeft},
	}}
	cells := Cells(block.List{b})
	require.Len(t, cells, 2)
	assert.Equal(t, "l.png", cells[0].Src)
	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Equal(t, "r.png", cells[1].Src)
	assert.Equal(t, ColumnRight, cells[1].Column)
}

func TestThreeGridGeometry(t *testing.T) {
	b := block.ThreeGridLayout{Items: []block.GridItem{
		{Kind: block.GridItemText, Text: "t"},
		{Kind: block.GridItemImage, Src: "a.png"},
		{Kind: block.GridItemImage, Src: "b.png"},
	}}
	cells := Cells(block.List{b})
	require.Len(t, cells, 3)

	assert.Equal(t, ColumnLeft, cells[0].Column)
	assert.Equal(t, 1, cells[0].Row)
	assert.Equal(t, KindText, cells[0].Kind)

	assert.Equal(t, ColumnLeft, cells[1].Column)
	assert.Equal(t, 2, cells[1].Row)

	assert.Equal(t, ColumnRight, cells[2].Column)
	assert.Equal(t, 1, cells[2].Row)
	assert.Equal(t, 2, cells[2].RowSpan)
}

func TestThreeGridSkipsEmptyImagesAndTruncates(t *testing.T) {
	b := block.ThreeGridLayout{Items: []block.GridItem{
		{Kind: block.GridItemImage},
		{Kind: block.GridItemText, Text: "x"},
		{Kind: block.GridItemText, Text: "y"},
		{Kind: block.GridItemText, Text: "extra"},
	}}
	cells := Cells(block.List{b})
	require.Len(t, cells, 2)
	// geometry still follows item index, not cell count
	assert.Equal(t, 2, cells[0].Row)
	assert.Equal(t, ColumnRight, cells[1].Column)
}

func TestUnknownBlockRendersNothing(t *testing.T) {
	cells := Cells(block.List{block.Unknown{TypeTag: "bogus"}})
	assert.Empty(t, cells)
}

func TestRichTextIsSanitized(t *testing.T) {
	cells := Cells(block.List{block.Text{
		Text:   `<p>ok</p><script>alert(1)</script>`,
		Layout: block.LayoutLeft,
	}})
	require.Len(t, cells, 2)
	html := string(cells[0].HTML)
	assert.Contains(t, html, "<p>ok</p>")
	assert.NotContains(t, html, "script")
}

func TestComposeTeamOnlyWhenPresent(t *testing.T) {
	doc := Compose(block.List{}, nil)
	assert.Empty(t, doc.Team)

	team := []block.TeamMember{{Name: "Ana", Role: "Design"}}
	doc = Compose(block.List{}, team)
	assert.Equal(t, team, doc.Team)
}

func TestHTMLOutputParity(t *testing.T) {
	blocks := block.List{
		block.Text{Text: "<p>Hi</p>", Layout: block.LayoutLeft},
		block.FullImage{Src: "a.png"},
	}
	team := []block.TeamMember{{Name: "Ana", Role: "Design"}}

	p := Page{Title: "T", Description: "D", Document: Compose(blocks, team)}
	first, err := HTML(p)
	require.NoError(t, err)
	second, err := HTML(p)
	require.NoError(t, err)
	// deterministic: same input, byte-identical output
	assert.Equal(t, first, second)

	out := string(first)
	assert.Contains(t, out, "cell-spacer")
	assert.Contains(t, out, `src="a.png"`)
	assert.Contains(t, out, "team-member")
	assert.Equal(t, 1, strings.Count(out, "team-member"))
}
