// Package render maps a project's content blocks into a two-column grid.
// The same transformation backs the public project page and the admin
// preview, so it must stay pure: cells depend only on the input blocks.
package render

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/newstalgia/backend/internal/block"
)

// Kind classifies a grid cell.
type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindSpacer Kind = "spacer"
)

// Column is the grid column a cell occupies.
type Column string

const (
	ColumnLeft  Column = "left"
	ColumnRight Column = "right"
	ColumnFull  Column = "full"
)

// Cell is one rendered grid cell, emitted in display order.
type Cell struct {
	Kind   Kind
	Column Column

	// Row and RowSpan are set only for three-grid cells, which carry
	// explicit 2x2 geometry. Zero elsewhere.
	Row     int
	RowSpan int

	HTML template.HTML
	Src  string
	Alt  string
}

// Template predicates; html/template's eq cannot compare the typed Kind
// against an untyped string literal.

func (c Cell) IsSpacer() bool { return c.Kind == KindSpacer }
func (c Cell) IsImage() bool  { return c.Kind == KindImage }

// Document is a fully laid out project page body.
type Document struct {
	Cells []Cell
	Team  []block.TeamMember
}

// Authored rich text is sanitized once here so neither the admin preview
// nor the public page ever emits unvetted markup.
var richText = bluemonday.UGCPolicy()

func sanitize(s string) template.HTML {
	return template.HTML(richText.Sanitize(s))
}

// Compose lays out blocks and team into a document. Team is rendered
// once, after all blocks, and only when non-empty.
func Compose(blocks block.List, team []block.TeamMember) Document {
	doc := Document{Cells: Cells(blocks)}
	if len(team) > 0 {
		doc.Team = team
	}
	return doc
}

// Cells transforms blocks into grid cells in array order.
func Cells(blocks block.List) []Cell {
	var cells []Cell
	for _, b := range blocks {
		cells = append(cells, blockCells(b)...)
	}
	return cells
}

func blockCells(b block.Block) []Cell {
	switch v := b.(type) {
	case block.Text:
		return textCells(v)
	case block.FullImage:
		return []Cell{{Kind: KindImage, Column: ColumnFull, Src: v.Src, Alt: v.Alt}}
	case block.TextAndSideImage:
		return textAndImageCells(v)
	case block.SideBySideImage:
		return sideBySideCells(v)
	case block.ThreeGridLayout:
		return threeGridCells(v)
	case block.Unknown:
		return nil
	}
	return nil
}

// textCells emits one content cell plus an empty bordered spacer in the
// opposite column, so the row is balanced whichever side carries text.
// A missing layout defaults to left.
func textCells(b block.Text) []Cell {
	content := Cell{Kind: KindText, HTML: sanitize(b.Text)}
	spacer := Cell{Kind: KindSpacer}
	if b.Layout == block.LayoutRight {
		content.Column = ColumnRight
		spacer.Column = ColumnLeft
		return []Cell{spacer, content}
	}
	content.Column = ColumnLeft
	spacer.Column = ColumnRight
	return []Cell{content, spacer}
}

// textAndImageCells skips the whole block when the image has no source,
// so production pages never show a broken-image placeholder.
func textAndImageCells(b block.TextAndSideImage) []Cell {
	if b.Image.Src == "" {
		return nil
	}
	img := Cell{Kind: KindImage, Src: b.Image.Src, Alt: b.Image.Alt}
	txt := Cell{Kind: KindText, HTML: sanitize(b.Text)}
	if b.Image.Layout == block.LayoutLeft {
		img.Column = ColumnLeft
		txt.Column = ColumnRight
		return []Cell{img, txt}
	}
	txt.Column = ColumnLeft
	img.Column = ColumnRight
	return []Cell{txt, img}
}

// sideBySideCells renders the left-assigned image then the right one.
// A side with no matching image is omitted entirely, not spaced.
func sideBySideCells(b block.SideBySideImage) []Cell {
	var cells []Cell
	if left := b.FindSide(block.LayoutLeft); left != nil {
		cells = append(cells, Cell{Kind: KindImage, Column: ColumnLeft, Src: left.Src, Alt: left.Alt})
	}
	if right := b.FindSide(block.LayoutRight); right != nil {
		cells = append(cells, Cell{Kind: KindImage, Column: ColumnRight, Src: right.Src, Alt: right.Alt})
	}
	return cells
}

// threeGridCells applies the fixed 2x2 geometry: index 0 top-left,
// index 1 bottom-left, index 2 spans the right column across both rows.
// The editor caps items at three; extras are truncated here.
func threeGridCells(b block.ThreeGridLayout) []Cell {
	items := b.Items
	if len(items) > block.MaxGridItems {
		items = items[:block.MaxGridItems]
	}
	var cells []Cell
	for idx, item := range items {
		cell := Cell{}
		switch idx {
		case 0:
			cell.Column, cell.Row = ColumnLeft, 1
		case 1:
			cell.Column, cell.Row = ColumnLeft, 2
		case 2:
			cell.Column, cell.Row, cell.RowSpan = ColumnRight, 1, 2
		}
		switch item.Kind {
		case block.GridItemText:
			cell.Kind = KindText
			cell.HTML = sanitize(item.Text)
		case block.GridItemImage:
			if item.Src == "" {
				continue
			}
			cell.Kind = KindImage
			cell.Src = item.Src
			cell.Alt = item.Alt
		default:
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}
