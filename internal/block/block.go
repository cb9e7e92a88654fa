// Package block defines the content block model used by project pages:
// a closed tagged union over the "type" field, with the JSON wire shapes
// the original admin panel persisted. Blocks are rendered in array order.
package block

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Layout picks which grid column a block's primary content occupies.
type Layout string

const (
	LayoutLeft  Layout = "left"
	LayoutRight Layout = "right"
)

// Type is the discriminator tag of a content block.
type Type string

const (
	TypeText             Type = "text"
	TypeFullImage        Type = "full_image"
	TypeSideBySideImage  Type = "side_by_side_image"
	TypeTextAndSideImage Type = "text_and_side_image"
	TypeThreeGridLayout  Type = "three_grid_layout"

	// TypeLegacyImage is the historical tag for full-width images. It is
	// not valid for persistence; Normalize maps it to TypeFullImage.
	TypeLegacyImage Type = "image"
)

// Editor caps. The renderer relies on these: side-by-side holds one image
// per column, the three-grid geometry is defined for indices 0..2 only.
const (
	MaxSideBySideImages = 2
	MaxGridItems        = 3
)

// Block is the sealed content block union. Exactly one concrete type
// exists per tag; the renderer switches over them exhaustively.
type Block interface {
	BlockType() Type
}

// TeamMember is a credit line shown after the content blocks.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Text is a rich-text block occupying one grid column. The other column
// receives an empty bordered spacer cell so the row stays balanced.
type Text struct {
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Layout Layout `json:"layout"`
}

func (Text) BlockType() Type { return TypeText }

// FullImage spans both grid columns.
type FullImage struct {
	ID  string `json:"id,omitempty"`
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

func (FullImage) BlockType() Type { return TypeFullImage }

// SideImage is an image carrying its own column assignment. Used by
// SideBySideImage and TextAndSideImage.
type SideImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Layout Layout `json:"layout"`
}

// SideBySideImage holds up to two images, at most one per column.
type SideBySideImage struct {
	ID     string
	Images []SideImage
}

func (SideBySideImage) BlockType() Type { return TypeSideBySideImage }

// FindSide returns the first image assigned to the given column, or nil.
func (b SideBySideImage) FindSide(l Layout) *SideImage {
	for i := range b.Images {
		if b.Images[i].Layout == l {
			return &b.Images[i]
		}
	}
	return nil
}

// TextAndSideImage places an image left or right of a text cell.
type TextAndSideImage struct {
	ID    string
	Text  string
	Image SideImage
}

func (TextAndSideImage) BlockType() Type { return TypeTextAndSideImage }

// GridItemKind distinguishes the two item flavors inside a three-grid block.
type GridItemKind string

const (
	GridItemText  GridItemKind = "text"
	GridItemImage GridItemKind = "image"
)

// GridItem is one slot of a three-grid block. The editor toggles Kind in
// place, so both the text and image fields are kept regardless of Kind;
// only the fields matching Kind are rendered.
type GridItem struct {
	Kind GridItemKind `json:"type"`
	Text string       `json:"text,omitempty"`
	Src  string       `json:"src,omitempty"`
	Alt  string       `json:"alt,omitempty"`
}

// ThreeGridLayout is a fixed 2x2 geometry driven by item index:
// index 0 renders top-left, index 1 bottom-left, index 2 spans the
// right column across both rows. Items past index 2 are never rendered.
type ThreeGridLayout struct {
	ID    string
	Items []GridItem
}

func (ThreeGridLayout) BlockType() Type { return TypeThreeGridLayout }

// Unknown preserves a block whose tag is not part of the schema so that
// validation can name it instead of losing it at decode time.
type Unknown struct {
	TypeTag Type
	Raw     json.RawMessage
}

func (u Unknown) BlockType() Type { return u.TypeTag }

// List is an ordered block sequence. Order is the render order.
type List []Block

// wire envelopes for the nested "data" shapes

type sideBySideJSON struct {
	ID   string `json:"id,omitempty"`
	Type Type   `json:"type"`
	Data struct {
		Images []SideImage `json:"images"`
	} `json:"data"`
}

type textAndImageJSON struct {
	ID   string `json:"id,omitempty"`
	Type Type   `json:"type"`
	Data struct {
		Text  string    `json:"text"`
		Image SideImage `json:"image"`
	} `json:"data"`
}

type threeGridJSON struct {
	ID   string `json:"id,omitempty"`
	Type Type   `json:"type"`
	Data struct {
		Items []GridItem `json:"items"`
	} `json:"data"`
}

func (b Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     string `json:"id,omitempty"`
		Type   Type   `json:"type"`
		Text   string `json:"text"`
		Layout Layout `json:"layout"`
	}{b.ID, TypeText, b.Text, b.Layout})
}

func (b FullImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id,omitempty"`
		Type Type   `json:"type"`
		Src  string `json:"src"`
		Alt  string `json:"alt,omitempty"`
	}{b.ID, TypeFullImage, b.Src, b.Alt})
}

func (b SideBySideImage) MarshalJSON() ([]byte, error) {
	out := sideBySideJSON{ID: b.ID, Type: TypeSideBySideImage}
	out.Data.Images = b.Images
	if out.Data.Images == nil {
		out.Data.Images = []SideImage{}
	}
	return json.Marshal(out)
}

func (b TextAndSideImage) MarshalJSON() ([]byte, error) {
	out := textAndImageJSON{ID: b.ID, Type: TypeTextAndSideImage}
	out.Data.Text = b.Text
	out.Data.Image = b.Image
	return json.Marshal(out)
}

func (b ThreeGridLayout) MarshalJSON() ([]byte, error) {
	out := threeGridJSON{ID: b.ID, Type: TypeThreeGridLayout}
	out.Data.Items = b.Items
	if out.Data.Items == nil {
		out.Data.Items = []GridItem{}
	}
	return json.Marshal(out)
}

func (u Unknown) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	return json.Marshal(struct {
		Type Type `json:"type"`
	}{u.TypeTag})
}

// Decode parses one block from its wire form. Tags outside the schema
// (including the legacy "image" tag) come back as Unknown; Normalize
// resolves the legacy tag afterwards.
func Decode(raw json.RawMessage) (Block, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	switch probe.Type {
	case TypeText:
		var b Text
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode text block: %w", err)
		}
		return b, nil
	case TypeFullImage:
		var b FullImage
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode full_image block: %w", err)
		}
		return b, nil
	case TypeSideBySideImage:
		var w sideBySideJSON
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode side_by_side_image block: %w", err)
		}
		return SideBySideImage{ID: w.ID, Images: w.Data.Images}, nil
	case TypeTextAndSideImage:
		var w textAndImageJSON
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode text_and_side_image block: %w", err)
		}
		return TextAndSideImage{ID: w.ID, Text: w.Data.Text, Image: w.Data.Image}, nil
	case TypeThreeGridLayout:
		var w threeGridJSON
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode three_grid_layout block: %w", err)
		}
		return ThreeGridLayout{ID: w.ID, Items: w.Data.Items}, nil
	default:
		cp := make(json.RawMessage, len(raw))
		copy(cp, raw)
		return Unknown{TypeTag: probe.Type, Raw: cp}, nil
	}
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(List, 0, len(raws))
	for _, raw := range raws {
		b, err := Decode(raw)
		if err != nil {
			return err
		}
		out = append(out, b)
	}
	*l = out
	return nil
}

// Value / Scan store the list as a JSON column, same as the other
// JSON-typed gorm columns in the model package.

func (l List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *List) Scan(value interface{}) error {
	if value == nil {
		*l = List{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	default:
		return fmt.Errorf("scan block list: unsupported type %T", value)
	}
	return l.UnmarshalJSON(bytes)
}
