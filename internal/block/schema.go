package block

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidTypes is the closed set of tags accepted for persistence.
var ValidTypes = []Type{
	TypeText,
	TypeFullImage,
	TypeSideBySideImage,
	TypeTextAndSideImage,
	TypeThreeGridLayout,
}

// IsValidType reports whether t is one of the persistable block tags.
// The legacy "image" tag is not valid; it must be normalized first.
func IsValidType(t Type) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DefaultFor returns the zero-value block a newly added block of the
// given type starts from. Returns nil for tags outside the schema.
func DefaultFor(t Type) Block {
	switch t {
	case TypeText:
		return Text{Text: "", Layout: LayoutLeft}
	case TypeFullImage:
		return FullImage{}
	case TypeSideBySideImage:
		return SideBySideImage{Images: []SideImage{}}
	case TypeTextAndSideImage:
		return TextAndSideImage{Image: SideImage{Layout: LayoutLeft}}
	case TypeThreeGridLayout:
		return ThreeGridLayout{Items: []GridItem{}}
	}
	return nil
}

// Normalize maps the historical "image" tag to a full_image block and
// passes every other block through unchanged. Idempotent.
func Normalize(b Block) Block {
	u, ok := b.(Unknown)
	if !ok || u.TypeTag != TypeLegacyImage {
		return b
	}
	// FullImage carries no type field, so decoding the raw payload picks
	// up id/src/alt and drops only the legacy tag.
	var fi FullImage
	if err := json.Unmarshal(u.Raw, &fi); err != nil {
		return b
	}
	return fi
}

// Normalize applies legacy normalization to every element.
func (l List) Normalize() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, b := range l {
		out[i] = Normalize(b)
	}
	return out
}

// Validate checks every element against the schema, naming each
// offending block. Run before any persistence attempt.
func (l List) Validate() error {
	var bad []string
	for i, b := range l {
		if b == nil {
			bad = append(bad, fmt.Sprintf("block %d: missing", i))
			continue
		}
		if !IsValidType(b.BlockType()) {
			bad = append(bad, fmt.Sprintf("block %d: invalid type %q", i, b.BlockType()))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid content blocks: %s", strings.Join(bad, "; "))
	}
	return nil
}

// Functional list helpers. Each returns a fresh slice so callers never
// mutate a list another component still holds.

// Insert places b at index i, shifting later elements up. Out-of-range
// indices clamp to the nearest end.
func (l List) Insert(i int, b Block) List {
	if i < 0 {
		i = 0
	}
	if i > len(l) {
		i = len(l)
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l[:i]...)
	out = append(out, b)
	out = append(out, l[i:]...)
	return out
}

// Remove drops the element at index i, shifting later elements down.
// Out-of-range indices return the list unchanged.
func (l List) Remove(i int) List {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	out = append(out, l[i+1:]...)
	return out
}

// Replace swaps in b at index i. Out-of-range indices return the list
// unchanged.
func (l List) Replace(i int, b Block) List {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(List, len(l))
	copy(out, l)
	out[i] = b
	return out
}

// Move removes the element at src and re-inserts it at dst, shifting
// intervening elements. Out-of-range indices return the list unchanged.
func (l List) Move(src, dst int) List {
	if src < 0 || src >= len(l) || dst < 0 || dst >= len(l) || src == dst {
		return l
	}
	b := l[src]
	return l.Remove(src).Insert(dst, b)
}

// Swap exchanges the elements at i and j.
func (l List) Swap(i, j int) List {
	if i < 0 || i >= len(l) || j < 0 || j >= len(l) || i == j {
		return l
	}
	out := make(List, len(l))
	copy(out, l)
	out[i], out[j] = out[j], out[i]
	return out
}
