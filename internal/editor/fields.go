package editor

import (
	"fmt"

	"github.com/newstalgia/backend/internal/block"
)

// Sub-editor operations for the list-bearing block types. These enforce
// the structural caps the form's disabled controls rely on.

// CanAddSideImage reports whether the side-by-side block at idx has room
// for another image.
func (s *Session) CanAddSideImage(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.SideBySideImage)
	return ok && len(b.Images) < block.MaxSideBySideImages
}

// AddSideImage appends an empty left-assigned image to the side-by-side
// block at idx. Fails once the block holds two images.
func (s *Session) AddSideImage(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.SideBySideImage)
	if !ok {
		return fmt.Errorf("block %d is not a side_by_side_image block", idx)
	}
	if len(b.Images) >= block.MaxSideBySideImages {
		return fmt.Errorf("side_by_side_image holds at most %d images", block.MaxSideBySideImages)
	}
	b.Images = append(append([]block.SideImage{}, b.Images...), block.SideImage{Layout: block.LayoutLeft})
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// UpdateSideImage replaces one image of the side-by-side block at idx.
func (s *Session) UpdateSideImage(idx, imgIdx int, img block.SideImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.SideBySideImage)
	if !ok {
		return fmt.Errorf("block %d is not a side_by_side_image block", idx)
	}
	if imgIdx < 0 || imgIdx >= len(b.Images) {
		return fmt.Errorf("image index %d out of range", imgIdx)
	}
	images := append([]block.SideImage{}, b.Images...)
	images[imgIdx] = img
	b.Images = images
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// RemoveSideImage drops one image from the side-by-side block at idx.
func (s *Session) RemoveSideImage(idx, imgIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.SideBySideImage)
	if !ok {
		return fmt.Errorf("block %d is not a side_by_side_image block", idx)
	}
	if imgIdx < 0 || imgIdx >= len(b.Images) {
		return fmt.Errorf("image index %d out of range", imgIdx)
	}
	images := append([]block.SideImage{}, b.Images[:imgIdx]...)
	images = append(images, b.Images[imgIdx+1:]...)
	b.Images = images
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// CanAddGridItem reports whether the three-grid block at idx has a free slot.
func (s *Session) CanAddGridItem(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.ThreeGridLayout)
	return ok && len(b.Items) < block.MaxGridItems
}

// AddGridItem appends an empty text item to the three-grid block at idx.
// Fails once the block holds three items.
func (s *Session) AddGridItem(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.ThreeGridLayout)
	if !ok {
		return fmt.Errorf("block %d is not a three_grid_layout block", idx)
	}
	if len(b.Items) >= block.MaxGridItems {
		return fmt.Errorf("three_grid_layout holds at most %d items", block.MaxGridItems)
	}
	b.Items = append(append([]block.GridItem{}, b.Items...), block.GridItem{Kind: block.GridItemText})
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// UpdateGridItem replaces one item of the three-grid block at idx. The
// item's kind may be toggled in place; the other flavor's fields are
// kept so flipping back does not lose work.
func (s *Session) UpdateGridItem(idx, itemIdx int, item block.GridItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.ThreeGridLayout)
	if !ok {
		return fmt.Errorf("block %d is not a three_grid_layout block", idx)
	}
	if itemIdx < 0 || itemIdx >= len(b.Items) {
		return fmt.Errorf("item index %d out of range", itemIdx)
	}
	items := append([]block.GridItem{}, b.Items...)
	items[itemIdx] = item
	b.Items = items
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// RemoveGridItem drops one item from the three-grid block at idx.
func (s *Session) RemoveGridItem(idx, itemIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blockAt(idx).(block.ThreeGridLayout)
	if !ok {
		return fmt.Errorf("block %d is not a three_grid_layout block", idx)
	}
	if itemIdx < 0 || itemIdx >= len(b.Items) {
		return fmt.Errorf("item index %d out of range", itemIdx)
	}
	items := append([]block.GridItem{}, b.Items[:itemIdx]...)
	items = append(items, b.Items[itemIdx+1:]...)
	b.Items = items
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// blockAt returns the block at idx or nil. Caller holds the lock.
func (s *Session) blockAt(idx int) block.Block {
	if idx < 0 || idx >= len(s.project.Blocks) {
		return nil
	}
	return s.project.Blocks[idx]
}
