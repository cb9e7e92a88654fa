package editor

import (
	"context"
	"fmt"
	"io"

	"github.com/newstalgia/backend/internal/block"
)

// ImageTarget names which image field of a block an upload fills.
type ImageTarget struct {
	// SideImageIndex addresses one image of a side_by_side_image block.
	SideImageIndex int
	// GridItemIndex addresses one item of a three_grid_layout block.
	GridItemIndex int
}

// UploadImage streams the file to the asset store and, on success,
// writes the returned URL into the image field of the block at idx.
// Progress is tracked per block index so uploads for different blocks
// can run concurrently without clobbering each other's display; it is
// reset to zero on completion or failure.
func (s *Session) UploadImage(ctx context.Context, idx int, target ImageTarget, filename string, size int64, r io.Reader) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("no asset store configured")
	}

	s.setProgress(idx, 0)
	url, err := s.store.Upload(ctx, filename, size, r, func(pct int) {
		s.setProgress(idx, pct)
	})
	s.setProgress(idx, 0)
	if err != nil {
		return "", fmt.Errorf("upload image for block %d: %w", idx, err)
	}

	if err := s.setImageSrc(idx, target, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Session) setProgress(idx, pct int) {
	s.mu.Lock()
	s.progress[idx] = pct
	s.mu.Unlock()
}

// setImageSrc routes the URL to the image-bearing leaf field of the
// block's type.
func (s *Session) setImageSrc(idx int, target ImageTarget, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch b := s.blockAt(idx).(type) {
	case block.FullImage:
		b.Src = url
		s.project.Blocks = s.project.Blocks.Replace(idx, b)
		return nil
	case block.TextAndSideImage:
		b.Image.Src = url
		s.project.Blocks = s.project.Blocks.Replace(idx, b)
		return nil
	case block.SideBySideImage:
		if target.SideImageIndex < 0 || target.SideImageIndex >= len(b.Images) {
			return fmt.Errorf("image index %d out of range", target.SideImageIndex)
		}
		images := append([]block.SideImage{}, b.Images...)
		images[target.SideImageIndex].Src = url
		b.Images = images
		s.project.Blocks = s.project.Blocks.Replace(idx, b)
		return nil
	case block.ThreeGridLayout:
		if target.GridItemIndex < 0 || target.GridItemIndex >= len(b.Items) {
			return fmt.Errorf("item index %d out of range", target.GridItemIndex)
		}
		items := append([]block.GridItem{}, b.Items...)
		items[target.GridItemIndex].Src = url
		b.Items = items
		s.project.Blocks = s.project.Blocks.Replace(idx, b)
		return nil
	case nil:
		return fmt.Errorf("block index %d out of range", idx)
	default:
		return fmt.Errorf("block %d (%s) has no image field", idx, s.blockAt(idx).BlockType())
	}
}
