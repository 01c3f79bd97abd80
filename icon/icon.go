// Package icon defines the system-side icon representation: decoded pixel
// images as produced and consumed by platform folder-icon APIs, with no
// rendering metadata attached.
package icon

import (
	"context"
	"image"
)

// Image is a single decoded icon image.
type Image struct {
	Data image.Image
}

// Width returns the pixel width of the image.
func (im Image) Width() int { return im.Data.Bounds().Dx() }

// Height returns the pixel height of the image.
func (im Image) Height() int { return im.Data.Bounds().Dy() }

// Set is an ordered collection of per-size images representing one logical
// folder icon. Order is significant: it correlates with cache file indices
// and is preserved across representation conversions.
type Set struct {
	Images []Image
}

// Len returns the number of images in the set.
func (s Set) Len() int { return len(s.Images) }

// Provider extracts the default folder icon set from platform resources.
// Implementations live outside this module (shell32 on Windows, NSWorkspace
// on macOS, the active icon theme on Linux). Extraction can be slow, which
// is why the result is cached on disk.
type Provider interface {
	DumpDefaultIconSet(ctx context.Context) (Set, error)
}
