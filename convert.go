package folicon

import (
	"image"
	"image/draw"

	"github.com/unkn0wn-root/folicon/bounds"
	"github.com/unkn0wn-root/folicon/icon"
	"github.com/unkn0wn-root/folicon/render"
)

// ToRenderSet converts a system icon set into the renderer representation.
// Pixels are normalized to RGBA, scale is fixed at 1.0 (system dumps are
// unscaled references) and content bounds come from the platform lookup. A
// (width, height) combination the lookup does not define fails the whole
// conversion; bounds are never silently assumed. Image count and order are
// preserved.
func ToRenderSet(sys icon.Set, lookup bounds.Lookup) (render.Set, error) {
	images := make([]render.Image, 0, sys.Len())
	for _, im := range sys.Images {
		rgba := toRGBA(im.Data)
		cb, err := lookup.ContentBounds(rgba.Rect.Dx(), rgba.Rect.Dy())
		if err != nil {
			return render.Set{}, err
		}
		images = append(images, render.Image{Data: rgba, Scale: 1.0, Bounds: cb})
	}
	return render.Set{Images: images}, nil
}

// ToSystemSet strips rendering metadata, keeping only the pixel buffers.
// Image count and order are preserved.
func ToSystemSet(rs render.Set) icon.Set {
	images := make([]icon.Image, 0, rs.Len())
	for _, im := range rs.Images {
		images = append(images, icon.Image{Data: im.Data})
	}
	return icon.Set{Images: images}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
