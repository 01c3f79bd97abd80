// Package render defines the renderer-side icon representation and the
// customizer capability the core orchestrates. The renderer itself is an
// external collaborator; this package only carries the types crossing that
// boundary.
package render

import "image"

// Rect is a pixel-space rectangle.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// HSL is a color in hue/saturation/lightness space. Hue is in degrees
// (0-360), saturation and lightness are fractions (0.0-1.0).
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Image is a pixel buffer plus the metadata the renderer needs: a scale
// factor and the content bounds (the sub-rectangle containing the actual
// visual content, excluding padding).
type Image struct {
	Data   *image.RGBA `json:"data"`
	Scale  float64     `json:"scale"`
	Bounds Rect        `json:"bounds"`
}

// Width returns the pixel width of the image.
func (im Image) Width() int { return im.Data.Bounds().Dx() }

// Height returns the pixel height of the image.
func (im Image) Height() int { return im.Data.Bounds().Dy() }

// Set is an ordered collection of render images. Order matches the system
// set it was converted from.
type Set struct {
	Images []Image `json:"images"`
}

// Len returns the number of images in the set.
func (s Set) Len() int { return len(s.Images) }
