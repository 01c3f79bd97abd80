package folicon

import (
	"errors"
	"image"
	"testing"

	"github.com/unkn0wn-root/folicon/bounds"
	"github.com/unkn0wn-root/folicon/icon"
	"github.com/unkn0wn-root/folicon/render"
)

func TestToRenderSet(t *testing.T) {
	sys := icon.Set{Images: []icon.Image{
		{Data: image.NewRGBA(image.Rect(0, 0, 16, 16))},
		{Data: image.NewNRGBA(image.Rect(0, 0, 32, 32))}, // normalized to RGBA
		{Data: image.NewRGBA(image.Rect(0, 0, 256, 256))},
	}}

	rs, err := ToRenderSet(sys, bounds.Windows())
	if err != nil {
		t.Fatalf("ToRenderSet: %v", err)
	}
	if rs.Len() != 3 {
		t.Fatalf("len = %d", rs.Len())
	}

	wantDims := []int{16, 32, 256}
	wantBounds := []render.Rect{
		{X: 0, Y: 4, Width: 16, Height: 9},
		{X: 2, Y: 8, Width: 28, Height: 17},
		{X: 16, Y: 62, Width: 224, Height: 144},
	}
	for i, im := range rs.Images {
		if im.Data.Rect.Dx() != wantDims[i] || im.Data.Rect.Dy() != wantDims[i] {
			t.Fatalf("image %d: %dx%d, want %d", i, im.Data.Rect.Dx(), im.Data.Rect.Dy(), wantDims[i])
		}
		if im.Scale != 1.0 {
			t.Fatalf("image %d: scale = %v", i, im.Scale)
		}
		if im.Bounds != wantBounds[i] {
			t.Fatalf("image %d: bounds = %+v, want %+v", i, im.Bounds, wantBounds[i])
		}
	}
}

func TestToRenderSetUndefinedSize(t *testing.T) {
	sys := icon.Set{Images: []icon.Image{
		{Data: image.NewRGBA(image.Rect(0, 0, 16, 16))},
		{Data: image.NewRGBA(image.Rect(0, 0, 17, 17))},
	}}

	_, err := ToRenderSet(sys, bounds.Windows())
	var ue *bounds.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *bounds.UnsupportedError", err)
	}
	if ue.Width != 17 || ue.Height != 17 {
		t.Fatalf("UnsupportedError = %+v", ue)
	}
}

func TestRoundTrip(t *testing.T) {
	sys := icon.Set{Images: []icon.Image{
		{Data: image.NewRGBA(image.Rect(0, 0, 32, 32))},
		{Data: image.NewRGBA(image.Rect(0, 0, 48, 48))},
	}}

	rs, err := ToRenderSet(sys, bounds.Windows())
	if err != nil {
		t.Fatalf("ToRenderSet: %v", err)
	}
	back := ToSystemSet(rs)
	if back.Len() != sys.Len() {
		t.Fatalf("round trip len = %d", back.Len())
	}
	for i, im := range back.Images {
		if im.Width() != sys.Images[i].Width() || im.Height() != sys.Images[i].Height() {
			t.Fatalf("image %d: %dx%d", i, im.Width(), im.Height())
		}
	}
}

// Non-origin source rectangles must be re-based at (0,0).
func TestToRenderSetRebasesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 26, 26)) // 16x16, offset origin
	rs, err := ToRenderSet(icon.Set{Images: []icon.Image{{Data: src}}}, bounds.Windows())
	if err != nil {
		t.Fatalf("ToRenderSet: %v", err)
	}
	got := rs.Images[0].Data.Rect
	if got.Min.X != 0 || got.Min.Y != 0 || got.Dx() != 16 || got.Dy() != 16 {
		t.Fatalf("rect = %v", got)
	}
}
