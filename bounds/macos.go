package bounds

import "github.com/unkn0wn-root/folicon/render"

type macosLookup struct{}

// MacOS returns the macOS lookup. Bounds for macOS folder icons have not
// been measured yet, so every combination is currently reported as
// unsupported.
func MacOS() Lookup { return macosLookup{} }

func (macosLookup) ContentBounds(width, height int) (render.Rect, error) {
	return render.Rect{}, &UnsupportedError{Platform: "macos", Width: width, Height: height}
}
