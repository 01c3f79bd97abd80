package bounds

import "github.com/unkn0wn-root/folicon/render"

// SurfaceColor is the golden-yellow surface color of the stock Windows
// folder icon, HSL(44deg, 100%, 72%). Renderers use it as the reference
// point when computing HSL mutation deltas.
var SurfaceColor = render.HSL{Hue: 44, Saturation: 1, Lightness: 0.72}

// Measured imprintable surface per shell32 icon size. Keyed by width; the
// stock icons are square.
var windowsBounds = map[int]render.Rect{
	16:  {X: 0, Y: 4, Width: 16, Height: 9},
	20:  {X: 1, Y: 6, Width: 18, Height: 10},
	24:  {X: 1, Y: 6, Width: 22, Height: 13},
	32:  {X: 2, Y: 8, Width: 28, Height: 17},
	40:  {X: 2, Y: 10, Width: 38, Height: 22},
	48:  {X: 3, Y: 11, Width: 42, Height: 27},
	64:  {X: 4, Y: 16, Width: 56, Height: 36},
	256: {X: 16, Y: 62, Width: 224, Height: 144},
}

type windowsLookup struct{}

// Windows returns the lookup for the stock shell32 folder icon sizes
// (16, 20, 24, 32, 40, 48, 64 and 256 px).
func Windows() Lookup { return windowsLookup{} }

func (windowsLookup) ContentBounds(width, height int) (render.Rect, error) {
	r, ok := windowsBounds[width]
	if !ok {
		return render.Rect{}, &UnsupportedError{Platform: "windows", Width: width, Height: height}
	}
	return r, nil
}
