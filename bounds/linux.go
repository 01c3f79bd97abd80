package bounds

import "github.com/unkn0wn-root/folicon/render"

type linuxLookup struct{}

// Linux returns the Linux lookup. Content regions vary per icon theme and
// have not been measured yet, so every combination is currently reported
// as unsupported.
func Linux() Lookup { return linuxLookup{} }

func (linuxLookup) ContentBounds(width, height int) (render.Rect, error) {
	return render.Rect{}, &UnsupportedError{Platform: "linux", Width: width, Height: height}
}
