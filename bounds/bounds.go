// Package bounds resolves per-platform content bounds for system folder
// icons: the sub-rectangle of each icon image that carries the actual
// folder visual, excluding padding. The mapping is partial by design; a
// combination the platform table does not define is an explicit error,
// never a silently assumed default.
package bounds

import (
	"fmt"
	"runtime"

	"github.com/unkn0wn-root/folicon/render"
)

// Lookup maps icon pixel dimensions to the content bounds of the
// platform's default folder icon.
type Lookup interface {
	ContentBounds(width, height int) (render.Rect, error)
}

// UnsupportedError reports a (width, height) combination the platform
// table does not define.
type UnsupportedError struct {
	Platform string
	Width    int
	Height   int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("bounds: no %s content bounds for %dx%d", e.Platform, e.Width, e.Height)
}

// ForOS returns the lookup for the given GOOS value.
func ForOS(goos string) Lookup {
	switch goos {
	case "windows":
		return Windows()
	case "darwin":
		return MacOS()
	default:
		return Linux()
	}
}

// Default returns the lookup for the current platform.
func Default() Lookup { return ForOS(runtime.GOOS) }
