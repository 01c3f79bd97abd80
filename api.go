package folicon

import (
	"context"
	"time"

	"github.com/unkn0wn-root/folicon/bounds"
	cod "github.com/unkn0wn-root/folicon/codec"
	"github.com/unkn0wn-root/folicon/icon"
	pr "github.com/unkn0wn-root/folicon/provider"
	"github.com/unkn0wn-root/folicon/render"
)

// Applier assigns or clears the custom icon of a single target folder.
// Implementations wrap the platform mechanism (desktop.ini on Windows,
// Finder info on macOS, gio metadata on Linux). Calls mutate OS-level
// metadata for the target; the core never invokes them concurrently.
type Applier interface {
	SetIcon(ctx context.Context, folder string, set icon.Set) error
	ResetIcon(ctx context.Context, folder string) error
}

// Options configure a Context. Provider, Customizer, Applier and a cache
// location (CacheDir or AppInfo) are required; everything else has
// defaults.
type Options struct {
	// Required
	Provider   icon.Provider            // extracts the default system icon set
	Customizer render.CustomizerFactory // builds renderer handles
	Applier    Applier                  // applies/resets per-folder icons

	// Cache location. CacheDir wins when both are set; otherwise AppInfo
	// resolves a per-user data directory.
	CacheDir     string
	AppInfo      *AppInfo
	ForceRefresh bool // repopulate the cache on build

	// Bounds is the platform content-bounds lookup. nil => the current
	// platform's table.
	Bounds bounds.Lookup

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	// Optional render memoization. When RenderStore is set, rendered sets
	// are cached by profile fingerprint. RenderCodec defaults to JSON,
	// RenderTTL to 10m.
	RenderStore pr.Provider
	RenderCodec cod.Codec[render.Set]
	RenderTTL   time.Duration
}

// New builds a Context: resolves the cache location, loads or populates the
// icon cache, converts the base set to render format and initializes the
// customizer handle. Any failure in that chain aborts construction; a
// partially built Context is never returned.
func New(ctx context.Context, opts Options) (*Context, error) {
	return newContext(ctx, opts)
}
