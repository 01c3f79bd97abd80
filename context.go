package folicon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/unkn0wn-root/folicon/bounds"
	cod "github.com/unkn0wn-root/folicon/codec"
	"github.com/unkn0wn-root/folicon/icon"
	"github.com/unkn0wn-root/folicon/internal/fingerprint"
	"github.com/unkn0wn-root/folicon/internal/wire"
	"github.com/unkn0wn-root/folicon/progress"
	pr "github.com/unkn0wn-root/folicon/provider"
	"github.com/unkn0wn-root/folicon/render"
)

// Context is the entry point for folder icon customization. It composes
// the icon cache, the current customizer handle and the per-folder applier
// into batch operations.
//
// A Context is reusable for the process lifetime. It is not safe for
// concurrent use: the customizer mutates render state in place and applies
// mutate per-folder OS metadata.
type Context struct {
	cache      *IconCache
	factory    render.CustomizerFactory
	customizer render.Customizer
	applier    Applier
	bounds     bounds.Lookup
	log        Logger
	hooks      Hooks

	renderStore pr.Provider
	renderCodec cod.Codec[render.Set]
	renderTTL   time.Duration
}

func newContext(ctx context.Context, opts Options) (*Context, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("folicon: icon provider is required")
	}
	if opts.Customizer == nil {
		return nil, fmt.Errorf("folicon: customizer factory is required")
	}
	if opts.Applier == nil {
		return nil, fmt.Errorf("folicon: applier is required")
	}

	cfg := CacheConfig{Dir: opts.CacheDir, ForceRefresh: opts.ForceRefresh}
	if cfg.Dir == "" {
		if opts.AppInfo == nil {
			return nil, fmt.Errorf("folicon: either CacheDir or AppInfo is required")
		}
		resolved, err := CacheConfigFromAppInfo(*opts.AppInfo)
		if err != nil {
			return nil, err
		}
		cfg.Dir = resolved.Dir
	}

	log := coalesce[Logger](opts.Logger, NopLogger{})
	hooks := coalesce[Hooks](opts.Hooks, NopHooks{})
	lookup := opts.Bounds
	if lookup == nil {
		lookup = bounds.Default()
	}

	cache, err := NewIconCache(cfg, opts.Provider, log, hooks)
	if err != nil {
		return nil, err
	}
	sys, err := cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	base, err := ToRenderSet(sys, lookup)
	if err != nil {
		return nil, err
	}

	c := &Context{
		cache:      cache,
		factory:    opts.Customizer,
		customizer: opts.Customizer(base),
		applier:    opts.Applier,
		bounds:     lookup,
		log:        log,
		hooks:      hooks,
	}
	if opts.RenderStore != nil {
		c.renderStore = opts.RenderStore
		c.renderCodec = opts.RenderCodec
		if c.renderCodec == nil {
			c.renderCodec = cod.JSON[render.Set]{}
		}
		c.renderTTL = coalesce[time.Duration](opts.RenderTTL, 10*time.Minute)
	}
	return c, nil
}

// Cache returns the icon cache for introspection (IsCached, Dir, Clear).
func (c *Context) Cache() *IconCache { return c.cache }

// Customizer returns the current renderer handle. RefreshCache replaces
// it; holding the old handle after a refresh observes the discarded state.
func (c *Context) Customizer() render.Customizer { return c.customizer }

// BaseIcons returns the unrendered base set held by the customizer.
func (c *Context) BaseIcons() render.Set { return c.customizer.BaseIcons() }

// ApplyProfile forwards to the customizer, mutating its state in place.
// No I/O happens here.
func (c *Context) ApplyProfile(p render.Profile) { c.customizer.ApplyProfile(p) }

// ExportProfile returns the customizer's current settings as a
// serializable profile.
func (c *Context) ExportProfile() render.Profile { return c.customizer.ExportProfile() }

// Render produces the final pixel output for the currently applied
// profile. With a render store configured, output is memoized by profile
// fingerprint; corrupt memo entries are deleted and recomputed.
func (c *Context) Render(ctx context.Context) (render.Set, error) {
	if c.renderStore == nil {
		return c.renderAll()
	}
	fp, err := profileFingerprint(c.customizer.ExportProfile())
	if err != nil {
		// unfingerprintable profile; render directly
		return c.renderAll()
	}
	if set, ok := c.memoGet(ctx, fp); ok {
		c.hooks.RenderMemoHit(fp)
		return set, nil
	}
	set, err := c.renderAll()
	if err != nil {
		return render.Set{}, err
	}
	c.memoSet(ctx, fp, set)
	return set, nil
}

func (c *Context) renderAll() (render.Set, error) {
	set, err := c.customizer.RenderAll()
	if err != nil {
		return render.Set{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return set, nil
}

// CustomizeMany applies profile, renders once, converts once, then applies
// the result to every folder in input order. Rendering happens once per
// call regardless of folder count. A folder's failure is recorded in its
// slot of the result slice and never aborts the remaining folders. The
// second return carries render/convert failures; no folder is attempted in
// that case.
func (c *Context) CustomizeMany(ctx context.Context, folders []string, profile render.Profile) ([]error, error) {
	sys, err := c.renderForApply(ctx, profile)
	if err != nil {
		return nil, err
	}
	results := make([]error, len(folders))
	for i, folder := range folders {
		if err := c.applier.SetIcon(ctx, folder, sys); err != nil {
			results[i] = &ApplyError{Path: folder, Err: err}
		}
	}
	return results, nil
}

// ResetMany resets every folder to the system default icon, in input
// order, with the same fail-soft contract as CustomizeMany. No rendering
// or conversion happens.
func (c *Context) ResetMany(ctx context.Context, folders []string) []error {
	results := make([]error, len(folders))
	for i, folder := range folders {
		if err := c.applier.ResetIcon(ctx, folder); err != nil {
			results[i] = &ResetError{Path: folder, Err: err}
		}
	}
	return results
}

// CustomizeOne customizes a single folder.
func (c *Context) CustomizeOne(ctx context.Context, folder string, profile render.Profile) error {
	results, err := c.CustomizeMany(ctx, []string{folder}, profile)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return &NoResultError{Op: "CustomizeMany"}
	}
	return results[0]
}

// ResetOne resets a single folder.
func (c *Context) ResetOne(ctx context.Context, folder string) error {
	results := c.ResetMany(ctx, []string{folder})
	if len(results) == 0 {
		return &NoResultError{Op: "ResetMany"}
	}
	return results[0]
}

// RefreshCache clears and repopulates the cache, then replaces the
// customizer with a fresh handle built on the new base set. Any profile
// applied to the old handle is discarded: a new base invalidates prior
// render state.
func (c *Context) RefreshCache(ctx context.Context) error {
	sys, err := c.cache.Refresh(ctx)
	if err != nil {
		return err
	}
	base, err := ToRenderSet(sys, c.bounds)
	if err != nil {
		return err
	}
	c.customizer = c.factory(base)
	return nil
}

// CustomizeManyProgress is CustomizeMany with progress events. For N
// folders it emits Started{N}, Rendering, then per folder Processing
// immediately followed by FolderComplete or FolderFailed, and finally
// Completed with Succeeded+Failed == N. Delivery is best-effort: events
// that do not fit the channel buffer are dropped and reported via Hooks.
func (c *Context) CustomizeManyProgress(ctx context.Context, folders []string, profile render.Profile, ch *progress.Channel) ([]error, error) {
	c.emit(ch, progress.Started{Total: len(folders)})
	c.emit(ch, progress.Rendering{})

	sys, err := c.renderForApply(ctx, profile)
	if err != nil {
		c.emit(ch, progress.RenderFailed{Error: err.Error()})
		c.emit(ch, progress.Completed{Succeeded: 0, Failed: len(folders)})
		return nil, err
	}

	results := make([]error, len(folders))
	succeeded, failed := 0, 0
	for i, folder := range folders {
		c.emit(ch, progress.Processing{Current: i, Path: folder})
		if err := c.applier.SetIcon(ctx, folder, sys); err != nil {
			results[i] = &ApplyError{Path: folder, Err: err}
			failed++
			c.emit(ch, progress.FolderFailed{Index: i, Path: folder, Error: err.Error()})
		} else {
			succeeded++
			c.emit(ch, progress.FolderComplete{Index: i, Path: folder})
		}
	}
	c.emit(ch, progress.Completed{Succeeded: succeeded, Failed: failed})
	return results, nil
}

// ResetManyProgress is ResetMany with progress events. Same contract as
// CustomizeManyProgress minus the Rendering step.
func (c *Context) ResetManyProgress(ctx context.Context, folders []string, ch *progress.Channel) []error {
	c.emit(ch, progress.Started{Total: len(folders)})

	results := make([]error, len(folders))
	succeeded, failed := 0, 0
	for i, folder := range folders {
		c.emit(ch, progress.Processing{Current: i, Path: folder})
		if err := c.applier.ResetIcon(ctx, folder); err != nil {
			results[i] = &ResetError{Path: folder, Err: err}
			failed++
			c.emit(ch, progress.FolderFailed{Index: i, Path: folder, Error: err.Error()})
		} else {
			succeeded++
			c.emit(ch, progress.FolderComplete{Index: i, Path: folder})
		}
	}
	c.emit(ch, progress.Completed{Succeeded: succeeded, Failed: failed})
	return results
}

// renderForApply runs the profile/render/convert step shared by the
// customize variants.
func (c *Context) renderForApply(ctx context.Context, profile render.Profile) (icon.Set, error) {
	c.ApplyProfile(profile)
	rendered, err := c.Render(ctx)
	if err != nil {
		return icon.Set{}, err
	}
	return ToSystemSet(rendered), nil
}

func (c *Context) emit(ch *progress.Channel, e progress.Event) {
	if ch == nil {
		return
	}
	if !ch.TrySend(e) {
		c.hooks.ProgressDropped(progress.Kind(e))
	}
}

func profileFingerprint(p render.Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return fingerprint.Sum("render", raw), nil
}

func (c *Context) memoGet(ctx context.Context, fp string) (render.Set, bool) {
	raw, ok, err := c.renderStore.Get(ctx, fp)
	if err != nil || !ok {
		return render.Set{}, false
	}
	gotFP, payload, err := wire.Decode(raw)
	if err != nil || gotFP != fp {
		_ = c.renderStore.Del(ctx, fp) // self-heal corrupt or foreign entry
		c.hooks.RenderMemoCorrupt(fp)
		return render.Set{}, false
	}
	set, err := c.renderCodec.Decode(payload)
	if err != nil {
		_ = c.renderStore.Del(ctx, fp) // self-heal
		c.hooks.RenderMemoCorrupt(fp)
		return render.Set{}, false
	}
	return set, true
}

func (c *Context) memoSet(ctx context.Context, fp string, set render.Set) {
	payload, err := c.renderCodec.Encode(set)
	if err != nil {
		c.log.Debug("render memo encode failed", Fields{"err": err})
		return
	}
	framed := wire.Encode(fp, payload)
	if ok, err := c.renderStore.Set(ctx, fp, framed, int64(len(framed)), c.renderTTL); err != nil || !ok {
		c.log.Debug("render memo set rejected", Fields{"fp": fp, "err": err})
	}
}
